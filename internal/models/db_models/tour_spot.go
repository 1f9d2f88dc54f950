package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// TourSpot is a tourist attraction loaded from the Korea Tourism
// Organization TourAPI (see cmd/loader). ContentID is the TourAPI
// contentid and keys the on-demand image lookup.
type TourSpot struct {
	ID     int            `gorm:"primaryKey"`
	Name   string         `gorm:"not null"`
	Region string         `gorm:"not null;index"`
	Tags   pq.StringArray `gorm:"type:text[]"`
	Lat    float64
	Lon    float64

	ContentID string `gorm:"column:contentid;index"`
	ImageURL  string

	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}

func (TourSpot) TableName() string { return "tour_spots" }
