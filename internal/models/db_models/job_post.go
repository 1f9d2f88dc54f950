package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// JobPost is a paid short-term farm work listing.
type JobPost struct {
	ID     int            `gorm:"primaryKey"`
	Title  string         `gorm:"not null"`
	Region string         `gorm:"not null;index"`
	Tags   pq.StringArray `gorm:"type:text[]"`
	Lat    float64
	Lon    float64
	Wage   *int

	// text-embedding-3-small content vector
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}

func (JobPost) TableName() string { return "jobs" }
