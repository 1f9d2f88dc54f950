package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// User holds an account keyed by email plus the preference vector that
// feedback keeps folding new content embeddings into.
type User struct {
	ID    int    `gorm:"primaryKey"`
	Email string `gorm:"uniqueIndex;not null"`

	PrefVector        pgvector.Vector `gorm:"type:vector(1536)"`
	TerrainTags       pq.StringArray  `gorm:"type:text[]"`
	ActivityStyleTags pq.StringArray  `gorm:"type:text[]"`

	Feedbacks []Feedback `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }
