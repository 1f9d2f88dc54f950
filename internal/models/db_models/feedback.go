package db_models

// Feedback is one +1/-1 signal from a user on a job or tour card.
// ContentType is "job" or "tour"; ContentID points into the matching table.
type Feedback struct {
	ID          int    `gorm:"primaryKey"`
	UserID      int    `gorm:"not null;index"`
	ContentID   int    `gorm:"not null"`
	ContentType string `gorm:"not null"`
	Score       float64
}

func (Feedback) TableName() string { return "feedbacks" }
