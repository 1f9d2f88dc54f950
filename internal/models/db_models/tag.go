package db_models

// Tag master table.
type Tag struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Tag) TableName() string { return "tags" }
