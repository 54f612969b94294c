package models

import "time"

// Flavor maps to the flavors table.
type Flavor struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	IsFavorite *bool     `gorm:"column:is_favorite" json:"is_favorite"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Flavor) TableName() string {
	return "flavors"
}
