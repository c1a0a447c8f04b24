package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News represents a news feed entry
type News struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	MoreURL   *string   `json:"moreUrl" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
