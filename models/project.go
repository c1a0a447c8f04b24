package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio entry
type Project struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description" gorm:"not null"`
	ImageURL      string    `json:"imageUrl" gorm:"not null"`
	MoreURL       *string   `json:"moreUrl" gorm:"default:null"`
	DeploymentURL *string   `json:"deploymentUrl" gorm:"default:null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	Comments  []Comment  `json:"comments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Reactions []Reaction `json:"reactions,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
