package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reaction represents a single like by a user on a project. The
// composite unique index makes the insert itself the duplicate check,
// so concurrent double-clicks cannot create two rows.
type Reaction struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_project"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_reactions_user_project"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (r *Reaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
