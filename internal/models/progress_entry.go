package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressEntry is one append-only log line against a goal. Entries are
// never edited or deleted on their own; they go away only when the owning
// goal is deleted.
type ProgressEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `json:"goalId" gorm:"type:uuid;index;not null"`
	Value     float64   `json:"value" gorm:"not null;default:0"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"loggedAt"`
}

func (e *ProgressEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
