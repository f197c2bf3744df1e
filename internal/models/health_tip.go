package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthTip struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Content     string    `json:"content" gorm:"not null"`
	Category    string    `json:"category" gorm:"size:20;default:'general'"` // nutrition, exercise, sleep, mental_health, hydration, general
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	DisplayDate *string   `json:"displayDate" gorm:"size:10"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
}

func (t *HealthTip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
