package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthArticle struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"size:300;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Category    string    `json:"category" gorm:"size:20;default:'general'"` // covid, flu, mental_health, nutrition, fitness, preventive, general
	ImageURL    *string   `json:"imageUrl"`
	IsFeatured  bool      `json:"isFeatured" gorm:"default:false"`
	IsPublished bool      `json:"isPublished" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *HealthArticle) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type PrivacyPolicy struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string    `json:"title" gorm:"size:200;not null"`
	Content       string    `json:"content" gorm:"not null"`
	Version       string    `json:"version" gorm:"size:20;not null"`
	EffectiveDate string    `json:"effectiveDate" gorm:"size:10;not null"` // YYYY-MM-DD
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *PrivacyPolicy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type FAQ struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Question  string    `json:"question" gorm:"size:500;not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	Category  string    `json:"category" gorm:"size:50;default:'general'"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
