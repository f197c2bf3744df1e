package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin         = "login"
	AuditActionLogout        = "logout"
	AuditActionViewProfile   = "view_profile"
	AuditActionUpdateProfile = "update_profile"
	AuditActionViewPatient   = "view_patient"
)

// AuditLog records who touched which record. Rows are write-only from the
// application's point of view.
type AuditLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Action     string    `json:"action" gorm:"size:50;not null"`
	Resource   *string   `json:"resource" gorm:"size:100"`
	ResourceID *string   `json:"resourceId" gorm:"size:100"`
	IPAddress  *string   `json:"ipAddress" gorm:"size:45"`
	UserAgent  *string   `json:"userAgent"`
	Details    *string   `json:"details"` // JSON string for extra context
	CreatedAt  time.Time `json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
