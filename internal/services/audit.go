package services

import (
	"encoding/json"
	"log/slog"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditService writes the access trail. Audit failures are logged and
// swallowed so a broken trail never blocks the action it describes.
type AuditService struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAuditService(db *gorm.DB, log *slog.Logger) *AuditService {
	return &AuditService{db: db, log: log}
}

func (s *AuditService) Record(userID uuid.UUID, action, resource, resourceID, ip, userAgent string, details map[string]interface{}) {
	entry := models.AuditLog{
		UserID: userID,
		Action: action,
	}
	if resource != "" {
		entry.Resource = &resource
	}
	if resourceID != "" {
		entry.ResourceID = &resourceID
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if userAgent != "" {
		entry.UserAgent = &userAgent
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			str := string(data)
			entry.Details = &str
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		s.log.Error("audit write failed", "user", userID, "action", action, "error", err)
		return
	}
	s.log.Info("audit", "user", userID, "action", action, "resource", resource, "resourceId", resourceID)
}
