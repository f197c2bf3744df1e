package services

import (
	"log/slog"

	"gorm.io/gorm"
)

// Global service instances, wired once at startup.
var (
	Wellness  *WellnessService
	Reminders *ReminderService
	Dashboard *DashboardService
	Audit     *AuditService
)

func Init(db *gorm.DB, log *slog.Logger) {
	Wellness = NewWellnessService(db, log)
	Reminders = NewReminderService(db, log)
	Dashboard = NewDashboardService(db, Wellness, Reminders, log)
	Audit = NewAuditService(db, log)
}
