package services

import (
	"errors"
	"log/slog"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fallbackTip is served when the tip table is empty or unreadable.
var fallbackTip = models.HealthTip{
	Title:    "Stay Hydrated",
	Content:  "Aim to drink at least 8 glasses of water per day to keep your body hydrated and functioning optimally.",
	Category: "hydration",
	IsActive: true,
}

type DashboardSummary struct {
	Goals     []models.WellnessGoal `json:"goals"`
	Reminders []models.Reminder     `json:"reminders"`
	HealthTip models.HealthTip      `json:"healthTip"`
}

// DashboardService composes the patient dashboard from the wellness and
// reminder read paths. It adds no logic of its own beyond the partial
// failure policy: a failing section degrades to its empty/default value
// instead of failing the whole summary.
type DashboardService struct {
	db        *gorm.DB
	wellness  *WellnessService
	reminders *ReminderService
	log       *slog.Logger
}

func NewDashboardService(db *gorm.DB, wellness *WellnessService, reminders *ReminderService, log *slog.Logger) *DashboardService {
	return &DashboardService{db: db, wellness: wellness, reminders: reminders, log: log}
}

func (s *DashboardService) Summarize(userID uuid.UUID, today string) DashboardSummary {
	summary := DashboardSummary{
		Goals:     []models.WellnessGoal{},
		Reminders: []models.Reminder{},
	}

	goals, err := s.wellness.EnsureDay(userID, today)
	if err != nil {
		s.log.Warn("dashboard: goals section degraded", "user", userID, "error", err)
	} else {
		summary.Goals = goals
	}

	reminders, err := s.reminders.ListUpcoming(userID, today, 3)
	if err != nil {
		s.log.Warn("dashboard: reminders section degraded", "user", userID, "error", err)
	} else {
		summary.Reminders = reminders
	}

	summary.HealthTip = s.TipOfDay(today)

	return summary
}

// TipOfDay picks the tip pinned to today's date, else a random active tip,
// else the hardcoded fallback.
func (s *DashboardService) TipOfDay(today string) models.HealthTip {
	var tip models.HealthTip
	err := s.db.Where("is_active = ? AND display_date = ?", true, today).First(&tip).Error
	if err == nil {
		return tip
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Warn("dashboard: tip lookup degraded", "error", err)
		return fallbackTip
	}

	err = s.db.Where("is_active = ?", true).Order("random()").First(&tip).Error
	if err == nil {
		return tip
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Warn("dashboard: tip lookup degraded", "error", err)
	}
	return fallbackTip
}
