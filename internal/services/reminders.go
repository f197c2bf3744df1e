package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderService owns the preventive-care reminder lifecycle. Reminders
// carry a status the owner manages; the only date-driven behavior is the
// read-time upcoming filter.
type ReminderService struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewReminderService(db *gorm.DB, log *slog.Logger) *ReminderService {
	return &ReminderService{db: db, log: log}
}

func (s *ReminderService) Create(userID uuid.UUID, req models.CreateReminderRequest) (*models.Reminder, error) {
	req.Normalize()

	if !models.ValidReminderType(req.ReminderType) {
		return nil, fmt.Errorf("%w: unknown reminder type %q", ErrValidation, req.ReminderType)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !validDate(req.ScheduledDate) {
		return nil, fmt.Errorf("%w: scheduled date must be YYYY-MM-DD", ErrValidation)
	}
	if req.ScheduledTime != nil && !validClockTime(*req.ScheduledTime) {
		return nil, fmt.Errorf("%w: scheduled time must be HH:MM", ErrValidation)
	}
	if req.RecurrenceInterval != nil && *req.RecurrenceInterval < 1 {
		return nil, fmt.Errorf("%w: recurrence interval must be at least 1 day", ErrValidation)
	}

	reminder := models.Reminder{
		UserID:             userID,
		ReminderType:       req.ReminderType,
		Title:              req.Title,
		Description:        req.Description,
		ScheduledDate:      req.ScheduledDate,
		ScheduledTime:      req.ScheduledTime,
		Status:             models.ReminderStatusUpcoming,
		Location:           req.Location,
		Notes:              req.Notes,
		IsRecurring:        req.IsRecurring,
		RecurrenceInterval: req.RecurrenceInterval,
	}

	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	s.log.Debug("reminder created", "user", userID, "type", reminder.ReminderType, "date", reminder.ScheduledDate)
	return &reminder, nil
}

// List returns the caller's reminders, optionally filtered by status,
// ordered by scheduled date then time.
func (s *ReminderService) List(userID uuid.UUID, status string) ([]models.Reminder, error) {
	query := s.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reminders []models.Reminder
	err := query.Order("scheduled_date").Order("scheduled_time").Find(&reminders).Error
	return reminders, err
}

func (s *ReminderService) Get(userID, reminderID uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := s.db.Where("id = ? AND user_id = ?", reminderID, userID).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *ReminderService) Update(userID, reminderID uuid.UUID, req models.UpdateReminderRequest) (*models.Reminder, error) {
	reminder, err := s.Get(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if req.ReminderType != nil {
		if !models.ValidReminderType(*req.ReminderType) {
			return nil, fmt.Errorf("%w: unknown reminder type %q", ErrValidation, *req.ReminderType)
		}
		reminder.ReminderType = *req.ReminderType
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		reminder.Title = *req.Title
	}
	if req.ScheduledDate != nil {
		if !validDate(*req.ScheduledDate) {
			return nil, fmt.Errorf("%w: scheduled date must be YYYY-MM-DD", ErrValidation)
		}
		reminder.ScheduledDate = *req.ScheduledDate
	}
	if req.ScheduledTime != nil {
		if *req.ScheduledTime == "" {
			reminder.ScheduledTime = nil
		} else {
			if !validClockTime(*req.ScheduledTime) {
				return nil, fmt.Errorf("%w: scheduled time must be HH:MM", ErrValidation)
			}
			reminder.ScheduledTime = req.ScheduledTime
		}
	}
	if req.Status != nil {
		if !models.ValidReminderStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		reminder.Status = *req.Status
	}
	if req.Description != nil {
		reminder.Description = emptyStringToNil(req.Description)
	}
	if req.Location != nil {
		reminder.Location = emptyStringToNil(req.Location)
	}
	if req.Notes != nil {
		reminder.Notes = emptyStringToNil(req.Notes)
	}
	if req.IsRecurring != nil {
		reminder.IsRecurring = *req.IsRecurring
	}
	if req.RecurrenceInterval != nil {
		if *req.RecurrenceInterval < 1 {
			reminder.RecurrenceInterval = nil
		} else {
			reminder.RecurrenceInterval = req.RecurrenceInterval
		}
	}

	if err := s.db.Save(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) Delete(userID, reminderID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", reminderID, userID).Delete(&models.Reminder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// ListUpcoming returns up to limit upcoming reminders scheduled on or after
// asOf, soonest first.
func (s *ReminderService) ListUpcoming(userID uuid.UUID, asOf string, limit int) ([]models.Reminder, error) {
	if limit < 1 {
		limit = 5
	}

	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ? AND status = ? AND scheduled_date >= ?", userID, models.ReminderStatusUpcoming, asOf).
		Order("scheduled_date").Order("scheduled_time").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}

func validClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func emptyStringToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
