package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReminderTypeBloodTest   = "blood_test"
	ReminderTypeVaccination = "vaccination"
	ReminderTypeCheckup     = "checkup"
	ReminderTypeScreening   = "screening"
	ReminderTypeDental      = "dental"
	ReminderTypeEyeExam     = "eye_exam"
	ReminderTypeCustom      = "custom"
)

const (
	ReminderStatusUpcoming    = "upcoming"
	ReminderStatusCompleted   = "completed"
	ReminderStatusMissed      = "missed"
	ReminderStatusRescheduled = "rescheduled"
)

func ValidReminderType(t string) bool {
	switch t {
	case ReminderTypeBloodTest, ReminderTypeVaccination, ReminderTypeCheckup,
		ReminderTypeScreening, ReminderTypeDental, ReminderTypeEyeExam, ReminderTypeCustom:
		return true
	}
	return false
}

func ValidReminderStatus(s string) bool {
	switch s {
	case ReminderStatusUpcoming, ReminderStatusCompleted, ReminderStatusMissed, ReminderStatusRescheduled:
		return true
	}
	return false
}

// Reminder is one scheduled preventive-care event. Status only changes when
// the owner changes it; nothing flips upcoming reminders to missed in the
// background.
type Reminder struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	ReminderType       string    `json:"reminderType" gorm:"size:20;not null"`
	Title              string    `json:"title" gorm:"size:200;not null"`
	Description        *string   `json:"description"`
	ScheduledDate      string    `json:"scheduledDate" gorm:"size:10;not null;index"` // YYYY-MM-DD
	ScheduledTime      *string   `json:"scheduledTime" gorm:"size:5"`                 // HH:MM
	Status             string    `json:"status" gorm:"size:20;not null;default:'upcoming'"`
	Location           *string   `json:"location"`
	Notes              *string   `json:"notes"`
	IsRecurring        bool      `json:"isRecurring" gorm:"default:false"`
	RecurrenceInterval *int      `json:"recurrenceInterval"` // days between occurrences
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Reminder DTOs
type CreateReminderRequest struct {
	ReminderType       string  `json:"reminderType" validate:"required"`
	Title              string  `json:"title" validate:"required"`
	Description        *string `json:"description"`
	ScheduledDate      string  `json:"scheduledDate" validate:"required"`
	ScheduledTime      *string `json:"scheduledTime"`
	Location           *string `json:"location"`
	Notes              *string `json:"notes"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurrenceInterval *int    `json:"recurrenceInterval"`
}

// Normalize collapses empty optional fields to nil so "not set" is stored
// as NULL, never as an empty string.
func (r *CreateReminderRequest) Normalize() {
	r.Description = emptyToNil(r.Description)
	r.ScheduledTime = emptyToNil(r.ScheduledTime)
	r.Location = emptyToNil(r.Location)
	r.Notes = emptyToNil(r.Notes)
	if r.RecurrenceInterval != nil && *r.RecurrenceInterval == 0 {
		r.RecurrenceInterval = nil
	}
}

type UpdateReminderRequest struct {
	ReminderType       *string `json:"reminderType"`
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	ScheduledDate      *string `json:"scheduledDate"`
	ScheduledTime      *string `json:"scheduledTime"`
	Status             *string `json:"status"`
	Location           *string `json:"location"`
	Notes              *string `json:"notes"`
	IsRecurring        *bool   `json:"isRecurring"`
	RecurrenceInterval *int    `json:"recurrenceInterval"`
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
