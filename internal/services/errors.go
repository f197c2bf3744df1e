package services

import "errors"

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrGoalExists       = errors.New("a goal of this type already exists for this date")
	ErrValidation       = errors.New("validation failed")
)
