package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WellnessService owns the goal lifecycle: materializing a day's goal set,
// accumulating progress, and the weekly rollup.
type WellnessService struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewWellnessService(db *gorm.DB, log *slog.Logger) *WellnessService {
	return &WellnessService{db: db, log: log}
}

// EnsureDay returns the goal set for (user, date), creating it first if the
// day is empty. Recurring goals from earlier days are carried forward one
// per type; a user with no recurring history gets the catalog defaults.
// Safe to call concurrently for the same user and day: creation uses
// create-if-absent against the (user_id, goal_type, date) unique index, so
// racing callers converge on the same records.
func (s *WellnessService) EnsureDay(userID uuid.UUID, date string) ([]models.WellnessGoal, error) {
	if !validDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	goals, err := s.goalsForDay(userID, date)
	if err != nil {
		return nil, err
	}
	if len(goals) > 0 {
		return goals, nil
	}

	// Carry forward the most recent recurring goal of each type.
	var recurring []models.WellnessGoal
	err = s.db.Where("user_id = ? AND is_recurring = ? AND date <> ?", userID, true, date).
		Order("date DESC").
		Find(&recurring).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, prev := range recurring {
		if seen[prev.GoalType] {
			continue
		}
		seen[prev.GoalType] = true

		goal := models.WellnessGoal{
			UserID:      userID,
			GoalType:    prev.GoalType,
			Title:       prev.Title,
			TargetValue: prev.TargetValue,
			Unit:        prev.Unit,
			Date:        date,
			IsRecurring: true,
		}
		if err := s.createIfAbsent(&goal); err != nil {
			return nil, err
		}
	}

	goals, err = s.goalsForDay(userID, date)
	if err != nil {
		return nil, err
	}
	if len(goals) > 0 {
		s.log.Debug("carried forward recurring goals", "user", userID, "date", date, "count", len(goals))
		return goals, nil
	}

	// No recurring history at all: fall back to the catalog defaults.
	for _, goalType := range defaultGoalTypes {
		entry, ok := CatalogDefault(goalType)
		if !ok {
			continue
		}
		goal := models.WellnessGoal{
			UserID:      userID,
			GoalType:    goalType,
			Title:       entry.Title,
			TargetValue: entry.TargetValue,
			Unit:        entry.Unit,
			Date:        date,
			IsRecurring: true,
		}
		if err := s.createIfAbsent(&goal); err != nil {
			return nil, err
		}
	}
	s.log.Debug("materialized catalog defaults", "user", userID, "date", date)

	return s.goalsForDay(userID, date)
}

// createIfAbsent inserts the goal unless a row already exists for its
// (user, goal type, date) key. Losing a concurrent race is not an error;
// the winner's row is picked up by the re-read in EnsureDay.
func (s *WellnessService) createIfAbsent(goal *models.WellnessGoal) error {
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(goal).Error
}

func (s *WellnessService) goalsForDay(userID uuid.UUID, date string) ([]models.WellnessGoal, error) {
	var goals []models.WellnessGoal
	err := s.db.Where("user_id = ? AND date = ?", userID, date).
		Order("goal_type").
		Find(&goals).Error
	return goals, err
}

// LogProgress appends a progress entry and folds its value into the goal's
// accumulated total. The accumulation runs as a single UPDATE with column
// expressions so concurrent logs against the same goal never lose updates,
// and the completion flag is recomputed in the same statement.
func (s *WellnessService) LogProgress(userID, goalID uuid.UUID, value float64, note *string) (*models.WellnessGoal, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: progress value must be non-negative", ErrValidation)
	}

	goal, err := s.ownedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	entry := models.ProgressEntry{
		GoalID: goal.ID,
		Value:  value,
		Note:   note,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.WellnessGoal{}).
			Where("id = ?", goal.ID).
			Updates(map[string]interface{}{
				"current_value": gorm.Expr("current_value + ?", value),
				"is_completed":  gorm.Expr("target_value > 0 AND current_value + ? >= target_value", value),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetGoal(userID, goalID)
}

// UpdateGoal applies a partial edit. Changing target or current recomputes
// the completion flag against the post-edit values; the untouched column is
// referenced inside the UPDATE so a concurrent progress log cannot slip in
// between read and write.
func (s *WellnessService) UpdateGoal(userID, goalID uuid.UUID, req models.UpdateGoalRequest) (*models.WellnessGoal, error) {
	if req.TargetValue != nil && *req.TargetValue < 0 {
		return nil, fmt.Errorf("%w: target value must be non-negative", ErrValidation)
	}
	if req.CurrentValue != nil && *req.CurrentValue < 0 {
		return nil, fmt.Errorf("%w: current value must be non-negative", ErrValidation)
	}

	goal, err := s.ownedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.IsRecurring != nil {
		updates["is_recurring"] = *req.IsRecurring
	}
	if req.TargetValue != nil {
		updates["target_value"] = *req.TargetValue
	}
	if req.CurrentValue != nil {
		updates["current_value"] = *req.CurrentValue
	}

	switch {
	case req.TargetValue != nil && req.CurrentValue != nil:
		updates["is_completed"] = *req.TargetValue > 0 && *req.CurrentValue >= *req.TargetValue
	case req.TargetValue != nil:
		updates["is_completed"] = gorm.Expr("? > 0 AND current_value >= ?", *req.TargetValue, *req.TargetValue)
	case req.CurrentValue != nil:
		updates["is_completed"] = gorm.Expr("target_value > 0 AND ? >= target_value", *req.CurrentValue)
	}

	if len(updates) == 0 {
		return goal, nil
	}

	err = s.db.Model(&models.WellnessGoal{}).
		Where("id = ?", goal.ID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return s.GetGoal(userID, goalID)
}

// CreateGoal registers an explicit goal. A duplicate (user, goal type, date)
// key is surfaced as ErrGoalExists rather than silently reusing the row.
func (s *WellnessService) CreateGoal(userID uuid.UUID, req models.CreateGoalRequest) (*models.WellnessGoal, error) {
	if !models.ValidGoalType(req.GoalType) {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrValidation, req.GoalType)
	}
	if !validDate(req.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	title := req.Title
	target := 0.0
	unit := req.Unit
	if entry, ok := CatalogDefault(req.GoalType); ok {
		if title == "" {
			title = entry.Title
		}
		if unit == "" {
			unit = entry.Unit
		}
		target = entry.TargetValue
	}
	if req.TargetValue != nil {
		if *req.TargetValue < 0 {
			return nil, fmt.Errorf("%w: target value must be non-negative", ErrValidation)
		}
		target = *req.TargetValue
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required for custom goals", ErrValidation)
	}

	goal := models.WellnessGoal{
		UserID:      userID,
		GoalType:    req.GoalType,
		Title:       title,
		TargetValue: target,
		Unit:        unit,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
		ExtraData:   req.ExtraData,
	}

	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&goal)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGoalExists
	}
	return &goal, nil
}

// ListGoals returns the caller's goals, optionally filtered by date and type.
func (s *WellnessService) ListGoals(userID uuid.UUID, date, goalType string) ([]models.WellnessGoal, error) {
	query := s.db.Where("user_id = ?", userID)
	if date != "" {
		query = query.Where("date = ?", date)
	}
	if goalType != "" {
		query = query.Where("goal_type = ?", goalType)
	}

	var goals []models.WellnessGoal
	err := query.Order("date DESC").Order("goal_type").Find(&goals).Error
	return goals, err
}

// GetGoal returns one owned goal with its progress log, newest entry first.
func (s *WellnessService) GetGoal(userID, goalID uuid.UUID) (*models.WellnessGoal, error) {
	var goal models.WellnessGoal
	err := s.db.
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes a goal and its progress entries.
func (s *WellnessService) DeleteGoal(userID, goalID uuid.UUID) error {
	goal, err := s.ownedGoal(userID, goalID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.ProgressEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WellnessGoal{}, goal.ID).Error
	})
}

// WeeklySummary aggregates the caller's goals over [from, to] inclusive.
func (s *WellnessService) WeeklySummary(userID uuid.UUID, from, to string) (*models.WeeklySummary, error) {
	if !validDate(from) || !validDate(to) {
		return nil, fmt.Errorf("%w: from and to must be YYYY-MM-DD", ErrValidation)
	}

	var goals []models.WellnessGoal
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC").Order("goal_type").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	summary := &models.WeeklySummary{
		TotalGoals:        len(goals),
		PerTypeAggregates: make(map[string]models.GoalTypeAggregate),
		Goals:             goals,
	}

	for _, g := range goals {
		agg := summary.PerTypeAggregates[g.GoalType]
		agg.Count++
		agg.TotalCurrent += g.CurrentValue
		agg.TotalTarget += g.TargetValue
		if g.IsCompleted {
			agg.Completed++
			summary.CompletedGoals++
		}
		summary.PerTypeAggregates[g.GoalType] = agg
	}

	if summary.TotalGoals > 0 {
		rate := float64(summary.CompletedGoals) / float64(summary.TotalGoals) * 100
		summary.CompletionRatePercent = math.Round(rate*10) / 10
	}

	return summary, nil
}

func (s *WellnessService) ownedGoal(userID, goalID uuid.UUID) (*models.WellnessGoal, error) {
	var goal models.WellnessGoal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
