package services

import (
	"sync"
	"testing"
	"time"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDayCreatesCatalogDefaults(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())
	userID := uuid.New()

	goals, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, goals, 3)

	byType := map[string]models.WellnessGoal{}
	for _, g := range goals {
		byType[g.GoalType] = g
	}

	steps, ok := byType[models.GoalTypeSteps]
	require.True(t, ok)
	assert.Equal(t, "Daily Steps", steps.Title)
	assert.Equal(t, 6000.0, steps.TargetValue)
	assert.Equal(t, "steps", steps.Unit)
	assert.Equal(t, 0.0, steps.CurrentValue)
	assert.True(t, steps.IsRecurring)
	assert.False(t, steps.IsCompleted)

	active, ok := byType[models.GoalTypeActiveTime]
	require.True(t, ok)
	assert.Equal(t, 60.0, active.TargetValue)

	sleep, ok := byType[models.GoalTypeSleep]
	require.True(t, ok)
	assert.Equal(t, 8.0, sleep.TargetValue)
	assert.Equal(t, "hours", sleep.Unit)
}

func TestEnsureDayIsIdempotent(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())
	userID := uuid.New()

	first, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)

	second, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestEnsureDayCarriesForwardRecurring(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	yesterday := models.WellnessGoal{
		UserID:       userID,
		GoalType:     models.GoalTypeWater,
		Title:        "Water Intake",
		TargetValue:  8,
		CurrentValue: 5,
		Unit:         "glasses",
		Date:         "2026-08-30",
		IsRecurring:  true,
	}
	require.NoError(t, db.Create(&yesterday).Error)

	goals, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	today := goals[0]
	assert.Equal(t, models.GoalTypeWater, today.GoalType)
	assert.Equal(t, "Water Intake", today.Title)
	assert.Equal(t, 8.0, today.TargetValue)
	assert.Equal(t, "glasses", today.Unit)
	assert.Equal(t, 0.0, today.CurrentValue)
	assert.True(t, today.IsRecurring)
	assert.NotEqual(t, yesterday.ID, today.ID)
}

func TestEnsureDayPicksMostRecentPerType(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	older := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeWater, Title: "Water Intake",
		TargetValue: 6, Unit: "glasses", Date: "2026-08-20", IsRecurring: true,
	}
	newer := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeWater, Title: "Water Intake",
		TargetValue: 10, Unit: "glasses", Date: "2026-08-29", IsRecurring: true,
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	goals, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 10.0, goals[0].TargetValue)
}

func TestEnsureDayNonRecurringGoalsDoNotCarryForward(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	oneOff := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeCalories, Title: "Calories Burned",
		TargetValue: 500, Unit: "kcal", Date: "2026-08-30", IsRecurring: false,
	}
	require.NoError(t, db.Create(&oneOff).Error)

	goals, err := svc.EnsureDay(userID, "2026-08-31")
	require.NoError(t, err)

	// No recurring history, so the catalog defaults win.
	require.Len(t, goals, 3)
	for _, g := range goals {
		assert.NotEqual(t, models.GoalTypeCalories, g.GoalType)
	}
}

func TestEnsureDayConcurrentCallsProduceNoDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.EnsureDay(userID, "2026-08-31")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.WellnessGoal{}).
		Where("user_id = ? AND date = ?", userID, "2026-08-31").
		Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestEnsureDayRejectsBadDate(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())

	_, err := svc.EnsureDay(uuid.New(), "31-08-2026")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogProgressAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeWater, Title: "Water Intake",
		TargetValue: 8, Unit: "glasses", Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	_, err := svc.LogProgress(userID, goal.ID, 2, nil)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	note := "after lunch"
	updated, err := svc.LogProgress(userID, goal.ID, 3, &note)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, updated.CurrentValue, 1e-9)
	assert.False(t, updated.IsCompleted)

	require.Len(t, updated.Logs, 2)
	// Newest entry first
	assert.InDelta(t, 3.0, updated.Logs[0].Value, 1e-9)
	require.NotNil(t, updated.Logs[0].Note)
	assert.Equal(t, "after lunch", *updated.Logs[0].Note)
	assert.InDelta(t, 2.0, updated.Logs[1].Value, 1e-9)
}

func TestLogProgressCompletesGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeSteps, Title: "Daily Steps",
		TargetValue: 6000, Unit: "steps", Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	updated, err := svc.LogProgress(userID, goal.ID, 4000, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)

	updated, err = svc.LogProgress(userID, goal.ID, 2500, nil)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.InDelta(t, 6500.0, updated.CurrentValue, 1e-9)
}

func TestLogProgressZeroTargetNeverCompletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeCustom, Title: "Meditation",
		TargetValue: 0, Unit: "mins", Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	updated, err := svc.LogProgress(userID, goal.ID, 30, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)
}

func TestLogProgressConcurrentLogsLoseNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeSteps, Title: "Daily Steps",
		TargetValue: 6000, Unit: "steps", Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.LogProgress(userID, goal.ID, 100, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := svc.GetGoal(userID, goal.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, final.CurrentValue, 1e-9)
	assert.Len(t, final.Logs, 10)
}

func TestLogProgressRejectsNegativeValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeSteps, Title: "Daily Steps",
		TargetValue: 6000, Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	_, err := svc.LogProgress(userID, goal.ID, -5, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogProgressForeignGoalIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	owner := uuid.New()
	other := uuid.New()

	goal := models.WellnessGoal{
		UserID: owner, GoalType: models.GoalTypeSteps, Title: "Daily Steps",
		TargetValue: 6000, Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	_, err := svc.LogProgress(other, goal.ID, 100, nil)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = svc.UpdateGoal(other, goal.ID, models.UpdateGoalRequest{})
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestUpdateGoalRecomputesCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeWater, Title: "Water Intake",
		TargetValue: 8, CurrentValue: 6, Unit: "glasses", Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	// Lowering the target below the current value completes the goal.
	target := 5.0
	updated, err := svc.UpdateGoal(userID, goal.ID, models.UpdateGoalRequest{TargetValue: &target})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)

	// Raising it back demotes the explicitly edited goal.
	target = 10.0
	updated, err = svc.UpdateGoal(userID, goal.ID, models.UpdateGoalRequest{TargetValue: &target})
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)

	// Editing current above target completes again.
	current := 12.0
	updated, err = svc.UpdateGoal(userID, goal.ID, models.UpdateGoalRequest{CurrentValue: &current})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.InDelta(t, 12.0, updated.CurrentValue, 1e-9)
}

func TestUpdateGoalRejectsNegativeValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeWater, Title: "Water Intake",
		TargetValue: 8, Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	bad := -1.0
	_, err := svc.UpdateGoal(userID, goal.ID, models.UpdateGoalRequest{TargetValue: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateGoal(userID, goal.ID, models.UpdateGoalRequest{CurrentValue: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGoalDuplicateKeyConflicts(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())
	userID := uuid.New()

	req := models.CreateGoalRequest{
		GoalType: models.GoalTypeWater,
		Date:     "2026-08-31",
	}

	first, err := svc.CreateGoal(userID, req)
	require.NoError(t, err)
	// Catalog fills in the template for known types.
	assert.Equal(t, "Water Intake", first.Title)
	assert.Equal(t, 8.0, first.TargetValue)
	assert.Equal(t, "glasses", first.Unit)

	_, err = svc.CreateGoal(userID, req)
	assert.ErrorIs(t, err, ErrGoalExists)
}

func TestCreateGoalValidation(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())
	userID := uuid.New()

	tests := []struct {
		name string
		req  models.CreateGoalRequest
	}{
		{"unknown type", models.CreateGoalRequest{GoalType: "jumping", Date: "2026-08-31"}},
		{"bad date", models.CreateGoalRequest{GoalType: models.GoalTypeSteps, Date: "today"}},
		{"custom without title", models.CreateGoalRequest{GoalType: models.GoalTypeCustom, Date: "2026-08-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGoal(userID, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDeleteGoalRemovesProgressEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	goal := models.WellnessGoal{
		UserID: userID, GoalType: models.GoalTypeSteps, Title: "Daily Steps",
		TargetValue: 6000, Date: "2026-08-31",
	}
	require.NoError(t, db.Create(&goal).Error)

	_, err := svc.LogProgress(userID, goal.ID, 100, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGoal(userID, goal.ID))

	var entries int64
	require.NoError(t, db.Model(&models.ProgressEntry{}).Where("goal_id = ?", goal.ID).Count(&entries).Error)
	assert.EqualValues(t, 0, entries)

	err = svc.DeleteGoal(userID, goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestWeeklySummaryRates(t *testing.T) {
	db := newTestDB(t)
	svc := NewWellnessService(db, testLogger())
	userID := uuid.New()

	dates := []string{"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31"}
	for i, date := range dates {
		goal := models.WellnessGoal{
			UserID:      userID,
			GoalType:    models.GoalTypeSteps,
			Title:       "Daily Steps",
			TargetValue: 6000,
			Unit:        "steps",
			Date:        date,
		}
		if i < 3 {
			goal.CurrentValue = 6000
			goal.IsCompleted = true
		}
		require.NoError(t, db.Create(&goal).Error)
	}

	summary, err := svc.WeeklySummary(userID, "2026-08-25", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 7, summary.TotalGoals)
	assert.Equal(t, 3, summary.CompletedGoals)
	assert.InDelta(t, 42.9, summary.CompletionRatePercent, 1e-9)

	agg, ok := summary.PerTypeAggregates[models.GoalTypeSteps]
	require.True(t, ok)
	assert.Equal(t, 7, agg.Count)
	assert.Equal(t, 3, agg.Completed)
	assert.InDelta(t, 18000.0, agg.TotalCurrent, 1e-9)
	assert.InDelta(t, 42000.0, agg.TotalTarget, 1e-9)
}

func TestWeeklySummaryEmptyWindow(t *testing.T) {
	svc := NewWellnessService(newTestDB(t), testLogger())

	summary, err := svc.WeeklySummary(uuid.New(), "2026-08-25", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalGoals)
	assert.Equal(t, 0.0, summary.CompletionRatePercent)
}
