package services

import (
	"testing"

	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboard(t *testing.T) (*DashboardService, *ReminderService) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	reminders := NewReminderService(db, log)
	return NewDashboardService(db, NewWellnessService(db, log), reminders, log), reminders
}

func TestSummarizeComposesSections(t *testing.T) {
	dash, reminders := newDashboard(t)
	userID := uuid.New()

	for _, date := range []string{"2026-09-02", "2026-09-05", "2026-09-09", "2026-09-12"} {
		_, err := reminders.Create(userID, models.CreateReminderRequest{
			ReminderType:  models.ReminderTypeCheckup,
			Title:         "Checkup",
			ScheduledDate: date,
		})
		require.NoError(t, err)
	}

	summary := dash.Summarize(userID, "2026-08-31")

	// Materialized defaults for a fresh user.
	assert.Len(t, summary.Goals, 3)
	// Reminder section is capped at three.
	assert.Len(t, summary.Reminders, 3)
	assert.Equal(t, "2026-09-02", summary.Reminders[0].ScheduledDate)
	// No tips in the table yet, so the fallback is served.
	assert.Equal(t, fallbackTip.Title, summary.HealthTip.Title)
}

func TestTipOfDayPrefersPinnedDate(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	dash := NewDashboardService(db, NewWellnessService(db, log), NewReminderService(db, log), log)

	today := "2026-08-31"
	pinned := models.HealthTip{Title: "Pinned", Content: "c", Category: "general", IsActive: true, DisplayDate: &today}
	general := models.HealthTip{Title: "General", Content: "c", Category: "general", IsActive: true}
	require.NoError(t, db.Create(&pinned).Error)
	require.NoError(t, db.Create(&general).Error)

	tip := dash.TipOfDay(today)
	assert.Equal(t, "Pinned", tip.Title)

	// Without a pinned match, any active tip will do.
	tip = dash.TipOfDay("2026-09-01")
	assert.Contains(t, []string{"Pinned", "General"}, tip.Title)
}

func TestTipOfDayIgnoresInactiveTips(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	dash := NewDashboardService(db, NewWellnessService(db, log), NewReminderService(db, log), log)

	inactive := models.HealthTip{Title: "Retired", Content: "c"}
	require.NoError(t, db.Create(&inactive).Error)
	// The column defaults to true, so flip it explicitly.
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	tip := dash.TipOfDay("2026-08-31")
	assert.Equal(t, fallbackTip.Title, tip.Title)
}
