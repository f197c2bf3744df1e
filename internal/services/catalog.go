package services

import "github.com/carepoint/carepoint-api/internal/models"

// CatalogEntry is the template a goal type falls back to when a user has
// no history to carry forward.
type CatalogEntry struct {
	Title       string
	TargetValue float64
	Unit        string
}

var goalCatalog = map[string]CatalogEntry{
	models.GoalTypeSteps:      {Title: "Daily Steps", TargetValue: 6000, Unit: "steps"},
	models.GoalTypeActiveTime: {Title: "Active Time", TargetValue: 60, Unit: "mins"},
	models.GoalTypeSleep:      {Title: "Sleep", TargetValue: 8, Unit: "hours"},
	models.GoalTypeWater:      {Title: "Water Intake", TargetValue: 8, Unit: "glasses"},
	models.GoalTypeCalories:   {Title: "Calories Burned", TargetValue: 500, Unit: "kcal"},
}

// defaultGoalTypes is the set materialized for a user with no goal history.
var defaultGoalTypes = []string{
	models.GoalTypeSteps,
	models.GoalTypeActiveTime,
	models.GoalTypeSleep,
}

// CatalogDefault looks up the default template for a goal type.
func CatalogDefault(goalType string) (CatalogEntry, bool) {
	entry, ok := goalCatalog[goalType]
	return entry, ok
}
