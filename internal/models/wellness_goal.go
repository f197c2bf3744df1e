package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalTypeSteps      = "steps"
	GoalTypeActiveTime = "active_time"
	GoalTypeSleep      = "sleep"
	GoalTypeWater      = "water"
	GoalTypeCalories   = "calories"
	GoalTypeCustom     = "custom"
)

// ValidGoalType reports whether t is one of the known goal type values.
func ValidGoalType(t string) bool {
	switch t {
	case GoalTypeSteps, GoalTypeActiveTime, GoalTypeSleep, GoalTypeWater, GoalTypeCalories, GoalTypeCustom:
		return true
	}
	return false
}

// WellnessGoal is one tracked metric for one user on one calendar day.
// At most one row may exist per (user, goal type, date).
type WellnessGoal struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_goal_user_type_date"`
	GoalType     string    `json:"goalType" gorm:"size:20;not null;uniqueIndex:idx_goal_user_type_date"`
	Title        string    `json:"title" gorm:"size:100;not null"`
	TargetValue  float64   `json:"targetValue" gorm:"not null;default:0"`
	CurrentValue float64   `json:"currentValue" gorm:"not null;default:0"`
	Unit         string    `json:"unit" gorm:"size:20;default:''"`
	Date         string    `json:"date" gorm:"size:10;not null;index;uniqueIndex:idx_goal_user_type_date"` // YYYY-MM-DD
	IsCompleted  bool      `json:"isCompleted" gorm:"default:false"`
	IsRecurring  bool      `json:"isRecurring" gorm:"default:false"`
	ExtraData    *string   `json:"extraData"` // opaque JSON string
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Logs []ProgressEntry `json:"logs,omitempty" gorm:"foreignKey:GoalID"`
}

func (g *WellnessGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// ProgressPercent returns accumulated progress as 0-100, capped at 100.
func (g *WellnessGoal) ProgressPercent() int {
	if g.TargetValue <= 0 {
		return 0
	}
	pct := int(g.CurrentValue / g.TargetValue * 100)
	if pct > 100 {
		return 100
	}
	return pct
}

// Goal DTOs
type CreateGoalRequest struct {
	GoalType    string   `json:"goalType" validate:"required"`
	Title       string   `json:"title"`
	TargetValue *float64 `json:"targetValue"`
	Unit        string   `json:"unit"`
	Date        string   `json:"date" validate:"required"`
	IsRecurring bool     `json:"isRecurring"`
	ExtraData   *string  `json:"extraData"`
}

type UpdateGoalRequest struct {
	Title        *string  `json:"title"`
	TargetValue  *float64 `json:"targetValue"`
	CurrentValue *float64 `json:"currentValue"`
	Unit         *string  `json:"unit"`
	IsRecurring  *bool    `json:"isRecurring"`
}

type LogProgressRequest struct {
	Value *float64 `json:"value" validate:"required"`
	Note  *string  `json:"note"`
}

// GoalTypeAggregate is the per-type slice of a weekly summary.
type GoalTypeAggregate struct {
	Count        int     `json:"count"`
	Completed    int     `json:"completed"`
	TotalCurrent float64 `json:"totalCurrent"`
	TotalTarget  float64 `json:"totalTarget"`
}

type WeeklySummary struct {
	TotalGoals            int                          `json:"totalGoals"`
	CompletedGoals        int                          `json:"completedGoals"`
	CompletionRatePercent float64                      `json:"completionRatePercent"`
	PerTypeAggregates     map[string]GoalTypeAggregate `json:"perTypeAggregates"`
	Goals                 []WellnessGoal               `json:"goals"`
}
