package handlers

import (
	"log/slog"
	"time"

	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetTodayGoals returns the goal set for today, materializing it if needed.
// This is a best-effort read path: a store failure degrades to an empty
// list so the dashboard can still render.
func GetTodayGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date := c.Query("date", time.Now().Format(time.DateOnly))

	goals, err := services.Wellness.EnsureDay(userID, date)
	if err != nil {
		slog.Warn("today-goals degraded to empty set", "user", userID, "date", date, "error", err)
		return c.JSON([]models.WellnessGoal{})
	}

	return c.JSON(goals)
}

// GetGoals lists the caller's goals with optional date/type filters.
func GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	goals, err := services.Wellness.ListGoals(userID, c.Query("date"), c.Query("type"))
	if err != nil {
		slog.Warn("goal list degraded to empty set", "user", userID, "error", err)
		return c.JSON([]models.WellnessGoal{})
	}

	return c.JSON(goals)
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := services.Wellness.CreateGoal(userID, req)
	if err != nil {
		return serviceError(c, err, "Failed to create goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func GetGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal, err := services.Wellness.GetGoal(userID, goalID)
	if err != nil {
		return serviceError(c, err, "Failed to load goal")
	}

	return c.JSON(goal)
}

func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := services.Wellness.UpdateGoal(userID, goalID, req)
	if err != nil {
		return serviceError(c, err, "Failed to update goal")
	}

	return c.JSON(goal)
}

func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := services.Wellness.DeleteGoal(userID, goalID); err != nil {
		return serviceError(c, err, "Failed to delete goal")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// LogGoalProgress appends a progress entry and returns the updated goal.
func LogGoalProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.LogProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A numeric value is required",
		})
	}

	goal, err := services.Wellness.LogProgress(userID, goalID, *req.Value, req.Note)
	if err != nil {
		return serviceError(c, err, "Failed to log progress")
	}

	return c.JSON(goal)
}

// GetWeeklySummary aggregates goals over a date window, defaulting to the
// last seven days.
func GetWeeklySummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	today := time.Now()
	from := c.Query("from", today.AddDate(0, 0, -7).Format(time.DateOnly))
	to := c.Query("to", today.Format(time.DateOnly))

	summary, err := services.Wellness.WeeklySummary(userID, from, to)
	if err != nil {
		return serviceError(c, err, "Failed to build weekly summary")
	}

	return c.JSON(summary)
}
