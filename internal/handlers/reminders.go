package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetReminders(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	reminders, err := services.Reminders.List(userID, c.Query("status"))
	if err != nil {
		slog.Warn("reminder list degraded to empty set", "user", userID, "error", err)
		return c.JSON([]models.Reminder{})
	}

	return c.JSON(reminders)
}

func CreateReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reminder, err := services.Reminders.Create(userID, req)
	if err != nil {
		return serviceError(c, err, "Failed to create reminder")
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func GetReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reminder ID",
		})
	}

	reminder, err := services.Reminders.Get(userID, reminderID)
	if err != nil {
		return serviceError(c, err, "Failed to load reminder")
	}

	return c.JSON(reminder)
}

func UpdateReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reminder ID",
		})
	}

	var req models.UpdateReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reminder, err := services.Reminders.Update(userID, reminderID, req)
	if err != nil {
		return serviceError(c, err, "Failed to update reminder")
	}

	return c.JSON(reminder)
}

func DeleteReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	reminderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reminder ID",
		})
	}

	if err := services.Reminders.Delete(userID, reminderID); err != nil {
		return serviceError(c, err, "Failed to delete reminder")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// GetUpcomingReminders returns at most five upcoming reminders from today on.
func GetUpcomingReminders(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	if limit < 1 || limit > 5 {
		limit = 5
	}

	reminders, err := services.Reminders.ListUpcoming(userID, time.Now().Format(time.DateOnly), limit)
	if err != nil {
		slog.Warn("upcoming reminders degraded to empty set", "user", userID, "error", err)
		return c.JSON([]models.Reminder{})
	}

	return c.JSON(reminders)
}
