package handlers

import (
	"time"

	"github.com/carepoint/carepoint-api/internal/database"
	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardSummary composes today's goals, the next reminders and a
// health tip into the patient dashboard view.
func GetDashboardSummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if middleware.GetUserRole(c) != models.RolePatient {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "This endpoint is only for patients",
		})
	}

	today := time.Now().Format(time.DateOnly)
	summary := services.Dashboard.Summarize(userID, today)

	var user models.User
	database.DB.Select("first_name", "last_name").First(&user, userID)

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
		"goals":     summary.Goals,
		"reminders": summary.Reminders,
		"healthTip": summary.HealthTip,
	})
}

// GetHealthTip is the public tip-of-the-day endpoint.
func GetHealthTip(c *fiber.Ctx) error {
	today := time.Now().Format(time.DateOnly)
	return c.JSON(services.Dashboard.TipOfDay(today))
}
