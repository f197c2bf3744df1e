package handlers

import (
	"github.com/carepoint/carepoint-api/internal/database"
	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetMyPatients lists the patients assigned to the calling provider.
func GetMyPatients(c *fiber.Ctx) error {
	providerID := middleware.GetUserID(c)

	var profiles []models.PatientProfile
	err := database.DB.Where("assigned_provider_id = ?", providerID).
		Preload("User").
		Find(&profiles).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load patients",
		})
	}

	services.Audit.Record(providerID, models.AuditActionViewPatient, "PatientList", "", c.IP(), c.Get("User-Agent"), nil)

	return c.JSON(profiles)
}

// GetPatientDetail is the provider's read-only projection of one assigned
// patient: profile, ten most recent goals, and all reminders. Providers
// never get write access through this path.
func GetPatientDetail(c *fiber.Ctx) error {
	providerID := middleware.GetUserID(c)
	patientProfileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid patient ID",
		})
	}

	var profile models.PatientProfile
	err = database.DB.Where("id = ? AND assigned_provider_id = ?", patientProfileID, providerID).
		Preload("User").
		First(&profile).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Patient not found or not assigned to you",
		})
	}

	var goals []models.WellnessGoal
	database.DB.Where("user_id = ?", profile.UserID).
		Order("date DESC").Order("goal_type").
		Limit(10).
		Find(&goals)

	var reminders []models.Reminder
	database.DB.Where("user_id = ?", profile.UserID).
		Order("scheduled_date").Order("scheduled_time").
		Find(&reminders)

	services.Audit.Record(providerID, models.AuditActionViewPatient, "PatientProfile", patientProfileID.String(), c.IP(), c.Get("User-Agent"), nil)

	return c.JSON(fiber.Map{
		"profile":   profile,
		"goals":     goals,
		"reminders": reminders,
	})
}
