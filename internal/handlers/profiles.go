package handlers

import (
	"github.com/carepoint/carepoint-api/internal/database"
	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetProfile returns the user record plus the role-specific profile,
// creating an empty profile on first read.
func GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	services.Audit.Record(userID, models.AuditActionViewProfile, "User", userID.String(), c.IP(), c.Get("User-Agent"), nil)

	resp := fiber.Map{"user": user}

	switch user.Role {
	case models.RolePatient:
		profile, err := patientProfileFor(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load profile",
			})
		}
		resp["profile"] = profile
	case models.RoleProvider:
		profile, err := providerProfileFor(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load profile",
			})
		}
		resp["profile"] = profile
	}

	return c.JSON(resp)
}

type updateProfileRequest struct {
	models.UpdateUserRequest
	Patient  *models.UpdatePatientProfileRequest  `json:"patientProfile"`
	Provider *models.UpdateProviderProfileRequest `json:"providerProfile"`
}

// UpdateProfile applies partial edits to the user record and, when supplied,
// the role-matching profile.
func UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	if user.Role == models.RolePatient && req.Patient != nil {
		profile, err := patientProfileFor(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
		p := req.Patient
		if p.BloodType != nil {
			profile.BloodType = p.BloodType
		}
		if p.HeightCM != nil {
			profile.HeightCM = p.HeightCM
		}
		if p.WeightKG != nil {
			profile.WeightKG = p.WeightKG
		}
		if p.Allergies != nil {
			profile.Allergies = p.Allergies
		}
		if p.CurrentMedications != nil {
			profile.CurrentMedications = p.CurrentMedications
		}
		if p.MedicalConditions != nil {
			profile.MedicalConditions = p.MedicalConditions
		}
		if err := database.DB.Save(profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	if user.Role == models.RoleProvider && req.Provider != nil {
		profile, err := providerProfileFor(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
		p := req.Provider
		if p.Specialization != nil {
			profile.Specialization = p.Specialization
		}
		if p.LicenseNumber != nil {
			profile.LicenseNumber = p.LicenseNumber
		}
		if p.HospitalAffiliation != nil {
			profile.HospitalAffiliation = p.HospitalAffiliation
		}
		if p.YearsOfExperience != nil {
			profile.YearsOfExperience = *p.YearsOfExperience
		}
		if err := database.DB.Save(profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
	}

	services.Audit.Record(userID, models.AuditActionUpdateProfile, "User", userID.String(), c.IP(), c.Get("User-Agent"), nil)

	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}

func patientProfileFor(userID uuid.UUID) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := database.DB.Where("user_id = ?", userID).FirstOrCreate(&profile, models.PatientProfile{UserID: userID}).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func providerProfileFor(userID uuid.UUID) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := database.DB.Where("user_id = ?", userID).FirstOrCreate(&profile, models.ProviderProfile{UserID: userID}).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
