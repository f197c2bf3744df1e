package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfile struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	BloodType          *string    `json:"bloodType"` // A+, A-, B+, B-, AB+, AB-, O+, O-
	HeightCM           *float64   `json:"heightCm"`
	WeightKG           *float64   `json:"weightKg"`
	Allergies          *string    `json:"allergies"`
	CurrentMedications *string    `json:"currentMedications"`
	MedicalConditions  *string    `json:"medicalConditions"`
	AssignedProviderID *uuid.UUID `json:"assignedProviderId" gorm:"type:uuid;index"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (p *PatientProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProviderProfile struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Specialization      *string   `json:"specialization"`
	LicenseNumber       *string   `json:"licenseNumber"`
	HospitalAffiliation *string   `json:"hospitalAffiliation"`
	YearsOfExperience   int       `json:"yearsOfExperience" gorm:"default:0"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type UpdatePatientProfileRequest struct {
	BloodType          *string  `json:"bloodType"`
	HeightCM           *float64 `json:"heightCm"`
	WeightKG           *float64 `json:"weightKg"`
	Allergies          *string  `json:"allergies"`
	CurrentMedications *string  `json:"currentMedications"`
	MedicalConditions  *string  `json:"medicalConditions"`
}

type UpdateProviderProfileRequest struct {
	Specialization      *string `json:"specialization"`
	LicenseNumber       *string `json:"licenseNumber"`
	HospitalAffiliation *string `json:"hospitalAffiliation"`
	YearsOfExperience   *int    `json:"yearsOfExperience"`
}
