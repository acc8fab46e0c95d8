package dto

import (
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertProfileRequest is the medical profile form. Every field is optional;
// saving replaces the whole stored profile, picture included.
type UpsertProfileRequest struct {
	FullName       *string `json:"fullName"`
	Age            *int    `json:"age" binding:"omitempty,min=1,max=120"`
	MedicalHistory *string `json:"medicalHistory"`
	Allergies      *string `json:"allergies"`
	Medications    *string `json:"medications"`
	BloodType      *string `json:"bloodType"`
	Height         *int    `json:"height" binding:"omitempty,min=50,max=300"`
	Weight         *int    `json:"weight" binding:"omitempty,min=1,max=300"`
}

// ProfileResponse renders a stored profile.
type ProfileResponse struct {
	Username       string           `json:"username"`
	FullName       *string          `json:"fullName"`
	Age            *int             `json:"age"`
	MedicalHistory *string          `json:"medicalHistory"`
	Allergies      *string          `json:"allergies"`
	Medications    *string          `json:"medications"`
	BloodType      *string          `json:"bloodType"`
	Height         *int             `json:"height"`
	Weight         *int             `json:"weight"`
	BMI            *decimal.Decimal `json:"bmi"`
	HasPicture     bool             `json:"hasPicture"`
}

// ToDomainProfile maps the form onto a full profile row for username.
func (r UpsertProfileRequest) ToDomainProfile(username string) domain.Profile {
	return domain.Profile{
		Username:       username,
		FullName:       r.FullName,
		Age:            r.Age,
		MedicalHistory: r.MedicalHistory,
		Allergies:      r.Allergies,
		Medications:    r.Medications,
		BloodType:      r.BloodType,
		Height:         r.Height,
		Weight:         r.Weight,
	}
}

// ToProfileResponse converts a domain.Profile to its DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		Username:       p.Username,
		FullName:       p.FullName,
		Age:            p.Age,
		MedicalHistory: p.MedicalHistory,
		Allergies:      p.Allergies,
		Medications:    p.Medications,
		BloodType:      p.BloodType,
		Height:         p.Height,
		Weight:         p.Weight,
		BMI:            BodyMassIndex(p.Height, p.Weight),
		HasPicture:     p.HasPicture(),
	}
}

// BodyMassIndex computes kg/m² rounded to one decimal, or nil when either
// measurement is missing.
func BodyMassIndex(heightCM, weightKG *int) *decimal.Decimal {
	if heightCM == nil || weightKG == nil || *heightCM <= 0 {
		return nil
	}
	h := decimal.NewFromInt(int64(*heightCM))
	bmi := decimal.NewFromInt(int64(*weightKG) * 10000).Div(h.Mul(h)).Round(1)
	return &bmi
}
