package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mealmentor/internal/nutrition"
)

// UserProfile is a completed wizard profile, stored once per session.
type UserProfile struct {
	ID                uint                        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time                   `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time                   `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt              `gorm:"index" json:"-" swaggerignore:"true"`
	SessionID         string                      `gorm:"uniqueIndex;size:36" json:"session_id"`
	Age               int                         `json:"age" example:"30"`
	Gender            string                      `json:"gender" example:"male"`
	HeightCM          float64                     `json:"height_cm" example:"170"`
	WeightKG          float64                     `json:"weight_kg" example:"70"`
	BMI               float64                     `json:"bmi" example:"24.2"`
	ActivityLevel     string                      `json:"activity_level" example:"moderate"`
	HealthConditions  datatypes.JSONSlice[string] `json:"health_conditions" swaggertype:"array,string"`
	Allergies         datatypes.JSONSlice[string] `json:"allergies" swaggertype:"array,string"`
	DietaryPreference string                      `json:"dietary_preference" example:"omnivore"`
	WeightGoal        string                      `json:"weight_goal" example:"maintain"`
}

func NewUserProfile(sessionID string, p nutrition.Profile) *UserProfile {
	return &UserProfile{
		SessionID:         sessionID,
		Age:               p.Age,
		Gender:            string(p.Gender),
		HeightCM:          p.HeightCM,
		WeightKG:          p.WeightKG,
		BMI:               p.BMI(),
		ActivityLevel:     string(p.ActivityLevel),
		HealthConditions:  p.HealthConditions.Values(),
		Allergies:         p.Allergies.Values(),
		DietaryPreference: string(p.DietaryPreference),
		WeightGoal:        string(p.WeightGoal),
	}
}

type ProgressPoint struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	Position int     `json:"-"`
	Day      string  `json:"day" example:"Mon"`
	WeightKG float64 `json:"weight_kg" example:"76.7"`
	Calories float64 `json:"calories" example:"1950"`
}
