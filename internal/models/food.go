package models

import (
	"time"

	"mealmentor/internal/nutrition"
)

type Food struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"size:120;not null;index" json:"name" example:"Chicken Breast"`
	Calories    float64   `json:"calories" example:"165"`
	Protein     float64   `json:"protein" example:"31"`
	Carbs       float64   `json:"carbs" example:"0"`
	Fat         float64   `json:"fat" example:"3.6"`
	ServingSize string    `json:"serving_size" example:"100g"`
}

func (f Food) ToDomain() nutrition.Food {
	return nutrition.Food{
		ID:   f.ID,
		Name: f.Name,
		Macros: nutrition.Macros{
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
		},
		ServingSize: f.ServingSize,
	}
}
