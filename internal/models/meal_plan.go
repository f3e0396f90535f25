package models

import (
	"gorm.io/datatypes"

	"mealmentor/internal/nutrition"
)

type PlannedMeal struct {
	ID          uint                        `gorm:"primaryKey" json:"-"`
	Slot        string                      `gorm:"uniqueIndex;size:20" json:"slot" example:"breakfast"`
	Position    int                         `json:"-"`
	Name        string                      `json:"name" example:"Vegetable Omelette with Whole Grain Toast"`
	Calories    float64                     `json:"calories" example:"420"`
	Protein     float64                     `json:"protein" example:"24"`
	Carbs       float64                     `json:"carbs" example:"35"`
	Fat         float64                     `json:"fat" example:"22"`
	Ingredients datatypes.JSONSlice[string] `json:"ingredients" swaggertype:"array,string"`
	ImageURL    string                      `json:"image_url"`
}

func (m PlannedMeal) Macros() nutrition.Macros {
	return nutrition.Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}
