package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Title       string         `json:"title" example:"Understanding Macronutrients"`
	Category    string         `gorm:"index" json:"category" example:"basics"`
	Description string         `json:"description" example:"Learn how proteins, carbs, and fats affect your body"`
	ImageURL    string         `json:"image_url"`
	ReadTime    string         `json:"read_time" example:"5 min read"`
}

type Tip struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Text string `json:"text" example:"Aim for at least 5 servings of fruits and vegetables daily"`
}
