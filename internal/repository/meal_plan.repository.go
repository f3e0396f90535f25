package repository

import (
	"gorm.io/gorm"

	"mealmentor/internal/models"
)

type MealPlanRepository interface {
	Create(meal *models.PlannedMeal) error
	FindAll() ([]models.PlannedMeal, error)
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db}
}

func (r *mealPlanRepository) Create(meal *models.PlannedMeal) error {
	return r.db.Create(meal).Error
}

func (r *mealPlanRepository) FindAll() ([]models.PlannedMeal, error) {
	var meals []models.PlannedMeal
	err := r.db.Order("position").Find(&meals).Error
	return meals, err
}
