package repository

import (
	"gorm.io/gorm"

	"mealmentor/internal/models"
)

type ProgressRepository interface {
	Create(point *models.ProgressPoint) error
	FindAll() ([]models.ProgressPoint, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db}
}

func (r *progressRepository) Create(point *models.ProgressPoint) error {
	return r.db.Create(point).Error
}

func (r *progressRepository) FindAll() ([]models.ProgressPoint, error) {
	var points []models.ProgressPoint
	err := r.db.Order("position").Find(&points).Error
	return points, err
}
