package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mealmentor/internal/models"
	"mealmentor/internal/nutrition"
)

type FoodRepository interface {
	Create(food *models.Food) error
	Search(term string) ([]nutrition.Food, error)
	FindByID(id uint) (*nutrition.Food, error)
	Count() (int64, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *foodRepository) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

// Search matches term anywhere in the food name, ignoring case. A blank
// term matches nothing; otherwise surrounding spaces are part of the match.
func (r *foodRepository) Search(term string) ([]nutrition.Food, error) {
	if nutrition.IsBlank(term) {
		return []nutrition.Food{}, nil
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var rows []models.Food
	err := r.db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	foods := make([]nutrition.Food, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, row.ToDomain())
	}
	return foods, nil
}

func (r *foodRepository) FindByID(id uint) (*nutrition.Food, error) {
	var row models.Food
	err := r.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("food %d: %w", id, nutrition.ErrUnknownFood)
	}
	if err != nil {
		return nil, err
	}
	food := row.ToDomain()
	return &food, nil
}

func (r *foodRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Food{}).Count(&count).Error
	return count, err
}
