package mocks

import (
	"github.com/stretchr/testify/mock"

	"mealmentor/internal/models"
	"mealmentor/internal/nutrition"
	"mealmentor/internal/repository"
)

var (
	_ repository.FoodRepository        = (*MockFoodRepository)(nil)
	_ repository.ArticleRepository     = (*MockArticleRepository)(nil)
	_ repository.MealPlanRepository    = (*MockMealPlanRepository)(nil)
	_ repository.ProgressRepository    = (*MockProgressRepository)(nil)
	_ repository.UserProfileRepository = (*MockUserProfileRepository)(nil)
)

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(food *models.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) Search(term string) ([]nutrition.Food, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(id uint) (*nutrition.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Food), args.Error(1)
}

func (m *MockFoodRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll(category string) ([]models.Article, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) CreateTip(tip *models.Tip) error {
	args := m.Called(tip)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAllTips() ([]models.Tip, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tip), args.Error(1)
}

func (m *MockArticleRepository) InvalidateAllCache() error {
	args := m.Called()
	return args.Error(0)
}

type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(meal *models.PlannedMeal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealPlanRepository) FindAll() ([]models.PlannedMeal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlannedMeal), args.Error(1)
}

type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Create(point *models.ProgressPoint) error {
	args := m.Called(point)
	return args.Error(0)
}

func (m *MockProgressRepository) FindAll() ([]models.ProgressPoint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgressPoint), args.Error(1)
}

type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Save(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindBySessionID(sessionID string) (*models.UserProfile, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) DeleteBySessionID(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}
