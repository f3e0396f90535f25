package repository

import (
	"path"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mealmentor/internal/models"
	"mealmentor/internal/nutrition"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Food{},
		&models.Article{},
		&models.Tip{},
		&models.PlannedMeal{},
		&models.UserProfile{},
		&models.ProgressPoint{},
	))
	return db
}

func seedFoods(t *testing.T, repo FoodRepository) {
	t.Helper()
	for _, f := range []models.Food{
		{ID: 1, Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
		{ID: 2, Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6},
		{ID: 3, Name: "Smoked chicken", Calories: 180, Protein: 30, Fat: 6},
		{ID: 4, Name: "100% Juice", Calories: 110, Carbs: 26},
	} {
		food := f
		require.NoError(t, repo.Create(&food))
	}
}

func TestFoodRepositorySearch(t *testing.T) {
	repo := NewFoodRepository(setupTestDB(t))
	seedFoods(t, repo)

	tests := []struct {
		name  string
		term  string
		names []string
	}{
		{name: "blank", term: "  ", names: []string{}},
		{name: "case insensitive", term: "CHICKEN", names: []string{"Chicken Breast", "Smoked chicken"}},
		{name: "surrounding spaces are kept", term: "apple ", names: []string{}},
		{name: "inner space", term: "n b", names: []string{"Chicken Breast"}},
		{name: "percent is literal", term: "%", names: []string{"100% Juice"}},
		{name: "underscore is literal", term: "_", names: []string{}},
		{name: "no match", term: "tofu", names: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods, err := repo.Search(tt.term)
			require.NoError(t, err)

			names := []string{}
			for _, f := range foods {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestFoodRepositoryFindByID(t *testing.T) {
	repo := NewFoodRepository(setupTestDB(t))
	seedFoods(t, repo)

	food, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", food.Name)
	assert.Equal(t, 31.0, food.Protein)

	_, err = repo.FindByID(99)
	assert.ErrorIs(t, err, nutrition.ErrUnknownFood)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestArticleRepositoryWithoutCache(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	for _, a := range []models.Article{
		{Title: "Understanding Macronutrients", Category: "basics"},
		{Title: "Nutrition for Diabetes Management", Category: "conditions"},
		{Title: "Building a Balanced Plate", Category: "basics"},
	} {
		article := a
		require.NoError(t, repo.Create(&article))
	}

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	basics, err := repo.FindAll("basics")
	require.NoError(t, err)
	require.Len(t, basics, 2)
	assert.Equal(t, "Building a Balanced Plate", basics[1].Title)

	article, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "conditions", article.Category)

	_, err = repo.FindByID(40)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, repo.InvalidateAllCache())
}

func TestArticleRepositoryTips(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	require.NoError(t, repo.CreateTip(&models.Tip{Text: "Drink water"}))
	require.NoError(t, repo.CreateTip(&models.Tip{Text: "Eat greens"}))

	tips, err := repo.FindAllTips()
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, "Drink water", tips[0].Text)
}

func TestMealPlanRepositoryKeepsSlotOrder(t *testing.T) {
	repo := NewMealPlanRepository(setupTestDB(t))
	require.NoError(t, repo.Create(&models.PlannedMeal{Slot: "dinner", Position: 2, Name: "Salmon", Ingredients: []string{"salmon", "lemon"}}))
	require.NoError(t, repo.Create(&models.PlannedMeal{Slot: "breakfast", Position: 0, Name: "Omelette"}))

	meals, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "breakfast", meals[0].Slot)
	assert.Equal(t, []string{"salmon", "lemon"}, []string(meals[1].Ingredients))
}

func TestProgressRepository(t *testing.T) {
	repo := NewProgressRepository(setupTestDB(t))
	require.NoError(t, repo.Create(&models.ProgressPoint{Position: 1, Day: "Tue", WeightKG: 76.5}))
	require.NoError(t, repo.Create(&models.ProgressPoint{Position: 0, Day: "Mon", WeightKG: 76.7}))

	points, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "Mon", points[0].Day)
}

func TestUserProfileRepositorySaveReplacesSessionProfile(t *testing.T) {
	repo := NewUserProfileRepository(setupTestDB(t))
	p := nutrition.DefaultProfile()
	p.HealthConditions.Add("Diabetes")

	require.NoError(t, repo.Save(models.NewUserProfile("session-1", p)))

	p.Age = 45
	require.NoError(t, repo.Save(models.NewUserProfile("session-1", p)))

	stored, err := repo.FindBySessionID("session-1")
	require.NoError(t, err)
	assert.Equal(t, 45, stored.Age)
	assert.Equal(t, 24.2, stored.BMI)
	assert.Equal(t, []string{"Diabetes"}, []string(stored.HealthConditions))

	require.NoError(t, repo.DeleteBySessionID("session-1"))
	_, err = repo.FindBySessionID("session-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCachePatternsCoverEveryKey(t *testing.T) {
	for _, key := range []string{getCacheKey(3), getListCacheKey(""), getListCacheKey("basics"), tipsCacheKey} {
		matched := false
		for _, pattern := range cachePatterns {
			if ok, _ := path.Match(pattern, key); ok {
				matched = true
			}
		}
		assert.True(t, matched, key)
	}
}
