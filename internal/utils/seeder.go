package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealmentor/internal/fixtures"
	"mealmentor/internal/models"
	"mealmentor/internal/repository"
)

// seededTables lists every table filled from fixtures, in delete order.
var seededTables = []struct {
	name  string
	model interface{}
}{
	{"foods", &models.Food{}},
	{"articles", &models.Article{}},
	{"tips", &models.Tip{}},
	{"planned_meals", &models.PlannedMeal{}},
	{"progress_points", &models.ProgressPoint{}},
}

// IsSeeded reports whether the food catalog has any rows.
func IsSeeded(db *gorm.DB) (bool, error) {
	count, err := repository.NewFoodRepository(db).Count()
	if err != nil {
		return false, fmt.Errorf("failed to count foods: %w", err)
	}
	return count > 0, nil
}

// SeedFixtures writes the fixture set in one transaction. Existing fixture
// rows are replaced.
func SeedFixtures(db *gorm.DB, set *fixtures.Set) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearTables(tx); err != nil {
			return err
		}

		foods := repository.NewFoodRepository(tx)
		for _, f := range set.Foods {
			if err := foods.Create(&models.Food{
				ID:          f.ID,
				Name:        f.Name,
				Calories:    f.Calories,
				Protein:     f.Protein,
				Carbs:       f.Carbs,
				Fat:         f.Fat,
				ServingSize: f.ServingSize,
			}); err != nil {
				return fmt.Errorf("failed to seed food %q: %w", f.Name, err)
			}
		}
		zap.L().Info("Seeded table", zap.String("table", "foods"), zap.Int("rows", len(set.Foods)))

		articles := repository.NewArticleRepository(tx)
		for _, a := range set.Articles {
			if err := articles.Create(&models.Article{
				ID:          a.ID,
				Title:       a.Title,
				Category:    a.Category,
				Description: a.Description,
				ImageURL:    a.ImageURL,
				ReadTime:    a.ReadTime,
			}); err != nil {
				return fmt.Errorf("failed to seed article %d: %w", a.ID, err)
			}
		}
		for _, t := range set.Tips {
			if err := articles.CreateTip(&models.Tip{ID: t.ID, Text: t.Text}); err != nil {
				return fmt.Errorf("failed to seed tip %d: %w", t.ID, err)
			}
		}
		zap.L().Info("Seeded table", zap.String("table", "articles"), zap.Int("rows", len(set.Articles)), zap.Int("tips", len(set.Tips)))

		meals := repository.NewMealPlanRepository(tx)
		for i, m := range set.MealPlan {
			if err := meals.Create(&models.PlannedMeal{
				Slot:        m.Slot,
				Position:    i,
				Name:        m.Name,
				Calories:    m.Calories,
				Protein:     m.Protein,
				Carbs:       m.Carbs,
				Fat:         m.Fat,
				Ingredients: m.Ingredients,
				ImageURL:    m.ImageURL,
			}); err != nil {
				return fmt.Errorf("failed to seed meal %q: %w", m.Slot, err)
			}
		}
		zap.L().Info("Seeded table", zap.String("table", "planned_meals"), zap.Int("rows", len(set.MealPlan)))

		progress := repository.NewProgressRepository(tx)
		for i, p := range set.Progress {
			if err := progress.Create(&models.ProgressPoint{
				Position: i,
				Day:      p.Day,
				WeightKG: p.WeightKG,
				Calories: p.Calories,
			}); err != nil {
				return fmt.Errorf("failed to seed progress %q: %w", p.Day, err)
			}
		}
		zap.L().Info("Seeded table", zap.String("table", "progress_points"), zap.Int("rows", len(set.Progress)))
		return nil
	})
}

// ClearFixtures deletes every fixture row. Stored user profiles are kept.
func ClearFixtures(db *gorm.DB) error {
	return db.Transaction(clearTables)
}

func clearTables(tx *gorm.DB) error {
	for _, t := range seededTables {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(t.model)
		if result.Error != nil {
			return fmt.Errorf("failed to clear %s: %w", t.name, result.Error)
		}
		if result.RowsAffected > 0 {
			zap.L().Info("Cleared table", zap.String("table", t.name), zap.Int64("rows", result.RowsAffected))
		}
	}
	return nil
}

// CountFixtures returns the row count of each fixture table.
func CountFixtures(db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64, len(seededTables))
	for _, t := range seededTables {
		var n int64
		if err := db.Model(t.model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.name, err)
		}
		counts[t.name] = n
	}
	return counts, nil
}
