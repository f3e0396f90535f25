package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealmentor/internal/models"
)

func MigrateDatabase(db *gorm.DB) error {
	zap.L().Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Food{},
		&models.Article{},
		&models.Tip{},
		&models.PlannedMeal{},
		&models.ProgressPoint{},
		&models.UserProfile{},
	)
	if err != nil {
		zap.L().Error("Error during migration", zap.Error(err))
		return err
	}

	zap.L().Info("Database migrations completed successfully")
	return nil
}
