package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mealmentor/internal/models"
)

type UserProfileRepository interface {
	Save(profile *models.UserProfile) error
	FindBySessionID(sessionID string) (*models.UserProfile, error)
	DeleteBySessionID(sessionID string) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

// Save inserts the profile, replacing an earlier one from the same session.
func (r *userProfileRepository) Save(profile *models.UserProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"updated_at", "age", "gender", "height_cm", "weight_kg", "bmi",
			"activity_level", "health_conditions", "allergies",
			"dietary_preference", "weight_goal",
		}),
	}).Create(profile).Error
}

func (r *userProfileRepository) FindBySessionID(sessionID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("session_id = ?", sessionID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) DeleteBySessionID(sessionID string) error {
	return r.db.Unscoped().Where("session_id = ?", sessionID).Delete(&models.UserProfile{}).Error
}
