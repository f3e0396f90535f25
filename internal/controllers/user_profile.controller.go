package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealmentor/internal/fixtures"
	"mealmentor/internal/middleware"
	"mealmentor/internal/nutrition"
	"mealmentor/internal/repository"
)

type UserProfileController struct {
	repo     repository.UserProfileRepository
	progress repository.ProgressRepository
	demo     fixtures.DemoUser
}

func NewUserProfileController(repo repository.UserProfileRepository, progress repository.ProgressRepository, demo fixtures.DemoUser) *UserProfileController {
	return &UserProfileController{repo: repo, progress: progress, demo: demo}
}

// GetUserProfile godoc
// @Summary Get the dashboard profile
// @Description The profile completed in this session, or the demo user when none was completed
// @Tags profile
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve profile"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	profile, err := pc.repo.FindBySessionID(sess.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		demo := pc.demo.Profile.ToDomain()
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "User profile retrieved successfully",
			"data": gin.H{
				"source":           "demo",
				"name":             pc.demo.Name,
				"target_weight_kg": pc.demo.TargetWeightKG,
				"start_date":       pc.demo.StartDate,
				"days_active":      pc.demo.DaysActive,
				"completed_meals":  pc.demo.CompletedMeals,
				"bmi":              demo.BMI(),
				"profile":          demo,
			},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data": gin.H{
			"source":  "session",
			"profile": profile,
		},
	})
}

// GetProgress godoc
// @Summary Get weight and calorie progress
// @Description The weekly series with summary numbers against the target weight
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve progress"
// @Router /profile/progress [get]
func (pc *UserProfileController) GetProgress(c *gin.Context) {
	points, err := pc.progress.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve progress",
			"error":   err.Error(),
		})
		return
	}

	days := make([]nutrition.DayProgress, 0, len(points))
	for _, p := range points {
		days = append(days, nutrition.DayProgress{WeightKG: p.WeightKG, Calories: p.Calories})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data": gin.H{
			"points": points,
			"stats":  nutrition.SummarizeProgress(days, pc.demo.TargetWeightKG),
		},
	})
}
