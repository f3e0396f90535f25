package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmentor/internal/nutrition"
	"mealmentor/internal/repository"
)

type MealPlanController struct {
	repo repository.MealPlanRepository
}

func NewMealPlanController(repo repository.MealPlanRepository) *MealPlanController {
	return &MealPlanController{repo: repo}
}

// GetMealPlan godoc
// @Summary Get the sample meal plan
// @Description Breakfast, lunch, dinner and snacks with the plan's totals
// @Tags meal-plan
// @Produce json
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meal plan"
// @Router /meal-plan [get]
func (mc *MealPlanController) GetMealPlan(c *gin.Context) {
	meals, err := mc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal plan",
			"error":   err.Error(),
		})
		return
	}

	macros := make([]nutrition.Macros, 0, len(meals))
	for _, m := range meals {
		macros = append(macros, m.Macros())
	}
	totals := nutrition.SumMacros(macros...)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan retrieved successfully",
		"data": gin.H{
			"meals":  meals,
			"totals": totals,
			"split":  nutrition.ComputeMacroSplit(totals),
		},
	})
}
