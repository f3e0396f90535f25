package routes

import (
	"mealmentor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMealPlanRoutes(router *gin.Engine, mealPlanController *controllers.MealPlanController) {
	router.GET("/meal-plan", mealPlanController.GetMealPlan)
}
