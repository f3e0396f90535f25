package routes

import (
	"mealmentor/internal/controllers"
	"mealmentor/internal/middleware"
	"mealmentor/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterTrackerRoutes(router *gin.Engine, store *session.Store, trackerController *controllers.TrackerController) {
	trackerRoutes := router.Group("/tracker")
	trackerRoutes.Use(middleware.SessionMiddleware(store))
	{
		trackerRoutes.GET("/foods", trackerController.SearchFoods)
		trackerRoutes.POST("/select", trackerController.SelectFood)
		trackerRoutes.POST("/log", trackerController.LogFood)
		trackerRoutes.GET("/log", trackerController.GetLog)
		trackerRoutes.GET("/summary", trackerController.GetSummary)
	}
}
