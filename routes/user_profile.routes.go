package routes

import (
	"mealmentor/internal/controllers"
	"mealmentor/internal/middleware"
	"mealmentor/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, store *session.Store, userProfileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	{
		profileRoutes.GET("", middleware.SessionMiddleware(store), userProfileController.GetUserProfile)
		profileRoutes.GET("/progress", userProfileController.GetProgress)
	}
}
