package routes

import (
	"mealmentor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.Engine, sessionController *controllers.SessionController) {
	sessionRoutes := router.Group("/sessions")
	{
		sessionRoutes.POST("", sessionController.CreateSession)
		sessionRoutes.DELETE("/:id", sessionController.DeleteSession)
	}
}
