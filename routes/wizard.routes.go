package routes

import (
	"mealmentor/internal/controllers"
	"mealmentor/internal/middleware"
	"mealmentor/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterWizardRoutes(router *gin.Engine, store *session.Store, wizardController *controllers.WizardController) {
	wizardRoutes := router.Group("/wizard")
	wizardRoutes.Use(middleware.SessionMiddleware(store))
	{
		wizardRoutes.GET("", wizardController.GetWizard)
		wizardRoutes.PATCH("/profile", wizardController.UpdateProfile)
		wizardRoutes.POST("/toggle", wizardController.ToggleSelection)
		wizardRoutes.POST("/next", wizardController.NextStep)
		wizardRoutes.POST("/back", wizardController.PreviousStep)
	}
}
