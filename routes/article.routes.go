package routes

import (
	"mealmentor/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/articles")
	{
		articleRoutes.GET("", articleController.GetAllArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
	}
	router.GET("/tips", articleController.GetTips)
}
