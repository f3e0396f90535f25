package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealmentor/internal/repository"
	"mealmentor/internal/session"
)

type SessionController struct {
	store    *session.Store
	profiles repository.UserProfileRepository
}

func NewSessionController(store *session.Store, profiles repository.UserProfileRepository) *SessionController {
	return &SessionController{store: store, profiles: profiles}
}

// CreateSession godoc
// @Summary Start a session
// @Description Create a session holding a fresh profile wizard and food log
// @Tags session
// @Produce json
// @Success 201 {object} map[string]interface{} "Session created successfully"
// @Router /sessions [post]
func (sc *SessionController) CreateSession(c *gin.Context) {
	sess := sc.store.Create()
	zap.L().Info("Session created", zap.String("session", sess.ID), zap.Int("active", sc.store.Len()))

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Session created successfully",
		"data": gin.H{
			"session_id": sess.ID,
			"created_at": sess.CreatedAt,
		},
	})
}

// DeleteSession godoc
// @Summary Discard a session
// @Description Drop the session, all input entered in it and its stored profile
// @Tags session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session deleted successfully"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete session profile"
// @Router /sessions/{id} [delete]
func (sc *SessionController) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := sc.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Session not found",
			"error":   err.Error(),
		})
		return
	}

	if err := sc.profiles.DeleteBySessionID(id); err != nil {
		zap.L().Error("Failed to delete session profile", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete session profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session deleted successfully",
		"data":    nil,
	})
}
