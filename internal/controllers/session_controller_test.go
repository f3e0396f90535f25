package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mealmentor/internal/controllers"
	"mealmentor/internal/mocks"
	"mealmentor/internal/session"
)

func setupSessionRouter(store *session.Store, profiles *mocks.MockUserProfileRepository) *gin.Engine {
	router := setupTestRouter()
	controller := controllers.NewSessionController(store, profiles)
	router.POST("/sessions", controller.CreateSession)
	router.DELETE("/sessions/:id", controller.DeleteSession)
	return router
}

func TestSessionLifecycle(t *testing.T) {
	store := newTestStore(nil)
	profiles := new(mocks.MockUserProfileRepository)
	router := setupSessionRouter(store, profiles)

	w, response := doRequest(t, router, http.MethodPost, "/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id, ok := dataMap(t, response)["session_id"].(string)
	require.True(t, ok)
	assert.Len(t, id, 36)
	assert.Equal(t, 1, store.Len())

	profiles.On("DeleteBySessionID", id).Return(nil).Once()
	w, response = doRequest(t, router, http.MethodDelete, "/sessions/"+id, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Session deleted successfully", response["message"])
	assert.Equal(t, 0, store.Len())

	w, response = doRequest(t, router, http.MethodDelete, "/sessions/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Session not found", response["message"])
	profiles.AssertExpectations(t)
}

func TestDeleteSessionProfileFailure(t *testing.T) {
	store := newTestStore(nil)
	sess := store.Create()
	profiles := new(mocks.MockUserProfileRepository)
	profiles.On("DeleteBySessionID", mock.Anything).Return(errors.New("database error"))
	router := setupSessionRouter(store, profiles)

	w, response := doRequest(t, router, http.MethodDelete, "/sessions/"+sess.ID, "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete session profile", response["message"])
	assert.Equal(t, 0, store.Len())
}
