package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mealmentor/internal/middleware"
	"mealmentor/internal/nutrition"
	"mealmentor/internal/session"
)

var testFoods = nutrition.StaticCatalog{
	{ID: 1, Name: "Apple", Macros: nutrition.Macros{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3}, ServingSize: "1 medium"},
	{ID: 2, Name: "Chicken Breast", Macros: nutrition.Macros{Calories: 165, Protein: 31, Fat: 3.6}, ServingSize: "100g"},
	{ID: 3, Name: "Brown Rice", Macros: nutrition.Macros{Calories: 215, Protein: 5, Carbs: 45, Fat: 1.8}, ServingSize: "1 cup cooked"},
}

var testInitialLog = []nutrition.LogEntry{
	{ID: 1, FoodName: "Oatmeal with Blueberries", MealType: nutrition.MealBreakfast, Macros: nutrition.Macros{Calories: 310, Protein: 12, Carbs: 54, Fat: 6}, Time: "07:30"},
	{ID: 2, FoodName: "Chicken Salad", MealType: nutrition.MealLunch, Macros: nutrition.Macros{Calories: 420, Protein: 35, Carbs: 25, Fat: 18}, Time: "12:15"},
}

var testTargets = nutrition.Macros{Calories: 2000, Protein: 150, Carbs: 225, Fat: 65}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestStore(onComplete func(string, nutrition.Profile) error) *session.Store {
	return session.NewStore(session.Options{
		Catalog:    testFoods,
		InitialLog: testInitialLog,
		OnComplete: onComplete,
	})
}

// sessionGroup returns a route group behind the session middleware.
func sessionGroup(router *gin.Engine, store *session.Store) *gin.RouterGroup {
	group := router.Group("/")
	group.Use(middleware.SessionMiddleware(store))
	return group
}

func doRequest(t *testing.T, router *gin.Engine, method, path, sessionID string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return w, response
}

func dataMap(t *testing.T, response map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "data is %T", response["data"])
	return data
}
