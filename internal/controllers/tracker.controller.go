package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealmentor/internal/middleware"
	"mealmentor/internal/nutrition"
)

type TrackerController struct {
	targets nutrition.Macros
}

func NewTrackerController(targets nutrition.Macros) *TrackerController {
	return &TrackerController{targets: targets}
}

type SelectFoodRequest struct {
	FoodID uint `json:"food_id" binding:"required,gt=0" example:"2"`
}

type LogFoodRequest struct {
	MealType string `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack" example:"lunch"`
}

// SearchFoods godoc
// @Summary Search the food catalog
// @Description Case-insensitive substring match on food names. A blank query returns no foods.
// @Tags tracker
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param q query string false "Search term"
// @Success 200 {object} map[string]interface{} "Foods retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to search foods"
// @Router /tracker/foods [get]
func (tc *TrackerController) SearchFoods(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var foods []nutrition.Food
	err := sess.Do(func(_ *nutrition.Wizard, t *nutrition.Tracker) error {
		var err error
		foods, err = t.Search(c.Query("q"))
		return err
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search foods",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Foods retrieved successfully",
		"data":    foods,
	})
}

// SelectFood godoc
// @Summary Select a food to log
// @Description Sets the pending selection and clears the search results
// @Tags tracker
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param selection body SelectFoodRequest true "Food to select"
// @Success 200 {object} map[string]interface{} "Food selected successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /tracker/select [post]
func (tc *TrackerController) SelectFood(c *gin.Context) {
	var req SelectFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	var food nutrition.Food
	err := sess.Do(func(_ *nutrition.Wizard, t *nutrition.Tracker) error {
		var err error
		food, err = t.SelectByID(req.FoodID)
		return err
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		status := domainStatus(err)
		message := "Failed to select food"
		if status == http.StatusNotFound {
			message = "Food not found"
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food selected successfully",
		"data":    food,
	})
}

// LogFood godoc
// @Summary Log the selected food
// @Description Appends the pending selection to the day's log. Without a selection nothing is logged.
// @Tags tracker
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param entry body LogFoodRequest false "Meal type"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Success 200 {object} map[string]interface{} "No food selected"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /tracker/log [post]
func (tc *TrackerController) LogFood(c *gin.Context) {
	var req LogFoodRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidRequest(c, err)
			return
		}
	}

	sess, _ := middleware.CurrentSession(c)
	var (
		entry *nutrition.LogEntry
		count int
	)
	err := sess.Do(func(_ *nutrition.Wizard, t *nutrition.Tracker) error {
		var err error
		entry, err = t.Log(nutrition.MealType(req.MealType))
		count = len(t.Entries())
		return err
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		c.JSON(domainStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to log food",
			"error":   err.Error(),
		})
		return
	}

	if entry == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "No food selected",
			"data": gin.H{
				"logged":  false,
				"entries": count,
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data": gin.H{
			"logged":  true,
			"entry":   entry,
			"entries": count,
		},
	})
}

// GetLog godoc
// @Summary Get the day's log
// @Description Entries in order, grouped by meal, plus the pending selection
// @Tags tracker
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Log retrieved successfully"
// @Router /tracker/log [get]
func (tc *TrackerController) GetLog(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var data gin.H
	err := sess.Do(func(_ *nutrition.Wizard, t *nutrition.Tracker) error {
		data = gin.H{
			"entries":   t.Entries(),
			"by_meal":   t.ByMeal(),
			"pending":   t.Pending(),
			"meal_type": t.MealType(),
		}
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Log retrieved successfully",
		"data":    data,
	})
}

// GetSummary godoc
// @Summary Get the daily summary
// @Description Totals, fixed targets, progress percentages and macro split
// @Tags tracker
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Router /tracker/summary [get]
func (tc *TrackerController) GetSummary(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var summary nutrition.Summary
	err := sess.Do(func(_ *nutrition.Wizard, t *nutrition.Tracker) error {
		summary = t.Summary(tc.targets)
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}
