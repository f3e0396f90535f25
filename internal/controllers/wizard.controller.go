package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealmentor/internal/middleware"
	"mealmentor/internal/nutrition"
)

type WizardController struct{}

func NewWizardController() *WizardController {
	return &WizardController{}
}

type ProfileEditRequest struct {
	Age               *int     `json:"age" binding:"omitempty,gt=0,lte=130" example:"30"`
	Gender            *string  `json:"gender" binding:"omitempty,oneof=male female other" example:"female"`
	HeightCM          *float64 `json:"height_cm" binding:"omitempty,gt=0" example:"165"`
	WeightKG          *float64 `json:"weight_kg" binding:"omitempty,gt=0" example:"60"`
	ActivityLevel     *string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active" example:"light"`
	WeightGoal        *string  `json:"weight_goal" binding:"omitempty,oneof=lose maintain gain" example:"lose"`
	DietaryPreference *string  `json:"dietary_preference" binding:"omitempty,oneof=omnivore pescatarian vegetarian vegan keto paleo" example:"vegetarian"`
}

func (r ProfileEditRequest) toEdit() nutrition.ProfileEdit {
	edit := nutrition.ProfileEdit{
		Age:      r.Age,
		HeightCM: r.HeightCM,
		WeightKG: r.WeightKG,
	}
	if r.Gender != nil {
		g := nutrition.Gender(*r.Gender)
		edit.Gender = &g
	}
	if r.ActivityLevel != nil {
		a := nutrition.ActivityLevel(*r.ActivityLevel)
		edit.ActivityLevel = &a
	}
	if r.WeightGoal != nil {
		w := nutrition.WeightGoal(*r.WeightGoal)
		edit.WeightGoal = &w
	}
	if r.DietaryPreference != nil {
		d := nutrition.DietaryPreference(*r.DietaryPreference)
		edit.DietaryPreference = &d
	}
	return edit
}

type ToggleRequest struct {
	Field string `json:"field" binding:"required,oneof=health_conditions allergies" example:"allergies"`
	Value string `json:"value" binding:"required" example:"Peanuts"`
}

type WizardState struct {
	Step       int               `json:"step"`
	StepName   string            `json:"step_name"`
	TotalSteps int               `json:"total_steps"`
	CanGoBack  bool              `json:"can_go_back"`
	Completed  bool              `json:"completed"`
	Profile    nutrition.Profile `json:"profile"`
}

func wizardState(w *nutrition.Wizard) WizardState {
	return WizardState{
		Step:       int(w.Step()),
		StepName:   w.Step().String(),
		TotalSteps: int(nutrition.Step4),
		CanGoBack:  w.CanGoBack(),
		Completed:  w.Completed(),
		Profile:    w.Profile(),
	}
}

// GetWizard godoc
// @Summary Get wizard state
// @Description Current step and the profile entered so far
// @Tags wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Wizard retrieved successfully"
// @Router /wizard [get]
func (wc *WizardController) GetWizard(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var state WizardState
	err := sess.Do(func(w *nutrition.Wizard, _ *nutrition.Tracker) error {
		state = wizardState(w)
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wizard retrieved successfully",
		"data":    state,
	})
}

// UpdateProfile godoc
// @Summary Edit profile fields
// @Description Set fields owned by the current step. All fields are applied or none.
// @Tags wizard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param profile body ProfileEditRequest true "Fields to set"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile value"
// @Router /wizard/profile [patch]
func (wc *WizardController) UpdateProfile(c *gin.Context) {
	var req ProfileEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	var state WizardState
	err := sess.Do(func(w *nutrition.Wizard, _ *nutrition.Tracker) error {
		if err := w.Apply(req.toEdit()); err != nil {
			return err
		}
		state = wizardState(w)
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		c.JSON(domainStatus(err), gin.H{
			"status":  "error",
			"message": "Invalid profile value",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    state,
	})
}

// ToggleSelection godoc
// @Summary Toggle a health condition or allergy
// @Tags wizard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param toggle body ToggleRequest true "Field and value"
// @Success 200 {object} map[string]interface{} "Selection toggled successfully"
// @Failure 400 {object} map[string]interface{} "Invalid selection"
// @Router /wizard/toggle [post]
func (wc *WizardController) ToggleSelection(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	var (
		selected bool
		state    WizardState
	)
	err := sess.Do(func(w *nutrition.Wizard, _ *nutrition.Tracker) error {
		var err error
		selected, err = w.Toggle(nutrition.MultiSelectField(req.Field), req.Value)
		if err != nil {
			return err
		}
		state = wizardState(w)
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		c.JSON(domainStatus(err), gin.H{
			"status":  "error",
			"message": "Invalid selection",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Selection toggled successfully",
		"data": gin.H{
			"selected": selected,
			"wizard":   state,
		},
	})
}

// NextStep godoc
// @Summary Advance the wizard
// @Description Move to the next step, or complete the profile on the last step
// @Tags wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Moved to next step"
// @Failure 400 {object} map[string]interface{} "Profile is incomplete"
// @Failure 500 {object} map[string]interface{} "Failed to complete profile"
// @Router /wizard/next [post]
func (wc *WizardController) NextStep(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var (
		done  bool
		state WizardState
	)
	err := sess.Do(func(w *nutrition.Wizard, _ *nutrition.Tracker) error {
		var err error
		done, err = w.Next()
		state = wizardState(w)
		return err
	})
	if respondSessionGone(c, err) {
		return
	}
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidValue) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Profile is incomplete",
				"error":   err.Error(),
			})
			return
		}
		zap.L().Error("Wizard completion failed", zap.String("session", sess.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to complete profile",
			"error":   err.Error(),
		})
		return
	}

	message := "Moved to next step"
	if done {
		message = "Profile completed successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data": gin.H{
			"completed": done,
			"wizard":    state,
		},
	})
}

// PreviousStep godoc
// @Summary Go back one step
// @Description Does nothing on the first step
// @Tags wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Moved to previous step"
// @Router /wizard/back [post]
func (wc *WizardController) PreviousStep(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var state WizardState
	err := sess.Do(func(w *nutrition.Wizard, _ *nutrition.Tracker) error {
		w.Back()
		state = wizardState(w)
		return nil
	})
	if respondSessionGone(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Moved to previous step",
		"data":    state,
	})
}
