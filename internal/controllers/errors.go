package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"mealmentor/internal/nutrition"
	"mealmentor/internal/session"
)

// bindingError flattens validator failures into one message per field.
func bindingError(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		} else {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s'", fe.Tag())
		}
	}
	return fields
}

func respondInvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   bindingError(err),
	})
}

// respondSessionGone answers 404 when the session was deleted while the
// request held it.
func respondSessionGone(c *gin.Context, err error) bool {
	if !errors.Is(err, session.ErrNotFound) {
		return false
	}
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "Session not found",
		"error":   err.Error(),
	})
	return true
}

// domainStatus maps nutrition errors to HTTP status codes.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, nutrition.ErrUnknownFood):
		return http.StatusNotFound
	case errors.Is(err, nutrition.ErrInvalidValue),
		errors.Is(err, nutrition.ErrFieldNotInStep),
		errors.Is(err, nutrition.ErrUnknownField),
		errors.Is(err, nutrition.ErrUnknownOption),
		errors.Is(err, nutrition.ErrInvalidMeal):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
