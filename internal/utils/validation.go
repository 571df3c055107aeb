package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationDetails maps failed fields to human-readable messages.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, e := range verrs {
		if e.Tag() == "required" {
			details[e.Field()] = "this field is required"
		} else {
			details[e.Field()] = fmt.Sprintf("failed validation on '%s'", e.Tag())
		}
	}
	return details
}

// BindAndValidate binds the JSON request body to a struct and validates
// its binding tags. On failure it sends a 400 with field-level details
// and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if details := ValidationDetails(err); details != nil {
			ValidationFailed(c, "Validation failed", details)
		} else {
			BadRequest(c, "Invalid request payload")
		}
		return false
	}
	return true
}
