package handler

import (
	"errors"
	"net/http"
	"strings"

	"ai-tools-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeValidationError turns a gin binding failure into the 400 body with
// field-level messages. Non-validator errors (bad JSON) get a single generic
// entry for the body.
func writeValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, httpdto.ValidationErrorResponse{
			Errors: []httpdto.FieldError{{Field: "body", Message: "Invalid request body"}},
		})
		return
	}

	fieldErrors := make([]httpdto.FieldError, len(verrs))
	for i, fe := range verrs {
		field := strings.ToLower(fe.Field())
		fieldErrors[i] = httpdto.FieldError{
			Field:   field,
			Message: validationMessage(field, fe.Tag(), fe.Param()),
		}
	}

	c.JSON(http.StatusBadRequest, httpdto.ValidationErrorResponse{Errors: fieldErrors})
}

func validationMessage(field, tag, param string) string {
	switch {
	case field == "email":
		return "Please provide a valid email"
	case field == "name" && tag == "min":
		return "Name must be at least " + param + " characters"
	case field == "password" && tag == "min":
		return "Password must be at least " + param + " characters"
	case field == "password":
		return "Password is required"
	default:
		return "Invalid value for " + field
	}
}
