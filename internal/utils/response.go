// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shoplabs/shop-backend/internal/dberrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

// ConstraintAwareError maps the storage error taxonomy onto HTTP codes:
// constraint breaches are the caller's fault (409/400/422), everything
// else is a 500.
func ConstraintAwareError(c *gin.Context, err error) {
	var unique *dberrors.UniqueViolationError
	var notNull *dberrors.NotNullError
	var fk *dberrors.ForeignKeyError
	var validation validator.ValidationErrors

	switch {
	case errors.As(err, &validation):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.As(err, &unique):
		ErrorResponse(c, http.StatusConflict, "UNIQUE_VIOLATION", unique.Error(), gin.H{"field": unique.Field})
	case errors.As(err, &notNull):
		ErrorResponse(c, http.StatusBadRequest, "NOT_NULL_VIOLATION", notNull.Error(), gin.H{"field": notNull.Field})
	case errors.As(err, &fk):
		ErrorResponse(c, http.StatusUnprocessableEntity, "FOREIGN_KEY_VIOLATION", fk.Error(), gin.H{"constraint": fk.Constraint})
	default:
		InternalErrorResponse(c, err.Error())
	}
}
