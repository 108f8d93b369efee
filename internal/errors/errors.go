// Package errors provides custom error types for the Summit API.
// All service-layer errors should use AppError so that handlers can map them
// to a status code and a machine-readable code without leaking internals.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// IsValidation reports whether err is an AppError describing bad client input.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusBadRequest
}

// IsNotFound reports whether err is an AppError for a missing resource.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Goal errors.
var (
	ErrGoalNotFound      = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
	ErrInvalidGoalType   = &AppError{Code: "INVALID_GOAL_TYPE", Message: "Goal type must be annual, monthly or weekly", StatusCode: http.StatusBadRequest}
	ErrInvalidProgress   = &AppError{Code: "INVALID_PROGRESS", Message: "Progress must be a whole number between 0 and 100", StatusCode: http.StatusBadRequest}
	ErrInvalidParentTier = &AppError{Code: "INVALID_PARENT_TIER", Message: "Parent goal is not one tier above this goal", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriod     = &AppError{Code: "INVALID_PERIOD", Message: "Period fields do not match the goal type", StatusCode: http.StatusBadRequest}
)

// Focus area errors.
var (
	ErrFocusAreaNotFound  = &AppError{Code: "FOCUS_AREA_NOT_FOUND", Message: "Focus area not found", StatusCode: http.StatusNotFound}
	ErrDuplicateFocusArea = &AppError{Code: "DUPLICATE_FOCUS_AREA", Message: "A focus area with this name already exists", StatusCode: http.StatusConflict}
)

// Habit errors.
var (
	ErrHabitNotFound = &AppError{Code: "HABIT_NOT_FOUND", Message: "Habit not found", StatusCode: http.StatusNotFound}
)

// Reflection errors.
var (
	ErrReflectionNotFound = &AppError{Code: "REFLECTION_NOT_FOUND", Message: "Reflection not found", StatusCode: http.StatusNotFound}
)

// Wisdom errors.
var (
	ErrWisdomNotFound = &AppError{Code: "WISDOM_NOT_FOUND", Message: "Wisdom entry not found", StatusCode: http.StatusNotFound}
)
