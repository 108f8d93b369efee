package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "summit/internal/errors"
	"summit/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"Goal not found"`
	Code  string `json:"code" example:"GOAL_NOT_FOUND"`
}

// SuccessResponse is returned by delete endpoints.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// pathID returns a non-empty path parameter.
func pathID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// queryBool parses an optional true/false query parameter.
func queryBool(c *gin.Context, name string) (*bool, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, name+" must be 'true' or 'false'")
	}
	return &b, nil
}

// bindError converts a binding failure into a validation AppError.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message, Code: appErr.Code})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.AbortWithStatusJSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: apperrors.ErrInternalServer.Message,
		Code:  apperrors.ErrInternalServer.Code,
	})
}
