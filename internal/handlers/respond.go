package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/middleware"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body of confirmation-only replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps service errors onto HTTP statuses. Unknown errors are a
// 500; in release mode their message is replaced with a generic one so
// internals never leak.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("unhandled error", "error", err.Error())
		if gin.Mode() == gin.ReleaseMode {
			msg = "internal server error"
		}
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// respondBindError wraps a request-binding failure as a validation error.
func respondBindError(c *gin.Context, err error) {
	respondError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error()))
}
