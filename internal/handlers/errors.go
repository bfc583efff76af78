package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service and parse errors to HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrInput),
		errors.Is(err, apperrors.ErrFormat),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnknownCurrency),
		errors.Is(err, apperrors.ErrMinorUnitMismatch),
		errors.Is(err, apperrors.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &appErr):
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a JSON error body. Server errors are logged
// and replaced by fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}

	body := gin.H{"error": err.Error()}
	var overflow *apperrors.OverflowError
	if errors.As(err, &overflow) {
		body["value"] = overflow.Value.String()
	}
	logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, body)
}
