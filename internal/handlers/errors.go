package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	detailNotFound    = "Not found."
	detailServerError = "A server error occurred."
)

// respondError writes err using the status code of its kind. Validation
// errors produce a {field: [messages]} body, everything else {"detail": msg}.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationErr.Fields)
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError || errors.Is(err, apperrors.ErrIntegrity) {
			logger.Error("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		} else {
			logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		}
		c.JSON(appErr.Code, gin.H{"detail": appErr.Message})
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": detailServerError})
}
