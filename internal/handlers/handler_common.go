package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hlmsouza/home_ledger_app/internal/apperrors"
	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resolveOwner maps the authenticated token subject to the person record that
// owns all ledger data. Aborts the request when the identity is missing or
// unknown.
func resolveOwner(c *gin.Context, personUsers portssvc.PersonUserSvcFacade) (*domain.PersonUser, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Auth user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	person, err := personUsers.GetPersonUserByAuthUserID(c.Request.Context(), authUserID)
	if err != nil {
		logger.Error("Failed to resolve person user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
		return nil, false
	}
	if person == nil {
		logger.Warn("No person registered for auth user", slog.String("auth_user_id", authUserID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not registered"})
		return nil, false
	}
	return person, true
}

// respondServiceError translates the well-known error values into HTTP
// statuses; everything else collapses to a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMissingIdentity):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Status != 0 {
			c.JSON(appErr.Status, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
