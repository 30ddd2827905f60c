package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// personUserHandler handles the person identity endpoints.
type personUserHandler struct {
	personUsers portssvc.PersonUserSvcFacade
}

func newPersonUserHandler(ps portssvc.PersonUserSvcFacade) *personUserHandler {
	return &personUserHandler{personUsers: ps}
}

// registerPersonUserRoutes registers the person identity routes.
func registerPersonUserRoutes(rg *gin.RouterGroup, ps portssvc.PersonUserSvcFacade) {
	h := newPersonUserHandler(ps)

	users := rg.Group("/users")
	{
		users.POST("", h.registerPersonUser)
		users.GET("/me", h.getCurrentPersonUser)
		users.PUT("/me", h.updateCurrentPersonUser)
	}
}

// registerPersonUser links the authenticated auth subject to a person record.
func (h *personUserHandler) registerPersonUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePersonUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterPersonUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	// The token subject always wins over whatever the body claims.
	req.AuthUserID = authUserID

	existing, err := h.personUsers.GetPersonUserByAuthUserID(c.Request.Context(), authUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already registered"})
		return
	}

	created, err := h.personUsers.CreatePersonUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPersonUserResponse(created))
}

func (h *personUserHandler) getCurrentPersonUser(c *gin.Context) {
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonUserResponse(owner))
}

func (h *personUserHandler) updateCurrentPersonUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.UpdatePersonUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePersonUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.personUsers.UpdatePersonUser(c.Request.Context(), owner.PersonUserID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonUserResponse(updated))
}
