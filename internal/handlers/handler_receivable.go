package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/hlmsouza/home_ledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// receivableHandler handles HTTP requests related to receivables.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
	personUsers       portssvc.PersonUserSvcFacade
}

func newReceivableHandler(rs portssvc.ReceivableSvcFacade, ps portssvc.PersonUserSvcFacade) *receivableHandler {
	return &receivableHandler{receivableService: rs, personUsers: ps}
}

// registerReceivableRoutes registers routes related to receivables.
func registerReceivableRoutes(rg *gin.RouterGroup, rs portssvc.ReceivableSvcFacade, ps portssvc.PersonUserSvcFacade) {
	h := newReceivableHandler(rs, ps)

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/month", h.listReceivablesByMonth)
		receivables.GET("/:id", h.getReceivableByID)
		receivables.PUT("/:id", h.updateReceivable)
		receivables.DELETE("/:id", h.deleteReceivable)
	}
}

func (h *receivableHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.receivableService.CreateReceivable(c.Request.Context(), owner.PersonUserID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create receivable")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(created, time.Now()))
}

func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListReceivables", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.receivableService.ListReceivables(c.Request.Context(), owner.PersonUserID, portsrepo.ListEntriesParams{
		Page:        pagination.ParsePage(c.Query("page")),
		Size:        pagination.ParseSize(c.Query("size")),
		OnlySettled: query.OnlySettled,
		CategoryID:  query.CategoryID,
		Ordering:    query.Ordering,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list receivables")
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedEntriesResponse(page, time.Now()))
}

func (h *receivableHandler) listReceivablesByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListReceivablesByMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.receivableService.ListReceivablesByReceivableMonth(c.Request.Context(), owner.PersonUserID,
		query.Start, query.End, pagination.ParsePage(c.Query("page")), pagination.ParseSize(c.Query("size")))
	if err != nil {
		respondServiceError(c, err, "Failed to list receivables by month")
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedEntriesResponse(page, time.Now()))
}

func (h *receivableHandler) getReceivableByID(c *gin.Context) {
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), owner.PersonUserID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve receivable")
		return
	}
	if receivable == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receivable not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(receivable, time.Now()))
}

func (h *receivableHandler) updateReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.receivableService.UpdateReceivable(c.Request.Context(), owner.PersonUserID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update receivable")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receivable not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(updated, time.Now()))
}

func (h *receivableHandler) deleteReceivable(c *gin.Context) {
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	if err := h.receivableService.DeleteReceivable(c.Request.Context(), owner.PersonUserID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete receivable")
		return
	}

	c.Status(http.StatusNoContent)
}
