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

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
	personUsers portssvc.PersonUserSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade, ps portssvc.PersonUserSvcFacade) *billHandler {
	return &billHandler{billService: bs, personUsers: ps}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, bs portssvc.BillSvcFacade, ps portssvc.PersonUserSvcFacade) {
	h := newBillHandler(bs, ps)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/month", h.listBillsByMonth)
		bills.GET("/:id", h.getBillByID)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", h.deleteBill)
	}
}

func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.billService.CreateBill(c.Request.Context(), owner.PersonUserID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(created, time.Now()))
}

func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListBills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.billService.ListBills(c.Request.Context(), owner.PersonUserID, portsrepo.ListEntriesParams{
		Page:        pagination.ParsePage(c.Query("page")),
		Size:        pagination.ParseSize(c.Query("size")),
		OnlySettled: query.OnlySettled,
		CategoryID:  query.CategoryID,
		Ordering:    query.Ordering,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list bills")
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedEntriesResponse(page, time.Now()))
}

func (h *billHandler) listBillsByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListBillsByMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.billService.ListBillsByPayableMonth(c.Request.Context(), owner.PersonUserID,
		query.Start, query.End, pagination.ParsePage(c.Query("page")), pagination.ParseSize(c.Query("size")))
	if err != nil {
		respondServiceError(c, err, "Failed to list bills by month")
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedEntriesResponse(page, time.Now()))
}

func (h *billHandler) getBillByID(c *gin.Context) {
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), owner.PersonUserID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve bill")
		return
	}
	if bill == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(bill, time.Now()))
}

func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.billService.UpdateBill(c.Request.Context(), owner.PersonUserID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update bill")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(updated, time.Now()))
}

func (h *billHandler) deleteBill(c *gin.Context) {
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), owner.PersonUserID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete bill")
		return
	}

	c.Status(http.StatusNoContent)
}
