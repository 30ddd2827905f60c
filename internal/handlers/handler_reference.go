package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler handles the category, payment method and payment status
// lookup endpoints.
type referenceHandler struct {
	categories      portssvc.CategorySvcFacade
	paymentMethods  portssvc.PaymentMethodSvcFacade
	paymentStatuses portssvc.PaymentStatusSvcFacade
	personUsers     portssvc.PersonUserSvcFacade
}

func newReferenceHandler(cs portssvc.CategorySvcFacade, pm portssvc.PaymentMethodSvcFacade, st portssvc.PaymentStatusSvcFacade, ps portssvc.PersonUserSvcFacade) *referenceHandler {
	return &referenceHandler{
		categories:      cs,
		paymentMethods:  pm,
		paymentStatuses: st,
		personUsers:     ps,
	}
}

// registerReferenceRoutes registers the reference data routes.
func registerReferenceRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade, pm portssvc.PaymentMethodSvcFacade, st portssvc.PaymentStatusSvcFacade, ps portssvc.PersonUserSvcFacade) {
	h := newReferenceHandler(cs, pm, st, ps)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategoryByID)
		categories.PUT("/:id", h.updateCategory)
	}

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:id", h.getPaymentMethodByID)
	}

	statuses := rg.Group("/payment-statuses")
	{
		statuses.GET("", h.listPaymentStatuses)
		statuses.GET("/:id", h.getPaymentStatusByID)
	}
}

func (h *referenceHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.categories.CreateCategory(c.Request.Context(), req, owner.PersonUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(created))
}

func (h *referenceHandler) listCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

func (h *referenceHandler) getCategoryByID(c *gin.Context) {
	category, err := h.categories.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve category")
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *referenceHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("id"), req, owner.PersonUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update category")
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(updated))
}

func (h *referenceHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.paymentMethods.CreatePaymentMethod(c.Request.Context(), req, owner.PersonUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create payment method")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(created))
}

func (h *referenceHandler) listPaymentMethods(c *gin.Context) {
	methods, err := h.paymentMethods.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payment methods")
		return
	}

	out := make([]dto.PaymentMethodResponse, len(methods))
	for i := range methods {
		out[i] = dto.ToPaymentMethodResponse(&methods[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *referenceHandler) getPaymentMethodByID(c *gin.Context) {
	method, err := h.paymentMethods.GetPaymentMethodByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment method")
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

func (h *referenceHandler) listPaymentStatuses(c *gin.Context) {
	statuses, err := h.paymentStatuses.ListPaymentStatuses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payment statuses")
		return
	}

	out := make([]dto.PaymentStatusResponse, len(statuses))
	for i := range statuses {
		out[i] = dto.ToPaymentStatusResponse(&statuses[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *referenceHandler) getPaymentStatusByID(c *gin.Context) {
	status, err := h.paymentStatuses.GetPaymentStatusByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment status")
		return
	}
	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment status not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentStatusResponse(status))
}
