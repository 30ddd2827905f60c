package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler handles the period report endpoints.
type summaryHandler struct {
	summaries   portssvc.SummarySvcFacade
	personUsers portssvc.PersonUserSvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade, ps portssvc.PersonUserSvcFacade) *summaryHandler {
	return &summaryHandler{summaries: ss, personUsers: ps}
}

// registerSummaryRoutes registers the report routes.
func registerSummaryRoutes(rg *gin.RouterGroup, ss portssvc.SummarySvcFacade, ps portssvc.PersonUserSvcFacade) {
	h := newSummaryHandler(ss, ps)

	summaries := rg.Group("/summaries")
	{
		summaries.GET("/categories", h.getCategorySummary)
		summaries.GET("/cash-flow", h.getCashFlow)
	}
}

func (h *summaryHandler) getCategorySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for CategorySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	aggregates, err := h.summaries.CategorySummary(c.Request.Context(), owner.PersonUserID, query.Start, query.End)
	if err != nil {
		respondServiceError(c, err, "Failed to build category summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategorySummaryResponse(aggregates))
}

func (h *summaryHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := resolveOwner(c, h.personUsers)
	if !ok {
		return
	}

	var query dto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for CashFlow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.summaries.CashFlow(c.Request.Context(), owner.PersonUserID, query.Start, query.End)
	if err != nil {
		respondServiceError(c, err, "Failed to build cash flow summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(summary))
}
