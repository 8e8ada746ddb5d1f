package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/analytics"
	"tradejournal/internal/repository"
)

type AnalyticsHandler struct {
	Repo repository.Repository
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	r.GET("/api/analytics", h.overview)
}

// @Summary Aggregate trade analytics
// @Tags analytics
// @Param range query string false "trailing days or 'all'"
// @Param from query string false "start date (inclusive)"
// @Param to query string false "end date (inclusive)"
// @Param strategy query string false "exact strategy or 'all'"
// @Param side query string false "BUY, SELL or 'all'"
// @Success 200 {object} analytics.Result
// @Router /api/analytics [get]
func (h *AnalyticsHandler) overview(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}

	filter := analytics.Filter{
		From:     timeQueryPtr(c, "from"),
		To:       timeQueryPtr(c, "to"),
		Range:    c.Query("range"),
		Strategy: c.Query("strategy"),
		Side:     c.Query("side"),
	}
	from, to := filter.Window(time.Now().UTC())

	// Ascending retrieval is load-bearing: it fixes the equity curve order.
	trades, err := h.Repo.ListTrades(c.Request.Context(), owner, repository.ListTradesParams{
		From:     from,
		To:       to,
		Strategy: filter.StrategyFilter(),
		Side:     filter.SideFilter(),
		Asc:      true,
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	Ok(c, analytics.Compute(trades), nil)
}
