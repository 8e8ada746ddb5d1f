package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
	"tradejournal/internal/repository"
)

type TradeHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *TradeHandler) Register(r *gin.Engine) {
	group := r.Group("/api/trades")
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:id", h.get)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

type tradeRequest struct {
	Symbol      string          `json:"symbol"`
	Side        string          `json:"side"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Target      decimal.Decimal `json:"target"`
	Stoploss    decimal.Decimal `json:"stoploss"`
	Exit        decimal.Decimal `json:"exit"`
	Strategy    string          `json:"strategy"`
	ExitReason  string          `json:"exitReason"`
	Date        *time.Time      `json:"date"`
	Rating      *int            `json:"rating"`
}

// validate rejects malformed input before the calculator runs, so NaN-shaped
// values can never reach the store.
func (r *tradeRequest) validate() string {
	if strings.TrimSpace(r.Symbol) == "" {
		return "symbol is required"
	}
	if r.Side != models.SideBuy && r.Side != models.SideSell {
		return "side must be BUY or SELL"
	}
	if r.Quantity <= 0 {
		return "quantity must be a positive integer"
	}
	if r.Rating == nil {
		return "rating is required"
	}
	if *r.Rating < 0 || *r.Rating > 10 {
		return "rating must be between 0 and 10"
	}
	return ""
}

func (r *tradeRequest) toModel(owner string) models.Trade {
	t := models.Trade{
		Owner:       owner,
		Symbol:      strings.TrimSpace(r.Symbol),
		Side:        r.Side,
		Description: r.Description,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Target:      r.Target,
		Stoploss:    r.Stoploss,
		Exit:        r.Exit,
		Strategy:    strings.TrimSpace(r.Strategy),
		ExitReason:  r.ExitReason,
		Rating:      *r.Rating,
	}
	if r.Date != nil {
		t.Date = r.Date.UTC()
	}
	return t
}

func (h *TradeHandler) list(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	items, err := h.Repo.ListTrades(c.Request.Context(), owner, repository.ListTradesParams{Asc: false})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

func (h *TradeHandler) create(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}

	trade := metrics.Enrich(req.toModel(owner), true, time.Now().UTC())

	// Typing a new strategy name into the trade form seeds the suggestion
	// list. The tag index is a convenience; its failure does not block the
	// trade itself.
	if trade.Strategy != "" {
		if _, _, err := h.Repo.GetOrCreateStrategy(c.Request.Context(), owner, trade.Strategy); err != nil && h.Logger != nil {
			h.Logger.Warn("strategy auto-create failed", zap.String("name", trade.Strategy), zap.Error(err))
		}
	}

	if err := h.Repo.InsertTrade(c.Request.Context(), &trade); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, trade)
}

func (h *TradeHandler) get(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetTradeByID(c.Request.Context(), owner, id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, item, nil)
}

func (h *TradeHandler) update(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if msg := req.validate(); msg != "" {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}

	existing, err := h.Repo.GetTradeByID(c.Request.Context(), owner, id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}

	trade := req.toModel(owner)
	trade.ID = id
	if req.Date == nil {
		trade.Date = existing.Date
	}
	trade = metrics.Enrich(trade, false, time.Now().UTC())

	updated, err := h.Repo.UpdateTrade(c.Request.Context(), owner, &trade)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !updated {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, trade, nil)
}

func (h *TradeHandler) remove(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	deleted, err := h.Repo.DeleteTrade(c.Request.Context(), owner, id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !deleted {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
