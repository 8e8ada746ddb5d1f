package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/repository"
)

type StrategyHandler struct {
	Repo repository.Repository
}

func (h *StrategyHandler) Register(r *gin.Engine) {
	group := r.Group("/api/strategies")
	group.GET("", h.list)
	group.POST("", h.create)
	group.DELETE("/:id", h.remove)
}

func (h *StrategyHandler) list(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	items, err := h.Repo.ListStrategies(c.Request.Context(), owner)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

type createStrategyRequest struct {
	Name string `json:"name"`
}

func (h *StrategyHandler) create(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	var req createStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		Error(c, http.StatusBadRequest, "strategy name is required", nil)
		return
	}
	item, created, err := h.Repo.GetOrCreateStrategy(c.Request.Context(), owner, name)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if created {
		Created(c, item)
		return
	}
	Ok(c, item, nil)
}

// remove deletes the tag only. Trades keep their denormalized strategy text;
// the tag list is a suggestion index, not a foreign key.
func (h *StrategyHandler) remove(c *gin.Context) {
	owner, ok := ownerFrom(c)
	if !ok {
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	deleted, err := h.Repo.DeleteStrategy(c.Request.Context(), owner, id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !deleted {
		Error(c, http.StatusNotFound, "strategy not found", nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
