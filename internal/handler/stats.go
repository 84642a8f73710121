package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/store"
)

type StatsHandler struct {
	lib *store.Library
}

func NewStatsHandler(lib *store.Library) *StatsHandler {
	return &StatsHandler{lib: lib}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Stats)
}

type StatsResponse struct {
	Data store.Stats `json:"data"`
}

// Stats godoc
// @Summary      Reading statistics
// @Description  Aggregates behind the dashboard and statistics charts
// @Tags         stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{Data: h.lib.Stats()})
}
