package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/storage"
)

type HealthHandler struct {
	snap      storage.Snapshot
	startTime time.Time
	version   string
}

func NewHealthHandler(snap storage.Snapshot, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		snap:      snap,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.snap.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"storage": gin.H{
				"status": "down",
				"error":  err.Error(),
			},
		})
		return
	}

	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(uptime.Seconds()),
		"storage": gin.H{
			"status": "up",
		},
	})
}
