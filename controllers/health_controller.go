package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

// HealthController reports process and database liveness.
type HealthController struct {
	gw *store.Gateway
}

// NewHealthController creates a new HealthController instance.
func NewHealthController(gw *store.Gateway) *HealthController {
	return &HealthController{gw: gw}
}

// Health pings the database and reports pool statistics.
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.gw.Ping(pingCtx); err != nil {
		utils.Logger.Warn("health check failed", zap.Error(err), zap.String("request_id", utils.RequestID(ctx)))
		utils.Respond(ctx, http.StatusServiceUnavailable, 50300, "database unavailable", gin.H{"status": "unavailable"})
		return
	}

	stats := h.gw.Stats()
	utils.Success(ctx, gin.H{
		"status": "ok",
		"database": gin.H{
			"driver":           h.gw.Driver(),
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		},
	})
}

// Ping is the plain liveness probe kept for existing clients.
func (h *HealthController) Ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Server API is working")
}
