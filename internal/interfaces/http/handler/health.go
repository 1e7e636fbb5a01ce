package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks a dependency
type Pinger interface {
	Ping() error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a HealthHandler checking db on readiness
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes registers /health and /ready on rg
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Live)
	rg.GET("/ready", h.Ready)
}

// Live reports that the process is serving requests
func (h *HealthHandler) Live(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok"})
}

// Ready reports whether the database is reachable
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"data":    gin.H{"status": "unavailable", "database": err.Error()},
		})
		return
	}
	h.Success(c, gin.H{"status": "ok", "database": "ok"})
}
