package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/wizmcp/pkg/api/types"
	"github.com/urmzd/wizmcp/pkg/wiz"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	bulb *wiz.Bulb
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(bulb *wiz.Bulb) *HealthHandler {
	return &HealthHandler{bulb: bulb}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Probes the bulb and returns the health status of the service
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Bulb is unreachable"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	// UDP is connectionless, so reachability is probed with a status query
	deviceStatus := "reachable"
	httpStatus := http.StatusOK
	status := "healthy"

	if _, err := h.bulb.Status(c.Request.Context()); err != nil {
		deviceStatus = "unreachable"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Device:    deviceStatus,
		Timestamp: time.Now(),
	})
}
