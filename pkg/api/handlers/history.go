package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/wizmcp/pkg/api/types"
	"github.com/urmzd/wizmcp/pkg/db"
)

// HistoryHandler handles command history endpoints
type HistoryHandler struct {
	history *db.DB
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history *db.DB) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /history
// @Summary      List recent commands
// @Description  Returns the most recent commands sent to the bulb and the replies received
// @Tags         history
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries (default 50)"
// @Success      200    {object}  types.HistoryResponse
// @Failure      404    {object}  types.ErrorResponse  "History is not enabled"
// @Failure      500    {object}  types.ErrorResponse  "Query failed"
// @Router       /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_enabled",
			Message: "Command history is not enabled",
		})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	exchanges, err := h.history.RecentExchanges(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "query_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.HistoryResponse{
		Exchanges: exchanges,
		Count:     len(exchanges),
	})
}
