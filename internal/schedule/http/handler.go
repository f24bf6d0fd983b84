package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
	"github.com/nekogravitycat/meeting-booking-backend/internal/calendar"
	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/meeting-booking-backend/internal/schedule"
)

type Handler struct {
	engine *schedule.Engine
	client *calendar.Client
}

func NewHandler(engine *schedule.Engine, client *calendar.Client) *Handler {
	return &Handler{
		engine: engine,
		client: client,
	}
}

// Slots computes the free/busy view over the requested horizon.
// Configuration errors are the only hard failures for a valid session; a
// day whose upstream fetch fails simply contributes nothing.
func (h *Handler) Slots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	cfg := req.ToConfig()
	if err := cfg.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	token := auth.GetToken(c)
	fetcher := h.client.DayFetcher(token)

	result, err := h.engine.ComputeSlots(c.Request.Context(), cfg, fetcher)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client is gone; nothing useful to write.
			c.Abort()
			return
		}
		response.Error(c, err)
		return
	}

	groups := schedule.GroupByDay(result.Slots, result.BusyTimes, time.Now(), cfg.Location())

	c.JSON(http.StatusOK, NewSlotsResponse(result, groups))
}
