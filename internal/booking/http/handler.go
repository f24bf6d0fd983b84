package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
	"github.com/nekogravitycat/meeting-booking-backend/internal/booking"
	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/meeting-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// Create books a meeting into one of the free slots.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	token := auth.GetToken(c)
	ctx := c.Request.Context()

	// Best effort: a failed email lookup only means the requester is not
	// auto-added to the guest list.
	email, _ := h.userService.Email(ctx, token)

	req := booking.CreateRequest{
		Summary:        body.Summary,
		Description:    body.Description,
		StartTime:      body.StartTime,
		EndTime:        body.EndTime,
		Guests:         body.Guests,
		RequesterEmail: email,
	}

	b, err := h.service.Create(ctx, token, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}
