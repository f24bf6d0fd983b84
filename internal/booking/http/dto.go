package http

import (
	"time"

	"github.com/nekogravitycat/meeting-booking-backend/internal/booking"
)

// CreateBookingRequest is the payload for POST /v1/bookings.
type CreateBookingRequest struct {
	Summary     string    `json:"summary" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start" binding:"required"`
	EndTime     time.Time `json:"end" binding:"required"`
	Guests      []string  `json:"guests" binding:"omitempty,dive,email"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.StartTime.Before(r.EndTime) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type BookingResponse struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start"`
	EndTime     time.Time `json:"end"`
	Attendees   []string  `json:"attendees"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Summary:     b.Summary,
		Description: b.Description,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Attendees:   b.Attendees,
	}
}
