package booking

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/nekogravitycat/meeting-booking-backend/internal/calendar"
)

type CreateRequest struct {
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Guests         []string
	RequesterEmail string
}

type Service interface {
	Create(ctx context.Context, token *oauth2.Token, req CreateRequest) (*Booking, error)
}

type service struct {
	client *calendar.Client
}

func NewService(client *calendar.Client) Service {
	return &service{client: client}
}

// Create validates the requested meeting and writes it into the user's
// calendar. The requester's own email joins the guest list when absent so
// the event shows up on their calendar view too. No double-booking check is
// performed; the provider is the source of truth.
func (s *service) Create(ctx context.Context, token *oauth2.Token, req CreateRequest) (*Booking, error) {
	// 1. Validate Time Range
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	// Strict check: StartTime cannot be in the past
	if req.StartTime.Before(time.Now()) {
		return nil, ErrStartTimePast
	}
	if req.Summary == "" {
		return nil, ErrSummaryRequired
	}

	// 2. Assemble attendees
	attendees := append([]string(nil), req.Guests...)
	if req.RequesterEmail != "" && !contains(attendees, req.RequesterEmail) {
		attendees = append(attendees, req.RequesterEmail)
	}

	// 3. Insert into the provider calendar
	id, err := s.client.InsertEvent(ctx, token, calendar.EventInput{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       req.StartTime,
		End:         req.EndTime,
		Attendees:   attendees,
	})
	if err != nil {
		return nil, err
	}

	return &Booking{
		ID:          id,
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Attendees:   attendees,
	}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
