package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrSummaryRequired  = apperror.New(http.StatusBadRequest, "summary is required")
)

// Booking is a confirmed meeting written into the user's calendar. The ID is
// assigned by the provider on insert.
type Booking struct {
	ID          string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}
