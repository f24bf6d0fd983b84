package schedule

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDaysAhead    = apperror.New(http.StatusBadRequest, "days must be between 1 and 30")
	ErrInvalidWorkingHours = apperror.New(http.StatusBadRequest, "start hour must be before end hour")
	ErrInvalidHourRange    = apperror.New(http.StatusBadRequest, "hours must be between 0 and 23")
	ErrInvalidSlotDuration = apperror.New(http.StatusBadRequest, "slot duration must be positive")
)

// TimeInterval is a half-open range [Start, End) of absolute instants.
// Start must be strictly before End.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is a free, bookable interval. It has no identity beyond its bounds.
type Slot struct {
	TimeInterval
}

// BusyTime is a normalized calendar event used for conflict checks and display.
type BusyTime struct {
	TimeInterval
	Summary      string
	Description  string
	CreatorEmail string
	ID           string
}

// ProviderEvent is a raw event as delivered by the calendar provider.
// Start/End each carry either a precise RFC3339 timestamp or a whole-day
// date string; the normalizer decides which applies.
type ProviderEvent struct {
	Start        EventTime
	End          EventTime
	Summary      string
	Description  string
	CreatorEmail string
	ID           string
}

// EventTime mirrors the provider's two-form event boundary.
type EventTime struct {
	DateTime string // RFC3339, empty for whole-day events
	Date     string // "2006-01-02", only for whole-day events
}

// Config holds the working-hours window and horizon for one computation.
type Config struct {
	DaysAhead           int
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
	Timezone            string

	loc *time.Location
}

// Validate checks the configuration and resolves the timezone.
// Violations are configuration errors, never silently clamped.
func (c *Config) Validate() error {
	if c.DaysAhead < 1 || c.DaysAhead > 30 {
		return ErrInvalidDaysAhead
	}
	if c.StartHour < 0 || c.StartHour > 23 || c.EndHour < 0 || c.EndHour > 23 {
		return ErrInvalidHourRange
	}
	if c.StartHour >= c.EndHour {
		return ErrInvalidWorkingHours
	}
	if c.SlotDurationMinutes <= 0 {
		return ErrInvalidSlotDuration
	}

	loc, err := ResolveTimezone(c.Timezone)
	if err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, "unrecognized timezone")
	}
	c.loc = loc

	return nil
}

// Location returns the resolved timezone. Validate must have been called.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// DayGroup is one calendar day's worth of slots and busy times, ordered
// ascending by start.
type DayGroup struct {
	Date  string // "2006-01-02" in the configured timezone
	Items []DayItem
}

// DayItemKind discriminates the two item types within a DayGroup.
type DayItemKind string

const (
	ItemSlot DayItemKind = "slot"
	ItemBusy DayItemKind = "busy"
)

// DayItem is either a Slot or a BusyTime, flattened for presentation.
type DayItem struct {
	Kind DayItemKind
	Slot *Slot
	Busy *BusyTime
}

// Start returns the item's start instant regardless of kind.
func (i DayItem) Start() time.Time {
	if i.Kind == ItemSlot {
		return i.Slot.Start
	}
	return i.Busy.Start
}

// End returns the item's end instant regardless of kind.
func (i DayItem) End() time.Time {
	if i.Kind == ItemSlot {
		return i.Slot.End
	}
	return i.Busy.End
}

// Result is the engine's output for one computation.
type Result struct {
	Slots     []Slot
	BusyTimes []BusyTime
}
