package http

import (
	"time"

	"github.com/nekogravitycat/meeting-booking-backend/internal/schedule"
)

// SlotsRequest defines query parameters for GET /v1/schedule/slots.
// Both "duration" and "slotDuration" are accepted for the slot length;
// "duration" wins when both are present.
type SlotsRequest struct {
	Days         int    `form:"days,default=14"`
	StartHour    int    `form:"startHour,default=10"`
	EndHour      int    `form:"endHour,default=17"`
	Duration     int    `form:"duration"`
	SlotDuration int    `form:"slotDuration"`
	Timezone     string `form:"timezone"`
}

const defaultSlotDurationMinutes = 30

// ToConfig maps the query parameters onto a schedule.Config. Range checks
// happen in Config.Validate, not here.
func (r *SlotsRequest) ToConfig() *schedule.Config {
	duration := r.Duration
	if duration == 0 {
		duration = r.SlotDuration
	}
	if duration == 0 {
		duration = defaultSlotDurationMinutes
	}

	return &schedule.Config{
		DaysAhead:           r.Days,
		StartHour:           r.StartHour,
		EndHour:             r.EndHour,
		SlotDurationMinutes: duration,
		Timezone:            r.Timezone,
	}
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type BusyTimeResponse struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Creator     string    `json:"creator,omitempty"`
	ID          string    `json:"id"`
}

// DayItemResponse is one entry of a day group; Type discriminates between
// free slots and busy events.
type DayItemResponse struct {
	Type        string    `json:"type"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	Creator     string    `json:"creator,omitempty"`
	ID          string    `json:"id,omitempty"`
}

type DayGroupResponse struct {
	Date  string            `json:"date"`
	Items []DayItemResponse `json:"items"`
}

// SlotsResponse is the full payload for GET /v1/schedule/slots.
type SlotsResponse struct {
	Slots     []SlotResponse     `json:"slots"`
	BusyTimes []BusyTimeResponse `json:"busy_times"`
	Days      []DayGroupResponse `json:"days"`
}

func NewSlotsResponse(result *schedule.Result, groups []schedule.DayGroup) SlotsResponse {
	resp := SlotsResponse{
		Slots:     make([]SlotResponse, 0, len(result.Slots)),
		BusyTimes: make([]BusyTimeResponse, 0, len(result.BusyTimes)),
		Days:      make([]DayGroupResponse, 0, len(groups)),
	}

	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{Start: s.Start, End: s.End})
	}
	for _, b := range result.BusyTimes {
		resp.BusyTimes = append(resp.BusyTimes, BusyTimeResponse{
			Start:       b.Start,
			End:         b.End,
			Summary:     b.Summary,
			Description: b.Description,
			Creator:     b.CreatorEmail,
			ID:          b.ID,
		})
	}
	for _, g := range groups {
		items := make([]DayItemResponse, 0, len(g.Items))
		for _, item := range g.Items {
			items = append(items, newDayItemResponse(item))
		}
		resp.Days = append(resp.Days, DayGroupResponse{Date: g.Date, Items: items})
	}

	return resp
}

func newDayItemResponse(item schedule.DayItem) DayItemResponse {
	if item.Kind == schedule.ItemSlot {
		return DayItemResponse{
			Type:  string(schedule.ItemSlot),
			Start: item.Slot.Start,
			End:   item.Slot.End,
		}
	}
	return DayItemResponse{
		Type:        string(schedule.ItemBusy),
		Start:       item.Busy.Start,
		End:         item.Busy.End,
		Summary:     item.Busy.Summary,
		Description: item.Busy.Description,
		Creator:     item.Busy.CreatorEmail,
		ID:          item.Busy.ID,
	}
}
