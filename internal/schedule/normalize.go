package schedule

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const wholeDayLayout = "2006-01-02"

// Normalizer converts raw provider events into BusyTimes, dropping malformed
// entries. One bad event must never blank the whole result set, so parse
// failures are logged and skipped rather than propagated.
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize parses each raw event's bounds and returns the valid busy times.
// Whole-day events expand to [startOfDay, nextDay) in loc. Zero-length and
// inverted intervals are rejected. Output order follows input order and is
// not guaranteed sorted; callers that need order must sort.
func (n *Normalizer) Normalize(raw []ProviderEvent, loc *time.Location) []BusyTime {
	busy := make([]BusyTime, 0, len(raw))

	for _, ev := range raw {
		start, err := parseEventTime(ev.Start, loc)
		if err != nil {
			n.logger.Warn("dropping event with unparseable start",
				zap.String("event_id", ev.ID), zap.Error(err))
			continue
		}
		end, err := parseEventTime(ev.End, loc)
		if err != nil {
			n.logger.Warn("dropping event with unparseable end",
				zap.String("event_id", ev.ID), zap.Error(err))
			continue
		}
		if !start.Before(end) {
			n.logger.Warn("dropping event with empty or inverted interval",
				zap.String("event_id", ev.ID),
				zap.Time("start", start), zap.Time("end", end))
			continue
		}

		busy = append(busy, BusyTime{
			TimeInterval: TimeInterval{Start: start, End: end},
			Summary:      ev.Summary,
			Description:  ev.Description,
			CreatorEmail: ev.CreatorEmail,
			ID:           ev.ID,
		})
	}

	return busy
}

// parseEventTime resolves a provider event boundary into an absolute instant.
// Precise timestamps win over whole-day dates when both are present. A
// whole-day bound resolves to midnight of the named day in loc; the provider
// reports whole-day ends as the exclusive next day, so [startOfDay, nextDay)
// falls out without special handling.
func parseEventTime(et EventTime, loc *time.Location) (time.Time, error) {
	if et.DateTime != "" {
		t, err := time.Parse(time.RFC3339, et.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", et.DateTime, err)
		}
		return t, nil
	}

	if et.Date != "" {
		t, err := time.ParseInLocation(wholeDayLayout, et.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", et.Date, err)
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("event boundary has neither timestamp nor date")
}
