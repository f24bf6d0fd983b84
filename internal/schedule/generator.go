package schedule

import "time"

// GenerateDaySlots enumerates candidate slots for one calendar day and keeps
// those that conflict with none of the day's busy times. Candidates step
// through the working window in slot-duration increments; a trailing partial
// slot that would extend past the window end is dropped. Output is ascending
// by start by construction.
//
// The filter is a full candidates x busy scan. Both factors stay small (at
// most ~100 candidates and tens of events per day); an interval tree would
// only pay off at a much larger horizon or event volume.
func GenerateDaySlots(day time.Time, cfg *Config, busy []BusyTime) []Slot {
	window := DayWindow(day, cfg)
	step := time.Duration(cfg.SlotDurationMinutes) * time.Minute

	var slots []Slot
	for start := window.Start; !start.After(window.End); start = start.Add(step) {
		candidate := TimeInterval{Start: start, End: start.Add(step)}
		if candidate.End.After(window.End) {
			break
		}
		if ConflictsWith(candidate, busy) {
			continue
		}
		slots = append(slots, Slot{TimeInterval: candidate})
	}

	return slots
}
