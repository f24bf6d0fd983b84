package schedule

import "time"

// DayWindow returns the working-hours window for the given calendar day as
// absolute instants. The window boundaries are wall-clock hours in the
// configured timezone; arithmetic is done in minutes so boundaries need not
// fall on whole hours.
func DayWindow(day time.Time, cfg *Config) TimeInterval {
	start := StartOfDay(day, cfg.Location())
	return TimeInterval{
		Start: start.Add(time.Duration(cfg.StartHour*60) * time.Minute),
		End:   start.Add(time.Duration(cfg.EndHour*60) * time.Minute),
	}
}

// StartOfDay returns midnight of the given instant's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
