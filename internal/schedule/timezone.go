package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// fixedOffsetPattern matches "GMT+5", "UTC-3:30", "+05:30" and similar
// fixed-offset forms. IANA names are always tried first.
var fixedOffsetPattern = regexp.MustCompile(`^(?:GMT|UTC)?([+-])(\d{1,2})(?::(\d{2}))?$`)

// ResolveTimezone resolves a timezone string into a *time.Location.
// IANA zone names (e.g. "Europe/Paris") are preferred since fixed offsets
// cannot represent DST transitions; fixed-offset strings are accepted as a
// fallback for callers that only know their UTC offset. An empty string
// resolves to UTC.
func ResolveTimezone(name string) (*time.Location, error) {
	if name == "" || name == "GMT" || name == "UTC" {
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}

	m := fixedOffsetPattern.FindStringSubmatch(name)
	if m == nil {
		return nil, fmt.Errorf("timezone %q is neither an IANA zone nor a fixed offset", name)
	}

	hours, err := strconv.Atoi(m[2])
	if err != nil || hours > 14 {
		return nil, fmt.Errorf("timezone %q has an invalid hour offset", name)
	}

	minutes := 0
	if m[3] != "" {
		minutes, err = strconv.Atoi(m[3])
		if err != nil || minutes > 59 {
			return nil, fmt.Errorf("timezone %q has an invalid minute offset", name)
		}
	}

	offset := hours*3600 + minutes*60
	if m[1] == "-" {
		offset = -offset
	}

	return time.FixedZone(name, offset), nil
}
