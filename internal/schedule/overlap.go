package schedule

// Overlaps reports whether two half-open intervals [Start, End) intersect.
// Intervals that merely touch (one ends exactly where the other begins) do
// not conflict.
func Overlaps(a, b TimeInterval) bool {
	return a.End.After(b.Start) && b.End.After(a.Start)
}

// ConflictsWith reports whether the interval overlaps any of the given busy
// times.
func ConflictsWith(iv TimeInterval, busy []BusyTime) bool {
	for _, b := range busy {
		if Overlaps(iv, b.TimeInterval) {
			return true
		}
	}
	return false
}
