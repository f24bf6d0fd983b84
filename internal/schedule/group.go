package schedule

import (
	"sort"
	"time"
)

// GroupByDay arranges slots and busy times into per-day groups for
// presentation. Items starting before now are dropped. Grouping keys off the
// calendar date of the item's start in loc, not UTC, so a 23:30 local slot
// stays on its local day. Groups come back sorted by date; items within a
// group sort ascending by start, with slots placed before busy times when
// starts are equal so the ordering is stable across runs.
func GroupByDay(slots []Slot, busyTimes []BusyTime, now time.Time, loc *time.Location) []DayGroup {
	grouped := make(map[string][]DayItem)

	for i := range slots {
		s := slots[i]
		if s.Start.Before(now) {
			continue
		}
		key := s.Start.In(loc).Format("2006-01-02")
		grouped[key] = append(grouped[key], DayItem{Kind: ItemSlot, Slot: &s})
	}

	for i := range busyTimes {
		b := busyTimes[i]
		if b.Start.Before(now) {
			continue
		}
		key := b.Start.In(loc).Format("2006-01-02")
		grouped[key] = append(grouped[key], DayItem{Kind: ItemBusy, Busy: &b})
	}

	groups := make([]DayGroup, 0, len(grouped))
	for date, items := range grouped {
		sort.SliceStable(items, func(i, j int) bool {
			si, sj := items[i].Start(), items[j].Start()
			if si.Equal(sj) {
				return items[i].Kind == ItemSlot && items[j].Kind == ItemBusy
			}
			return si.Before(sj)
		})
		groups = append(groups, DayGroup{Date: date, Items: items})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})

	return groups
}
