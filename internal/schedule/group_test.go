package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(start, end time.Time) Slot {
	return Slot{TimeInterval: TimeInterval{Start: start, End: end}}
}

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	now := day1.Add(9 * time.Hour)

	t.Run("Groups sorted by date, items by start", func(t *testing.T) {
		slots := []Slot{
			slotAt(day2.Add(10*time.Hour), day2.Add(10*time.Hour+30*time.Minute)),
			slotAt(day1.Add(10*time.Hour), day1.Add(10*time.Hour+30*time.Minute)),
			slotAt(day1.Add(14*time.Hour), day1.Add(14*time.Hour+30*time.Minute)),
		}
		busy := []BusyTime{
			{
				TimeInterval: TimeInterval{Start: day1.Add(12 * time.Hour), End: day1.Add(13 * time.Hour)},
				Summary:      "Standup",
				ID:           "b1",
			},
		}

		groups := GroupByDay(slots, busy, now, time.UTC)

		require.Len(t, groups, 2)
		assert.Equal(t, "2026-03-02", groups[0].Date)
		assert.Equal(t, "2026-03-03", groups[1].Date)

		require.Len(t, groups[0].Items, 3)
		for i := 1; i < len(groups[0].Items); i++ {
			assert.False(t, groups[0].Items[i].Start().Before(groups[0].Items[i-1].Start()))
		}
		assert.Equal(t, ItemBusy, groups[0].Items[1].Kind)
	})

	t.Run("Past items are excluded", func(t *testing.T) {
		slots := []Slot{
			slotAt(day1.Add(8*time.Hour), day1.Add(8*time.Hour+30*time.Minute)),
			slotAt(day1.Add(10*time.Hour), day1.Add(10*time.Hour+30*time.Minute)),
		}
		busy := []BusyTime{
			{TimeInterval: TimeInterval{Start: day1.Add(7 * time.Hour), End: day1.Add(8 * time.Hour)}, ID: "old"},
		}

		groups := GroupByDay(slots, busy, now, time.UTC)

		require.Len(t, groups, 1)
		require.Len(t, groups[0].Items, 1)
		assert.Equal(t, ItemSlot, groups[0].Items[0].Kind)
		for _, g := range groups {
			for _, item := range g.Items {
				assert.False(t, item.Start().Before(now))
			}
		}
	})

	t.Run("Item starting exactly at now is kept", func(t *testing.T) {
		slots := []Slot{slotAt(now, now.Add(30*time.Minute))}
		groups := GroupByDay(slots, nil, now, time.UTC)
		require.Len(t, groups, 1)
	})

	t.Run("Equal starts put slots before busy times", func(t *testing.T) {
		start := day1.Add(10 * time.Hour)
		slots := []Slot{slotAt(start, start.Add(30*time.Minute))}
		busy := []BusyTime{
			{TimeInterval: TimeInterval{Start: start, End: start.Add(time.Hour)}, ID: "b1"},
		}

		groups := GroupByDay(slots, busy, now, time.UTC)

		require.Len(t, groups, 1)
		require.Len(t, groups[0].Items, 2)
		assert.Equal(t, ItemSlot, groups[0].Items[0].Kind)
		assert.Equal(t, ItemBusy, groups[0].Items[1].Kind)
	})

	t.Run("Grouping uses the configured zone, not UTC", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// 23:30 New York on March 2nd is 04:30 UTC on March 3rd.
		start := time.Date(2026, 3, 2, 23, 30, 0, 0, loc)
		slots := []Slot{slotAt(start, start.Add(30*time.Minute))}

		groups := GroupByDay(slots, nil, now, loc)

		require.Len(t, groups, 1)
		assert.Equal(t, "2026-03-02", groups[0].Date)
	})

	t.Run("Empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupByDay(nil, nil, now, time.UTC))
	})
}
