package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T, tz string) *Config {
	t.Helper()
	cfg := &Config{
		DaysAhead:           14,
		StartHour:           10,
		EndHour:             17,
		SlotDurationMinutes: 30,
		Timezone:            tz,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestDayWindow(t *testing.T) {
	cfg := validConfig(t, "UTC")
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	window := DayWindow(day, cfg)

	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), window.End)
}

func TestDayWindowInZone(t *testing.T) {
	cfg := validConfig(t, "Asia/Tokyo")
	loc := cfg.Location()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	window := DayWindow(day, cfg)

	// 10:00 JST is 01:00 UTC.
	assert.Equal(t, time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC), window.Start.UTC())
	assert.Equal(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), window.End.UTC())
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC on March 3rd is still March 2nd in New York.
	instant := time.Date(2026, 3, 3, 2, 30, 0, 0, time.UTC)
	got := StartOfDay(instant, loc)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), got)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "Valid config",
			cfg:  Config{DaysAhead: 14, StartHour: 10, EndHour: 17, SlotDurationMinutes: 30},
		},
		{
			name:    "Inverted working hours",
			cfg:     Config{DaysAhead: 14, StartHour: 17, EndHour: 10, SlotDurationMinutes: 30},
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "Equal working hours",
			cfg:     Config{DaysAhead: 14, StartHour: 10, EndHour: 10, SlotDurationMinutes: 30},
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "Zero days ahead",
			cfg:     Config{DaysAhead: 0, StartHour: 10, EndHour: 17, SlotDurationMinutes: 30},
			wantErr: ErrInvalidDaysAhead,
		},
		{
			name:    "Too many days ahead",
			cfg:     Config{DaysAhead: 31, StartHour: 10, EndHour: 17, SlotDurationMinutes: 30},
			wantErr: ErrInvalidDaysAhead,
		},
		{
			name:    "Hour out of range",
			cfg:     Config{DaysAhead: 14, StartHour: -1, EndHour: 17, SlotDurationMinutes: 30},
			wantErr: ErrInvalidHourRange,
		},
		{
			name:    "Non-positive slot duration",
			cfg:     Config{DaysAhead: 14, StartHour: 10, EndHour: 17, SlotDurationMinutes: 0},
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name: "Bad timezone",
			cfg:  Config{DaysAhead: 14, StartHour: 10, EndHour: 17, SlotDurationMinutes: 30, Timezone: "Nowhere/Invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.cfg.Timezone != "":
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
