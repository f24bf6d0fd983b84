package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startMin, endMin int) TimeInterval {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return TimeInterval{
		Start: base.Add(time.Duration(startMin) * time.Minute),
		End:   base.Add(time.Duration(endMin) * time.Minute),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "Disjoint intervals do not overlap",
			a:    interval(0, 10),
			b:    interval(20, 30),
			want: false,
		},
		{
			name: "Back-to-back intervals do not overlap",
			a:    interval(0, 10),
			b:    interval(10, 20),
			want: false,
		},
		{
			name: "Partial overlap",
			a:    interval(0, 15),
			b:    interval(10, 20),
			want: true,
		},
		{
			name: "Containment",
			a:    interval(0, 60),
			b:    interval(20, 30),
			want: true,
		},
		{
			name: "Identical intervals overlap",
			a:    interval(5, 10),
			b:    interval(5, 10),
			want: true,
		},
		{
			name: "Shared start",
			a:    interval(0, 5),
			b:    interval(0, 30),
			want: true,
		},
		{
			name: "One-minute intrusion",
			a:    interval(0, 11),
			b:    interval(10, 20),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	a := interval(0, 30)
	assert.True(t, Overlaps(a, a))
}

func TestConflictsWith(t *testing.T) {
	busy := []BusyTime{
		{TimeInterval: interval(60, 90)},
		{TimeInterval: interval(180, 240)},
	}

	assert.False(t, ConflictsWith(interval(0, 60), busy))
	assert.False(t, ConflictsWith(interval(90, 180), busy))
	assert.True(t, ConflictsWith(interval(45, 75), busy))
	assert.True(t, ConflictsWith(interval(230, 260), busy))
	assert.False(t, ConflictsWith(interval(240, 300), busy))
}
