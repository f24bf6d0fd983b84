package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name: "End before start",
			req: CreateRequest{
				Summary:   "Sync",
				StartTime: future.Add(time.Hour),
				EndTime:   future,
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "Zero-length meeting",
			req: CreateRequest{
				Summary:   "Sync",
				StartTime: future,
				EndTime:   future,
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "Start in the past",
			req: CreateRequest{
				Summary:   "Sync",
				StartTime: time.Now().Add(-time.Hour),
				EndTime:   time.Now().Add(time.Hour),
			},
			wantErr: ErrStartTimePast,
		},
		{
			name: "Missing summary",
			req: CreateRequest{
				StartTime: future,
				EndTime:   future.Add(30 * time.Minute),
			},
			wantErr: ErrSummaryRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := svc.Create(context.Background(), nil, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, b)
		})
	}
}
