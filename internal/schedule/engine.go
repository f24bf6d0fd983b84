package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BusyFetcher retrieves raw provider events for a single calendar day.
// day is midnight of the day in the configured timezone. This is the
// engine's only I/O boundary.
type BusyFetcher interface {
	FetchDay(ctx context.Context, day time.Time) ([]ProviderEvent, error)
}

// BusyFetcherFunc adapts a function to the BusyFetcher interface.
type BusyFetcherFunc func(ctx context.Context, day time.Time) ([]ProviderEvent, error)

func (f BusyFetcherFunc) FetchDay(ctx context.Context, day time.Time) ([]ProviderEvent, error) {
	return f(ctx, day)
}

// Engine computes free slots and busy times over the look-ahead horizon.
// It is stateless; every computation works only on its own inputs.
type Engine struct {
	normalizer *Normalizer
	logger     *zap.Logger

	// fetchConcurrency bounds the per-day fan-out so the provider's rate
	// limits are respected.
	fetchConcurrency int

	// now is replaceable for tests.
	now func() time.Time
}

// NewEngine creates an Engine. fetchConcurrency values below 1 disable the
// fan-out (days are fetched one at a time).
func NewEngine(normalizer *Normalizer, logger *zap.Logger, fetchConcurrency int) *Engine {
	if fetchConcurrency < 1 {
		fetchConcurrency = 1
	}
	return &Engine{
		normalizer:       normalizer,
		logger:           logger,
		fetchConcurrency: fetchConcurrency,
		now:              time.Now,
	}
}

type dayResult struct {
	busy  []BusyTime
	slots []Slot
}

// ComputeSlots walks each day from today through today+DaysAhead inclusive,
// fetches that day's raw events, normalizes them, and generates the day's
// free slots against that day's busy times only. Busy times from one day
// never affect another day's slots.
//
// A failed fetch costs only that day: it contributes no busy times and no
// slots, is logged, and the remaining days still compute. Cancellation of
// ctx is a hard stop; no partial result is returned.
//
// Per-day fetches run concurrently up to the configured bound. Results are
// collected by day index, so output order is deterministic regardless of
// fetch completion order.
func (e *Engine) ComputeSlots(ctx context.Context, cfg *Config, fetcher BusyFetcher) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc := cfg.Location()
	today := StartOfDay(e.now(), loc)
	numDays := cfg.DaysAhead + 1

	days := make([]dayResult, numDays)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fetchConcurrency)

	for i := 0; i < numDays; i++ {
		day := today.AddDate(0, 0, i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			raw, err := fetcher.FetchDay(gctx, day)
			if err != nil {
				// Day-granular recovery: an upstream failure for one day
				// must not abort the horizon.
				e.logger.Warn("busy-time fetch failed, skipping day",
					zap.Time("day", day), zap.Error(err))
				return nil
			}

			busy := e.normalizer.Normalize(raw, loc)
			days[i] = dayResult{
				busy:  busy,
				slots: GenerateDaySlots(day, cfg, busy),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Only cancellation reaches here; fetch errors are absorbed above.
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, d := range days {
		result.Slots = append(result.Slots, d.slots...)
		result.BusyTimes = append(result.BusyTimes, d.busy...)
	}

	return result, nil
}
