package golden

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// Runner executes suite cases and assembles baselines. Mixers are pure
// functions over value parameters, so cases run concurrently without any
// coordination; the clock is injected so tests control capture timestamps.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewRunner creates a runner. A nil clock falls back to the real one.
func NewRunner(logger *log.Logger, clock quartz.Clock) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Runner{logger: logger, clock: clock}
}

// Capture runs every case and returns the baseline in stable record order.
func (r *Runner) Capture(ctx context.Context, suite string, cases []Case) (*Baseline, error) {
	start := r.clock.Now()
	records := make([]Record, len(cases))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range cases {
		g.Go(func() error {
			res := c.Fixture.Run(c.Text, c.Seed)
			records[i] = Record{
				Fixture: c.Fixture.Name,
				Text:    c.Text,
				Seed:    c.Seed,
				Message: res.Message,
				Status:  res.Status,
			}
			r.logger.Debug("ran fixture case",
				"fixture", c.Fixture.Name,
				"seed", c.Seed,
				"status", res.Status)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRecords(records)
	return &Baseline{
		Version:         baselineVersion,
		Suite:           suite,
		CapturedAt:      start,
		DurationSeconds: r.clock.Since(start).Seconds(),
		Records:         records,
	}, nil
}
