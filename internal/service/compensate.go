package service

import (
	"context"

	"github.com/rs/zerolog"
)

// compensations collects undo actions for side effects that have already
// completed, so a failing later step can unwind them. No transaction spans
// the database and the media store; this is the best-effort substitute.
type compensations struct {
	logger zerolog.Logger
	steps  []compensation
}

type compensation struct {
	name string
	fn   func(context.Context) error
}

func newCompensations(logger zerolog.Logger) *compensations {
	return &compensations{logger: logger}
}

// add registers an undo action for a completed side effect.
func (c *compensations) add(name string, fn func(context.Context) error) {
	c.steps = append(c.steps, compensation{name: name, fn: fn})
}

// run executes the registered actions in reverse order of completion.
// Failures are logged and never escalate.
func (c *compensations) run(ctx context.Context) {
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.fn(ctx); err != nil {
			c.logger.Warn().
				Err(err).
				Str("compensation", step.name).
				Msg("compensating action failed")
		}
	}
	c.steps = nil
}
