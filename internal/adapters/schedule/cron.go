// Package schedule runs a job repeatedly on a cron schedule.
package schedule

import (
	"context"
	"fmt"

	rcron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Runner struct {
	logger zerolog.Logger
}

func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Validate reports whether spec is a standard cron line or an @descriptor.
func Validate(spec string) error {
	if _, err := rcron.ParseStandard(spec); err != nil {
		return fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	return nil
}

// Run calls job once immediately and then on every activation of spec until
// ctx is done. A run still in progress when the next activation fires is not
// overlapped.
func (r *Runner) Run(ctx context.Context, spec string, job func(context.Context)) error {
	if err := Validate(spec); err != nil {
		return err
	}

	logger := cronLogger{logger: r.logger}
	c := rcron.New(
		rcron.WithLogger(logger),
		rcron.WithChain(rcron.Recover(logger), rcron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(spec, func() { job(ctx) }); err != nil {
		return fmt.Errorf("register schedule %q: %w", spec, err)
	}

	job(ctx)
	if ctx.Err() != nil {
		return nil
	}

	c.Start()
	r.logger.Info().Str("schedule", spec).Msg("watch started")

	<-ctx.Done()
	<-c.Stop().Done()
	r.logger.Info().Str("schedule", spec).Msg("watch stopped")

	return nil
}

type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
