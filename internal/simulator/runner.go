package simulator

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// switchProbability is the per-tick chance of changing scenario in random mode.
const switchProbability = 0.1

// Poster is the part of Client the runner needs.
type Poster interface {
	PostReading(ctx context.Context, petID uint, reading Reading) (*RecordResult, error)
}

// Runner posts readings on a fixed interval until its context ends.
type Runner struct {
	poster     Poster
	generator  *Generator
	logger     *slog.Logger
	petID      uint
	scenario   Scenario
	randomize  bool
	interval   time.Duration
	retryDelay time.Duration
	now        func() time.Time
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	PetID      uint
	Scenario   Scenario
	Interval   time.Duration
	RetryDelay time.Duration
}

// NewRunner builds a runner. ScenarioRandom starts normal and drifts.
func NewRunner(poster Poster, generator *Generator, logger *slog.Logger, opts RunnerOptions) *Runner {
	scenario := opts.Scenario
	randomize := scenario == ScenarioRandom
	if randomize || scenario == "" {
		scenario = ScenarioNormal
	}

	return &Runner{
		poster:     poster,
		generator:  generator,
		logger:     logger,
		petID:      opts.PetID,
		scenario:   scenario,
		randomize:  randomize,
		interval:   opts.Interval,
		retryDelay: opts.RetryDelay,
		now:        time.Now,
	}
}

// Run blocks until ctx is cancelled. Post failures are logged and retried after RetryDelay.
// An authentication failure ends the run since retrying cannot fix it.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("Starting collar simulation",
		slog.Uint64("pet_id", uint64(r.petID)),
		slog.String("scenario", string(r.scenario)),
		slog.Bool("random", r.randomize),
		slog.Duration("interval", r.interval),
	)

	for {
		wait := r.interval
		if err := r.tick(ctx); err != nil {
			var statusErr *StatusError
			if errors.As(err, &statusErr) && statusErr.Status == http.StatusUnauthorized {
				return err
			}
			if ctx.Err() != nil {
				return nil
			}
			r.logger.Warn("Failed to post reading, retrying",
				slog.Duration("retry_in", r.retryDelay),
				slog.Any("error", err),
			)
			wait = r.retryDelay
		}

		select {
		case <-ctx.Done():
			r.logger.Info("Collar simulation stopped")

			return nil
		case <-time.After(wait):
		}
	}
}

func (r *Runner) tick(ctx context.Context) error {
	reading := r.generator.Generate(r.scenario, r.now())

	result, err := r.poster.PostReading(ctx, r.petID, reading)
	if err != nil {
		return err
	}

	r.logger.Info("Reading posted",
		slog.String("scenario", string(r.scenario)),
		slog.Int("heart_rate", reading.HeartRate),
		slog.Float64("temperature", reading.Temperature),
		slog.Int("spo2", reading.SpO2),
		slog.Float64("activity_level", reading.ActivityLevel),
		slog.Bool("alert_created", result.AlertCreated),
	)

	if r.randomize {
		if next := r.generator.NextScenario(r.scenario, switchProbability); next != r.scenario {
			r.logger.Info("Scenario changed", slog.String("scenario", string(next)))
			r.scenario = next
		}
	}

	return nil
}
