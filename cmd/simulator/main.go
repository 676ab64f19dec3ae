package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hauspet/internal/simulator"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// simConfig is read from the environment, optionally seeded from .env.
type simConfig struct {
	APIURL     string        `env:"SIM_API_URL" envDefault:"http://localhost:5000"`
	Email      string        `env:"SIM_EMAIL,required"`
	Password   string        `env:"SIM_PASSWORD,required"`
	PetID      uint          `env:"SIM_PET_ID,required"`
	Profile    string        `env:"SIM_PROFILE" envDefault:"oscar"`
	Scenario   string        `env:"SIM_SCENARIO" envDefault:"random"`
	CollarID   string        `env:"SIM_COLLAR_ID" envDefault:"COLLAR_001"`
	Interval   time.Duration `env:"SIM_INTERVAL" envDefault:"30s"`
	RetryDelay time.Duration `env:"SIM_RETRY_DELAY" envDefault:"10s"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("Simulator failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return errors.Wrap(err, "load .env")
		}
	}

	var cfg simConfig
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "parse simulator config")
	}

	profile, ok := simulator.Profiles[cfg.Profile]
	if !ok {
		return errors.Errorf("unknown profile %q", cfg.Profile)
	}
	scenario, err := simulator.ParseScenario(cfg.Scenario)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := simulator.NewClient(cfg.APIURL, nil)
	if err := client.Login(ctx, cfg.Email, cfg.Password); err != nil {
		return err
	}
	logger.Info("Signed in", slog.String("api", cfg.APIURL), slog.String("profile", profile.Name))

	runner := simulator.NewRunner(client, simulator.NewGenerator(profile, cfg.CollarID, nil), logger, simulator.RunnerOptions{
		PetID:      cfg.PetID,
		Scenario:   scenario,
		Interval:   cfg.Interval,
		RetryDelay: cfg.RetryDelay,
	})

	return runner.Run(ctx)
}
