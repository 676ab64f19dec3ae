package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hauspet/config"
	"hauspet/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back N migrations
// - version: Print the current schema version
// - force:   Set the version without running migrations (clears the dirty flag)

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	forceCmd := flag.NewFlagSet("force", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")
	forceVersion := forceCmd.Int("version", -1, "Version to force")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := migrateFlags{
		Up:      upCmd,
		Down:    downFlags{cmd: downCmd, steps: downSteps},
		Version: versionCmd,
		Force:   forceFlags{cmd: forceCmd, version: forceVersion},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	Up      *flag.FlagSet
	Down    downFlags
	Version *flag.FlagSet
	Force   forceFlags
}

type downFlags struct {
	cmd   *flag.FlagSet
	steps *int
}

type forceFlags struct {
	cmd     *flag.FlagSet
	version *int
}

func runSubcommand(flags *migrateFlags) error {
	switch os.Args[1] {
	case "up":
		if err := flags.Up.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse up flags")
		}

		return withMigrator(func(m *migrations.Migrator) error { return m.Up() })
	case "down":
		if err := flags.Down.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse down flags")
		}

		return withMigrator(func(m *migrations.Migrator) error { return m.Down(*flags.Down.steps) })
	case "version":
		if err := flags.Version.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse version flags")
		}

		return withMigrator(printVersion)
	case "force":
		if err := flags.Force.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse force flags")
		}
		if *flags.Force.version < 0 {
			return errors.New("--version flag is required for force command")
		}

		return withMigrator(func(m *migrations.Migrator) error { return m.Force(*flags.Force.version) })
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

// withMigrator loads the database settings and runs fn against a fresh migrator.
// Only the database section of the configuration is required.
func withMigrator(fn func(*migrations.Migrator) error) error {
	cfg, err := config.NewWorker()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	m, err := migrations.New(cfg.Postgres.MigrationURL(), logger)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func printVersion(m *migrations.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	fmt.Printf("version: %d dirty: %t\n", version, dirty)

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up         Apply all pending migrations")
	fmt.Println("  down       Roll back migrations (-steps N, default 1)")
	fmt.Println("  version    Print the current schema version")
	fmt.Println("  force      Set the schema version (-version N)")
	fmt.Println("")
	fmt.Println("Use 'migrate <command> -h' for more information about a command.")
}
