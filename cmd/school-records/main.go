// main is the entry point of the school-records application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file, env vars, or built-in defaults)
//  2. Initialise the logger
//  3. Open the configured storage backend (jsonfile or sqlite)
//  4. Run the interactive menu loop on stdin/stdout until exit
//
// RUNNING:
//
//	go run ./cmd/school-records --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/school-records
package main

import (
	"log/slog"
	"os"

	"github.com/kunaltiwari/school-records/internal/config"
	"github.com/kunaltiwari/school-records/internal/menu"
	"github.com/kunaltiwari/school-records/internal/storage"
	"github.com/kunaltiwari/school-records/internal/storage/jsonfile"
	"github.com/kunaltiwari/school-records/internal/storage/sqlite"
)

func main() {
	// MustLoad reads the config and fatals if anything is wrong. If it
	// returns, the config is guaranteed valid.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting school-records",
		slog.String("env", cfg.Env),
		slog.String("storage_driver", cfg.Driver),
	)

	// The rest of the program only ever sees the storage.Storage
	// interface — swapping backends is this one switch.
	var (
		store storage.Storage
		err   error
	)
	switch cfg.Driver {
	case "sqlite":
		store, err = sqlite.New(cfg)
	case "jsonfile", "":
		store, err = jsonfile.New(cfg)
	default:
		log.Error("unknown storage driver", slog.String("driver", cfg.Driver))
		os.Exit(1)
	}
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised")

	if err := menu.New(store, log, os.Stdin, os.Stdout).Run(); err != nil {
		log.Error("menu loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text at DEBUG in dev, JSON at INFO in
// prod. Logs go to stderr so they never interleave with menu output.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
