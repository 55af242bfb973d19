package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"regie/internal/document"
	"regie/internal/platform/config"
	"regie/internal/platform/logging"
	"regie/internal/transport/stdio"
)

func main() {
	// A missing .env is fine; the environment and builtins cover it.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel).With(slog.String("run", uuid.NewString()))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	runner := &stdio.Runner{
		Service: document.New(cfg, log),
		Log:     log,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
	os.Exit(runner.Run(os.Args[1:]))
}
