package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mayurhapani/online-quiz-cli/internal/client/cli"
	"github.com/mayurhapani/online-quiz-cli/internal/client/config"
	"github.com/mayurhapani/online-quiz-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	// Cancelling the root context abandons any request still in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
