package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pkg.jsn.cam/basketgen/internal/basket"
)

/*generates a synthetic transaction dataset: one "{customer_id} {item_id}..." line per customer*/

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(log, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error("basketgen failed", "error", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for usage errors and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, basket.ErrInvalidArgument) {
		return 2
	}
	return 1
}
