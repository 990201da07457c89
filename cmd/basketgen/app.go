package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"pkg.jsn.cam/basketgen/internal/basket"
	"pkg.jsn.cam/basketgen/internal/runlog"
)

func newApp(log *slog.Logger, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:            "basketgen",
		Usage:           "Generate a random market-basket transaction dataset",
		ArgsUsage:       strings.Join(basket.ArgNames, " "),
		HideHelpCommand: true,
		Writer:          stdout,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed for the random source; random when unset",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar on stderr",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "read the dataset back and check its shape after writing",
			},
			&cli.StringFlag{
				Name:  "ledger",
				Usage: "record the run in a bbolt `FILE`",
			},
			&cli.BoolFlag{
				Name:  "list-runs",
				Usage: "print the runs recorded in --ledger and exit",
			},
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", basket.ErrInvalidArgument, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("list-runs") {
				return listRuns(c)
			}
			return generate(c, log)
		},
	}
}

func generate(c *cli.Context, log *slog.Logger) error {
	p, err := basket.ParseParams(c.Args().Slice())
	if err != nil {
		return err
	}

	seed := c.Uint64("seed")
	if !c.IsSet("seed") {
		seed = rand.Uint64()
	}

	store, err := openLedger(c.String("ledger"))
	if err != nil {
		return err
	}
	defer store.Close()

	run := runlog.NewRun(p, seed)
	log = log.With("run_id", run.ID)
	log.Info("generating dataset",
		"output", p.OutputPath,
		"customers", p.Customers,
		"items", p.Items,
		"max_basket", p.MaxBasket,
		"seed", seed)

	opts := []basket.Option{basket.WithSeed(seed)}
	if c.Bool("progress") {
		bar := newProgressBar(p.Customers)
		defer bar.Finish()
		opts = append(opts, basket.WithProgress(bar))
	}

	stats, genErr := basket.Generate(c.Context, p, opts...)
	run.Complete(stats, genErr)
	if err := store.Save(run); err != nil {
		log.Warn("failed to record run", "error", err)
	}
	if genErr != nil {
		return genErr
	}

	log.Info("dataset written",
		"lines", humanize.Comma(stats.Lines),
		"size", humanize.Bytes(uint64(stats.Bytes)),
		"took", run.Duration().Round(time.Millisecond))

	if c.Bool("verify") {
		report, err := basket.VerifyFile(p.OutputPath, p)
		if err != nil {
			return err
		}
		log.Info("dataset verified",
			"lines", humanize.Comma(report.Lines),
			"item_tokens", humanize.Comma(report.ItemTokens),
			"min_basket", report.MinBasket,
			"max_basket", report.MaxBasket)
	}
	return nil
}

// openLedger falls back to an in-memory store when no path is given.
func openLedger(path string) (runlog.Store, error) {
	if path == "" {
		return runlog.NewMemoryStore(), nil
	}
	store, err := runlog.OpenBolt(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return store, nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func listRuns(c *cli.Context) error {
	path := c.String("ledger")
	if path == "" {
		return fmt.Errorf("%w: --list-runs requires --ledger", basket.ErrInvalidArgument)
	}
	if c.NArg() > 0 {
		return fmt.Errorf("%w: --list-runs takes no positional arguments", basket.ErrInvalidArgument)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ledger %s does not exist", path)
	}

	store, err := openLedger(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	fmt.Fprintf(w, "%-36s %-10s %12s %10s %-20s %s\n", "RUN ID", "STATUS", "LINES", "SIZE", "STARTED", "OUTPUT")
	fmt.Fprintln(w, strings.Repeat("─", 110))
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s %-10s %12s %10s %-20s %s\n",
			run.ID,
			run.Status(),
			humanize.Comma(run.Lines),
			humanize.Bytes(uint64(run.Bytes)),
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.OutputPath)
	}
	return nil
}
