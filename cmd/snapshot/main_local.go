//go:build !lambda

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"github.com/Monte-10/ryanair-labs/config"
	"github.com/Monte-10/ryanair-labs/snapshot"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var (
		bucket      string
		prefix      string
		month       string
		parallelism int
	)

	flag.StringVar(&bucket, "bucket", config.Config.SnapshotBucket(), "output bucket")
	flag.StringVar(&prefix, "prefix", "", "output key prefix")
	flag.StringVar(&month, "month", time.Now().Format("2006-01"), "month to load (yyyy-MM)")
	flag.IntVar(&parallelism, "parallelism", 4, "concurrent schedule requests")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := run(ctx, log, bucket, prefix, month, parallelism); err != nil {
		log.Error("snapshot load failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, bucket, prefix, month string, parallelism int) error {
	d, err := xtime.ParseLocalDate(month + "-01")
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", month, err)
	}

	log.InfoContext(ctx, "loading snapshot", slog.String("from", d.String()), slog.String("bucket", bucket))

	loader, err := newLoader(ctx, config.Config, log)
	if err != nil {
		return err
	}

	params, err := json.Marshal(snapshot.LoadParams{
		OutputBucket: bucket,
		OutputPrefix: prefix,
		Year:         d.Year,
		Month:        d.Month,
		Parallelism:  parallelism,
	})

	if err != nil {
		return err
	}

	out, err := newHandler(loader)(ctx, InputEvent{Action: "load_snapshot", Params: params})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
