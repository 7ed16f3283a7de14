//go:build lambda

package main

import (
	"context"
	"github.com/Monte-10/ryanair-labs/config"
	"github.com/aws/aws-lambda-go/lambda"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	loader, err := newLoader(ctx, config.Config, log)
	if err != nil {
		panic(err)
	}

	lambda.StartWithOptions(newHandler(loader), lambda.WithContext(ctx))
}
