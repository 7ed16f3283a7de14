package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/Monte-10/ryanair-labs/config"
	"github.com/Monte-10/ryanair-labs/snapshot"
	"log/slog"
)

type InputEvent struct {
	Action string          `json:"action"`
	Params json.RawMessage `json:"params"`
}

type action[IN any, OUT any] interface {
	Handle(ctx context.Context, params IN) (OUT, error)
}

func newLoader(ctx context.Context, a config.Accessor, log *slog.Logger) (*snapshot.Loader, error) {
	s3c, err := a.S3Client(ctx)
	if err != nil {
		return nil, err
	}

	rc, err := a.RyanairClient()
	if err != nil {
		return nil, err
	}

	return snapshot.NewLoader(s3c, rc, log), nil
}

func newHandler(loader action[snapshot.LoadParams, snapshot.LoadOutput]) func(ctx context.Context, event InputEvent) (json.RawMessage, error) {
	return func(ctx context.Context, event InputEvent) (json.RawMessage, error) {
		switch event.Action {
		case "load_snapshot":
			return handle(ctx, loader, event.Params)
		}

		return nil, fmt.Errorf("unsupported action: %v", event.Action)
	}
}

func handle[IN any, OUT any](ctx context.Context, act action[IN, OUT], params json.RawMessage) (json.RawMessage, error) {
	var input IN
	if err := json.Unmarshal(params, &input); err != nil {
		return nil, err
	}

	output, err := act.Handle(ctx, input)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(output)
	if err != nil {
		return nil, err
	}

	return b, nil
}
