package main

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/Monte-10/ryanair-labs/snapshot"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

type fakeLoader struct {
	params snapshot.LoadParams
	err    error
}

func (f *fakeLoader) Handle(ctx context.Context, params snapshot.LoadParams) (snapshot.LoadOutput, error) {
	f.params = params
	return snapshot.LoadOutput{Routes: 3, Schedules: 2}, f.err
}

func TestHandler_LoadSnapshot(t *testing.T) {
	loader := &fakeLoader{}
	out, err := newHandler(loader)(context.Background(), InputEvent{
		Action: "load_snapshot",
		Params: json.RawMessage(`{"outputBucket":"b","outputPrefix":"p/","year":2025,"month":3,"parallelism":2}`),
	})

	if !assert.NoError(t, err) {
		return
	}

	assert.JSONEq(t, `{"routes":3,"schedules":2}`, string(out))
	assert.Equal(t, snapshot.LoadParams{OutputBucket: "b", OutputPrefix: "p/", Year: 2025, Month: time.March, Parallelism: 2}, loader.params)
}

func TestHandler_Errors(t *testing.T) {
	loader := &fakeLoader{err: errors.New("boom")}
	h := newHandler(loader)

	_, err := h(context.Background(), InputEvent{Action: "load_snapshot", Params: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, loader.err)

	_, err = h(context.Background(), InputEvent{Action: "load_snapshot", Params: json.RawMessage(`[`)})
	assert.Error(t, err)

	_, err = h(context.Background(), InputEvent{Action: "unknown"})
	assert.Error(t, err)
}
