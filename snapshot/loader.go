package snapshot

import (
	"context"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/common/adapt"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

type Source interface {
	interconnections.RoutesProvider
	interconnections.SchedulesProvider
}

type LoadParams struct {
	OutputBucket string     `json:"outputBucket"`
	OutputPrefix string     `json:"outputPrefix"`
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Parallelism  int        `json:"parallelism"`
}

type LoadOutput struct {
	Routes    int   `json:"routes"`
	Schedules int64 `json:"schedules"`
}

// Loader copies the routes and the monthly schedules of every searchable
// route from a Source into a bucket.
type Loader struct {
	s3c adapt.S3Putter
	src Source
	log *slog.Logger
}

func NewLoader(s3c adapt.S3Putter, src Source, log *slog.Logger) *Loader {
	return &Loader{
		s3c: s3c,
		src: src,
		log: log,
	}
}

func (l *Loader) Handle(ctx context.Context, params LoadParams) (LoadOutput, error) {
	routes, err := l.src.Routes(ctx)
	if err != nil {
		return LoadOutput{}, err
	}

	if err = adapt.S3PutJson(ctx, l.s3c, params.OutputBucket, RoutesKey(params.OutputPrefix), routes); err != nil {
		return LoadOutput{}, err
	}

	var schedules atomic.Int64
	seen := make(map[[2]string]struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(params.Parallelism, 1))

	for _, r := range interconnections.FilterRoutes(routes) {
		pair := [2]string{r.AirportFrom, r.AirportTo}
		if _, ok := seen[pair]; ok {
			continue
		}

		seen[pair] = struct{}{}
		g.Go(func() error {
			schedule, err := l.src.Schedule(gctx, r.AirportFrom, r.AirportTo, params.Year, params.Month)
			if ryanair.StatusCode(err) == http.StatusNotFound {
				// not operated this month, the repo reads the absent object as empty
				l.log.DebugContext(gctx, "schedule not found", slog.String("departure", r.AirportFrom), slog.String("arrival", r.AirportTo))
				return nil
			}

			if err != nil {
				return err
			}

			if schedule.Days == nil {
				return nil
			}

			key := ScheduleKey(params.OutputPrefix, r.AirportFrom, r.AirportTo, params.Year, params.Month)
			if err := adapt.S3PutJson(gctx, l.s3c, params.OutputBucket, key, schedule); err != nil {
				return err
			}

			schedules.Add(1)
			l.log.DebugContext(gctx, "stored schedule", slog.String("key", key))

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return LoadOutput{}, err
	}

	out := LoadOutput{
		Routes:    len(routes),
		Schedules: schedules.Load(),
	}

	l.log.InfoContext(
		ctx,
		"snapshot loaded",
		slog.String("bucket", params.OutputBucket),
		slog.Int("routes", out.Routes),
		slog.Int64("schedules", out.Schedules),
	)

	return out, nil
}
