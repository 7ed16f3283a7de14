package snapshot

import (
	"context"
	"fmt"
	"github.com/Monte-10/ryanair-labs/common/adapt"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"time"
)

// Repo serves routes and schedules from a snapshot previously written by
// Loader.
type Repo struct {
	s3c    adapt.S3Getter
	bucket string
	prefix string
}

func NewRepo(s3c adapt.S3Getter, bucket, prefix string) *Repo {
	return &Repo{
		s3c:    s3c,
		bucket: bucket,
		prefix: prefix,
	}
}

func (r *Repo) Routes(ctx context.Context) ([]ryanair.Route, error) {
	var routes []ryanair.Route
	if err := adapt.S3GetJson(ctx, r.s3c, r.bucket, RoutesKey(r.prefix), &routes); err != nil {
		return nil, fmt.Errorf("snapshot routes: %w", err)
	}

	return routes, nil
}

// Schedule returns an empty schedule if the snapshot has no object for the
// pair, since Loader only writes schedules of eligible routes.
func (r *Repo) Schedule(ctx context.Context, departure, arrival string, year int, month time.Month) (ryanair.Schedule, error) {
	var schedule ryanair.Schedule
	if err := adapt.S3GetJson(ctx, r.s3c, r.bucket, ScheduleKey(r.prefix, departure, arrival, year, month), &schedule); err != nil {
		if adapt.IsS3NotFound(err) {
			return ryanair.Schedule{Month: int(month)}, nil
		}

		return ryanair.Schedule{}, fmt.Errorf("snapshot schedule %s-%s %04d-%02d: %w", departure, arrival, year, month, err)
	}

	return schedule, nil
}
