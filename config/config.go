package config

import (
	"context"
	"errors"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/common/adapt"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"github.com/Monte-10/ryanair-labs/snapshot"
	"golang.org/x/time/rate"
	"net/http"
	"os"
	"sync"
)

type Accessor interface {
	EchoPort() int
	Settings() (Settings, error)
	S3Client(ctx context.Context) (adapt.S3Client, error)
	RyanairClient() (*ryanair.Client, error)
	SnapshotBucket() string
}

var settings = sync.OnceValues(func() (Settings, error) {
	return LoadSettings(os.Getenv(EnvConfigFile), os.Getenv)
})

func newRyanairClient(s Settings) *ryanair.Client {
	opts := []ryanair.ClientOption{
		ryanair.WithRoutesUrl(s.RoutesUrl),
		ryanair.WithSchedulesUrl(s.SchedulesUrl),
	}

	if s.HttpTimeout > 0 {
		opts = append(opts, ryanair.WithHttpClient(&http.Client{Timeout: s.HttpTimeout}))
	}

	if s.RequestsPerSecond > 0 {
		opts = append(opts, ryanair.WithRateLimiter(rate.NewLimiter(rate.Limit(s.RequestsPerSecond), 1)))
	}

	return ryanair.NewClient(opts...)
}

// Providers returns the data sources a search runs against, as selected by
// the source setting.
func Providers(ctx context.Context, a Accessor) (interconnections.RoutesProvider, interconnections.SchedulesProvider, error) {
	s, err := a.Settings()
	if err != nil {
		return nil, nil, err
	}

	switch s.Source {
	case SourceApi:
		c, err := a.RyanairClient()
		if err != nil {
			return nil, nil, err
		}

		return c, c, nil

	case SourceSnapshot:
		s3c, err := a.S3Client(ctx)
		if err != nil {
			return nil, nil, err
		}

		repo := snapshot.NewRepo(s3c, s.SnapshotBucket, s.SnapshotPrefix)
		return repo, repo, nil
	}

	return nil, nil, errors.New("unsupported source: " + s.Source)
}
