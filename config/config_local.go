//go:build !lambda

package config

import (
	"cmp"
	"context"
	"github.com/Monte-10/ryanair-labs/common/adapt"
	"github.com/Monte-10/ryanair-labs/common/local"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"os"
	"path/filepath"
)

var Config = accessor{}

type accessor struct{}

func (a accessor) EchoPort() int {
	s, err := a.Settings()
	if err != nil {
		return 8080
	}

	return s.Port
}

func (accessor) Settings() (Settings, error) {
	return settings()
}

func (accessor) S3Client(ctx context.Context) (adapt.S3Client, error) {
	basePath := os.Getenv("INTERCONNECTIONS_LOCAL_S3")
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		basePath = filepath.Join(home, "Downloads", "local_s3")
	}

	return local.NewS3Client(basePath), nil
}

func (a accessor) RyanairClient() (*ryanair.Client, error) {
	s, err := a.Settings()
	if err != nil {
		return nil, err
	}

	return newRyanairClient(s), nil
}

func (a accessor) SnapshotBucket() string {
	s, _ := a.Settings()
	return cmp.Or(s.SnapshotBucket, "interconnections_snapshot")
}
