//go:build lambda

package config

import (
	"cmp"
	"context"
	"github.com/Monte-10/ryanair-labs/common/adapt"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"os"
	"strconv"
	"sync"
)

var Config = &accessor{
	awsConfig: sync.OnceValues(func() (aws.Config, error) {
		return config.LoadDefaultConfig(context.Background())
	}),
}

type accessor struct {
	awsConfig func() (aws.Config, error)
}

func (*accessor) EchoPort() int {
	port, _ := strconv.Atoi(os.Getenv("AWS_LWA_PORT"))
	return cmp.Or(port, 8080)
}

func (*accessor) Settings() (Settings, error) {
	return settings()
}

func (a *accessor) S3Client(ctx context.Context) (adapt.S3Client, error) {
	cfg, err := a.awsConfig()
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg), nil
}

func (a *accessor) RyanairClient() (*ryanair.Client, error) {
	s, err := a.Settings()
	if err != nil {
		return nil, err
	}

	return newRyanairClient(s), nil
}

func (a *accessor) SnapshotBucket() string {
	s, _ := a.Settings()
	return s.SnapshotBucket
}
