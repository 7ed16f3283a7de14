package config

import (
	"fmt"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
	"time"
)

const (
	EnvConfigFile     = "INTERCONNECTIONS_CONFIG"
	EnvPort           = "INTERCONNECTIONS_PORT"
	EnvSource         = "INTERCONNECTIONS_SOURCE"
	EnvRoutesUrl      = "INTERCONNECTIONS_ROUTES_URL"
	EnvSchedulesUrl   = "INTERCONNECTIONS_SCHEDULES_URL"
	EnvSnapshotBucket = "INTERCONNECTIONS_SNAPSHOT_BUCKET"
	EnvSnapshotPrefix = "INTERCONNECTIONS_SNAPSHOT_PREFIX"
)

const (
	SourceApi      = "api"
	SourceSnapshot = "snapshot"
)

type Settings struct {
	Port              int           `yaml:"port" validate:"gt=0,lte=65535"`
	RoutesUrl         string        `yaml:"routesUrl" validate:"required,url"`
	SchedulesUrl      string        `yaml:"schedulesUrl" validate:"required,url"`
	Source            string        `yaml:"source" validate:"oneof=api snapshot"`
	SnapshotBucket    string        `yaml:"snapshotBucket" validate:"required_if=Source snapshot"`
	SnapshotPrefix    string        `yaml:"snapshotPrefix"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond" validate:"gte=0"`
	HttpTimeout       time.Duration `yaml:"httpTimeout" validate:"gte=0"`
}

func DefaultSettings() Settings {
	return Settings{
		Port:              8080,
		RoutesUrl:         ryanair.DefaultRoutesUrl,
		SchedulesUrl:      ryanair.DefaultSchedulesUrl,
		Source:            SourceApi,
		RequestsPerSecond: 10,
		HttpTimeout:       10 * time.Second,
	}
}

// LoadSettings applies, in order, the defaults, the yaml file at path (if
// any) and the environment, then validates the result.
func LoadSettings(path string, getenv func(string) string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}

		if err = yaml.Unmarshal(b, &s); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("env variable %s: %w", EnvPort, err)
		}

		s.Port = port
	}

	for env, field := range map[string]*string{
		EnvSource:         &s.Source,
		EnvRoutesUrl:      &s.RoutesUrl,
		EnvSchedulesUrl:   &s.SchedulesUrl,
		EnvSnapshotBucket: &s.SnapshotBucket,
		EnvSnapshotPrefix: &s.SnapshotPrefix,
	} {
		if v := getenv(env); v != "" {
			*field = v
		}
	}

	if err := validator.New().Struct(s); err != nil {
		return Settings{}, err
	}

	return s, nil
}
