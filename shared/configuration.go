package shared

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const CONFIG_PREFIX = "SPROUT"

type AppConfig struct {
	ApiBaseUrl    string `split_words:"true" default:"http://127.0.0.1:5000"`
	ApiPathPrefix string `split_words:"true" default:"/api/v1/mobile"`

	StateDir    string `split_words:"true" default:"/var/lib/sprout-mobile"`
	CacheDbPath string `split_words:"true"`

	// All "is this today" decisions are made in this timezone, never in the
	// device locale.
	Timezone string `split_words:"true" default:"Asia/Kolkata"`

	StatusListenAddr string `split_words:"true" default:"0.0.0.0:8086"`

	RefreshIntervalSeconds int `split_words:"true" default:"300"`
	ReplayIntervalSeconds  int `split_words:"true" default:"60"`
	LocationPollSeconds    int `split_words:"true" default:"10"`
	LocationPushSeconds    int `split_words:"true" default:"15"`

	SyncMaxRetries     int `split_words:"true" default:"5"`
	CacheRetentionDays int `split_words:"true" default:"30"`

	location *time.Location
}

func InitAppConfiguration() (config *AppConfig, err error) {
	config = &AppConfig{}

	if err := envconfig.Process(CONFIG_PREFIX, config); err != nil {
		return nil, fmt.Errorf("failed to parse env vars: %v", err)
	}

	if config.CacheDbPath == "" {
		config.CacheDbPath = filepath.Join(config.StateDir, "cache.db")
	}

	config.location, err = time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %v", config.Timezone, err)
	}

	return
}

// Location falls back to UTC for configs built by hand in tests.
func (c *AppConfig) Location() *time.Location {
	if c.location == nil {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return time.UTC
		}
		c.location = loc
	}
	return c.location
}

func (c *AppConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

func (c *AppConfig) ReplayInterval() time.Duration {
	return time.Duration(c.ReplayIntervalSeconds) * time.Second
}

func (c *AppConfig) LocationPollInterval() time.Duration {
	return time.Duration(c.LocationPollSeconds) * time.Second
}

func (c *AppConfig) LocationPushInterval() time.Duration {
	return time.Duration(c.LocationPushSeconds) * time.Second
}
