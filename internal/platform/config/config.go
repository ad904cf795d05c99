package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFetchTimeout bounds every remote request. A slow conference API is
// surfaced as a timeout instead of an endless spinner.
const DefaultFetchTimeout = 8 * time.Second

// EventConfig identifies one conference instance and its remote endpoints.
type EventConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	SpeakersURL string `yaml:"speakers_url"`
	SessionsURL string `yaml:"sessions_url"`
	SponsorsURL string `yaml:"sponsors_url"`
	FeedbackURL string `yaml:"feedback_url"`
}

// Config is the top-level application configuration.
type Config struct {
	Event        EventConfig
	DataDir      string
	DBPath       string
	FetchTimeout time.Duration
	LogLevel     string
}

type fileConfig struct {
	Event          EventConfig `yaml:"event"`
	DataDir        string      `yaml:"data_dir"`
	FetchTimeoutMS int         `yaml:"fetch_timeout_ms"`
	LogLevel       string      `yaml:"log_level"`
}

// Load reads the YAML config at path and fills in defaults. The event id and
// speaker/session endpoints are required; everything else has a fallback.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return fromFileConfig(fc)
}

func fromFileConfig(fc fileConfig) (Config, error) {
	if strings.TrimSpace(fc.Event.ID) == "" {
		return Config{}, fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(fc.Event.SpeakersURL) == "" || strings.TrimSpace(fc.Event.SessionsURL) == "" {
		return Config{}, fmt.Errorf("event speakers_url and sessions_url are required")
	}

	dataDir := fc.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".confmate")
	}

	timeout := DefaultFetchTimeout
	if fc.FetchTimeoutMS > 0 {
		timeout = time.Duration(fc.FetchTimeoutMS) * time.Millisecond
	}

	level := fc.LogLevel
	if level == "" {
		level = "info"
	}

	return Config{
		Event:        fc.Event,
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "confmate.db"),
		FetchTimeout: timeout,
		LogLevel:     level,
	}, nil
}
