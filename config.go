package hvsampledata

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// settings are the resolved runtime knobs for the locator. Precedence per
// field: environment variable, then config file, then default.
//
// The config file lives at <user config dir>/hvsampledata/config.yaml and is
// optional. Environment variables: HVSAMPLEDATA_CACHE_DIR,
// HVSAMPLEDATA_BASE_URL, HVSAMPLEDATA_TIMEOUT (seconds).
type settings struct {
	// CacheDir holds downloaded and materialized dataset files. Defaults to
	// <user cache dir>/hvsampledata.
	CacheDir string `yaml:"cache_dir"`

	// BaseURL, when set, replaces the scheme and host of every remote
	// dataset URL. Meant for mirrors and tests.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds a single download. Zero means 120.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// loadSettings resolves settings fresh for each request. The config file is
// tiny and requests are infrequent; rereading keeps the library free of
// mutable package state.
func loadSettings() (settings, error) {
	var s settings

	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "hvsampledata", "config.yaml")
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No config file is the common case.
		case err != nil:
			return settings{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &s); err != nil {
				return settings{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("HVSAMPLEDATA_CACHE_DIR"); v != "" {
		s.CacheDir = v
	}
	if v := os.Getenv("HVSAMPLEDATA_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("HVSAMPLEDATA_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return settings{}, fmt.Errorf("parse HVSAMPLEDATA_TIMEOUT %q: %w", v, err)
		}
		s.TimeoutSeconds = secs
	}

	if s.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return settings{}, fmt.Errorf("resolve user cache dir: %w", err)
		}
		s.CacheDir = filepath.Join(base, "hvsampledata")
	}
	if s.TimeoutSeconds == 0 {
		s.TimeoutSeconds = 120
	}

	return s, nil
}

// httpClient builds the download client. Cancellation beyond the timeout is
// inherited from the request context.
func (s settings) httpClient() *http.Client {
	return &http.Client{Timeout: time.Duration(s.TimeoutSeconds) * time.Second}
}
