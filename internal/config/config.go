// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Config holds all settings for the gantt binary.
type Config struct {
	DBPath       string
	Zoom         domain.ZoomLevel
	Today        domain.Date // zero means the local date
	LogEvents    bool
	ScrollFrames int
	CellPx       float64 // track pixels per terminal column
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left
// empty; LoadConfig fills it from the home directory.
func DefaultConfig() Config {
	return Config{
		Zoom:         domain.ZoomWeekBand,
		ScrollFrames: 8,
		CellPx:       10,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("GANTT_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".gantt", "gantt.db")
	}

	if v := os.Getenv("GANTT_ZOOM"); v != "" {
		if z, err := domain.ParseZoomLevel(v); err == nil {
			cfg.Zoom = z
		}
	}
	if v := os.Getenv("GANTT_TODAY"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return cfg, fmt.Errorf("GANTT_TODAY: %w", err)
		}
		cfg.Today = d
	}
	if v := os.Getenv("GANTT_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("GANTT_SCROLL_FRAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScrollFrames = n
		}
	}
	if v := os.Getenv("GANTT_CELL_PX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 1 {
			cfg.CellPx = f
		}
	}

	return cfg, nil
}

// TodayOrNow returns the configured "today", or the local date.
func (c Config) TodayOrNow() domain.Date {
	if c.Today.IsZero() {
		return domain.Today()
	}
	return c.Today
}
