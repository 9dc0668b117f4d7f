package config

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, domain.ZoomWeekBand, cfg.Zoom)
	assert.Equal(t, 8, cfg.ScrollFrames)
	assert.Equal(t, 10.0, cfg.CellPx)
	assert.False(t, cfg.LogEvents)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GANTT_DB", "/tmp/test.db")
	t.Setenv("GANTT_ZOOM", "month")
	t.Setenv("GANTT_TODAY", "2025-09-20")
	t.Setenv("GANTT_LOG_EVENTS", "true")
	t.Setenv("GANTT_SCROLL_FRAMES", "12")
	t.Setenv("GANTT_CELL_PX", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, domain.ZoomMonthBand, cfg.Zoom)
	assert.Equal(t, domain.MustParseDate("2025-09-20"), cfg.Today)
	assert.Equal(t, domain.MustParseDate("2025-09-20"), cfg.TodayOrNow())
	assert.True(t, cfg.LogEvents)
	assert.Equal(t, 12, cfg.ScrollFrames)
	assert.Equal(t, 5.0, cfg.CellPx)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("GANTT_DB", "/tmp/test.db")
	t.Setenv("GANTT_ZOOM", "fortnight")
	t.Setenv("GANTT_SCROLL_FRAMES", "-3")
	t.Setenv("GANTT_CELL_PX", "zero")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.ZoomWeekBand, cfg.Zoom)
	assert.Equal(t, 8, cfg.ScrollFrames)
	assert.Equal(t, 10.0, cfg.CellPx)
}

func TestLoadConfig_BadTodayIsAnError(t *testing.T) {
	t.Setenv("GANTT_DB", "/tmp/test.db")
	t.Setenv("GANTT_TODAY", "tomorrow")

	_, err := LoadConfig()
	assert.Error(t, err)
}
