package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"drag-threshold/internal/threshold"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDistance, EnvUnits, EnvBaseDPI, EnvBaseThreshold,
		EnvMinPixels, EnvDebug, EnvScreenDPI, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, threshold.DefaultConfig(), settings.Threshold)
	assert.Zero(t, settings.ScreenDPI)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "drag.yaml", `
drag_threshold: 0.3
units: cm
base_dpi: 200
base_drag_threshold: 2
min_drag_threshold: 4
debug: true
screen_dpi: 326
log_level: debug
`)

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, threshold.Config{
		Distance:           0.3,
		Units:              threshold.Centimeters,
		BaseDPI:            200,
		BaseThreshold:      2,
		MinThresholdPixels: 4,
		Debug:              true,
	}, settings.Threshold)
	assert.Equal(t, 326.0, settings.ScreenDPI)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "drag.toml", `
drag_threshold = 12.0
units = "PIXELS_SCALED_TO_CANVAS"
min_drag_threshold = 3
`)

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, settings.Threshold.Distance)
	assert.Equal(t, threshold.PixelsScaledToCanvas, settings.Threshold.Units)
	assert.Equal(t, 3, settings.Threshold.MinThresholdPixels)
	assert.Equal(t, threshold.DefaultBaseDPI, settings.Threshold.BaseDPI)
}

func TestLoadNumericUnits(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "drag.yml", "units: 0\n")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, threshold.Inches, settings.Threshold.Units)

	path = writeConfig(t, "future.yml", "units: 9\n")
	settings, err = Load(path)
	require.NoError(t, err, "unknown numeric units must still load")
	assert.Equal(t, threshold.Units(9), settings.Threshold.Units)
}

func TestLoadMigratesLegacyKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "legacy.yaml", `
m_dragThresholdInches: 0.25
fBaseDPI: 132
fBaseDT: 3
iMinDT: 6
`)

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, settings.Threshold.Distance)
	assert.Equal(t, 132.0, settings.Threshold.BaseDPI)
	assert.Equal(t, 3.0, settings.Threshold.BaseThreshold)
	assert.Equal(t, 6, settings.Threshold.MinThresholdPixels)
}

func TestCurrentKeyWinsOverLegacy(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "mixed.toml", `
drag_threshold = 0.4
m_dragThresholdInches = 0.1
iMinDT = 2
min_drag_threshold = 8
`)

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, settings.Threshold.Distance)
	assert.Equal(t, 8, settings.Threshold.MinThresholdPixels)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "drag.yaml", "drag_threshold: 0.3\nunits: cm\n")
	t.Setenv(EnvUnits, "inches")
	t.Setenv(EnvScreenDPI, "401")
	t.Setenv(EnvDebug, "true")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.3, settings.Threshold.Distance)
	assert.Equal(t, threshold.Inches, settings.Threshold.Units)
	assert.Equal(t, 401.0, settings.ScreenDPI)
	assert.True(t, settings.Threshold.Debug)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		env  map[string]string
	}{
		{name: "unknown unit name", file: "a.yaml", body: "units: furlongs\n"},
		{name: "malformed yaml", file: "b.yaml", body: "drag_threshold: [1\n"},
		{name: "unsupported extension", file: "c.json", body: "{}"},
		{name: "negative distance", file: "d.yaml", body: "drag_threshold: -1\n"},
		{name: "zero base dpi", file: "e.toml", body: "base_dpi = 0.0\n"},
		{name: "bad env float", env: map[string]string{EnvDistance: "far"}},
		{name: "bad env int", env: map[string]string{EnvMinPixels: "1.5"}},
		{name: "negative screen dpi", env: map[string]string{EnvScreenDPI: "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file, tt.body)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDebouncerRunsLastCallbackOnly(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	calls := make(chan int, 3)

	d.Trigger(func() { calls <- 1 })
	d.Trigger(func() { calls <- 2 })

	select {
	case got := <-calls:
		assert.Equal(t, 2, got)
	case <-time.After(time.Second):
		t.Fatal("debounced callback never ran")
	}

	select {
	case got := <-calls:
		t.Fatalf("unexpected extra callback %d", got)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	ran := make(chan struct{}, 1)
	d.Trigger(func() { ran <- struct{}{} })
	d.Cancel()

	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	case <-time.After(50 * time.Millisecond):
	}
}
