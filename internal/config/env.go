package config

import (
	"fmt"
	"strconv"

	"drag-threshold/internal/threshold"
)

const envPrefix = "DRAG_THRESHOLD_"

const (
	EnvDistance      = envPrefix + "DISTANCE"
	EnvUnits         = envPrefix + "UNITS"
	EnvBaseDPI       = envPrefix + "BASE_DPI"
	EnvBaseThreshold = envPrefix + "BASE_THRESHOLD"
	EnvMinPixels     = envPrefix + "MIN_PIXELS"
	EnvDebug         = envPrefix + "DEBUG"
	EnvScreenDPI     = envPrefix + "SCREEN_DPI"
	EnvLogLevel      = "LOG_LEVEL"
)

type lookupFunc func(key string) (string, bool)

// applyEnv overlays environment variables on s. Malformed values are errors
// rather than silently ignored.
func applyEnv(s *Settings, lookup lookupFunc) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvDistance, &s.Threshold.Distance},
		{EnvBaseDPI, &s.Threshold.BaseDPI},
		{EnvBaseThreshold, &s.Threshold.BaseThreshold},
		{EnvScreenDPI, &s.ScreenDPI},
	}
	for _, f := range floats {
		if v, ok := lookup(f.key); ok && v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	if v, ok := lookup(EnvUnits); ok && v != "" {
		units, err := threshold.ParseUnits(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvUnits, err)
		}
		s.Threshold.Units = units
	}

	if v, ok := lookup(EnvMinPixels); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMinPixels, err)
		}
		s.Threshold.MinThresholdPixels = parsed
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		s.Threshold.Debug = parsed
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = v
	}

	return nil
}
