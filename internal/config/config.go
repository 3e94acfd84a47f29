// Package config loads the drag threshold settings from a YAML or TOML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"drag-threshold/internal/threshold"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings is everything the application reads at startup.
type Settings struct {
	Threshold threshold.Config

	// ScreenDPI overrides the host-reported density when positive.
	ScreenDPI float64

	LogLevel string
}

func Default() Settings {
	return Settings{Threshold: threshold.DefaultConfig()}
}

// fileConfig mirrors the on-disk layout. Legacy keys from earlier releases
// are accepted and folded into the current ones by migrate.
type fileConfig struct {
	DragThreshold     *float64         `yaml:"drag_threshold" toml:"drag_threshold"`
	Units             *threshold.Units `yaml:"units" toml:"units"`
	BaseDPI           *float64         `yaml:"base_dpi" toml:"base_dpi"`
	BaseDragThreshold *float64         `yaml:"base_drag_threshold" toml:"base_drag_threshold"`
	MinDragThreshold  *int             `yaml:"min_drag_threshold" toml:"min_drag_threshold"`
	Debug             *bool            `yaml:"debug" toml:"debug"`
	ScreenDPI         *float64         `yaml:"screen_dpi" toml:"screen_dpi"`
	LogLevel          *string          `yaml:"log_level" toml:"log_level"`

	LegacyDragThresholdInches *float64 `yaml:"m_dragThresholdInches" toml:"m_dragThresholdInches"`
	LegacyBaseDPI             *float64 `yaml:"fBaseDPI" toml:"fBaseDPI"`
	LegacyBaseDT              *float64 `yaml:"fBaseDT" toml:"fBaseDT"`
	LegacyMinDT               *int     `yaml:"iMinDT" toml:"iMinDT"`
}

// migrate moves legacy keys onto their current names. A current key always
// wins over its legacy alias.
func (f *fileConfig) migrate() {
	if f.DragThreshold == nil {
		f.DragThreshold = f.LegacyDragThresholdInches
	}
	if f.BaseDPI == nil {
		f.BaseDPI = f.LegacyBaseDPI
	}
	if f.BaseDragThreshold == nil {
		f.BaseDragThreshold = f.LegacyBaseDT
	}
	if f.MinDragThreshold == nil {
		f.MinDragThreshold = f.LegacyMinDT
	}
	f.LegacyDragThresholdInches = nil
	f.LegacyBaseDPI = nil
	f.LegacyBaseDT = nil
	f.LegacyMinDT = nil
}

func (f *fileConfig) apply(s *Settings) {
	if f.DragThreshold != nil {
		s.Threshold.Distance = *f.DragThreshold
	}
	if f.Units != nil {
		s.Threshold.Units = *f.Units
	}
	if f.BaseDPI != nil {
		s.Threshold.BaseDPI = *f.BaseDPI
	}
	if f.BaseDragThreshold != nil {
		s.Threshold.BaseThreshold = *f.BaseDragThreshold
	}
	if f.MinDragThreshold != nil {
		s.Threshold.MinThresholdPixels = *f.MinDragThreshold
	}
	if f.Debug != nil {
		s.Threshold.Debug = *f.Debug
	}
	if f.ScreenDPI != nil {
		s.ScreenDPI = *f.ScreenDPI
	}
	if f.LogLevel != nil {
		s.LogLevel = *f.LogLevel
	}
}

// Load reads path (if non-empty), overlays the environment and validates the
// result.
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		if err := loadFile(path, &settings); err != nil {
			return Settings{}, err
		}
	}

	if err := applyEnv(&settings, os.LookupEnv); err != nil {
		return Settings{}, err
	}

	if err := settings.Threshold.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid drag threshold config: %w", err)
	}
	if settings.ScreenDPI < 0 {
		return Settings{}, fmt.Errorf("invalid drag threshold config: screen DPI must not be negative: %v", settings.ScreenDPI)
	}

	return settings, nil
}

func loadFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	fc.migrate()
	fc.apply(settings)
	return nil
}
