// Package dragthreshold binds the threshold calculation to a host: it reads
// the device, resolves a canvas when needed and writes the result into the
// event system once per update.
package dragthreshold

import (
	"errors"

	"drag-threshold/internal/canvas"
	"drag-threshold/internal/debug"
	"drag-threshold/internal/eventsystem"
	"drag-threshold/internal/logger"
	"drag-threshold/internal/threshold"
)

const componentName = "DragThreshold"

// DPIProvider reports the device screen density in dots per inch.
type DPIProvider interface {
	ScreenDPI() float64
}

// DPIFunc adapts a function to DPIProvider.
type DPIFunc func() float64

func (f DPIFunc) ScreenDPI() float64 { return f() }

type Component struct {
	config   threshold.Config
	dpi      DPIProvider
	target   eventsystem.DragThresholdSetter
	resolver *canvas.Resolver
	logger   logger.Logger

	// canvas is the pre-assigned canvas, or the one resolved by the first
	// update that needed it.
	canvas canvas.Canvas

	// Path identifies the component in diagnostics.
	Path string
}

// Option configures optional collaborators.
type Option func(*Component)

func WithCanvas(c canvas.Canvas) Option {
	return func(comp *Component) { comp.canvas = c }
}

func WithResolver(r *canvas.Resolver) Option {
	return func(comp *Component) { comp.resolver = r }
}

func WithLogger(l logger.Logger) Option {
	return func(comp *Component) { comp.logger = l }
}

func WithPath(path string) Option {
	return func(comp *Component) { comp.Path = path }
}

func New(cfg threshold.Config, dpi DPIProvider, target eventsystem.DragThresholdSetter, opts ...Option) *Component {
	c := &Component{
		config: cfg,
		dpi:    dpi,
		target: target,
		logger: logger.NoOpLogger{},
		Path:   componentName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Component) Config() threshold.Config {
	return c.config
}

// SetConfig replaces the configuration. It does not trigger an update.
func (c *Component) SetConfig(cfg threshold.Config) {
	c.config = cfg
}

func (c *Component) Canvas() canvas.Canvas {
	return c.canvas
}

// Start performs the initial update. Warnings are logged, never returned.
func (c *Component) Start() {
	c.UpdateDragThreshold()
}

// UpdateDragThreshold computes the threshold from the current device state
// and writes it to the target. On a warning the target is left untouched.
func (c *Component) UpdateDragThreshold() (threshold.Result, error) {
	device := threshold.Device{ScreenDPI: c.dpi.ScreenDPI()}

	if c.config.Units == threshold.PixelsScaledToCanvas {
		c.canvas = c.resolver.Resolve(c.canvas)
		if c.canvas != nil {
			device = device.WithCanvasScale(c.canvas.ScaleFactor())
		}
	}

	result, err := threshold.Compute(c.config, device)
	if err != nil {
		c.warn(err)
		return result, err
	}

	if c.config.Debug && debug.DiagnosticsEnabled() {
		c.logger.Info(componentName, "configuring drag threshold", map[string]interface{}{
			"path":       c.Path,
			"distance":   c.config.Distance,
			"units":      c.config.Units.String(),
			"screen_dpi": device.ScreenDPI,
			"pixels":     result.Pixels,
		})
	}

	c.target.SetPixelDragThreshold(result.Pixels)
	return result, nil
}

func (c *Component) warn(err error) {
	fields := map[string]interface{}{
		"path":  c.Path,
		"units": c.config.Units.String(),
	}

	switch {
	case errors.Is(err, threshold.ErrMissingCanvas):
		c.logger.Warning(componentName, "units set to PIXELS_SCALED_TO_CANVAS but no canvas set or found", fields)
	case errors.Is(err, threshold.ErrUnknownUnit):
		c.logger.Warning(componentName, "unknown units value", fields)
	default:
		c.logger.Error(componentName, err, fields)
	}
}
