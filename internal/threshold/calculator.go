// Package threshold converts a physical or density-independent drag distance
// into a device pixel count for a UI event system.
package threshold

import "math"

// Device holds the host-supplied values read fresh for every computation.
type Device struct {
	ScreenDPI float64

	// CanvasScaleFactor is nil unless a canvas was resolved.
	CanvasScaleFactor *float64
}

// WithCanvasScale returns a copy of d carrying the given canvas scale factor.
func (d Device) WithCanvasScale(scale float64) Device {
	d.CanvasScaleFactor = &scale
	return d
}

type Result struct {
	Pixels int
}

// Compute returns the pixel drag threshold for cfg on device. It has no side
// effects; a non-nil error is always a *Warning.
func Compute(cfg Config, device Device) (Result, error) {
	var pixels int

	switch cfg.Units {
	case Inches:
		pixels = ceilPixels(cfg.Distance * device.ScreenDPI)
	case Centimeters:
		pixels = ceilPixels(cfg.Distance * device.ScreenDPI / CentimetersPerInch)
	case PixelsScaledToCanvas:
		if device.CanvasScaleFactor == nil {
			return Result{}, &Warning{Units: cfg.Units, Err: ErrMissingCanvas}
		}
		pixels = ceilPixels(*device.CanvasScaleFactor * cfg.Distance)
	case PixelsRelativeToBase:
		pixels = relativeToBase(cfg, device.ScreenDPI)
	default:
		return Result{}, &Warning{Units: cfg.Units, Err: ErrUnknownUnit}
	}

	return Result{Pixels: pixels}, nil
}

func relativeToBase(cfg Config, dpi float64) int {
	pixels := 0
	if cfg.BaseDPI > 0 {
		pixels = floorPixels(cfg.BaseThreshold * dpi / cfg.BaseDPI)
	}
	if pixels < cfg.MinThresholdPixels {
		pixels = cfg.MinThresholdPixels
	}
	return pixels
}

// ceilPixels rounds up and clamps to zero; NaN yields zero.
func ceilPixels(v float64) int {
	return clampPixels(math.Ceil(v))
}

func floorPixels(v float64) int {
	return clampPixels(math.Floor(v))
}

func clampPixels(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
