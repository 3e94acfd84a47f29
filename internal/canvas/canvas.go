// Package canvas locates the UI canvas whose scale factor drives
// PIXELS_SCALED_TO_CANVAS thresholds.
package canvas

// RenderMode describes how a canvas is placed relative to the screen.
type RenderMode int

const (
	ScreenSpaceOverlay RenderMode = iota
	ScreenSpaceCamera
	WorldSpace
)

func (m RenderMode) String() string {
	switch m {
	case ScreenSpaceOverlay:
		return "screen-space-overlay"
	case ScreenSpaceCamera:
		return "screen-space-camera"
	case WorldSpace:
		return "world-space"
	default:
		return "unknown"
	}
}

// Canvas is the part of a host UI canvas the threshold needs.
type Canvas interface {
	ScaleFactor() float64
	RenderMode() RenderMode
}

// DescendantFinder returns the canvas attached to the component's own
// object or one of its descendants, or nil.
type DescendantFinder interface {
	FindInDescendants() Canvas
}

// SceneProvider enumerates every canvas currently in the scene.
type SceneProvider interface {
	Canvases() []Canvas
}

// DescendantFunc adapts a function to DescendantFinder.
type DescendantFunc func() Canvas

func (f DescendantFunc) FindInDescendants() Canvas { return f() }

// SceneFunc adapts a function to SceneProvider.
type SceneFunc func() []Canvas

func (f SceneFunc) Canvases() []Canvas { return f() }

// Static is a fixed canvas, for hosts that already know their scale.
type Static struct {
	Scale float64
	Mode  RenderMode
}

func (s Static) ScaleFactor() float64   { return s.Scale }
func (s Static) RenderMode() RenderMode { return s.Mode }
