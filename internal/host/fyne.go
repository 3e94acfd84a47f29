// Package host adapts a Fyne application to the drag threshold component:
// window canvases become resolvable canvases and the canvas scale gives the
// screen density.
package host

import (
	"drag-threshold/internal/canvas"

	"fyne.io/fyne/v2"
)

// BaselineDPI is the density Fyne maps to a canvas scale of 1.0.
const BaselineDPI = 120.0

// Canvas exposes a Fyne canvas as a canvas.Canvas. Fyne canvases always
// render on top of the window, never in world space.
type Canvas struct {
	fyne.Canvas
}

func (c Canvas) ScaleFactor() float64 {
	return float64(c.Canvas.Scale())
}

func (c Canvas) RenderMode() canvas.RenderMode {
	return canvas.ScreenSpaceOverlay
}

// WindowLister is satisfied by fyne.Driver.
type WindowLister interface {
	AllWindows() []fyne.Window
}

// OwnWindow finds the canvas of the window the component lives in.
func OwnWindow(w fyne.Window) canvas.DescendantFinder {
	return canvas.DescendantFunc(func() canvas.Canvas {
		if w == nil || w.Canvas() == nil {
			return nil
		}
		return Canvas{w.Canvas()}
	})
}

// Scene lists the canvases of every open window.
func Scene(lister WindowLister) canvas.SceneProvider {
	return canvas.SceneFunc(func() []canvas.Canvas {
		if lister == nil {
			return nil
		}
		windows := lister.AllWindows()
		canvases := make([]canvas.Canvas, 0, len(windows))
		for _, w := range windows {
			if c := w.Canvas(); c != nil {
				canvases = append(canvases, Canvas{c})
			}
		}
		return canvases
	})
}

// NewResolver builds the standard lookup for a component hosted in w.
func NewResolver(w fyne.Window, lister WindowLister) *canvas.Resolver {
	return canvas.NewResolver(OwnWindow(w), Scene(lister))
}

// Display reports screen density. Fyne does not expose physical DPI, so it
// is derived from the canvas scale unless Override is set.
type Display struct {
	Canvas   fyne.Canvas
	Override float64
}

func (d Display) ScreenDPI() float64 {
	if d.Override > 0 {
		return d.Override
	}
	if d.Canvas == nil {
		return BaselineDPI
	}
	scale := float64(d.Canvas.Scale())
	if scale <= 0 {
		return BaselineDPI
	}
	return scale * BaselineDPI
}
