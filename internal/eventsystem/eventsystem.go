package eventsystem

import "sync"

// DefaultPixelDragThreshold matches the stock value of common UI event systems.
const DefaultPixelDragThreshold = 10

// DragThresholdSetter receives the computed pixel threshold.
type DragThresholdSetter interface {
	SetPixelDragThreshold(pixels int)
}

// SetterFunc adapts a plain function to DragThresholdSetter.
type SetterFunc func(pixels int)

func (f SetterFunc) SetPixelDragThreshold(pixels int) { f(pixels) }

// EventSystem owns the pixel drag threshold used to tell drags from taps.
type EventSystem struct {
	mu        sync.RWMutex
	threshold int
	onChange  func(int)
}

func New() *EventSystem {
	return &EventSystem{threshold: DefaultPixelDragThreshold}
}

func (e *EventSystem) PixelDragThreshold() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.threshold
}

func (e *EventSystem) SetPixelDragThreshold(pixels int) {
	if pixels < 0 {
		pixels = 0
	}

	e.mu.Lock()
	e.threshold = pixels
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(pixels)
	}
}

// OnChange registers a callback invoked after every threshold write.
func (e *EventSystem) OnChange(fn func(pixels int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// IsDrag reports whether a pointer displacement of (dx, dy) pixels reaches
// the drag threshold.
func (e *EventSystem) IsDrag(dx, dy float64) bool {
	t := float64(e.PixelDragThreshold())
	return dx*dx+dy*dy >= t*t
}
