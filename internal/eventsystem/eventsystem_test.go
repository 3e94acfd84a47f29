package eventsystem

import "testing"

func TestSetPixelDragThreshold(t *testing.T) {
	es := New()
	if got := es.PixelDragThreshold(); got != DefaultPixelDragThreshold {
		t.Fatalf("Expected default threshold %d, got %d", DefaultPixelDragThreshold, got)
	}

	var notified []int
	es.OnChange(func(pixels int) { notified = append(notified, pixels) })

	es.SetPixelDragThreshold(64)
	es.SetPixelDragThreshold(-3)

	if got := es.PixelDragThreshold(); got != 0 {
		t.Errorf("Negative threshold should clamp to 0, got %d", got)
	}
	if len(notified) != 2 || notified[0] != 64 || notified[1] != 0 {
		t.Errorf("Unexpected change notifications: %v", notified)
	}
}

func TestIsDrag(t *testing.T) {
	es := New()
	es.SetPixelDragThreshold(5)

	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"Still", 0, 0, false},
		{"Short", 3, 3, false},
		{"Exactly on threshold", 3, 4, true},
		{"Long", -10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := es.IsDrag(tt.dx, tt.dy); got != tt.want {
				t.Errorf("IsDrag(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestSetterFunc(t *testing.T) {
	var got int
	var setter DragThresholdSetter = SetterFunc(func(pixels int) { got = pixels })
	setter.SetPixelDragThreshold(26)
	if got != 26 {
		t.Errorf("Expected 26, got %d", got)
	}
}
