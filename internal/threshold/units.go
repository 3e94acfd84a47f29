package threshold

import (
	"fmt"
	"strconv"
	"strings"
)

// Units selects how Config.Distance is interpreted.
type Units int

const (
	Inches Units = iota
	Centimeters
	PixelsScaledToCanvas
	PixelsRelativeToBase
)

var unitNames = map[Units]string{
	Inches:               "INCHES",
	Centimeters:          "CM",
	PixelsScaledToCanvas: "PIXELS_SCALED_TO_CANVAS",
	PixelsRelativeToBase: "PIXELS_RELATIVE_TO_BASE",
}

// AllUnits lists the recognized units in declaration order.
func AllUnits() []Units {
	return []Units{Inches, Centimeters, PixelsScaledToCanvas, PixelsRelativeToBase}
}

func (u Units) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Units(%d)", int(u))
}

// Known reports whether u is one of the recognized units.
func (u Units) Known() bool {
	_, ok := unitNames[u]
	return ok
}

// ParseUnits accepts a unit name (case-insensitive, "-" or "_" separated)
// or its numeric value. Numeric values outside the recognized set are
// returned as-is so that newer configurations still load.
func ParseUnits(s string) (Units, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Units(n), nil
	}

	key := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	switch key {
	case "IN", "INCH":
		return Inches, nil
	case "CENTIMETERS", "CENTIMETER":
		return Centimeters, nil
	}
	for u, name := range unitNames {
		if name == key {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown drag threshold units %q", s)
}

func (u Units) MarshalText() ([]byte, error) {
	if !u.Known() {
		return []byte(strconv.Itoa(int(u))), nil
	}
	return []byte(u.String()), nil
}

func (u *Units) UnmarshalText(text []byte) error {
	parsed, err := ParseUnits(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
