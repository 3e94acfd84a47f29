package threshold

import "fmt"

const (
	DefaultDistance           = 0.2
	DefaultUnits              = PixelsRelativeToBase
	DefaultBaseDPI            = 160.0
	DefaultBaseThreshold      = 1.0
	DefaultMinThresholdPixels = 5

	// CentimetersPerInch converts Centimeters distances to inches.
	CentimetersPerInch = 2.54
)

// Config is the static drag threshold configuration, built once at startup.
type Config struct {
	// Distance is the threshold in Units. Ignored by PixelsRelativeToBase.
	Distance float64
	Units    Units

	// BaseDPI and BaseThreshold describe the reference density used by
	// PixelsRelativeToBase: BaseThreshold pixels at BaseDPI.
	BaseDPI       float64
	BaseThreshold float64

	// MinThresholdPixels floors the PixelsRelativeToBase result.
	MinThresholdPixels int

	// Debug enables the diagnostic line emitted after each update.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Distance:           DefaultDistance,
		Units:              DefaultUnits,
		BaseDPI:            DefaultBaseDPI,
		BaseThreshold:      DefaultBaseThreshold,
		MinThresholdPixels: DefaultMinThresholdPixels,
	}
}

// Validate rejects values that cannot describe a real threshold. Unknown
// units are not rejected here; Compute reports them as ErrUnknownUnit.
func (c Config) Validate() error {
	if c.Distance < 0 {
		return fmt.Errorf("drag threshold distance must not be negative: %v", c.Distance)
	}
	if c.BaseDPI <= 0 {
		return fmt.Errorf("base DPI must be positive: %v", c.BaseDPI)
	}
	if c.BaseThreshold < 0 {
		return fmt.Errorf("base drag threshold must not be negative: %v", c.BaseThreshold)
	}
	if c.MinThresholdPixels < 0 {
		return fmt.Errorf("minimum drag threshold must not be negative: %d", c.MinThresholdPixels)
	}
	return nil
}
