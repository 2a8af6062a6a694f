package systems

import (
	"time"

	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/parameter"
)

// Config holds the scene tuning knobs.
// A zero Seed means "seed from the clock" at the platform layer.
type Config struct {
	// TickInterval is the wall-clock period between frames
	TickInterval time.Duration

	// PileFactor divides flake mass into deposited pile mass
	PileFactor float64

	// WindMax bounds the storm's horizontal drift bias
	WindMax float64

	// StormInterval fixes the frames between storm re-rolls;
	// zero re-rolls the threshold randomly in [1, StormIntervalMax]
	StormInterval int

	// StormFactor fixes the initial storm factor; zero draws it
	// randomly from the clamp range
	StormFactor float64

	// ShowBackground draws the decorative scene beneath the snow
	ShowBackground bool

	// Scale is the pile density glyph ramp
	Scale core.DensityScale

	Seed int64
}

// DefaultConfig returns the standard scene configuration
func DefaultConfig() Config {
	return Config{
		TickInterval:   parameter.TickInterval,
		PileFactor:     parameter.DefaultPileFactor,
		WindMax:        parameter.DefaultWindMax,
		StormFactor:    parameter.DefaultStormFactor,
		ShowBackground: true,
		Scale:          core.DefaultDensityScale(),
	}
}
