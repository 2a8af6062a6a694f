package parameter

import "time"

// Frame pacing
const (
	TickInterval = 90 * time.Millisecond
)

// Storm random walk
const (
	StormFactorMin  = 0.1
	StormFactorMax  = 2.0
	StormFactorStep = 0.1

	StormWindStep      = 0.05
	DefaultWindMax     = 0.5
	DefaultStormFactor = 1.0

	// Upper bound for the re-rolled reset threshold, frames
	StormIntervalMax = 100
)

// Flake mass
const (
	// Spawn mass = storm factor * uniform draw in [0, SpawnMassRange]
	SpawnMassRange = 100

	// Glyph selection thresholds, most restrictive first
	FlakeHeavyMass  = 90.0
	FlakeMediumMass = 50.0
)

// Ground accumulation
const (
	// Divisor converting flake mass into deposited pile mass
	DefaultPileFactor = 100.0

	// A cell at or above this mass is full; landing recurses one row up
	CellSaturation = 100.0
)

// Status line row (flake overlays pass over it transiently)
const StatusRow = 0
