package systems

import (
	"math/rand"

	"github.com/lixenwraith/snowfall/parameter"
)

// Storm is the process-wide intensity state machine. Factor scales
// spawn probability and spawn mass; Wind biases horizontal drift.
// Both evolve as a slow random walk: every resetThreshold frames each
// steps once up or down and the threshold is re-rolled, giving the
// storm an ebb and flow instead of abrupt jumps.
type Storm struct {
	rng *rand.Rand

	Factor float64
	Wind   float64

	windMax       float64
	fixedInterval int // 0 = re-roll randomly in [1, StormIntervalMax]
	initialFactor float64

	frames         int
	resetThreshold int
}

// NewStorm creates a storm controller. fixedInterval of zero selects
// the randomized re-roll policy; initialFactor of zero draws the
// starting factor from the clamp range.
func NewStorm(rng *rand.Rand, windMax float64, fixedInterval int, initialFactor float64) *Storm {
	s := &Storm{
		rng:           rng,
		windMax:       windMax,
		fixedInterval: fixedInterval,
		initialFactor: initialFactor,
	}
	s.Reset()
	return s
}

// Reset restores the initial factor, zero wind, and a fresh threshold
func (s *Storm) Reset() {
	s.Factor = s.initialFactor
	if s.Factor == 0 {
		span := parameter.StormFactorMax - parameter.StormFactorMin
		s.Factor = parameter.StormFactorMin + s.rng.Float64()*span
	}
	s.Wind = 0
	s.frames = 0
	s.resetThreshold = s.rollThreshold()
}

// Advance evolves the storm by one frame. On reaching the reset
// threshold, factor and wind each take one clamped coin-flip step and
// the threshold is re-rolled; otherwise only the frame counter moves.
func (s *Storm) Advance() {
	if s.frames < s.resetThreshold {
		s.frames++
		return
	}

	s.Factor = clamp(s.Factor+s.flip()*parameter.StormFactorStep,
		parameter.StormFactorMin, parameter.StormFactorMax)
	s.Wind = clamp(s.Wind+s.flip()*parameter.StormWindStep,
		-s.windMax, s.windMax)

	s.frames = 0
	s.resetThreshold = s.rollThreshold()
}

// Frames returns frames elapsed since the last re-roll
func (s *Storm) Frames() int {
	return s.frames
}

// WindMax returns the configured wind clamp magnitude
func (s *Storm) WindMax() float64 {
	return s.windMax
}

func (s *Storm) rollThreshold() int {
	if s.fixedInterval > 0 {
		return s.fixedInterval
	}
	return 1 + s.rng.Intn(parameter.StormIntervalMax)
}

func (s *Storm) flip() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
