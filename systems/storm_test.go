package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/snowfall/parameter"
)

func TestStormClamping(t *testing.T) {
	tests := []struct {
		name    string
		windMax float64
		seed    int64
	}{
		{"Default wind", 0.5, 1},
		{"Wide wind", 2.0, 2},
		{"Narrow wind", 0.05, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(tt.seed))
			storm := NewStorm(rng, tt.windMax, 1, parameter.DefaultStormFactor)

			for i := 0; i < 10000; i++ {
				storm.Advance()
				if storm.Factor < parameter.StormFactorMin || storm.Factor > parameter.StormFactorMax {
					t.Fatalf("Factor %v escaped clamp range at step %d", storm.Factor, i)
				}
				if math.Abs(storm.Wind) > tt.windMax+1e-12 {
					t.Fatalf("Wind %v exceeded max %v at step %d", storm.Wind, tt.windMax, i)
				}
			}
		})
	}
}

func TestStormFixedInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	storm := NewStorm(rng, 0.5, 5, 1.0)

	// Frames below the threshold only count up
	for i := 0; i < 5; i++ {
		storm.Advance()
		if storm.Factor != 1.0 {
			t.Fatalf("Factor changed before threshold, frame %d", i)
		}
	}
	if storm.Frames() != 5 {
		t.Fatalf("Expected 5 counted frames, got %d", storm.Frames())
	}

	// The threshold frame steps factor by exactly one increment
	storm.Advance()
	diff := math.Abs(storm.Factor - 1.0)
	if math.Abs(diff-parameter.StormFactorStep) > 1e-12 {
		t.Errorf("Expected a %v step, factor moved to %v", parameter.StormFactorStep, storm.Factor)
	}
	if storm.Frames() != 0 {
		t.Errorf("Expected frame counter reset, got %d", storm.Frames())
	}
}

func TestStormRandomThresholdBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	storm := NewStorm(rng, 0.5, 0, 1.0)

	for i := 0; i < 500; i++ {
		if storm.resetThreshold < 1 || storm.resetThreshold > parameter.StormIntervalMax {
			t.Fatalf("Threshold %d outside [1,%d]", storm.resetThreshold, parameter.StormIntervalMax)
		}
		// Burn through to the next re-roll
		for storm.Frames() < storm.resetThreshold {
			storm.Advance()
		}
		storm.Advance()
	}
}

func TestStormReset(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	t.Run("Fixed initial factor", func(t *testing.T) {
		storm := NewStorm(rng, 0.5, 10, 1.3)
		for i := 0; i < 100; i++ {
			storm.Advance()
		}
		storm.Reset()
		if storm.Factor != 1.3 {
			t.Errorf("Expected factor 1.3 after reset, got %v", storm.Factor)
		}
		if storm.Wind != 0 {
			t.Errorf("Expected zero wind after reset, got %v", storm.Wind)
		}
		if storm.Frames() != 0 {
			t.Errorf("Expected zero frames after reset, got %d", storm.Frames())
		}
	})

	t.Run("Randomized initial factor", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			storm := NewStorm(rng, 0.5, 10, 0)
			if storm.Factor < parameter.StormFactorMin || storm.Factor > parameter.StormFactorMax {
				t.Fatalf("Random initial factor %v outside clamp range", storm.Factor)
			}
		}
	})
}
