package systems

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/snowfall/components"
	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/render"
)

// Field owns the live flakes, the storm controller, and the ground
// map, and executes one simulation frame per Step call. Flakes are
// kept in spawn order; the order only fixes iteration, it carries no
// simulation meaning. Grid bounds are re-read from the surface every
// frame so a terminal resize takes effect on the next tick.
type Field struct {
	rng     *rand.Rand
	surface render.Surface
	storm   *Storm
	ground  *Ground

	flakes []*components.Flake
}

// NewField creates a snow field drawing into surface
func NewField(rng *rand.Rand, surface render.Surface, storm *Storm, ground *Ground) *Field {
	return &Field{
		rng:     rng,
		surface: surface,
		storm:   storm,
		ground:  ground,
	}
}

// Step runs one frame: storm advance, spawn gate, per-flake motion
// and landing, survivor compaction, status update.
func (f *Field) Step() {
	rows, cols := f.surface.Dimensions()

	f.storm.Advance()

	// One flake per frame at most; the gate passes more often as the
	// storm factor rises (always, once factor exceeds 1)
	if f.rng.Float64() < f.storm.Factor {
		f.spawn(cols)
	}

	survivors := f.flakes[:0]
	for _, fl := range f.flakes {
		f.drift(fl)
		f.fall(fl)

		if fl.Y < rows-1 {
			f.draw(fl, cols)
			survivors = append(survivors, fl)
			continue
		}

		// Reached the floor. Flakes blown past the pile range on the
		// final row are dropped without depositing.
		if fl.X >= 0 && fl.X <= cols-2 {
			f.ground.Pile(fl.X, fl.Y, fl.Mass)
		}
		f.release(fl)
	}
	// Drop stale tail pointers so landed flakes can be collected
	for i := len(survivors); i < len(f.flakes); i++ {
		f.flakes[i] = nil
	}
	f.flakes = survivors

	f.status()
}

// FlakeCount returns the number of airborne flakes
func (f *Field) FlakeCount() int {
	return len(f.flakes)
}

// Reset removes all flakes and their overlays and resets the storm.
// The ground is owned by the scene and reset separately.
func (f *Field) Reset() {
	for _, fl := range f.flakes {
		f.release(fl)
	}
	f.flakes = nil
	f.storm.Reset()
}

// spawn creates one flake at the top row. Mass scales with the storm
// factor, so a raging storm carries heavier flakes.
func (f *Field) spawn(cols int) {
	if cols <= 0 {
		return
	}
	mass := f.storm.Factor * float64(f.rng.Intn(parameter.SpawnMassRange+1))
	glyph, fg := core.GlyphFor(mass)
	f.flakes = append(f.flakes, &components.Flake{
		X:     f.rng.Intn(cols),
		Y:     0,
		Mass:  mass,
		Glyph: glyph,
		Fg:    fg,
	})
}

// drift applies wind bias and jitter to a flake's column.
// Jitter passes two gates: it is rarer for heavy flakes, and further
// damped to roughly two thirds probability.
func (f *Field) drift(fl *components.Flake) {
	wind := f.storm.Wind
	if wind != 0 && f.rng.Float64()*f.storm.WindMax() <= abs(wind) {
		if wind < 0 {
			fl.X--
		} else {
			fl.X++
		}
	}

	if float64(f.rng.Intn(parameter.SpawnMassRange+1)) > fl.Mass && f.rng.Intn(3) > 0 {
		if f.rng.Intn(2) == 0 {
			fl.X--
		} else {
			fl.X++
		}
	}
}

// fall advances a flake one row when its gravity gate passes. The
// gate threshold (100-mass)/3 shrinks with mass, so heavy flakes fall
// nearly every frame while the lightest hover and wander.
func (f *Field) fall(fl *components.Flake) {
	if float64(f.rng.Intn(parameter.SpawnMassRange+1)) > (parameter.SpawnMassRange-fl.Mass)/3 {
		fl.Y++
	}
}

// draw positions a flake's overlay. An off-screen column releases the
// overlay but keeps the flake: only x is bounds-checked here, so a
// flake blown out by wind may re-enter view later.
func (f *Field) draw(fl *components.Flake, cols int) {
	if fl.X < 0 || fl.X > cols-1 {
		f.release(fl)
		return
	}
	if fl.Overlay != render.NoOverlay {
		f.surface.MoveOverlay(fl.Overlay, fl.Y, fl.X)
		return
	}
	fl.Overlay = f.surface.CreateOverlay(fl.Y, fl.X, fl.Glyph, fl.Fg)
}

// release clears a flake's overlay exactly once
func (f *Field) release(fl *components.Flake) {
	if fl.Overlay == render.NoOverlay {
		return
	}
	f.surface.ReleaseOverlay(fl.Overlay)
	fl.Overlay = render.NoOverlay
}

// status refreshes the observability line; it reads simulation state
// but never feeds back into it
func (f *Field) status() {
	render.DrawStatus(f.surface, parameter.StatusRow, []render.StatusSection{
		{Label: "flakes", Value: fmt.Sprintf("%d", len(f.flakes))},
		{Label: "frame", Value: fmt.Sprintf("%d", f.storm.Frames())},
		{Label: "storm", Value: fmt.Sprintf("%.2f", f.storm.Factor)},
		{Label: "wind", Value: fmt.Sprintf("%+.2f", f.storm.Wind)},
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
