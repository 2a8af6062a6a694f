package systems

import (
	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/parameter"
	"github.com/lixenwraith/snowfall/render"
)

// Ground tracks accumulated snow mass per grid cell and renders the
// pile density gradient. Cells are created on first landing and only
// cleared by Reset; mass at a cell never decreases.
type Ground struct {
	surface    render.Surface
	scale      core.DensityScale
	pileFactor float64
	cells      map[[2]int]float64
}

// NewGround creates an empty ground map drawing into surface
func NewGround(surface render.Surface, scale core.DensityScale, pileFactor float64) *Ground {
	return &Ground{
		surface:    surface,
		scale:      scale,
		pileFactor: pileFactor,
		cells:      make(map[[2]int]float64),
	}
}

// Pile deposits a landed flake at (x, y). A saturated cell (mass at
// or above CellSaturation) forwards the deposit one row up, so snow
// stacks vertically once the floor cell is full; the climb stops at
// row 0. The deposited amount is mass scaled down by the pile factor.
func (g *Ground) Pile(x, y int, mass float64) {
	for y > 0 && g.MassAt(x, y) >= parameter.CellSaturation {
		y--
	}
	if y < 0 {
		return
	}

	newMass := g.MassAt(x, y) + mass/g.pileFactor
	g.cells[[2]int{x, y}] = newMass
	g.paint(x, y, newMass)
}

// MassAt returns the accumulated mass at a cell, zero if untouched
func (g *Ground) MassAt(x, y int) float64 {
	return g.cells[[2]int{x, y}]
}

// CellCount returns the number of cells snow has landed on
func (g *Ground) CellCount() int {
	return len(g.cells)
}

// Reset discards all accumulated snow
func (g *Ground) Reset() {
	g.cells = make(map[[2]int]float64)
}

// Repaint re-emits every stored cell, used after a resize or when the
// surface was cleared for a full redraw
func (g *Ground) Repaint() {
	for pos, mass := range g.cells {
		g.paint(pos[0], pos[1], mass)
	}
}

// paint converts mass to a density glyph and a shade. The glyph
// fraction keeps growing past 1.0 and clamps to the full block; the
// shade saturates at CellSaturation so stacked cells stay white.
func (g *Ground) paint(x, y int, mass float64) {
	glyph := g.scale.GlyphAt(mass / parameter.CellSaturation)
	shade := core.ShadeFor(min(mass, parameter.CellSaturation))
	g.surface.SetCell(y, x, glyph, shade)
}
