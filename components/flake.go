package components

import (
	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/render"
)

// Flake represents one airborne snow particle.
// X/Y are grid coordinates with Y growing downward. Overlay is the
// flake's exclusively owned on-screen handle: created lazily on first
// draw, moved each frame, and cleared exactly once when the flake
// lands or leaves the scene.
type Flake struct {
	X, Y int

	// Mass drives fall reliability, glyph choice, and pile deposit
	Mass float64

	Glyph rune
	Fg    core.RGB

	Overlay render.OverlayID
}
