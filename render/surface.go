package render

import "github.com/lixenwraith/snowfall/core"

// OverlayID identifies a transient glyph layered above the base cells.
// The zero value means "no overlay".
type OverlayID uint64

// NoOverlay is the unset overlay handle
const NoOverlay OverlayID = 0

// Background is a static decorative scene drawn beneath the snow layer
type Background struct {
	Lines []string
	Fg    core.RGB
}

// Height returns the number of art rows
func (b Background) Height() int {
	return len(b.Lines)
}

// Surface is the character grid the simulation draws into.
// Base cells hold persistent content (background art, snow piles);
// overlays are a transient layer above them, one per airborne flake.
// Out-of-bounds coordinates are skipped at draw time, not rejected:
// wind can push an overlay off-screen and back again, and a resize
// can re-expose cells written while the grid was larger.
type Surface interface {
	// Dimensions returns the current grid size as (rows, cols)
	Dimensions() (rows, cols int)

	// SetCell writes persistent content into a base cell
	SetCell(row, col int, glyph rune, fg core.RGB)

	// CreateOverlay places a new transient glyph and returns its handle
	CreateOverlay(row, col int, glyph rune, fg core.RGB) OverlayID

	// MoveOverlay repositions an existing overlay; unknown handles are ignored
	MoveOverlay(id OverlayID, row, col int)

	// ReleaseOverlay removes an overlay; releasing twice is a no-op
	ReleaseOverlay(id OverlayID)

	// DrawBackground writes art into the base layer starting at startRow
	DrawBackground(bg Background, startRow int)

	// Clear discards all base cells; overlays are released
	// individually through their handles
	Clear()

	// Show composes base cells and overlays onto the terminal
	Show()
}
