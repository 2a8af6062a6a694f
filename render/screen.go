package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snowfall/core"
)

type cell struct {
	glyph rune
	fg    core.RGB
}

type overlay struct {
	row, col int
	glyph    rune
	fg       core.RGB
}

// Screen implements Surface on a tcell screen.
// Base cells and overlays are kept in grid-independent maps so that
// content written while the terminal was larger survives a shrink and
// reappears on the next grow. All methods are driven by a single
// caller at a time (the scene serializes timer ticks against manual
// steps and resize repaints).
type Screen struct {
	screen   tcell.Screen
	base     map[[2]int]cell
	overlays map[OverlayID]*overlay
	nextID   OverlayID
}

// NewScreen wraps an initialized tcell screen
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen:   screen,
		base:     make(map[[2]int]cell),
		overlays: make(map[OverlayID]*overlay),
	}
}

// Dimensions implements Surface
func (s *Screen) Dimensions() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// SetCell implements Surface
func (s *Screen) SetCell(row, col int, glyph rune, fg core.RGB) {
	if row < 0 || col < 0 {
		return
	}
	s.base[[2]int{row, col}] = cell{glyph: glyph, fg: fg}
}

// CreateOverlay implements Surface
func (s *Screen) CreateOverlay(row, col int, glyph rune, fg core.RGB) OverlayID {
	s.nextID++
	s.overlays[s.nextID] = &overlay{row: row, col: col, glyph: glyph, fg: fg}
	return s.nextID
}

// MoveOverlay implements Surface
func (s *Screen) MoveOverlay(id OverlayID, row, col int) {
	if ov, ok := s.overlays[id]; ok {
		ov.row, ov.col = row, col
	}
}

// ReleaseOverlay implements Surface
func (s *Screen) ReleaseOverlay(id OverlayID) {
	delete(s.overlays, id)
}

// DrawBackground implements Surface. Spaces in the art are
// transparent; wide runes occupy their full cell span.
func (s *Screen) DrawBackground(bg Background, startRow int) {
	for i, line := range bg.Lines {
		col := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if r != ' ' {
				s.SetCell(startRow+i, col, r, bg.Fg)
			}
			if w < 1 {
				w = 1
			}
			col += w
		}
	}
}

// Clear implements Surface. Only the base layer is discarded:
// overlays are owned by their flakes and released through their
// handles, so a repaint does not orphan airborne flakes.
func (s *Screen) Clear() {
	s.base = make(map[[2]int]cell)
	s.screen.Clear()
}

// Show implements Surface. The whole frame is recomposed: base
// layer first, overlays above it, off-grid entries skipped.
func (s *Screen) Show() {
	rows, cols := s.Dimensions()
	s.screen.Clear()
	for pos, c := range s.base {
		if pos[0] >= rows || pos[1] >= cols {
			continue
		}
		s.screen.SetContent(pos[1], pos[0], c.glyph, nil, styleFor(c.fg))
	}
	for _, ov := range s.overlays {
		if ov.row < 0 || ov.col < 0 || ov.row >= rows || ov.col >= cols {
			continue
		}
		s.screen.SetContent(ov.col, ov.row, ov.glyph, nil, styleFor(ov.fg))
	}
	s.screen.Show()
}

// Sync forces a full terminal redraw after a resize event
func (s *Screen) Sync() {
	s.screen.Sync()
}

func styleFor(fg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
}
