package systems

import (
	"github.com/lixenwraith/snowfall/core"
	"github.com/lixenwraith/snowfall/render"
)

// fakeSurface records surface operations for system tests
type fakeSurface struct {
	rows, cols int

	cells    map[[2]int]fakeCell
	overlays map[render.OverlayID][2]int
	nextID   render.OverlayID

	setCalls      int
	created       int
	released      int
	moved         int
	cleared       int
	shown         int
	bgDraws       int
	lastBgStart   int
	releasedEmpty int // releases of unknown handles
}

type fakeCell struct {
	glyph rune
	fg    core.RGB
}

func newFakeSurface(rows, cols int) *fakeSurface {
	return &fakeSurface{
		rows:     rows,
		cols:     cols,
		cells:    make(map[[2]int]fakeCell),
		overlays: make(map[render.OverlayID][2]int),
	}
}

func (f *fakeSurface) Dimensions() (int, int) { return f.rows, f.cols }

func (f *fakeSurface) SetCell(row, col int, glyph rune, fg core.RGB) {
	f.setCalls++
	f.cells[[2]int{row, col}] = fakeCell{glyph: glyph, fg: fg}
}

func (f *fakeSurface) CreateOverlay(row, col int, glyph rune, fg core.RGB) render.OverlayID {
	f.created++
	f.nextID++
	f.overlays[f.nextID] = [2]int{row, col}
	return f.nextID
}

func (f *fakeSurface) MoveOverlay(id render.OverlayID, row, col int) {
	if _, ok := f.overlays[id]; ok {
		f.moved++
		f.overlays[id] = [2]int{row, col}
	}
}

func (f *fakeSurface) ReleaseOverlay(id render.OverlayID) {
	if _, ok := f.overlays[id]; !ok {
		f.releasedEmpty++
		return
	}
	f.released++
	delete(f.overlays, id)
}

func (f *fakeSurface) DrawBackground(bg render.Background, startRow int) {
	f.bgDraws++
	f.lastBgStart = startRow
}

func (f *fakeSurface) Clear() {
	f.cleared++
	f.cells = make(map[[2]int]fakeCell)
}

func (f *fakeSurface) Show() { f.shown++ }

func (f *fakeSurface) glyphAt(row, col int) rune {
	return f.cells[[2]int{row, col}].glyph
}
