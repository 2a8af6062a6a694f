package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snowfall/core"
)

// StatusSection is one labeled segment of the status line
type StatusSection struct {
	Label string
	Value string
}

const statusSeparator = " │ "

var (
	statusLabelFg = core.RGB{R: 80, G: 80, B: 100}
	statusValueFg = core.RGB{R: 200, G: 200, B: 220}
)

// DrawStatus renders sections left-packed on the given row, blanking
// the remainder of the row. Sections that do not fit are truncated at
// a section boundary.
func DrawStatus(s Surface, row int, sections []StatusSection) {
	_, cols := s.Dimensions()
	col := 0

	put := func(text string, fg core.RGB) {
		for _, r := range text {
			if col >= cols {
				return
			}
			s.SetCell(row, col, r, fg)
			col += max(runewidth.RuneWidth(r), 1)
		}
	}

	for i, sec := range sections {
		width := runewidth.StringWidth(sec.Label) + 1 + runewidth.StringWidth(sec.Value)
		if i > 0 {
			width += runewidth.StringWidth(statusSeparator)
		}
		if col+width > cols {
			break
		}
		if i > 0 {
			put(statusSeparator, statusLabelFg)
		}
		put(sec.Label+" ", statusLabelFg)
		put(sec.Value, statusValueFg)
	}

	for ; col < cols; col++ {
		s.SetCell(row, col, ' ', statusLabelFg)
	}
}
