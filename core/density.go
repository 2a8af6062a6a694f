package core

// DensityStep is one entry of an ordered pile density scale
type DensityStep struct {
	Threshold float64
	Glyph     rune
}

// DensityScale maps a pile fill fraction to a glyph.
// Entries are ordered by ascending threshold; lookup selects the
// first entry whose threshold is >= the queried fraction.
type DensityScale []DensityStep

// GlyphAt returns the glyph for fill fraction frac.
// Fractions above the last threshold clamp to the last (fullest) glyph.
func (s DensityScale) GlyphAt(frac float64) rune {
	for _, step := range s {
		if step.Threshold >= frac {
			return step.Glyph
		}
	}
	return s[len(s)-1].Glyph
}

// DefaultDensityScale returns the standard blank-to-full-block ramp.
// The eighth-block runes give the pile a smooth vertical growth.
func DefaultDensityScale() DensityScale {
	return DensityScale{
		{0.0, ' '},
		{0.03125, '.'},
		{0.0625, ':'},
		{0.125, '▁'},
		{0.25, '▂'},
		{0.375, '▃'},
		{0.5, '▄'},
		{0.625, '▅'},
		{0.75, '▆'},
		{0.875, '▇'},
		{1.0, '█'},
	}
}
