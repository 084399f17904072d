package provider

import "github.com/vovakirdan/beat-arcade/internal/core"

// FlashPalette is the default colour cycle for Flash.
var FlashPalette = []core.Color{
	core.RGBA(1, 0, 0, 1),
	core.RGBA(1, 0.5, 0, 1),
	core.RGBA(1, 1, 0, 1),
	core.RGBA(0, 1, 0, 1),
	core.RGBA(0, 0, 1, 1),
	core.RGBA(0.5, 0, 1, 1),
	core.RGBA(1, 0.5, 0.8, 1),
	core.RGBA(0.5, 0.8, 1, 1),
	core.RGBA(0.8, 0.8, 0.8, 1),
	core.RGBA(0.5, 0.25, 0, 1),
}

// Flash is a colour provider that steps through a palette on a list of beat
// timings. At each timing the colour flashes towards white and fades into
// the next palette entry over half a beat.
//
// Flash keeps a cursor into its timings, so Get mutates it. Beats are
// expected to mostly move forward; seeking backwards rewinds the cursor.
type Flash struct {
	timings    []float64
	palette    []core.Color
	background bool
	cursor     int
}

// NewFlash creates a flash provider switching colour at every timing.
// Timings must be ascending. Background flashes are mixed towards black
// instead of white so they sit behind foreground shapes.
func NewFlash(timings []float64, background bool) *Flash {
	t := make([]float64, 0, len(timings)+1)
	t = append(t, 0)
	t = append(t, timings...)
	return &Flash{
		timings:    t,
		palette:    FlashPalette,
		background: background,
		cursor:     1,
	}
}

// WithPalette replaces the colour cycle. An empty palette is ignored.
func (f *Flash) WithPalette(palette []core.Color) *Flash {
	if len(palette) > 0 {
		f.palette = append([]core.Color(nil), palette...)
	}
	return f
}

// Get implements Provider.
func (f *Flash) Get(beat float64) core.Color {
	if len(f.timings) == 0 {
		f.timings = []float64{0}
	}
	if f.cursor < 1 {
		f.cursor = 1
	}
	if len(f.palette) == 0 {
		f.palette = FlashPalette
	}

	for f.cursor > 1 && beat <= f.timings[f.cursor-1] {
		f.cursor--
	}
	for f.cursor < len(f.timings) && beat > f.timings[f.cursor] {
		f.cursor++
	}

	designator := core.White
	if f.background {
		designator = core.Black
	}
	base := f.palette[(f.cursor-1)%len(f.palette)].Mix(designator, 0.5)
	flash := designator.Mix(core.White, 0.5)

	timing := f.timings[f.cursor-1]
	return flash.Mix(base, min((beat-timing)*2, 1))
}

// Clone implements Provider.
func (f *Flash) Clone() Provider[core.Color] {
	return &Flash{
		timings:    append([]float64(nil), f.timings...),
		palette:    f.palette,
		background: f.background,
		cursor:     f.cursor,
	}
}
