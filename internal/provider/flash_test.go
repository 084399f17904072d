package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

func flashBase(i int, designator core.Color) core.Color {
	return FlashPalette[i%len(FlashPalette)].Mix(designator, 0.5)
}

func assertColor(t *testing.T, expected, got core.Color) {
	t.Helper()
	assert.InDelta(t, expected.R, got.R, 1e-9, "red")
	assert.InDelta(t, expected.G, got.G, 1e-9, "green")
	assert.InDelta(t, expected.B, got.B, 1e-9, "blue")
	assert.InDelta(t, expected.A, got.A, 1e-9, "alpha")
}

func TestFlashCycle(t *testing.T) {
	f := NewFlash([]float64{4, 8}, false)
	flash := core.White.Mix(core.White, 0.5)

	tests := []struct {
		name     string
		beat     float64
		expected core.Color
	}{
		{"start flashes", 0, flash},
		{"settled on first colour", 1, flashBase(0, core.White)},
		{"at the timing still first", 4, flashBase(0, core.White)},
		{"just after timing flashes", 4.0001, flash.Mix(flashBase(1, core.White), 0.0002)},
		{"quarter beat after", 4.25, flash.Mix(flashBase(1, core.White), 0.5)},
		{"settled on second colour", 6, flashBase(1, core.White)},
		{"past last timing", 20, flashBase(2, core.White)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertColor(t, tc.expected, f.Get(tc.beat))
		})
	}
}

func TestFlashBackground(t *testing.T) {
	f := NewFlash(nil, true)

	// Flash colour is black mixed halfway to white.
	assertColor(t, core.Black.Mix(core.White, 0.5), f.Get(0))
	assertColor(t, flashBase(0, core.Black), f.Get(3))
}

func TestFlashSeekBackwards(t *testing.T) {
	f := NewFlash([]float64{2, 4, 6}, false)

	assertColor(t, flashBase(3, core.White), f.Get(7))

	// Restarting at a checkpoint moves the beat back.
	assertColor(t, flashBase(1, core.White), f.Get(3))
	assert.Equal(t, 2, f.cursor)

	assertColor(t, flashBase(0, core.White), f.Get(1))
	assert.Equal(t, 1, f.cursor)
}

func TestFlashCloneKeepsCursor(t *testing.T) {
	f := NewFlash([]float64{1, 2, 3}, false)
	f.Get(2.5)

	clone := f.Clone().(*Flash)
	assert.Equal(t, f.cursor, clone.cursor)
	assert.Equal(t, f.timings, clone.timings)

	f.Get(10)
	assert.NotEqual(t, f.cursor, clone.cursor)
}

func TestFlashWithPalette(t *testing.T) {
	palette := []core.Color{core.Red, core.SkyBlue}
	f := NewFlash([]float64{1, 2}, false).WithPalette(palette)

	assertColor(t, core.Red.Mix(core.White, 0.5), f.Get(0.9))
	assertColor(t, core.SkyBlue.Mix(core.White, 0.5), f.Get(1.9))
	assertColor(t, core.Red.Mix(core.White, 0.5), f.Get(5))

	// Empty palettes are ignored.
	assert.Equal(t, f, f.WithPalette(nil))
}
