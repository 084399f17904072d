package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

func TestConstant(t *testing.T) {
	p := Const(core.V(3, 4))
	for _, beat := range []float64{-10, 0, 0.5, 1e6} {
		assert.Equal(t, core.V(3, 4), p.Get(beat))
	}
	assert.Equal(t, core.V(3, 4), p.Clone().Get(7))
}

func TestFunc(t *testing.T) {
	p := FuncOf(func(beat float64) float64 { return beat * 2 })
	assert.Equal(t, 4.0, p.Get(2))
	assert.Equal(t, -1.0, p.Clone().Get(-0.5))
}

func TestOffset(t *testing.T) {
	inner := FuncOf(func(beat float64) float64 { return beat })
	p := Offset[float64]{Inner: inner, Offset: 3}

	tests := []struct {
		beat, expected float64
	}{
		{3, 0},
		{5, 2},
		{0, -3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, p.Get(tc.beat), "Get(%v)", tc.beat)
	}

	nested := Offset[float64]{Inner: p, Offset: 1}
	assert.Equal(t, 0.0, nested.Get(4))
}

func TestOffsetCloneIsDeep(t *testing.T) {
	flash := NewFlash([]float64{1, 2}, false)
	p := Offset[core.Color]{Inner: flash, Offset: 0}
	clone := p.Clone()

	// Advance the original past both timings; the clone keeps its own cursor.
	p.Get(5)
	assert.Equal(t, 3, flash.cursor)

	cloned := clone.(Offset[core.Color]).Inner.(*Flash)
	assert.Equal(t, 1, cloned.cursor)
}

func TestVelocity(t *testing.T) {
	p := Velocity{Start: core.V(10, 20), Velocity: core.V(-2, 5)}

	assert.Equal(t, core.V(10, 20), p.Get(0))
	assert.Equal(t, core.V(6, 30), p.Get(2))
	assert.Equal(t, core.V(11, 17.5), p.Get(-0.5))
}

func TestCloneNil(t *testing.T) {
	var p Provider[float64]
	assert.Nil(t, Clone(p))

	require.NotNil(t, Clone[float64](Const(1.0)))
}
