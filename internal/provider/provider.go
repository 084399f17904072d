// Package provider defines beat-indexed value sources.
//
// Obstacles never store positions or colours directly; they hold a Provider
// and ask it for the value at the current local beat. Providers are cloned
// together with the obstacle that owns them so restarting a level never
// shares state with the previous attempt.
package provider

import "github.com/vovakirdan/beat-arcade/internal/core"

// Provider yields a value of type T for a beat.
type Provider[T any] interface {
	// Get returns the value at beat.
	Get(beat float64) T
	// Clone returns an independent copy, including any internal state.
	Clone() Provider[T]
}

// Clone copies p, returning nil for a nil provider.
func Clone[T any](p Provider[T]) Provider[T] {
	if p == nil {
		return nil
	}
	return p.Clone()
}

// Constant ignores the beat and always returns Value.
type Constant[T any] struct {
	Value T
}

// Const is shorthand for Constant[T]{Value: v}.
func Const[T any](v T) Constant[T] {
	return Constant[T]{Value: v}
}

// Get implements Provider.
func (c Constant[T]) Get(float64) T {
	return c.Value
}

// Clone implements Provider.
func (c Constant[T]) Clone() Provider[T] {
	return c
}

// Func wraps a pure function of the beat. The function must not capture
// mutable state, since clones share it.
type Func[T any] struct {
	Fn func(beat float64) T
}

// FuncOf is shorthand for Func[T]{Fn: fn}.
func FuncOf[T any](fn func(beat float64) T) Func[T] {
	return Func[T]{Fn: fn}
}

// Get implements Provider.
func (f Func[T]) Get(beat float64) T {
	return f.Fn(beat)
}

// Clone implements Provider.
func (f Func[T]) Clone() Provider[T] {
	return f
}

// Offset shifts another provider in time: Get(b) is Inner.Get(b - Offset).
type Offset[T any] struct {
	Inner  Provider[T]
	Offset float64
}

// Get implements Provider.
func (o Offset[T]) Get(beat float64) T {
	return o.Inner.Get(beat - o.Offset)
}

// Clone implements Provider.
func (o Offset[T]) Clone() Provider[T] {
	return Offset[T]{Inner: Clone(o.Inner), Offset: o.Offset}
}

// Velocity moves in a straight line: Start + Velocity*beat.
type Velocity struct {
	Start    core.Vec2
	Velocity core.Vec2
}

// Get implements Provider.
func (v Velocity) Get(beat float64) core.Vec2 {
	return v.Start.Add(v.Velocity.Scale(beat))
}

// Clone implements Provider.
func (v Velocity) Clone() Provider[core.Vec2] {
	return v
}
