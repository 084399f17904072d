package obstacle

import (
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// SetForeground replaces the level foreground colour at its beat.
type SetForeground struct {
	Base
	Provider provider.Provider[core.Color]
}

// Update implements Behaviour.
func (s *SetForeground) Update(shared *Shared, beat float64) {
	if beat > 0 {
		shared.SetForeground(provider.Clone(s.Provider))
	}
}

// Draw does nothing.
func (s *SetForeground) Draw(Canvas, core.Color, float64) {}

// ShouldKill is true as soon as the override has been applied.
func (s *SetForeground) ShouldKill(beat float64) bool { return beat > 0 }

// Clone implements Behaviour.
func (s *SetForeground) Clone() Behaviour {
	return &SetForeground{Provider: provider.Clone(s.Provider)}
}

// SetBackground replaces the level background colour at its beat.
type SetBackground struct {
	Base
	Provider provider.Provider[core.Color]
}

// Update implements Behaviour.
func (s *SetBackground) Update(shared *Shared, beat float64) {
	if beat > 0 {
		shared.SetBackground(provider.Clone(s.Provider))
	}
}

// Draw does nothing.
func (s *SetBackground) Draw(Canvas, core.Color, float64) {}

// ShouldKill is true as soon as the override has been applied.
func (s *SetBackground) ShouldKill(beat float64) bool { return beat > 0 }

// Clone implements Behaviour.
func (s *SetBackground) Clone() Behaviour {
	return &SetBackground{Provider: provider.Clone(s.Provider)}
}

// Shake kicks the camera once.
type Shake struct {
	Base
	Amount float64
}

// Update implements Behaviour. The obstacle is only enabled for the single
// tick before it is killed, so the shake lands once.
func (s *Shake) Update(shared *Shared, _ float64) {
	shared.AddShake(s.Amount)
}

// Draw does nothing.
func (s *Shake) Draw(Canvas, core.Color, float64) {}

// ShouldKill implements Behaviour.
func (s *Shake) ShouldKill(beat float64) bool { return beat > 0 }

// Clone implements Behaviour.
func (s *Shake) Clone() Behaviour {
	c := *s
	return &c
}

// Emit releases a copy of Behaviour into the level at its beat. Behaviours
// that are always enabled, like Circle, use it to stay out of the level
// until then.
type Emit struct {
	Base
	Behaviour Behaviour
}

// Update implements Behaviour.
func (e *Emit) Update(shared *Shared, beat float64) {
	if beat > 0 {
		shared.Spawn(New(0, e.Behaviour.Clone()))
	}
}

// Draw does nothing.
func (e *Emit) Draw(Canvas, core.Color, float64) {}

// ShouldKill implements Behaviour.
func (e *Emit) ShouldKill(beat float64) bool { return beat > 0 }

// Clone implements Behaviour.
func (e *Emit) Clone() Behaviour {
	return &Emit{Behaviour: e.Behaviour.Clone()}
}
