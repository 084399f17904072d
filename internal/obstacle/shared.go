package obstacle

import (
	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

// Shared collects the effects obstacles produce during one level tick.
// The level creates a fresh buffer per tick and applies it after every
// obstacle has been updated and swept.
type Shared struct {
	shake      float64
	jerk       core.Vec2
	spawned    []*Obstacle
	foreground provider.Provider[core.Color]
	background provider.Provider[core.Color]
}

// NewShared returns an empty buffer.
func NewShared() *Shared {
	return &Shared{}
}

// AddShake adds to the camera shake for this tick.
func (s *Shared) AddShake(amount float64) {
	s.shake += amount
}

// AddJerk adds to the camera jerk for this tick.
func (s *Shared) AddJerk(v core.Vec2) {
	s.jerk = s.jerk.Add(v)
}

// Spawn queues a new obstacle. Its Offset is relative to the current global
// beat and is re-anchored when the level appends it.
func (s *Shared) Spawn(o *Obstacle) {
	s.spawned = append(s.spawned, o)
}

// SetForeground replaces the level foreground. The last call in a tick wins.
func (s *Shared) SetForeground(p provider.Provider[core.Color]) {
	s.foreground = p
}

// SetBackground replaces the level background. The last call in a tick wins.
func (s *Shared) SetBackground(p provider.Provider[core.Color]) {
	s.background = p
}

// Shake returns the shake accumulated this tick.
func (s *Shared) Shake() float64 { return s.shake }

// Jerk returns the jerk accumulated this tick.
func (s *Shared) Jerk() core.Vec2 { return s.jerk }

// Spawned returns the queued obstacles in spawn order.
func (s *Shared) Spawned() []*Obstacle { return s.spawned }

// Foreground returns the foreground override, or nil.
func (s *Shared) Foreground() provider.Provider[core.Color] { return s.foreground }

// Background returns the background override, or nil.
func (s *Shared) Background() provider.Provider[core.Color] { return s.background }
