package level

import "github.com/vovakirdan/beat-arcade/internal/obstacle"

// Builder collects obstacles for a level.
type Builder struct {
	obstacles []*obstacle.Obstacle
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an obstacle.
func (b *Builder) Add(o *obstacle.Obstacle) *Builder {
	b.obstacles = append(b.obstacles, o)
	return b
}

// At appends behaviour anchored at beat.
func (b *Builder) At(beat float64, behaviour obstacle.Behaviour) *Builder {
	return b.Add(obstacle.New(beat, behaviour))
}

// PopLast removes and returns the most recently added obstacle.
func (b *Builder) PopLast() (*obstacle.Obstacle, bool) {
	if len(b.obstacles) == 0 {
		return nil, false
	}
	last := b.obstacles[len(b.obstacles)-1]
	b.obstacles = b.obstacles[:len(b.obstacles)-1]
	return last, true
}

// Len returns the number of obstacles added so far.
func (b *Builder) Len() int {
	return len(b.obstacles)
}

// Build creates the level. The builder can keep being used; the level gets
// its own copy of every obstacle.
func (b *Builder) Build(meta Metadata) *Level {
	obstacles := make([]*obstacle.Obstacle, len(b.obstacles))
	for i, o := range b.obstacles {
		obstacles[i] = o.Clone()
	}
	return New(meta, obstacles)
}
