// Package levels reads levels from YAML files and registers the built-in
// level files with the registry.
package levels

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/beat-arcade/internal/core"
	"github.com/vovakirdan/beat-arcade/internal/level"
	"github.com/vovakirdan/beat-arcade/internal/obstacle"
	"github.com/vovakirdan/beat-arcade/internal/provider"
)

var (
	// ErrUnknownKind is returned for an obstacle kind the parser does not know.
	ErrUnknownKind = errors.New("unknown obstacle kind")
	// ErrInvalid is returned for malformed or missing values.
	ErrInvalid = errors.New("invalid level")
)

// Kinds lists the obstacle kinds a level file may use.
var Kinds = []string{
	"slam_laser",
	"widen_laser",
	"bomb",
	"circle",
	"rectangle",
	"rectangle_generator",
	"foreground",
	"background",
	"shake",
}

// Definition is a parsed level. It can build any number of independent
// Level instances.
type Definition struct {
	Meta    level.Metadata
	builder *level.Builder
}

// Build creates a fresh level.
func (d *Definition) Build() *level.Level {
	return d.builder.Build(d.Meta)
}

// Factory returns Build as a level factory.
func (d *Definition) Factory() level.Factory {
	return d.Build
}

// Obstacles returns the number of authored obstacles, repeats included.
func (d *Definition) Obstacles() int {
	return d.builder.Len()
}

// Parse decodes a YAML level. The song field is not resolved; song is
// attached to the metadata as-is and may be nil.
func Parse(data []byte, song []byte) (*Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	return f.Definition(song)
}

// Definition converts a decoded file.
func (f *File) Definition(song []byte) (*Definition, error) {
	meta := level.Metadata{
		ID:          f.ID,
		Name:        f.Name,
		Song:        song,
		BPM:         f.BPM,
		StartTime:   f.StartTime,
		Length:      f.Length,
		Checkpoints: lo.Uniq(f.Checkpoints),
	}
	if meta.Name == "" {
		meta.Name = meta.ID
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w: %w", f.ID, ErrInvalid, err)
	}

	b := level.NewBuilder()
	for i, spec := range f.Obstacles {
		behaviour, err := spec.Behaviour()
		if err != nil {
			return nil, fmt.Errorf("levels: %s: obstacle %d (%s at %v): %w", f.ID, i, spec.Kind, spec.At, err)
		}
		b.At(spec.At, behaviour)
		for r := 1; r <= spec.Repeat; r++ {
			b.At(spec.At+float64(r)*spec.Every, behaviour.Clone())
		}
	}
	return &Definition{Meta: meta, builder: b}, nil
}

// Behaviour builds the obstacle behaviour an entry describes.
func (s *ObstacleSpec) Behaviour() (obstacle.Behaviour, error) {
	if s.Repeat < 0 || (s.Repeat > 0 && s.Every <= 0) {
		return nil, fmt.Errorf("%w: repeat needs a positive every", ErrInvalid)
	}

	switch strings.ToLower(s.Kind) {
	case "slam_laser":
		return s.slamLaser()
	case "widen_laser":
		return s.widenLaser()
	case "bomb":
		return s.bomb()
	case "circle":
		return s.circle()
	case "rectangle":
		return s.rectangle()
	case "rectangle_generator":
		return s.generator()
	case "foreground":
		p, err := s.color()
		if err != nil {
			return nil, err
		}
		return &obstacle.SetForeground{Provider: p}, nil
	case "background":
		p, err := s.color()
		if err != nil {
			return nil, err
		}
		return &obstacle.SetBackground{Provider: p}, nil
	case "shake":
		return &obstacle.Shake{Amount: s.Amount}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, s.Kind, strings.Join(Kinds, ", "))
	}
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (s *ObstacleSpec) line() (start, end core.Vec2, err error) {
	if s.Start == nil || s.End == nil {
		return start, end, fmt.Errorf("%w: %s needs start and end", ErrInvalid, s.Kind)
	}
	return s.Start.Vec(), s.End.Vec(), nil
}

func (s *ObstacleSpec) jerk() core.Vec2 {
	if s.Jerk == nil {
		return core.Vec2{}
	}
	return s.Jerk.Vec()
}

func (s *ObstacleSpec) slamLaser() (obstacle.Behaviour, error) {
	start, end, err := s.line()
	if err != nil {
		return nil, err
	}
	l := obstacle.NewSlamLaser(start, end)
	set(&l.Warn, s.Warn)
	set(&l.Lifetime, s.Lifetime)
	set(&l.Leave, s.Leave)
	set(&l.Thickness, s.Thickness)
	set(&l.Flash, s.Flash)
	l.Shake, l.Jerk = s.Shake, s.jerk()
	if l.Warn <= 0 || l.Leave <= 0 {
		return nil, fmt.Errorf("%w: warn and leave must be positive", ErrInvalid)
	}
	return l, nil
}

func (s *ObstacleSpec) widenLaser() (obstacle.Behaviour, error) {
	start, end, err := s.line()
	if err != nil {
		return nil, err
	}
	l := obstacle.NewWidenLaser(start, end)
	set(&l.Warn, s.Warn)
	set(&l.Grow, s.Grow)
	set(&l.Lifetime, s.Lifetime)
	set(&l.Shrink, s.Shrink)
	set(&l.Thickness, s.Thickness)
	set(&l.Flash, s.Flash)
	l.Shake, l.Jerk = s.Shake, s.jerk()
	if l.Warn <= 0 || l.Grow <= 0 || l.Shrink <= 0 {
		return nil, fmt.Errorf("%w: warn, grow and shrink must be positive", ErrInvalid)
	}
	return l, nil
}

func (s *ObstacleSpec) bomb() (obstacle.Behaviour, error) {
	start, end, err := s.line()
	if err != nil {
		return nil, err
	}
	b := &obstacle.Bomb{
		Start:            start,
		End:              end,
		Lifetime:         2,
		RadiusPerBeat:    s.RadiusPerBeat,
		ProjectileCount:  s.Projectiles,
		ProjectileRadius: s.ProjectileRadius,
		ProjectileSpeed:  s.ProjectileSpeed,
	}
	set(&b.Lifetime, s.Lifetime)
	if b.Lifetime <= 0 || b.ProjectileCount < 0 {
		return nil, fmt.Errorf("%w: bomb needs a positive lifetime", ErrInvalid)
	}
	return b, nil
}

func (s *ObstacleSpec) circle() (obstacle.Behaviour, error) {
	if s.Position == nil {
		return nil, fmt.Errorf("%w: circle needs a position", ErrInvalid)
	}
	pos, err := s.Position.Provider()
	if err != nil {
		return nil, err
	}
	c := &obstacle.Circle{Position: pos, Radius: s.Radius}
	set(&c.Lifetime, s.Lifetime)
	return &obstacle.Emit{Behaviour: c}, nil
}

func (s *ObstacleSpec) rectTransform() (center, size provider.Provider[core.Vec2], rotation provider.Provider[float64], err error) {
	if s.Center == nil || s.Size == nil {
		return nil, nil, nil, fmt.Errorf("%w: %s needs center and size", ErrInvalid, s.Kind)
	}
	if center, err = s.Center.Provider(); err != nil {
		return nil, nil, nil, err
	}
	if size, err = s.Size.Provider(); err != nil {
		return nil, nil, nil, err
	}
	rotation = provider.Const(0.0)
	if s.Rotation != nil {
		if rotation, err = s.Rotation.Provider(); err != nil {
			return nil, nil, nil, err
		}
	}
	return center, size, rotation, nil
}

func (s *ObstacleSpec) rectangle() (obstacle.Behaviour, error) {
	center, size, rotation, err := s.rectTransform()
	if err != nil {
		return nil, err
	}
	r := &obstacle.Rectangle{
		Center:   center,
		Size:     size,
		Rotation: rotation,
		Lifetime: 1,
		Warn:     1,
		Leave:    0.25,
	}
	set(&r.Lifetime, s.Lifetime)
	set(&r.Warn, s.Warn)
	set(&r.Leave, s.Leave)
	if r.Warn <= 0 || r.Leave <= 0 {
		return nil, fmt.Errorf("%w: warn and leave must be positive", ErrInvalid)
	}
	return r, nil
}

func (s *ObstacleSpec) generator() (obstacle.Behaviour, error) {
	center, size, rotation, err := s.rectTransform()
	if err != nil {
		return nil, err
	}
	if s.Interval <= 0 || s.SpawnedWarn <= 0 {
		return nil, fmt.Errorf("%w: generator needs positive interval and spawned_warn", ErrInvalid)
	}
	g := &obstacle.RectangleGenerator{
		Interval:        s.Interval,
		SpawnedCenter:   center,
		SpawnedSize:     size,
		SpawnedRotation: rotation,
		SpawnedLifetime: s.SpawnedLifetime,
		SpawnedWarn:     s.SpawnedWarn,
	}
	set(&g.Lifetime, s.Lifetime)
	return g, nil
}

func (s *ObstacleSpec) color() (provider.Provider[core.Color], error) {
	if s.Color == nil {
		return nil, fmt.Errorf("%w: %s needs a color", ErrInvalid, s.Kind)
	}
	return s.Color.Provider()
}

// Provider builds the vector provider.
func (v *VecProvider) Provider() (provider.Provider[core.Vec2], error) {
	var p provider.Provider[core.Vec2]
	switch {
	case v.Const != nil:
		p = provider.Const(v.Const.Vec())
	case v.Velocity != nil:
		p = provider.Velocity{Start: v.Velocity.Start.Vec(), Velocity: v.Velocity.Velocity.Vec()}
	case v.Oscillate != nil:
		o := *v.Oscillate
		if o.Period <= 0 {
			return nil, fmt.Errorf("%w: oscillate needs a positive period", ErrInvalid)
		}
		p = provider.FuncOf(func(beat float64) core.Vec2 {
			t := beat/o.Period*2*math.Pi + o.Phase
			return o.Center.Vec().Add(core.V(o.Amplitude.X*math.Sin(t), o.Amplitude.Y*math.Cos(t)))
		})
	default:
		return nil, fmt.Errorf("%w: empty vector provider", ErrInvalid)
	}
	return withOffset(p, v.Offset), nil
}

// Provider builds the scalar provider.
func (s *ScalarProvider) Provider() (provider.Provider[float64], error) {
	var p provider.Provider[float64]
	switch {
	case s.Const != nil:
		p = provider.Const(*s.Const)
	case s.Linear != nil:
		l := *s.Linear
		p = provider.FuncOf(func(beat float64) float64 {
			return l.Start + l.Rate*beat
		})
	case s.Oscillate != nil:
		o := *s.Oscillate
		if o.Period <= 0 {
			return nil, fmt.Errorf("%w: oscillate needs a positive period", ErrInvalid)
		}
		p = provider.FuncOf(func(beat float64) float64 {
			return o.Center + o.Amplitude*math.Sin(beat/o.Period*2*math.Pi+o.Phase)
		})
	default:
		return nil, fmt.Errorf("%w: empty scalar provider", ErrInvalid)
	}
	return withOffset(p, s.Offset), nil
}

// Provider builds the colour provider.
func (c *ColorProvider) Provider() (provider.Provider[core.Color], error) {
	var p provider.Provider[core.Color]
	switch {
	case c.Hex != "":
		color, err := core.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		p = provider.Const(color)
	case c.Flash != nil:
		flash := provider.NewFlash(c.Flash.Timings, c.Flash.Background)
		if len(c.Flash.Palette) > 0 {
			palette, err := parsePalette(c.Flash.Palette)
			if err != nil {
				return nil, err
			}
			flash = flash.WithPalette(palette)
		}
		p = flash
	case c.Sinebow != nil:
		sb := *c.Sinebow
		alpha := 1.0
		if sb.Alpha != nil {
			alpha = *sb.Alpha
		}
		p = provider.FuncOf(func(beat float64) core.Color {
			return core.Sinebow(beat*sb.Speed + sb.Phase).WithAlpha(alpha)
		})
	default:
		return nil, fmt.Errorf("%w: empty colour provider", ErrInvalid)
	}
	return withOffset(p, c.Offset), nil
}

func parsePalette(hexes []string) ([]core.Color, error) {
	var errs []error
	palette := lo.Map(hexes, func(h string, _ int) core.Color {
		color, err := core.ParseHex(h)
		if err != nil {
			errs = append(errs, err)
		}
		return color
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: palette: %w", ErrInvalid, errors.Join(errs...))
	}
	return palette, nil
}

func withOffset[T any](p provider.Provider[T], offset float64) provider.Provider[T] {
	if offset == 0 {
		return p
	}
	return provider.Offset[T]{Inner: p, Offset: offset}
}
