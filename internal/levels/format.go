package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/beat-arcade/internal/core"
)

// File is the YAML layout of a level file.
type File struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	BPM         float64        `yaml:"bpm"`
	StartTime   float64        `yaml:"start_time"`
	Length      float64        `yaml:"length"`
	Checkpoints []float64      `yaml:"checkpoints"`
	Song        string         `yaml:"song"`
	Obstacles   []ObstacleSpec `yaml:"obstacles"`
}

// ObstacleSpec describes one obstacle. Which fields apply depends on Kind;
// optional timings left out keep the obstacle's defaults.
type ObstacleSpec struct {
	At   float64 `yaml:"at"`
	Kind string  `yaml:"kind"`

	// Repeat places Repeat extra copies, Every beats apart.
	Repeat int     `yaml:"repeat"`
	Every  float64 `yaml:"every"`

	Start *Point `yaml:"start"`
	End   *Point `yaml:"end"`

	Warn      *float64 `yaml:"warn"`
	Grow      *float64 `yaml:"grow"`
	Lifetime  *float64 `yaml:"lifetime"`
	Shrink    *float64 `yaml:"shrink"`
	Leave     *float64 `yaml:"leave"`
	Thickness *float64 `yaml:"thickness"`
	Flash     *float64 `yaml:"flash"`

	Shake float64 `yaml:"shake"`
	Jerk  *Point  `yaml:"jerk"`

	// bomb
	RadiusPerBeat    float64 `yaml:"radius_per_beat"`
	Projectiles      int     `yaml:"projectiles"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`

	// circle
	Position *VecProvider `yaml:"position"`
	Radius   float64      `yaml:"radius"`

	// rectangle and generator
	Center   *VecProvider    `yaml:"center"`
	Size     *VecProvider    `yaml:"size"`
	Rotation *ScalarProvider `yaml:"rotation"`
	Interval float64         `yaml:"interval"`

	SpawnedLifetime float64 `yaml:"spawned_lifetime"`
	SpawnedWarn     float64 `yaml:"spawned_warn"`

	// foreground, background
	Color *ColorProvider `yaml:"color"`

	// shake
	Amount float64 `yaml:"amount"`
}

// Point is an [x, y] pair.
type Point core.Vec2

// UnmarshalYAML accepts a two element sequence.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: %w: point needs 2 values, got %d", node.Line, ErrInvalid, len(xy))
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

// Vec returns the point as a vector.
func (p Point) Vec() core.Vec2 {
	return core.Vec2(p)
}

// VecProvider is a vector provider. A bare [x, y] is a constant.
type VecProvider struct {
	Const     *Point        `yaml:"const"`
	Velocity  *VelocitySpec `yaml:"velocity"`
	Oscillate *VecOscSpec   `yaml:"oscillate"`
	Offset    float64       `yaml:"offset"`
}

// VelocitySpec is a straight line motion.
type VelocitySpec struct {
	Start    Point `yaml:"start"`
	Velocity Point `yaml:"velocity"`
}

// VecOscSpec moves around Center, X along a sine and Y along a cosine, so
// equal amplitudes trace a circle.
type VecOscSpec struct {
	Center    Point   `yaml:"center"`
	Amplitude Point   `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Phase     float64 `yaml:"phase"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *VecProvider) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var p Point
		if err := node.Decode(&p); err != nil {
			return err
		}
		*v = VecProvider{Const: &p}
		return nil
	}
	type plain VecProvider
	return node.Decode((*plain)(v))
}

// ScalarProvider is a number provider. A bare number is a constant.
type ScalarProvider struct {
	Const     *float64       `yaml:"const"`
	Linear    *LinearSpec    `yaml:"linear"`
	Oscillate *ScalarOscSpec `yaml:"oscillate"`
	Offset    float64        `yaml:"offset"`
}

// LinearSpec is Start + Rate*beat.
type LinearSpec struct {
	Start float64 `yaml:"start"`
	Rate  float64 `yaml:"rate"`
}

// ScalarOscSpec is Center + Amplitude*sin(2π*beat/Period + Phase).
type ScalarOscSpec struct {
	Center    float64 `yaml:"center"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Phase     float64 `yaml:"phase"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ScalarProvider) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*s = ScalarProvider{Const: &f}
		return nil
	}
	type plain ScalarProvider
	return node.Decode((*plain)(s))
}

// ColorProvider is a colour provider. A bare string is a hex constant.
type ColorProvider struct {
	Hex     string       `yaml:"const"`
	Flash   *FlashSpec   `yaml:"flash"`
	Sinebow *SinebowSpec `yaml:"sinebow"`
	Offset  float64      `yaml:"offset"`
}

// FlashSpec configures a flashing palette.
type FlashSpec struct {
	Timings    []float64 `yaml:"timings"`
	Background bool      `yaml:"background"`
	Palette    []string  `yaml:"palette"`
}

// SinebowSpec cycles through the rainbow, Speed radians per beat.
type SinebowSpec struct {
	Speed float64  `yaml:"speed"`
	Phase float64  `yaml:"phase"`
	Alpha *float64 `yaml:"alpha"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorProvider) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = ColorProvider{Hex: node.Value}
		return nil
	}
	type plain ColorProvider
	return node.Decode((*plain)(c))
}
