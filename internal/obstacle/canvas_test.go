package obstacle

import "github.com/vovakirdan/beat-arcade/internal/core"

// drawCall records one primitive drawn on a recordingCanvas.
type drawCall struct {
	kind     string
	a, b     core.Vec2
	scalar   float64
	rotation float64
	color    core.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Line(start, end core.Vec2, thickness float64, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "line", a: start, b: end, scalar: thickness, color: color})
}

func (c *recordingCanvas) Circle(center core.Vec2, radius float64, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", a: center, scalar: radius, color: color})
}

func (c *recordingCanvas) RotatedRect(center, size core.Vec2, rotation float64, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", a: center, b: size, rotation: rotation, color: color})
}
