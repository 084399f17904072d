package obstacle

import "github.com/vovakirdan/beat-arcade/internal/core"

// Canvas is the draw sink obstacles render into. Coordinates are arena
// units; colours may be translucent.
type Canvas interface {
	// Line draws a segment with flat caps.
	Line(start, end core.Vec2, thickness float64, c core.Color)
	// Circle draws a filled circle.
	Circle(center core.Vec2, radius float64, c core.Color)
	// RotatedRect draws a filled rectangle of size centred at center and
	// turned by rotation radians.
	RotatedRect(center, size core.Vec2, rotation float64, c core.Color)
}
