package game

import (
	"math"

	"github.com/vovakirdan/beat-arcade/internal/collide"
	"github.com/vovakirdan/beat-arcade/internal/core"
)

// ScreenCanvas rasterises arena shapes onto a region of a Screen. A cell is
// painted when a small circle at its centre touches the shape, using the
// same predicates as collision, so what is drawn is what hits.
type ScreenCanvas struct {
	screen *core.Screen
	area   core.Rect
	camera core.Vec2
	cell   core.Vec2 // arena units per cell
	sample float64   // probe radius at each cell centre
}

// NewScreenCanvas maps the whole arena onto area. camera shifts the view:
// a positive X moves the arena left on screen.
func NewScreenCanvas(dst *core.Screen, area core.Rect, camera core.Vec2) *ScreenCanvas {
	w, h := max(area.W, 1), max(area.H, 1)
	cell := core.ArenaSize().Mul(core.V(1/float64(w), 1/float64(h)))
	return &ScreenCanvas{
		screen: dst,
		area:   area,
		camera: camera,
		cell:   cell,
		sample: math.Min(cell.X, cell.Y) / 2,
	}
}

// CellCenter returns the arena position at the centre of screen cell (x, y).
func (c *ScreenCanvas) CellCenter(x, y int) core.Vec2 {
	return core.V(
		(float64(x-c.area.X)+0.5)*c.cell.X,
		(float64(y-c.area.Y)+0.5)*c.cell.Y,
	).Add(c.camera)
}

// CellAt returns the screen cell containing arena position p.
func (c *ScreenCanvas) CellAt(p core.Vec2) (x, y int) {
	local := p.Sub(c.camera)
	return c.area.X + int(math.Floor(local.X/c.cell.X)), c.area.Y + int(math.Floor(local.Y/c.cell.Y))
}

// fill paints every cell of the area whose centre lies within the arena
// bounding box [lo, hi] and passes hit.
func (c *ScreenCanvas) fill(lo, hi core.Vec2, color core.Color, hit func(p core.Vec2, r float64) bool) {
	if color.A <= 0 {
		return
	}
	pad := core.V(c.sample, c.sample)
	x0, y0 := c.CellAt(lo.Sub(pad))
	x1, y1 := c.CellAt(hi.Add(pad))
	x0, y0 = max(x0, c.area.X), max(y0, c.area.Y)
	x1, y1 = min(x1, c.area.Right()-1), min(y1, c.area.Bottom()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if hit(c.CellCenter(x, y), c.sample) {
				c.screen.Paint(x, y, color)
			}
		}
	}
}

// Circle implements obstacle.Canvas.
func (c *ScreenCanvas) Circle(center core.Vec2, radius float64, color core.Color) {
	if !(radius > 0) {
		return
	}
	r := core.V(radius, radius)
	c.fill(center.Sub(r), center.Add(r), color, func(p core.Vec2, pr float64) bool {
		return collide.CircleCircle(p, pr, center, radius)
	})
}

// RotatedRect implements obstacle.Canvas. Draw rotation is the negation of
// the collision rotation, matching Rectangle.Collides.
func (c *ScreenCanvas) RotatedRect(center, size core.Vec2, rotation float64, color core.Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	half := size.Scale(0.5).Length()
	r := core.V(half, half)
	c.fill(center.Sub(r), center.Add(r), color, func(p core.Vec2, pr float64) bool {
		return collide.CircleRectangle(p, pr, center, size, -rotation)
	})
}

// Line implements obstacle.Canvas.
func (c *ScreenCanvas) Line(start, end core.Vec2, thickness float64, color core.Color) {
	if thickness <= 0 {
		return
	}
	center, size, _ := core.RectifyLine(start, end, thickness)
	half := size.Scale(0.5).Length()
	r := core.V(half, half)
	c.fill(center.Sub(r), center.Add(r), color, func(p core.Vec2, pr float64) bool {
		return collide.CircleLine(p, pr, start, end, thickness)
	})
}

// Mark writes a glyph at the cell containing p, keeping the cell background.
func (c *ScreenCanvas) Mark(p core.Vec2, glyph rune, fg core.Color) {
	x, y := c.CellAt(p)
	if !c.area.Contains(x, y) {
		return
	}
	cell := c.screen.GetCell(x, y)
	cell.Rune = glyph
	cell.Fg = fg.Over(cell.Bg)
	c.screen.SetCell(x, y, cell)
}
