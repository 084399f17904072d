// Package collide implements the circle hit tests used by obstacles.
// The player hitbox is always a circle; obstacles are circles, axis-aligned
// boxes, rotated rectangles or thick line segments.
package collide

import "github.com/vovakirdan/beat-arcade/internal/core"

// regionTest decides a hit for one of the nine regions around a box.
type regionTest func(topLeft, size, pos core.Vec2, r float64) bool

// regions is indexed row-major: col + row*3, where 0 is left/top of the box,
// 1 overlaps it and 2 is right/bottom.
var regions = [9]regionTest{
	// top left
	func(topLeft, _, pos core.Vec2, r float64) bool {
		return topLeft.DistanceSquared(pos) <= r*r
	},
	// top
	func(topLeft, _, pos core.Vec2, r float64) bool {
		return topLeft.Y < pos.Y+r
	},
	// top right
	func(topLeft, size, pos core.Vec2, r float64) bool {
		return topLeft.Add(core.V(size.X, 0)).DistanceSquared(pos) <= r*r
	},
	// left
	func(topLeft, _, pos core.Vec2, r float64) bool {
		return topLeft.X < pos.X+r
	},
	// inside
	func(_, _, _ core.Vec2, _ float64) bool {
		return true
	},
	// right
	func(topLeft, size, pos core.Vec2, r float64) bool {
		return topLeft.X+size.X > pos.X-r
	},
	// bottom left
	func(topLeft, size, pos core.Vec2, r float64) bool {
		return topLeft.Add(core.V(0, size.Y)).DistanceSquared(pos) <= r*r
	},
	// bottom
	func(topLeft, size, pos core.Vec2, r float64) bool {
		return topLeft.Y+size.Y > pos.Y-r
	},
	// bottom right
	func(topLeft, size, pos core.Vec2, r float64) bool {
		return topLeft.Add(size).DistanceSquared(pos) <= r*r
	},
}

// CircleCircle reports whether two circles overlap. Touching counts.
func CircleCircle(pos1 core.Vec2, r1 float64, pos2 core.Vec2, r2 float64) bool {
	sum := r1 + r2
	return pos1.DistanceSquared(pos2) <= sum*sum
}

// CircleAABB reports whether a circle overlaps an axis-aligned box given by
// its top-left corner and size.
//
// The circle centre is classified into one of nine regions and only the test
// for that region runs. Corner regions test the distance to the corner point
// (touching counts), edge regions a strict half-plane test, and the interior
// always hits.
func CircleAABB(pos core.Vec2, r float64, topLeft, size core.Vec2) bool {
	idx := 0
	if pos.X > topLeft.X {
		idx++
		if pos.X >= topLeft.X+size.X {
			idx++
		}
	}
	if pos.Y > topLeft.Y {
		idx += 3
		if pos.Y >= topLeft.Y+size.Y {
			idx += 3
		}
	}
	return regions[idx](topLeft, size, pos, r)
}

// CircleRectangle reports whether a circle overlaps a rectangle of the given
// size centred at center and rotated by rotation radians.
func CircleRectangle(pos core.Vec2, r float64, center, size core.Vec2, rotation float64) bool {
	local := core.RotateAround(pos, center, rotation)
	return CircleAABB(local, r, center.Sub(size.Scale(0.5)), size)
}

// CircleLine reports whether a circle overlaps a segment drawn with the
// given thickness. The segment has flat caps.
func CircleLine(pos core.Vec2, r float64, start, end core.Vec2, thickness float64) bool {
	center, size, rotation := core.RectifyLine(start, end, thickness)
	return CircleRectangle(pos, r, center, size, rotation)
}
