package core

import "math"

// Rotate rotates vec around the origin by rot radians.
// The matrix is (cos, sin; -sin, cos), which turns clockwise in y-up space
// and counter-clockwise on a y-down screen.
func Rotate(vec Vec2, rot float64) Vec2 {
	sin, cos := math.Sincos(rot)
	return Vec2{
		X: cos*vec.X + sin*vec.Y,
		Y: -sin*vec.X + cos*vec.Y,
	}
}

// RotateAround rotates vec around the point around by rot radians.
func RotateAround(vec, around Vec2, rot float64) Vec2 {
	return Rotate(vec.Sub(around), rot).Add(around)
}

// RectifyLine converts a thick segment into an oriented rectangle:
// center is the midpoint, size is (length, thickness) and rotation is the
// segment angle.
func RectifyLine(start, end Vec2, thickness float64) (center, size Vec2, rotation float64) {
	delta := end.Sub(start)
	center = start.Lerp(end, 0.5)
	size = Vec2{X: start.Distance(end), Y: thickness}
	rotation = math.Atan2(delta.Y, delta.X)
	return center, size, rotation
}

// Lerp interpolates from start towards end by factor.
func Lerp(start, end, factor float64) float64 {
	return start + (end-start)*factor
}

// TimeIndependentLerp moves start towards end so that after one unit of
// delta the remaining distance is factorPerUnit of what it was.
// Splitting delta across several calls gives the same result as one call.
func TimeIndependentLerp(start, end, factorPerUnit, delta float64) float64 {
	factor := math.Pow(factorPerUnit, delta)
	return Lerp(end, start, factor)
}

// TimeIndependentVecLerp is TimeIndependentLerp for vectors.
func TimeIndependentVecLerp(start, end Vec2, factorPerUnit, delta float64) Vec2 {
	factor := math.Pow(factorPerUnit, delta)
	return end.Lerp(start, factor)
}
