package sim

import "github.com/vovakirdan/stardodge/internal/core"

// ClampResult reports which axes were clamped.
type ClampResult struct {
	ClampedX bool
	ClampedY bool
}

// Any reports whether either axis was clamped.
func (r ClampResult) Any() bool {
	return r.ClampedX || r.ClampedY
}

// Clamp confines pos so a circle of the given radius stays inside a
// width x height field whose origin is the bottom-left corner.
// Each coordinate ends up in [radius, dim-radius].
func Clamp(pos core.Vec2, radius, width, height float64) (core.Vec2, ClampResult) {
	var res ClampResult

	pos.X, res.ClampedX = clampAxis(pos.X, radius, width-radius)
	pos.Y, res.ClampedY = clampAxis(pos.Y, radius, height-radius)

	return pos, res
}

// clampAxis restricts v to [lo, hi]; the low edge wins if the range is inverted.
func clampAxis(v, lo, hi float64) (float64, bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}

// Circle is a center and radius in world units.
type Circle struct {
	Center core.Vec2
	Radius float64
}

// Overlaps reports whether two circles collide: the distance between centers
// must be strictly less than the sum of the radii, so touching circles do not.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}
