package gamemath

// ContactKind classifies the result of a shape overlap test.
type ContactKind int

const (
	// Separated means the shapes do not overlap (touching counts as separated).
	Separated ContactKind = iota
	// Penetrating means the shapes overlap and the Penetration is valid.
	Penetrating
	// Degenerate means the shapes overlap but no separating direction exists
	// (coincident centers, or a circle center lying on its closest box point).
	Degenerate
)

func (k ContactKind) String() string {
	switch k {
	case Separated:
		return "separated"
	case Penetrating:
		return "penetrating"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// Penetration describes how two shapes overlap: Normal is a unit vector
// pointing out of the second shape toward the first, Depth is the overlap
// distance along it.
type Penetration struct {
	Normal Vec2
	Depth  float64
}

// AabbOverlap reports whether two axis-aligned boxes, each given by its
// minimum corner and size, overlap on both axes. Touching edges do not
// count as an overlap.
func AabbOverlap(posA, sizeA, posB, sizeB Vec2) bool {
	return posA.X < posB.X+sizeB.X &&
		posA.X+sizeA.X > posB.X &&
		posA.Y < posB.Y+sizeB.Y &&
		posA.Y+sizeA.Y > posB.Y
}

// ClosestPointOnAabb clamps point componentwise into [boxPos, boxPos+boxSize].
func ClosestPointOnAabb(point, boxPos, boxSize Vec2) Vec2 {
	return Vec2{
		X: ClampFloat(point.X, boxPos.X, boxPos.X+boxSize.X),
		Y: ClampFloat(point.Y, boxPos.Y, boxPos.Y+boxSize.Y),
	}
}

// CircleAabbPenetration tests a circle against a box using the clamped
// closest point. On Penetrating the normal points from the box toward the
// circle center and Depth is radius minus the center's distance to the box.
// A center that sits on or inside the box is Degenerate: the caller decides
// what to do with it.
func CircleAabbPenetration(center Vec2, radius float64, boxPos, boxSize Vec2) (Penetration, ContactKind) {
	closest := ClosestPointOnAabb(center, boxPos, boxSize)
	diff := center.Sub(closest)
	dist := diff.Len()
	if dist >= radius {
		return Penetration{}, Separated
	}
	n, ok := diff.Normalize()
	if !ok {
		return Penetration{}, Degenerate
	}
	return Penetration{Normal: n, Depth: radius - dist}, Penetrating
}

// CircleCircleOverlap tests circle A against circle B. On Penetrating the
// normal points from B toward A and Depth is the sum of radii minus the
// center distance. Coincident centers are Degenerate.
func CircleCircleOverlap(centerA Vec2, radiusA float64, centerB Vec2, radiusB float64) (Penetration, ContactKind) {
	diff := centerA.Sub(centerB)
	dist := diff.Len()
	sum := radiusA + radiusB
	if dist >= sum {
		return Penetration{}, Separated
	}
	n, ok := diff.Normalize()
	if !ok {
		return Penetration{}, Degenerate
	}
	return Penetration{Normal: n, Depth: sum - dist}, Penetrating
}
