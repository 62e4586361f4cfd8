package geometry

// BoundingBox is an axis-aligned box
type BoundingBox struct {
	Min, Max Vector3
}

// BoxAround creates a box centered on center with the given half extents
func BoxAround(center, halfExtents Vector3) BoundingBox {
	return BoundingBox{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Center returns the center of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether point lies inside or on the box
func (b BoundingBox) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}
