package puzzle

import "image"

// Image is the opaque handle to the decoded source picture. Only its
// dimensions matter to the model; rendering is the Surface's business.
type Image interface {
	Bounds() image.Rectangle
}

// Ring is one concentric circular band of the puzzle. Rotation is in
// radians and accumulates without bound; drawing is periodic in 2π so
// callers never need to normalize it.
type Ring struct {
	X, Y     float64
	Radius   float64
	Image    Image
	Rotation float64
}

// NewRing creates a ring centered at (x, y). The caller guarantees
// radius > 0; see New for the fail-fast construction path.
func NewRing(x, y, radius float64, img Image, rotation float64) *Ring {
	return &Ring{X: x, Y: y, Radius: radius, Image: img, Rotation: rotation}
}

// ContainsPoint reports whether (px, py) lies strictly inside the ring's
// circle. Compares squared distances to avoid a square root; points exactly
// on the boundary are outside.
func (r *Ring) ContainsPoint(px, py float64) bool {
	dx := px - r.X
	dy := py - r.Y
	return dx*dx+dy*dy < r.Radius*r.Radius
}
