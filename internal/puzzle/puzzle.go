// Package puzzle holds the rotation puzzle's model: concentric image rings,
// the pointer-driven gesture state machine, and the drawing protocol against
// an abstract surface. It is free of rendering imports so the whole
// interaction core is testable without a graphics context.
package puzzle

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// DefaultRotationSpeed divides horizontal pointer travel in pixels to
// produce radians. Larger values make rotation less sensitive.
const DefaultRotationSpeed = 50

// Surface is the drawing target for a puzzle: it reports its pixel
// dimensions and renders one rotated circular slice of the source image.
// DrawRing must scope any transform it applies to that single draw.
type Surface interface {
	Size() (width, height int)
	Clear()
	DrawRing(*Ring)
}

// drag is the gesture state: Idle (active == false) or Dragging a ring.
// baseline is false until the first move after a press establishes the
// reference x position, so that move never produces a rotation jump.
type drag struct {
	active   bool
	ring     int
	baseline bool
	lastX    float64
}

// Puzzle owns an ordered ring sequence, outermost first, with strictly
// decreasing radii. Ring count and radii are fixed for the puzzle's
// lifetime; only rotations change.
type Puzzle struct {
	rings         []*Ring
	surface       Surface
	rotationSpeed float64
	drag          drag
}

// New slices img into ringCount concentric rings sized to fit the surface,
// scrambles each ring with a uniformly random rotation in [0, 2π), and
// paints the initial frame. It fails fast on a ring count below one or on
// viewport/image dimensions too small to yield a positive radius.
func New(surface Surface, img Image, ringCount int, rotationSpeed float64) (*Puzzle, error) {
	if ringCount < 1 {
		return nil, fmt.Errorf("ring count must be at least 1, got %d", ringCount)
	}
	vw, vh := surface.Size()
	b := img.Bounds()
	maxRadius := math.Min(
		math.Min(float64(vw), float64(vh)),
		math.Min(float64(b.Dx()), float64(b.Dy())),
	) / 2
	if maxRadius <= 0 {
		return nil, errors.New("viewport and image must both be larger than zero")
	}
	if rotationSpeed <= 0 {
		rotationSpeed = DefaultRotationSpeed
	}

	cx := float64(vw) / 2
	cy := float64(vh) / 2
	step := maxRadius / float64(ringCount)

	rings := make([]*Ring, 0, ringCount)
	for i := 0; i < ringCount; i++ {
		radius := maxRadius - float64(i)*step
		rings = append(rings, NewRing(cx, cy, radius, img, rand.Float64()*2*math.Pi))
	}

	p := &Puzzle{rings: rings, surface: surface, rotationSpeed: rotationSpeed}
	p.Draw()
	return p, nil
}

// Rings returns the ring sequence, outermost first.
func (p *Puzzle) Rings() []*Ring { return p.rings }

// Dragging reports whether a ring is currently grabbed.
func (p *Puzzle) Dragging() bool { return p.drag.active }

// Scramble assigns every ring a fresh random rotation and repaints.
func (p *Puzzle) Scramble() {
	for _, r := range p.rings {
		r.Rotation = rand.Float64() * 2 * math.Pi
	}
	p.Draw()
}

// PointerDown grabs the topmost ring containing (x, y). Rings are scanned
// innermost first: later rings are drawn on top, so they win where circles
// overlap. A press while a drag is already active keeps the current ring.
func (p *Puzzle) PointerDown(x, y float64) {
	if p.drag.active {
		return
	}
	for i := len(p.rings) - 1; i >= 0; i-- {
		if p.rings[i].ContainsPoint(x, y) {
			p.drag = drag{active: true, ring: i}
			return
		}
	}
}

// PointerMove rotates the grabbed ring by the horizontal travel since the
// previous move. The first move after a press only records the baseline x.
// When the pointer is on the upper half of the circle the drag direction
// visually inverts, so the delta is replaced by 2π minus itself there.
// Every effective move repaints the surface.
func (p *Puzzle) PointerMove(x, y float64) {
	if !p.drag.active {
		return
	}
	if !p.drag.baseline {
		p.drag.baseline = true
		p.drag.lastX = x
		return
	}

	dx := x - p.drag.lastX
	delta := -dx / p.rotationSpeed
	r := p.rings[p.drag.ring]
	if y < r.Y {
		delta = 2*math.Pi - delta
	}
	r.Rotation += delta
	p.drag.lastX = x
	p.Draw()
}

// PointerUp releases any grabbed ring and forgets the baseline position,
// so a stray move without a fresh press is a no-op.
func (p *Puzzle) PointerUp() {
	p.drag = drag{}
}

// Draw repaints the whole puzzle: clear, then rings outermost to innermost
// so that inner rings cover outer ones where they overlap, matching the
// hit-test precedence.
func (p *Puzzle) Draw() {
	p.surface.Clear()
	for _, r := range p.rings {
		p.surface.DrawRing(r)
	}
}
