// Package render draws the puzzle with Ebitengine: it cuts circular discs
// out of the source image, caches them per radius, and blits them rotated
// onto an offscreen frame that the game blits to the screen.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/loganfranken/Circle-Puzzle/internal/puzzle"
)

var background = color.RGBA{R: 18, G: 20, B: 28, A: 255}

// Canvas implements puzzle.Surface on an offscreen ebiten image. The disc
// cache is keyed by rounded radius; ring radii are fixed for a puzzle's
// lifetime, so each disc is cut exactly once.
type Canvas struct {
	frame  *ebiten.Image
	source *ebiten.Image
	discs  map[int]*ebiten.Image
}

// NewCanvas creates a canvas of the given pixel size drawing slices of source.
func NewCanvas(width, height int, source *ebiten.Image) *Canvas {
	frame := ebiten.NewImage(width, height)
	frame.Fill(background)
	return &Canvas{
		frame:  frame,
		source: source,
		discs:  map[int]*ebiten.Image{},
	}
}

// Frame returns the offscreen image holding the last painted frame.
func (c *Canvas) Frame() *ebiten.Image { return c.frame }

// Size returns the drawable area in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases the frame back to the background color.
func (c *Canvas) Clear() {
	c.frame.Fill(background)
}

// DrawRing renders the source image clipped to the ring's circle, rotated
// by the ring's rotation about the circle center. The transform lives on a
// per-draw DrawImageOptions, so nothing leaks into later draws.
func (c *Canvas) DrawRing(r *puzzle.Ring) {
	disc := c.disc(r.Radius)
	half := float64(disc.Bounds().Dx()) / 2

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(r.Rotation)
	op.GeoM.Translate(r.X, r.Y)
	c.frame.DrawImage(disc, op)
}

// disc returns the source image cropped to a circle of the given radius,
// with the image's own center aligned to the circle's center. The circular
// clip is realized as an alpha mask composited with destination-in.
func (c *Canvas) disc(radius float64) *ebiten.Image {
	key := int(math.Round(radius))
	if d, ok := c.discs[key]; ok {
		return d
	}

	size := key * 2
	d := ebiten.NewImage(size, size)

	sb := c.source.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(size-sb.Dx())/2, float64(size-sb.Dy())/2)
	d.DrawImage(c.source, op)

	mask := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(mask, float32(size)/2, float32(size)/2, float32(radius), color.White, true)
	mop := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	d.DrawImage(mask, mop)
	mask.Deallocate()

	c.discs[key] = d
	return d
}
