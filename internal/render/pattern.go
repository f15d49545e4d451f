package render

import (
	"image"
	"image/color"
	"math"
)

const patternSpokes = 12

// Pattern generates the default source picture: an HSV wheel with radial
// brightness bands and darkened spokes. Hue follows the angle and value
// steps with the radius, so every ring misalignment is visible even before
// the player opens a real image.
func Pattern(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	maxDist := center * math.Sqrt2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			angle := math.Atan2(dy, dx) + math.Pi
			dist := math.Hypot(dx, dy)

			hue := angle / (2 * math.Pi) * 360
			value := 0.55 + 0.35*math.Mod(dist/maxDist*8, 1)

			// Darken thin spokes so angular position reads at a glance.
			spoke := math.Mod(angle*patternSpokes/(2*math.Pi), 1)
			if spoke < 0.06 {
				value *= 0.35
			}

			r, g, b := hsvToRGB(hue, 0.8, value)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// hsvToRGB converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
