package fallsim

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default frame background.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is the default body fill.
	ColorWhite = Color{1, 1, 1, 1}
)

// premultiplied clamps every component to [0, 1] and scales R, G and B by
// alpha. Both image fills and vertex colors are submitted premultiplied.
func (c Color) premultiplied() (r, g, b, a float64) {
	a = clamp01(c.A)
	return clamp01(c.R) * a, clamp01(c.G) * a, clamp01(c.B) * a, a
}

// toRGBA converts c to the 8-bit premultiplied form image.Fill expects.
func (c Color) toRGBA() color.RGBA {
	r, g, b, a := c.premultiplied()
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: uint8(a * 255)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Viewport is the screen area a render tick draws into. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Viewport struct {
	X, Y, Width, Height float64
}

// Contains reports whether the screen point p lies inside the viewport.
// Points on the edge are considered inside.
func (v Viewport) Contains(p mgl64.Vec2) bool {
	return p[0] >= v.X && p[0] <= v.X+v.Width &&
		p[1] >= v.Y && p[1] <= v.Y+v.Height
}
