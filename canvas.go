package fallsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the drawing backend a render tick writes to.
type Canvas interface {
	// Clear fills the whole frame with c.
	Clear(c Color)
	// FillPolygon fills the polygon with c after translating every vertex by
	// translate. All coordinates are in pixels.
	FillPolygon(c Color, vertices []mgl64.Vec2, translate mgl64.Vec2)
}

// ImageCanvas draws onto an Ebitengine image, usually the screen.
type ImageCanvas struct {
	Target    *ebiten.Image
	AntiAlias bool

	op ebiten.DrawTrianglesOptions
}

// NewImageCanvas wraps target with anti-aliasing enabled.
func NewImageCanvas(target *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{Target: target, AntiAlias: true}
}

// Clear fills the target with c.
func (ic *ImageCanvas) Clear(c Color) {
	ic.Target.Fill(c.toRGBA())
}

// FillPolygon fan-triangulates the polygon and submits it in one
// DrawTriangles call against the shared white pixel.
func (ic *ImageCanvas) FillPolygon(c Color, vertices []mgl64.Vec2, translate mgl64.Vec2) {
	verts, inds := buildPolygonFan(vertices, translate, c)
	if len(inds) == 0 {
		return
	}
	ic.op = ebiten.DrawTrianglesOptions{AntiAlias: ic.AntiAlias}
	ic.Target.DrawTriangles(verts, inds, ensureWhitePixel(), &ic.op)
}

// whitePixelImage is the shared source texture for every polygon. Ebitengine
// calls Draw on a single goroutine, so lazy creation needs no lock.
var whitePixelImage *ebiten.Image

// ensureWhitePixel creates whitePixelImage on first use.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
