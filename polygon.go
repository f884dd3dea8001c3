package fallsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// buildPolygonFan generates vertices and indices for a fan-triangulated
// polygon translated by offset and tinted with c (premultiplied).
// N vertices, 3*(N-2) indices. Fewer than 3 points yield nothing.
//
// The fan is exact for any polygon whose vertices are all visible from
// vertex 0, which includes convex polygons and the default body shape.
func buildPolygonFan(points []mgl64.Vec2, offset mgl64.Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	r, g, b, a := c.premultiplied()
	cr, cg, cb, ca := float32(r), float32(g), float32(b), float32(a)

	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p[0] + offset[0]),
			DstY: float32(p[1] + offset[1]),
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}
