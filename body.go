package fallsim

import "github.com/go-gl/mathgl/mgl64"

// PointForce is a constant force acting on a Body. Origin is where the force
// is applied in body-local units; only DirMag contributes to translation.
type PointForce struct {
	Origin mgl64.Vec2
	DirMag mgl64.Vec2
}

// Body is a point mass with a polygon attached for rendering.
//
// Velocity is never stored. Verlet integration derives it from the
// difference between Current and Previous.
type Body struct {
	Current  mgl64.Vec2
	Previous mgl64.Vec2

	// Shape holds the polygon vertices in body-local units. It is fixed for
	// the lifetime of the body.
	Shape []mgl64.Vec2

	// Mass scales Forces into acceleration. A body with zero mass ignores
	// its forces; gravity applies regardless of mass.
	Mass   float64
	Forces []PointForce

	acceleration mgl64.Vec2
}

// NewBody creates a body at rest at pos with the given shape and unit mass.
func NewBody(pos mgl64.Vec2, shape []mgl64.Vec2) *Body {
	pts := make([]mgl64.Vec2, len(shape))
	copy(pts, shape)
	return &Body{
		Current:  pos,
		Previous: pos,
		Shape:    pts,
		Mass:     1,
	}
}

// Accelerate adds a to the acceleration accumulated for the current tick.
func (b *Body) Accelerate(a mgl64.Vec2) {
	b.acceleration = b.acceleration.Add(a)
}

// Acceleration returns the acceleration accumulated so far this tick. It is
// zero outside of Solver.Update.
func (b *Body) Acceleration() mgl64.Vec2 {
	return b.acceleration
}

// Velocity returns the implicit per-tick displacement, Current - Previous.
func (b *Body) Velocity() mgl64.Vec2 {
	return b.Current.Sub(b.Previous)
}

// applyForces accumulates the resultant of the body's point forces divided
// by its mass.
func (b *Body) applyForces() {
	if b.Mass == 0 || len(b.Forces) == 0 {
		return
	}
	var resultant mgl64.Vec2
	for _, f := range b.Forces {
		resultant = resultant.Add(f.DirMag)
	}
	b.Accelerate(resultant.Mul(1 / b.Mass))
}

// integrate performs one Störmer-Verlet step and consumes the accumulated
// acceleration. Previous must be snapshotted before Current is overwritten.
func (b *Body) integrate(dt float64) {
	velocity := b.Current.Sub(b.Previous)
	b.Previous = b.Current
	b.Current = b.Current.Add(velocity).Add(b.acceleration.Mul(dt * dt))
	b.acceleration = mgl64.Vec2{}
}
