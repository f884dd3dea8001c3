package fallsim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UnitsAcross is the default number of simulation units (metres) spanning
// the window width.
const UnitsAcross = 10

// DefaultGravity points down the screen at 9.8 units per second squared.
var DefaultGravity = mgl64.Vec2{0, 9.8}

// DefaultSpawn is where the seeded body starts.
var DefaultSpawn = mgl64.Vec2{5, 0}

// DefaultShape is the pentagon attached to the seeded body.
var DefaultShape = []mgl64.Vec2{
	{0, 0},
	{1, 0},
	{0.5, 1},
	{1, 2},
	{0, 2},
}

// Solver owns the simulated bodies and the mapping from simulation units to
// screen pixels. It is not safe for concurrent use.
type Solver struct {
	gravity     mgl64.Vec2
	unitsAcross float64
	unitSize    float64
	bodies      []*Body
}

// SolverOption configures a Solver created with NewSolverWithOptions.
type SolverOption func(*Solver)

// WithUnitsAcross sets how many simulation units span the window width.
// Non-positive and infinite values are ignored.
func WithUnitsAcross(n float64) SolverOption {
	return func(s *Solver) {
		if n > 0 && !math.IsInf(n, 1) {
			s.unitsAcross = n
		}
	}
}

// WithBodies replaces the seeded body with the given bodies, kept in order.
func WithBodies(bodies ...*Body) SolverOption {
	return func(s *Solver) {
		s.bodies = append([]*Body(nil), bodies...)
	}
}

// NewSolver creates a solver for a window of the given width, seeded with a
// single pentagon at DefaultSpawn.
func NewSolver(gravity mgl64.Vec2, windowWidth float64) *Solver {
	return NewSolverWithOptions(gravity, windowWidth)
}

// NewSolverWithOptions is NewSolver with options applied before the unit
// size is computed.
func NewSolverWithOptions(gravity mgl64.Vec2, windowWidth float64, opts ...SolverOption) *Solver {
	s := &Solver{
		gravity:     gravity,
		unitsAcross: UnitsAcross,
		bodies:      []*Body{NewBody(DefaultSpawn, DefaultShape)},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Resize(windowWidth)
	return s
}

// Resize recomputes the pixels-per-unit scale from the full window width.
// A zero width collapses every screen position to the origin.
func (s *Solver) Resize(windowWidth float64) {
	s.unitSize = windowWidth / s.unitsAcross
}

// Update advances every body by dt seconds in two phases: all accelerations
// are accumulated first, then every body is integrated and its acceleration
// cleared.
func (s *Solver) Update(dt float64) {
	s.applyGravity()
	s.applyForces()
	s.updatePositions(dt)
}

func (s *Solver) applyGravity() {
	for _, b := range s.bodies {
		b.Accelerate(s.gravity)
	}
}

func (s *Solver) applyForces() {
	for _, b := range s.bodies {
		b.applyForces()
	}
}

func (s *Solver) updatePositions(dt float64) {
	for _, b := range s.bodies {
		b.integrate(dt)
	}
}

// ScreenPosition returns the body's current position in pixels.
func (s *Solver) ScreenPosition(b *Body) mgl64.Vec2 {
	return b.Current.Mul(s.unitSize)
}

// ScreenShape returns the body's polygon scaled to pixels, relative to
// ScreenPosition.
func (s *Solver) ScreenShape(b *Body) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, len(b.Shape))
	for i, p := range b.Shape {
		pts[i] = p.Mul(s.unitSize)
	}
	return pts
}

// Bodies returns the simulated bodies in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Solver) Bodies() []*Body {
	return s.bodies
}

// UnitSize returns the current pixels-per-unit scale.
func (s *Solver) UnitSize() float64 {
	return s.unitSize
}

// UnitsAcross returns how many simulation units span the window width.
func (s *Solver) UnitsAcross() float64 {
	return s.unitsAcross
}

// Gravity returns the constant gravity vector.
func (s *Solver) Gravity() mgl64.Vec2 {
	return s.gravity
}
