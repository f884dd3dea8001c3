package fallsim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewBody(t *testing.T) {
	shape := []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}}
	b := NewBody(mgl64.Vec2{2, 3}, shape)

	if b.Current != (mgl64.Vec2{2, 3}) || b.Previous != (mgl64.Vec2{2, 3}) {
		t.Errorf("NewBody at %v (prev %v), want (2, 3) at rest", b.Current, b.Previous)
	}
	if b.Mass != 1 {
		t.Errorf("Mass = %v, want 1", b.Mass)
	}
	if b.Velocity() != (mgl64.Vec2{}) {
		t.Errorf("Velocity() = %v, want zero", b.Velocity())
	}
	shape[0] = mgl64.Vec2{9, 9}
	if b.Shape[0] != (mgl64.Vec2{0, 0}) {
		t.Error("Shape should be copied, not aliased")
	}
}

func TestBodyAccelerateAccumulates(t *testing.T) {
	b := NewBody(mgl64.Vec2{}, nil)
	b.Accelerate(mgl64.Vec2{1, 2})
	b.Accelerate(mgl64.Vec2{0.5, -4})
	if b.Acceleration() != (mgl64.Vec2{1.5, -2}) {
		t.Errorf("Acceleration() = %v, want (1.5, -2)", b.Acceleration())
	}
}

func TestBodyIntegrate(t *testing.T) {
	tests := []struct {
		name     string
		current  mgl64.Vec2
		previous mgl64.Vec2
		accel    mgl64.Vec2
		dt       float64
		want     mgl64.Vec2
	}{
		{"at rest, no accel", mgl64.Vec2{1, 1}, mgl64.Vec2{1, 1}, mgl64.Vec2{}, 0.1, mgl64.Vec2{1, 1}},
		{"at rest, accel", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 0}, mgl64.Vec2{0, 10}, 0.5, mgl64.Vec2{0, 2.5}},
		{"moving, no accel", mgl64.Vec2{2, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{}, 0.1, mgl64.Vec2{3, 0}},
		{"moving, accel", mgl64.Vec2{2, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{4, 4}, 1, mgl64.Vec2{7, 4}},
		{"zero dt keeps velocity", mgl64.Vec2{2, 2}, mgl64.Vec2{1, 1}, mgl64.Vec2{9, 9}, 0, mgl64.Vec2{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Current: tt.current, Previous: tt.previous}
			b.Accelerate(tt.accel)
			b.integrate(tt.dt)
			if !vecApprox(b.Current, tt.want) {
				t.Errorf("Current = %v, want %v", b.Current, tt.want)
			}
			if b.Previous != tt.current {
				t.Errorf("Previous = %v, want %v", b.Previous, tt.current)
			}
			if b.Acceleration() != (mgl64.Vec2{}) {
				t.Errorf("Acceleration() = %v, want zero", b.Acceleration())
			}
		})
	}
}

func TestBodyApplyForces(t *testing.T) {
	tests := []struct {
		name   string
		mass   float64
		forces []PointForce
		want   mgl64.Vec2
	}{
		{"no forces", 1, nil, mgl64.Vec2{}},
		{"single force", 2, []PointForce{{DirMag: mgl64.Vec2{2, 4}}}, mgl64.Vec2{1, 2}},
		{"cancelling forces", 1, []PointForce{{DirMag: mgl64.Vec2{3, 0}}, {DirMag: mgl64.Vec2{-3, 0}}}, mgl64.Vec2{}},
		{"origin ignored", 1, []PointForce{{Origin: mgl64.Vec2{5, 5}, DirMag: mgl64.Vec2{1, 0}}}, mgl64.Vec2{1, 0}},
		{"zero mass", 0, []PointForce{{DirMag: mgl64.Vec2{1, 1}}}, mgl64.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Mass: tt.mass, Forces: tt.forces}
			b.applyForces()
			if !vecApprox(b.Acceleration(), tt.want) {
				t.Errorf("Acceleration() = %v, want %v", b.Acceleration(), tt.want)
			}
		})
	}
}
