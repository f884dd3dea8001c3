package fallsim

import (
	"fmt"
	"io"
	"os"
)

// Presenter owns a Solver and turns ticks into physics steps and frames.
type Presenter struct {
	solver *Solver

	// Background is the color every frame is cleared to.
	Background Color
	// Foreground is the fill color of every body.
	Foreground Color

	// Diag receives diagnostic lines such as the unit size after a resize.
	// Defaults to os.Stderr; set to io.Discard to silence.
	Diag io.Writer
}

// NewPresenter creates a presenter drawing white bodies on black.
func NewPresenter(solver *Solver) *Presenter {
	return &Presenter{
		solver:     solver,
		Background: ColorBlack,
		Foreground: ColorWhite,
		Diag:       os.Stderr,
	}
}

// Solver returns the presenter's solver.
func (p *Presenter) Solver() *Solver {
	return p.solver
}

// Render clears the frame and fills every body's polygon at its screen
// position, in body order. Bodies outside the viewport are still drawn; the
// canvas clips them.
func (p *Presenter) Render(_ Viewport, c Canvas) {
	c.Clear(p.Background)
	for _, b := range p.solver.Bodies() {
		c.FillPolygon(p.Foreground, p.solver.ScreenShape(b), p.solver.ScreenPosition(b))
	}
}

// Resize rescales the simulation to the new window width. Height is unused.
func (p *Presenter) Resize(width, height float64) {
	p.solver.Resize(width)
	if p.Diag != nil {
		_, _ = fmt.Fprintf(p.Diag, "[fallsim] unit size: %v\n", p.solver.UnitSize())
	}
}

// Update advances the simulation by dt seconds.
func (p *Presenter) Update(dt float64) {
	p.solver.Update(dt)
}

// Dispatch routes a single tick to Render, Update or Resize.
func (p *Presenter) Dispatch(t Tick, c Canvas) error {
	switch t.Kind {
	case TickRender:
		p.Render(t.Viewport, c)
	case TickUpdate:
		p.Update(t.Dt)
	case TickResize:
		p.Resize(t.Width, t.Height)
	default:
		return fmt.Errorf("dispatch tick: unknown kind %d", t.Kind)
	}
	return nil
}

// Replay dispatches ticks in order and stops at the first error.
func (p *Presenter) Replay(ticks []Tick, c Canvas) error {
	for i, t := range ticks {
		if err := p.Dispatch(t, c); err != nil {
			return fmt.Errorf("replay tick %d: %w", i, err)
		}
	}
	return nil
}
