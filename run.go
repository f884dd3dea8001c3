package fallsim

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title        string
	Width        int
	Height       int
	Resizable    bool
	ExitOnEscape bool
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame update and draw timings to stderr.
	Debug bool
}

// DefaultRunConfig returns the stock window: "physics-sim", 1200x800,
// resizable, closed by the escape key.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:        "physics-sim",
		Width:        1200,
		Height:       800,
		Resizable:    true,
		ExitOnEscape: true,
	}
}

// withDefaults fills zero Title, Width and Height from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	return c
}

// Run opens a window and drives p until the window is closed or, with
// ExitOnEscape, the escape key is pressed. It blocks on the calling
// goroutine, which must be the main goroutine.
func Run(p *Presenter, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	g := newGame(p, cfg)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window %q: %w", cfg.Title, err)
	}
	return nil
}

// game adapts Ebitengine's Update/Draw/Layout callbacks into ticks.
type game struct {
	presenter *Presenter
	cfg       RunConfig
	canvas    *ImageCanvas

	// Last outside size seen by Layout; a change emits a resize tick.
	width, height int

	tps        int
	now        func() time.Time
	lastUpdate time.Time

	stats frameStats
}

func newGame(p *Presenter, cfg RunConfig) *game {
	return &game{
		presenter: p,
		cfg:       cfg,
		canvas:    NewImageCanvas(nil),
		width:     cfg.Width,
		height:    cfg.Height,
		tps:       ebiten.TPS(),
		now:       time.Now,
	}
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if g.cfg.ExitOnEscape && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.update()
}

func (g *game) update() error {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.presenter.Update(g.tickDelta())

	if g.cfg.Debug {
		g.stats.updateTime = time.Since(t0)
	}
	return nil
}

// tickDelta returns the wall-clock seconds since the previous update. The
// first update has no predecessor and uses one nominal tick.
func (g *game) tickDelta() float64 {
	now := g.now()
	var dt float64
	if g.lastUpdate.IsZero() {
		dt = 1 / float64(max(g.tps, 1))
	} else {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now
	return dt
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.canvas.Target = screen
	g.presenter.Render(viewportOf(screen.Bounds()), g.canvas)

	if g.cfg.ShowFPS {
		drawFPS(screen)
	}

	if g.cfg.Debug {
		g.stats.drawTime = time.Since(t0)
		g.stats.unitSize = g.presenter.Solver().UnitSize()
		g.debugLog()
	}
}

// Layout implements ebiten.Game. The screen always matches the window
// one-to-one, so a new outside size is a resize.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.presenter.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func viewportOf(r image.Rectangle) Viewport {
	return Viewport{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}
