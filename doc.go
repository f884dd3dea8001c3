// Package fallsim is a small real-time Verlet integration toy for
// [Ebitengine]: a window shows one polygon falling under gravity.
//
// # Quick start
//
// [Run] opens the window and drives a [Presenter] until escape is pressed:
//
//	cfg := fallsim.DefaultRunConfig()
//	solver := fallsim.NewSolver(fallsim.DefaultGravity, float64(cfg.Width))
//	if err := fallsim.Run(fallsim.NewPresenter(solver), cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Units
//
// The [Solver] simulates in units of one metre. [UnitsAcross] units span the
// window width, so the pixels-per-unit scale is recomputed on every resize.
// [Solver.ScreenPosition] and [Solver.ScreenShape] map bodies to pixels.
//
// # Ticks
//
// Every frame the window delivers update, resize and render ticks, which the
// [Presenter] handles synchronously in arrival order. The same handlers are
// reachable without a window through [Presenter.Dispatch] and
// [Presenter.Replay], which is how fixed-dt runs are made reproducible:
//
//	ticks, err := fallsim.LoadTickScript(data)
//	// ...
//	err = p.Replay(ticks, canvas)
//
// [Ebitengine]: https://ebitengine.org
package fallsim
