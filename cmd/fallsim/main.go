package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/phanxgames/fallsim"
	"github.com/phanxgames/fallsim/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	title      string
	width      int
	height     int
	showFPS    bool
	debug      bool
	ticks      int
	dt         float64
	force      bool
)

const defaultConfigPath = "fallsim.yaml"

// main runs the root command and exits with status 1 if it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd registers the window, headless, replay and config commands.
// Flags bind to the package-level vars, so each call resets them to their
// defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fallsim",
		Short:         "verlet integration toy: one polygon falling under gravity",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "window width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "window height in pixels")
	rootCmd.Flags().StringVar(&title, "title", config.DefaultTitle, "window title")
	rootCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS/TPS readout")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log per-frame timings to stderr")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "integrate fixed timesteps without a window and plot the fall",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	headlessCmd.Flags().IntVar(&ticks, "ticks", 60, "number of update ticks")
	headlessCmd.Flags().Float64Var(&dt, "dt", 1.0/60.0, "seconds per update tick")

	replayCmd := &cobra.Command{
		Use:   "replay [script.json]",
		Short: "dispatch a tick script without a window",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config to a yaml file (default " + defaultConfigPath + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(headlessCmd, replayCmd, configCmd)
	return rootCmd
}

// loadConfig reads --config when given, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("fps") {
		cfg.ShowFPS = showFPS
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newPresenter builds the solver and presenter described by cfg.
func newPresenter(cfg *config.Config, diag io.Writer) *fallsim.Presenter {
	solver := fallsim.NewSolverWithOptions(
		mgl64.Vec2{cfg.Gravity[0], cfg.Gravity[1]},
		float64(cfg.Width),
		fallsim.WithUnitsAcross(cfg.UnitsAcross),
	)
	p := fallsim.NewPresenter(solver)
	p.Background = toColor(cfg.Background)
	p.Foreground = toColor(cfg.Foreground)
	p.Diag = diag
	return p
}

func toColor(c []float64) fallsim.Color {
	return fallsim.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := newPresenter(cfg, os.Stderr)
	return fallsim.Run(p, fallsim.RunConfig{
		Title:        cfg.Title,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Resizable:    cfg.Resizable,
		ExitOnEscape: cfg.ExitOnEscape,
		ShowFPS:      cfg.ShowFPS,
		Debug:        cfg.Debug,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", ticks)
	}
	if dt < 0 {
		return fmt.Errorf("dt must not be negative, got %v", dt)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := newPresenter(cfg, io.Discard)
	heights := trajectory(p, ticks, dt)

	out := cmd.OutOrStdout()
	graph := asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("body 0 height (units), dt=%gs", dt)),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	vp := fallsim.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	fmt.Fprintln(out, summary(p.Solver(), vp, float64(ticks)*dt))
	return nil
}

// trajectory advances p n times by dt and returns body 0's vertical
// position after each tick.
func trajectory(p *fallsim.Presenter, n int, dt float64) []float64 {
	heights := make([]float64, 0, n)
	for range n {
		p.Update(dt)
		bodies := p.Solver().Bodies()
		if len(bodies) == 0 {
			heights = append(heights, 0)
			continue
		}
		heights = append(heights, bodies[0].Current[1])
	}
	return heights
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read tick script: %w", err)
	}
	script, err := fallsim.LoadTickScript(data)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPresenter(cfg, out)
	canvas := &countingCanvas{}
	if err := p.Replay(script, canvas); err != nil {
		return err
	}

	elapsed := 0.0
	vp := fallsim.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	for _, t := range script {
		switch t.Kind {
		case fallsim.TickUpdate:
			elapsed += t.Dt
		case fallsim.TickResize:
			vp = fallsim.Viewport{Width: t.Width, Height: t.Height}
		}
	}

	fmt.Fprintf(out, "ticks: %d | frames: %d | polygons: %d\n", len(script), canvas.frames, canvas.polygons)
	fmt.Fprintln(out, summary(p.Solver(), vp, elapsed))
	return nil
}

// runConfigInit saves the defaults, merged with --config and size flags, so
// they can be edited and passed back with --config.
func runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath
	if len(args) == 1 {
		path = args[0]
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config init: %s already exists, use --force to overwrite", path)
		}
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("config init: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
