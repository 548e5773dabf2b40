package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/siqnastee/internal/config"
	"github.com/san-kum/siqnastee/internal/export"
	"github.com/san-kum/siqnastee/internal/gui"
	"github.com/san-kum/siqnastee/internal/logging"
	"github.com/san-kum/siqnastee/internal/sketch"
	"github.com/san-kum/siqnastee/internal/tui"
	"github.com/san-kum/siqnastee/internal/web"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	policy     string
	touch      string
	pinColor   string
	seed       int64
	fps        int
	logLevel   string
	// snapshot
	format string
	moves  int

	cfg *config.Config
)

const snapshotLong = `Render one frame to a png or svg file, or to stdout when file is -.
A zero-size window renders as a 1x1 black png or an empty svg.`

// main runs the native window when no subcommand is given. It exits with
// status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("siqnastee failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "siqnastee",
		Short:             "flickering letter grid sketch",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.IntVar(&width, "width", config.DefaultWidth, "window width")
	pf.IntVar(&height, "height", config.DefaultHeight, "window height")
	pf.StringVar(&policy, "policy", sketch.RandomUnlessPinned.String(), "repaint policy ("+strings.Join(sketch.PolicyNames(), ", ")+")")
	pf.StringVar(&touch, "touch", sketch.TouchRandom.String(), "touch mode ("+strings.Join(sketch.TouchModeNames(), ", ")+")")
	pf.StringVar(&pinColor, "pin-color", config.DefaultPinColor, "color stored into touched cells (#rrggbb)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error, none)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a native window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(cfg)
		},
	}

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "run on Ebitengine (the renderer of the browser build)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.Run(cfg)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal, one character per cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg)
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "render one frame to a png or svg file (- for stdout)",
		Long:  snapshotLong,
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&format, "format", "", "png or svg (default: from file extension, else png)")
	snapshotCmd.Flags().IntVar(&moves, "moves", 0, "pointer moves to simulate before the frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPOLICY\tTOUCH\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Policy, p.Touch, p.About)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, webCmd, tuiCmd, snapshotCmd, presetsCmd)
	return rootCmd
}

// setup resolves the configuration (defaults, then preset, then config file,
// then explicitly set flags) and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	c, err := resolveConfig(cmd)
	if err != nil {
		logging.Setup(logLevel, os.Stderr)
		return err
	}
	cfg = c
	logging.Setup(cfg.LogLevel, os.Stderr)
	log.Debug().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Str("policy", cfg.Policy).
		Str("touch", cfg.Touch).
		Int64("seed", cfg.Seed).
		Msg("configuration resolved")
	return nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, c)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		c.Width = width
	}
	if flags.Changed("height") {
		c.Height = height
	}
	if flags.Changed("policy") {
		c.Policy = policy
	}
	if flags.Changed("touch") {
		c.Touch = touch
	}
	if flags.Changed("pin-color") {
		c.PinColor = pinColor
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("fps") {
		c.FPS = fps
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	path := args[0]

	f := export.FormatPNG
	switch {
	case format != "":
		parsed, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		f = parsed
	case strings.EqualFold(filepath.Ext(path), ".svg"):
		f = export.FormatSVG
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	s := sketch.New(opts, float32(cfg.Width), float32(cfg.Height))

	pointerSeed := cfg.Seed
	if pointerSeed != 0 {
		pointerSeed++
	}
	pointer := sketch.NewSource(pointerSeed)
	for i := 0; i < moves; i++ {
		s.PointerMoved(pointer.Float32()*float32(cfg.Width), pointer.Float32()*float32(cfg.Height))
	}

	var out io.Writer = cmd.OutOrStdout()
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	if err := export.Snapshot(out, s, f); err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Str("format", string(f)).
		Int("rows", s.Grid().Rows).
		Int("cols", s.Grid().Cols).
		Int("touched", s.TouchedCount()).
		Msg("snapshot written")
	return nil
}
