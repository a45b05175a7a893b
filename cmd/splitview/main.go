package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/cliconfig"
	"github.com/bft-labs/splitview/internal/demo"
	"github.com/bft-labs/splitview/internal/tui"
	"github.com/bft-labs/splitview/pkg/compositor"
	"github.com/bft-labs/splitview/pkg/log"
	"github.com/bft-labs/splitview/pkg/splitview"
)

const helpBanner = `
           _ _ _         _
 ___ _ __ | (_) |___   _(_) _____      __
/ __| '_ \| | | __\ \ / / |/ _ \ \ /\ / /
\__ \ |_) | | | |_ \ V /| |  __/\ V  V /
|___/ .__/|_|_|\__| \_/ |_|\___| \_/\_/
    |_|
`

const helpDescription = `
Compare two images with a movable before/after boundary.

Highlights:
  - Left of the boundary shows the before image, right of it the after image.
  - A thin seam marks the boundary; width and color are configurable.
  - Differently sized inputs are resized (or cropped) to a shared size.
  - Render once, re-render whenever the inputs change, or drag the
    boundary interactively in the terminal.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  splitview render before.png after.jpg --fraction 0.3
  splitview watch --before a.png --after b.png --out compare.png
  splitview view before.png after.png
  splitview demo --out-dir ./demo
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return compositor.Version
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	// loadConfig applies file, env and flag values (in rising precedence),
	// positional inputs, and validates the result.
	loadConfig := func(cmd *cobra.Command, args []string) error {
		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		// Build set of changed flags
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		// Apply environment variables (SPLITVIEW_*)
		// These override file config but are overridden by flags (checked via changed map)
		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		if len(args) == 2 {
			cfg.Before, cfg.After = args[0], args[1]
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		logger = cliconfig.NewLogger(os.Stderr, cfg.LogLevel)
		logger.Debug().Interface("config", cfg).Msg("configuration")
		return nil
	}

	newComparer := func(l log.Logger) *splitview.Comparer {
		return splitview.New(
			splitview.WithLogger(l),
			splitview.WithAlign(cfg.SessionConfig().Align),
			splitview.WithKernel(cfg.ResizeKernel()),
			splitview.WithMarker(cfg.Marker()),
			splitview.WithFraction(cfg.Fraction),
			splitview.WithStep(cfg.Step),
			splitview.WithJPEGQuality(cfg.JPEGQuality),
			splitview.WithDebounce(cfg.Debounce),
		)
	}

	// write saves the current comparison to --out or to the boundary file
	// name under --out-dir.
	write := func(c *splitview.Comparer) (string, error) {
		if cfg.Output != "" {
			return cfg.Output, c.Save(cfg.Output)
		}
		return c.SaveIn(cfg.OutputDir, cfg.Format)
	}

	root := &cobra.Command{
		Use:           "splitview",
		Short:         "Compare two images with a movable before/after boundary",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	renderCmd := &cobra.Command{
		Use:   "render [before after]",
		Short: "Write one comparison image and exit",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}
			if err := cfg.RequireInputs(); err != nil {
				return err
			}

			c := newComparer(log.NewZerologAdapterWithLogger(logger))
			if err := c.Load(cfg.Before, cfg.After); err != nil {
				return err
			}
			path, err := write(c)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg(c.Caption())
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [before after]",
		Short: "Re-render the comparison whenever either input changes",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}
			if err := cfg.RequireInputs(); err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c := newComparer(log.NewZerologAdapterWithLogger(logger))
			err := c.Watch(ctx, cfg.Before, cfg.After, func(context.Context) error {
				path, err := write(c)
				if err != nil {
					return err
				}
				logger.Info().Str("path", path).Msg(c.Caption())
				return nil
			})
			if err != nil {
				return err
			}
			logger.Info().Msg("received signal, stopping...")
			return nil
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view [before after]",
		Short: "Move the boundary interactively in the terminal",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}
			if err := cfg.RequireInputs(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			// Console output would corrupt the alternate screen.
			c := newComparer(log.NewNoopLogger())

			var prog atomic.Pointer[tea.Program]
			stopWatch, err := c.StartWatch(ctx, cfg.Before, cfg.After, func(context.Context) error {
				if p := prog.Load(); p != nil {
					go p.Send(tui.ReloadedMsg{})
				}
				return nil
			})
			if err != nil {
				return err
			}
			defer stopWatch(context.Background())

			m := tui.New(c, tui.Options{
				OutputDir: cfg.OutputDir,
				Format:    cfg.Format,
				Saver:     c.Codec(),
				Resizer:   c.Resizer(),
			})
			p := tui.NewProgram(ctx, m)
			prog.Store(p)
			return tui.Run(ctx, p)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the built-in sample images and their comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}

			l := log.NewZerologAdapterWithLogger(logger)
			c := newComparer(l)
			before, after := demo.Before(), demo.After()

			ext := imagefile.Extension(cfg.Format)
			samples := []struct {
				name string
				grid splitview.Grid
			}{{"before", before}, {"after", after}}
			for _, s := range samples {
				path := filepath.Join(cfg.OutputDir, "demo_"+s.name+ext)
				if err := c.Codec().Save(path, s.grid, cfg.Format); err != nil {
					return fmt.Errorf("save %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if err := c.SetImages(before, after); err != nil {
				return err
			}
			path, err := write(c)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg(c.Caption())
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	root.AddCommand(renderCmd, watchCmd, viewCmd, demoCmd)

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.splitview/config.toml)")
	pf.StringVar(&cfg.Before, "before", cfg.Before, "before image (shown left of the boundary)")
	pf.StringVar(&cfg.After, "after", cfg.After, "after image (shown right of the boundary)")
	pf.StringVarP(&cfg.Output, "out", "o", cfg.Output, "output file; format follows the extension")
	pf.StringVar(&cfg.OutputDir, "out-dir", cfg.OutputDir, "directory for comparison_<percent>%.<ext> when --out is not set")
	pf.StringVar(&cfg.Format, "format", cfg.Format, "output format when --out is not set (png or jpeg)")

	pf.Float64VarP(&cfg.Fraction, "fraction", "f", cfg.Fraction, "boundary position in [0, 1]; values outside are clamped")
	pf.Float64Var(&cfg.Step, "step", cfg.Step, "boundary step for the interactive viewer")
	pf.StringVar(&cfg.Align, "align", cfg.Align, "how to match differently sized inputs (resize or crop)")
	pf.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, "resize kernel (nearest, bilinear or catmullrom)")

	pf.IntVar(&cfg.LineWidth, "line-width", cfg.LineWidth, "boundary line width in pixels (0 disables it)")
	pf.StringVar(&cfg.LineColor, "line-color", cfg.LineColor, "boundary line color (#rgb, #rrggbb or #rrggbbaa)")
	pf.IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG output quality (1-100)")

	pf.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after an input change before re-rendering")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := pf.MarkHidden("debounce"); err != nil {
		logger.Info().Err(err).Msg("failed to hide debounce flag")
	}

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("splitview")
		os.Exit(1)
	}
}

// inputArgs accepts either no positional arguments or exactly the before
// and after image paths.
func inputArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("%s takes 0 or 2 arguments (before after), got %d", cmd.Name(), len(args))
	}
	return nil
}
