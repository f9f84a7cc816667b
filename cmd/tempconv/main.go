// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that converts between Celsius and Fahrenheit with two
// linked sliders.

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"sync/atomic"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/tempconv/tempconv/internal/config"
	"github.com/tempconv/tempconv/ui"
)

var (
	configPath = flag.String("config", "", "settings file; watched for theme changes")
	dark       = flag.Bool("dark", false, "use the dark theme, overriding the settings file")
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
)

func main() {
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	if *screenshot != "" {
		if err := saveScreenshot(*screenshot, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Temperature Converter"),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		if err := loop(w, cfg, logger); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// applyFlags lets explicit command line flags win over the settings file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dark" {
			cfg.Theme.Dark = *dark
		}
	})
}

func loop(w *app.Window, cfg *config.Config, logger *slog.Logger) error {
	u, err := ui.New(ui.NewTheme(cfg.Theme.Dark), logger)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// reloaded is written by the watcher and drained by the frame loop.
	var reloaded atomic.Pointer[config.Config]
	if *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(c *config.Config) {
				reloaded.Store(c)
				w.Invalidate()
			})
			if err != nil {
				logger.Warn("settings will not be reloaded", "path", *configPath, "err", err)
			}
		}()
	}

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			if c := reloaded.Swap(nil); c != nil {
				applyFlags(c)
				if c.Theme.Dark != cfg.Theme.Dark {
					logger.Info("theme changed", "dark", c.Theme.Dark)
					u.SetTheme(ui.NewTheme(c.Theme.Dark))
				}
				cfg = c
			}
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(f string, cfg *config.Config, logger *slog.Logger) error {
	const scale = 2
	sz := image.Point{X: cfg.Window.Width * scale, Y: cfg.Window.Height * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	u, err := ui.New(ui.NewTheme(cfg.Theme.Dark), logger)
	if err != nil {
		return err
	}
	var r input.Router
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
		Source:      r.Source(),
	}
	u.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	out, err := os.Create(f)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	logger.Info("screenshot saved", "file", f, "reading", u.Converter().Reading())
	return out.Close()
}
