// Package main is the keyboard-driven viewer: one SDL window, the scene
// fills it, shortcuts change the transform.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/app"
	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/input"
	"github.com/Faultbox/primview/internal/engine/window"
	"github.com/Faultbox/primview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== primview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	viewer, err := app.NewViewer(cfg, app.NewPaletteDialog(nil))
	if err != nil {
		win.ShowError(cfg.Window.Title, err.Error())
		return err
	}
	defer viewer.Close()

	ctrl := viewer.Scene
	w, h := win.Size()
	viewer.Resize(w, h, win.PixelRatio())

	in := input.New()
	screenshot := false
	fpsTimer := time.Now()
	frames := 0

	for {
		if in.Update() {
			return nil
		}

		for _, ev := range in.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				w, h := win.Size()
				viewer.Resize(w, h, win.PixelRatio())

			case input.EventKeyDown:
				switch app.HandleKey(ctrl, ev.Key) {
				case app.ActionQuit:
					return nil
				case app.ActionScreenshot:
					screenshot = true
					viewer.Redraw.Update()
				case app.ActionReloadShaders:
					if err := viewer.ReloadShaders(); err != nil {
						logger.Warn("shader reload failed", zap.Error(err))
					}
				case app.ActionSaveSettings:
					if _, err := viewer.SaveSettings(); err != nil {
						logger.Warn("settings not saved", zap.Error(err))
					}
				}

			default:
				app.HandleMouse(ctrl, ev)
			}
		}

		if !viewer.Redraw.Take() {
			// Nothing changed; avoid spinning while idle.
			time.Sleep(5 * time.Millisecond)
			continue
		}

		if err := viewer.Paint(); err != nil {
			return fmt.Errorf("paint: %w", err)
		}
		if screenshot {
			// Read the back buffer before it is swapped away.
			dw, dh := win.DrawableSize()
			if _, err := viewer.Screenshot(dw, dh); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
			screenshot = false
		}
		win.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("frames", zap.Int("count", frames), zap.Stringer("object", ctrl.Object()))
			frames = 0
			fpsTimer = time.Now()
		}
	}
}
