// Package main is the panel-driven viewer: the scene renders offscreen and
// is shown next to an ImGui control panel.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/primview/internal/app"
	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/capture"
	"github.com/Faultbox/primview/internal/engine/framebuffer"
	"github.com/Faultbox/primview/internal/engine/scene"
	"github.com/Faultbox/primview/internal/engine/ui"
	"github.com/Faultbox/primview/internal/logger"
)

const (
	panelWidth    = 320
	statusTimeout = 4 * time.Second
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

	logger.Info("=== primview (panel) ===")

	gui, err := newGUI(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		dialog.Message("%s", err).Title(cfg.Window.Title).Error()
		logger.Sync()
		os.Exit(1)
	}
	defer gui.Close()

	gui.Run()
	logger.Info("viewer closed normally")
}

// GUI is the panel front-end state.
type GUI struct {
	backend *ui.Backend
	viewer  *app.Viewer
	fb      *framebuffer.Framebuffer
	panel   *ui.Panel

	// scene area in display units, as last passed to ResizeGL
	sceneW, sceneH int
	ratio          float32

	// mouse buttons held over the scene last frame
	held [3]bool

	title  string
	titled scene.ObjectKind

	quickShot  bool
	status     string
	statusTime time.Time
	statusCh   chan string

	log *zap.Logger
}

func newGUI(cfg *config.Config) (*GUI, error) {
	g := &GUI{
		title:    cfg.Window.Title,
		titled:   -1,
		statusCh: make(chan string, 4),
		log:      logger.Named("gui"),
	}

	var err error
	g.backend, err = ui.NewBackend(cfg.Window.Title, int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Scene.ClearColor)
	if err != nil {
		return nil, err
	}

	colours := ui.NewPopupColorDialog()
	g.viewer, err = app.NewViewer(cfg, colours)
	if err != nil {
		return nil, err
	}

	g.fb, err = framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		g.viewer.Close()
		return nil, err
	}

	g.panel = ui.NewPanel(g.viewer.Scene, colours)
	g.panel.OnScreenshot = g.saveAs
	g.panel.OnSave = g.saveSettings
	g.panel.OnReload = g.reloadShaders
	return g, nil
}

// Run enters the ImGui loop until the window closes.
func (g *GUI) Run() {
	g.backend.Run(g.render)
}

// Close releases the GL resources.
func (g *GUI) Close() {
	if g.fb != nil {
		g.fb.Destroy()
	}
	if g.viewer != nil {
		g.viewer.Close()
	}
}

func (g *GUI) render() {
	x, y, w, h := ui.Viewport()
	ctrl := g.viewer.Scene

	if ui.IsKeyPressed(imgui.KeyF12) {
		g.quickShot = true
		g.viewer.Redraw.Update()
	}
	if ui.IsKeyPressed(imgui.KeyF5) {
		g.reloadShaders()
	}

	g.drawPanel(x, y, h)
	g.drawScene(x+panelWidth, y, w-panelWidth, h)

	select {
	case msg := <-g.statusCh:
		g.setStatus(msg)
	default:
	}
	if g.status != "" && time.Since(g.statusTime) > statusTimeout {
		g.status = ""
	}
	g.panel.Status = g.status
	if g.status == "" {
		g.panel.Status = ui.Stats(ctrl)
	}

	if obj := ctrl.Object(); obj != g.titled {
		g.titled = obj
		g.backend.SetWindowTitle(ui.Title(g.title, ctrl))
	}
}

func (g *GUI) drawPanel(x, y, h float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, h))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Controls", nil, flags) {
		g.panel.Draw(g.viewer.Scene)
	}
	imgui.End()
}

func (g *GUI) drawScene(x, y, w, h float32) {
	w, h = max(w, 1), max(h, 1)
	g.resize(int(w), int(h), ui.PixelRatio())

	if g.viewer.Redraw.Take() {
		restore := g.fb.Bind()
		if err := g.viewer.Paint(); err != nil {
			g.log.Error("paint failed", zap.Error(err))
		}
		restore()

		if g.quickShot {
			g.quickShot = false
			fw, fh := g.fb.Size()
			if name, err := g.viewer.SaveImage(g.fb.ReadPixels(), int(fw), int(fh)); err != nil {
				g.setStatus("Screenshot failed: " + err.Error())
			} else {
				g.setStatus("Saved " + name)
			}
		}
	}

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(g.fb.ColorTexture()))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
		g.handleMouse(imgui.IsItemHovered())
	}
	imgui.End()
	imgui.PopStyleVar()
}

// resize keeps the framebuffer and the controller in step with the scene area.
func (g *GUI) resize(w, h int, ratio float32) {
	if w == g.sceneW && h == g.sceneH && ratio == g.ratio {
		return
	}
	g.sceneW, g.sceneH, g.ratio = w, h, ratio

	fw, fh := deviceSize(w, h, ratio)
	g.fb.Resize(int32(fw), int32(fh))
	g.viewer.Resize(w, h, ratio)
}

// deviceSize converts display units to pixels the same way ResizeGL does.
func deviceSize(w, h int, ratio float32) (int, int) {
	return int(float32(w) * ratio), int(float32(h) * ratio)
}

var sceneButtons = [3]struct {
	imgui  imgui.MouseButton
	button scene.MouseButton
}{
	{imgui.MouseButtonLeft, scene.MouseLeft},
	{imgui.MouseButtonMiddle, scene.MouseMiddle},
	{imgui.MouseButtonRight, scene.MouseRight},
}

// handleMouse turns ImGui button state into controller press, move and
// release calls. Drags that start over the scene continue outside it.
func (g *GUI) handleMouse(hovered bool) {
	ctrl := g.viewer.Scene
	pos := imgui.MousePos()
	mx, my := int(pos.X), int(pos.Y)

	dragging := false
	for i, b := range sceneButtons {
		down := imgui.IsMouseDown(b.imgui)
		switch {
		case down && !g.held[i] && hovered:
			ctrl.MousePress(b.button, mx, my)
			g.held[i] = true
		case !down && g.held[i]:
			ctrl.MouseRelease(b.button)
			g.held[i] = false
		}
		dragging = dragging || g.held[i]
	}
	if dragging {
		ctrl.MouseMove(mx, my)
	}

	if hovered {
		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			ctrl.Wheel(wheel)
		}
	}
}

// saveAs captures the scene and asks where to write it. The native dialog
// runs off the render thread; the result comes back through statusCh.
func (g *GUI) saveAs() {
	fw, fh := g.fb.Size()
	img, err := capture.FromGL(g.fb.ReadPixels(), int(fw), int(fh))
	if err != nil {
		g.setStatus("Screenshot failed: " + err.Error())
		return
	}

	go func() {
		filename, err := dialog.File().
			Filter("PNG image", "png").
			Title("Save screenshot").
			Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				g.statusCh <- "Save dialog failed: " + err.Error()
			}
			return
		}
		if err := capture.SaveAs(filename, img); err != nil {
			g.statusCh <- "Screenshot failed: " + err.Error()
			return
		}
		g.statusCh <- "Saved " + filename
	}()
}

func (g *GUI) saveSettings() {
	path, err := g.viewer.SaveSettings()
	if err != nil {
		g.setStatus("Settings not saved: " + err.Error())
		return
	}
	g.setStatus("Settings saved to " + path)
}

func (g *GUI) reloadShaders() {
	if err := g.viewer.ReloadShaders(); err != nil {
		g.setStatus("Shader reload failed: " + err.Error())
		return
	}
	g.setStatus("Shaders reloaded")
}

func (g *GUI) setStatus(msg string) {
	g.status = msg
	g.statusTime = time.Now()
	g.log.Info(msg)
}
