package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/primview/internal/assets"
	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/input"
	"github.com/Faultbox/primview/internal/engine/scene"
	"github.com/Faultbox/primview/pkg/math"
)

type fakeControls struct {
	rot, scale, pos math.Vec3
	wire            bool
	obj             int
	colour          int

	presses  []scene.MouseButton
	releases []scene.MouseButton
	moves    [][2]int
	wheel    float32
}

func newFakeControls() *fakeControls {
	return &fakeControls{scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

func (f *fakeControls) SetXRotation(v float32) { f.rot.X = v }
func (f *fakeControls) SetYRotation(v float32) { f.rot.Y = v }
func (f *fakeControls) SetZRotation(v float32) { f.rot.Z = v }
func (f *fakeControls) SetXScale(v float32)    { f.scale.X = v }
func (f *fakeControls) SetYScale(v float32)    { f.scale.Y = v }
func (f *fakeControls) SetZScale(v float32)    { f.scale.Z = v }
func (f *fakeControls) SetXPosition(v float32) { f.pos.X = v }
func (f *fakeControls) SetYPosition(v float32) { f.pos.Y = v }
func (f *fakeControls) SetZPosition(v float32) { f.pos.Z = v }
func (f *fakeControls) ToggleWireframe(b bool) { f.wire = b }
func (f *fakeControls) SetColour()             { f.colour++ }
func (f *fakeControls) Rotation() math.Vec3    { return f.rot }
func (f *fakeControls) Scale() math.Vec3       { return f.scale }
func (f *fakeControls) Wireframe() bool        { return f.wire }

func (f *fakeControls) SetObjectMode(i int) error {
	if !scene.ObjectKind(i).Valid() {
		return scene.ErrInvalidObject
	}
	f.obj = i
	return nil
}

func (f *fakeControls) MousePress(b scene.MouseButton, x, y int) {
	f.presses = append(f.presses, b)
	f.moves = append(f.moves, [2]int{x, y})
}
func (f *fakeControls) MouseMove(x, y int)               { f.moves = append(f.moves, [2]int{x, y}) }
func (f *fakeControls) MouseRelease(b scene.MouseButton) { f.releases = append(f.releases, b) }
func (f *fakeControls) Wheel(d float32)                  { f.wheel += d }

func TestRedraw(t *testing.T) {
	r := NewRedraw()
	assert.True(t, r.Take(), "first frame should paint")
	assert.False(t, r.Take())

	r.Update()
	r.Update()
	assert.True(t, r.Take())
	assert.False(t, r.Take())
}

func TestPaletteDialogCycles(t *testing.T) {
	d := NewPaletteDialog(nil)
	require.Len(t, d.palette, len(DefaultPalette))

	c := DefaultPalette[0]
	for i := 1; i <= len(DefaultPalette); i++ {
		next, ok := d.GetColor(c)
		require.True(t, ok)
		assert.Equal(t, DefaultPalette[i%len(DefaultPalette)], next)
		c = next
	}
}

func TestPaletteDialogSnapsToNearest(t *testing.T) {
	palette := []scene.Color{{R: 1}, {G: 1}, {B: 1}}
	d := NewPaletteDialog(palette)

	got, ok := d.GetColor(scene.Color{R: 0.1, G: 0.9, B: 0.2})
	require.True(t, ok)
	assert.Equal(t, scene.Color{B: 1}, got)
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name   string
		keys   []sdl.Scancode
		check  func(t *testing.T, f *fakeControls)
		action Action
	}{
		{
			name:   "escape quits",
			keys:   []sdl.Scancode{sdl.SCANCODE_ESCAPE},
			action: ActionQuit,
		},
		{
			name:   "f12 screenshot",
			keys:   []sdl.Scancode{sdl.SCANCODE_F12},
			action: ActionScreenshot,
		},
		{
			name:   "f5 reloads shaders",
			keys:   []sdl.Scancode{sdl.SCANCODE_F5},
			action: ActionReloadShaders,
		},
		{
			name:   "s saves settings",
			keys:   []sdl.Scancode{sdl.SCANCODE_S},
			action: ActionSaveSettings,
		},
		{
			name: "select cube then sphere",
			keys: []sdl.Scancode{sdl.SCANCODE_3, sdl.SCANCODE_2},
			check: func(t *testing.T, f *fakeControls) {
				assert.Equal(t, int(scene.Sphere), f.obj)
			},
		},
		{
			name: "wireframe toggles",
			keys: []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_W, sdl.SCANCODE_W},
			check: func(t *testing.T, f *fakeControls) {
				assert.True(t, f.wire)
			},
		},
		{
			name: "arrows rotate",
			keys: []sdl.Scancode{sdl.SCANCODE_RIGHT, sdl.SCANCODE_RIGHT, sdl.SCANCODE_UP, sdl.SCANCODE_Q},
			check: func(t *testing.T, f *fakeControls) {
				assert.Equal(t, math.Vec3{X: -15, Y: 30, Z: 15}, f.rot)
			},
		},
		{
			name: "scale clamps",
			keys: []sdl.Scancode{
				sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS,
				sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS,
				sdl.SCANCODE_MINUS, sdl.SCANCODE_MINUS,
			},
			check: func(t *testing.T, f *fakeControls) {
				assert.InDelta(t, minScale, f.scale.X, 1e-6)
				assert.InDelta(t, minScale, f.scale.Z, 1e-6)
			},
		},
		{
			name: "reset",
			keys: []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_KP_PLUS, sdl.SCANCODE_R},
			check: func(t *testing.T, f *fakeControls) {
				assert.Equal(t, math.Vec3{}, f.rot)
				assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, f.scale)
			},
		},
		{
			name: "colour",
			keys: []sdl.Scancode{sdl.SCANCODE_C},
			check: func(t *testing.T, f *fakeControls) {
				assert.Equal(t, 1, f.colour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeControls()
			var action Action
			for _, k := range tt.keys {
				action = HandleKey(f, k)
			}
			assert.Equal(t, tt.action, action)
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestHandleMouse(t *testing.T) {
	f := newFakeControls()

	HandleMouse(f, input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 1, MouseY: 2})
	HandleMouse(f, input.Event{Type: input.EventMouseMove, MouseX: 5, MouseY: 6})
	HandleMouse(f, input.Event{Type: input.EventMouseUp, Button: sdl.BUTTON_LEFT})
	HandleMouse(f, input.Event{Type: input.EventMouseDown, Button: sdl.BUTTON_X1})
	HandleMouse(f, input.Event{Type: input.EventMouseWheel, Wheel: -2})

	assert.Equal(t, []scene.MouseButton{scene.MouseLeft}, f.presses)
	assert.Equal(t, []scene.MouseButton{scene.MouseLeft}, f.releases)
	assert.Equal(t, [][2]int{{1, 2}, {5, 6}}, f.moves)
	assert.Equal(t, float32(-2), f.wheel)
}

type fakeSettings struct {
	obj    scene.ObjectKind
	wire   bool
	albedo scene.Color
}

func (f fakeSettings) Object() scene.ObjectKind { return f.obj }
func (f fakeSettings) Wireframe() bool          { return f.wire }
func (f fakeSettings) Albedo() scene.Color      { return f.albedo }

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	s := fakeSettings{obj: scene.Cube, wire: true, albedo: scene.Color{R: 0.1, G: 0.2, B: 0.3}}

	require.NoError(t, SaveSettings(cfg, s, path))
	assert.Equal(t, 2, cfg.Scene.Object)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := config.Default()
	require.NoError(t, yaml.Unmarshal(data, got))

	assert.Equal(t, 2, got.Scene.Object)
	assert.True(t, got.Scene.Wireframe)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, got.Material.Albedo)
	assert.Equal(t, cfg.Material.Roughness, got.Material.Roughness, "other settings are kept")
}

func TestSaveSettingsUnwritablePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	err := SaveSettings(config.Default(), fakeSettings{}, filepath.Join(file, "config.yaml"))
	assert.Error(t, err)
}

func TestLoadFace(t *testing.T) {
	m := assets.NewManager()
	m.Mount("fonts", fstest.MapFS{
		"mono.ttf": {Data: gomono.TTF},
		"bad.ttf":  {Data: []byte("not a font")},
	})
	log := zap.NewNop()

	face, err := loadFace(m, "", 18, log)
	require.NoError(t, err)
	assert.NotNil(t, face)

	face, err = loadFace(m, "fonts/mono.ttf", 18, log)
	require.NoError(t, err)
	assert.NotNil(t, face)

	face, err = loadFace(m, "fonts/missing.ttf", 18, log)
	require.NoError(t, err, "missing font falls back to the built-in face")
	assert.NotNil(t, face)

	_, err = loadFace(m, "fonts/bad.ttf", 18, log)
	assert.Error(t, err)

	_, err = loadFace(m, "", 0, log)
	assert.Error(t, err)
}

func TestNewAssetsServesEmbeddedShaders(t *testing.T) {
	m := newAssets([]string{t.TempDir(), "/does/not/exist"}, zap.NewNop())

	src, err := m.LoadString("shaders/PBRVertex.glsl")
	require.NoError(t, err)
	assert.Contains(t, src, "TransformUBO")
}
