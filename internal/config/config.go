// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Camera      CameraConfig     `yaml:"camera"`
	Material    MaterialConfig   `yaml:"material"`
	Scene       SceneConfig      `yaml:"scene"`
	Shaders     ShaderConfig     `yaml:"shaders"`
	Assets      AssetConfig      `yaml:"assets"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial camera and projection parameters.
type CameraConfig struct {
	Eye  [3]float32 `yaml:"eye"`
	Look [3]float32 `yaml:"look"`
	Up   [3]float32 `yaml:"up"`

	FOV  float32 `yaml:"fov"` // vertical, degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

// MaterialConfig holds the lighting and PBR material uniforms.
type MaterialConfig struct {
	LightPosition [3]float32 `yaml:"light_position"`
	LightColor    [3]float32 `yaml:"light_color"`
	Exposure      float32    `yaml:"exposure"`
	Albedo        [3]float32 `yaml:"albedo"`
	Metallic      float32    `yaml:"metallic"`
	Roughness     float32    `yaml:"roughness"`
	AO            float32    `yaml:"ao"`
}

// SceneConfig holds what is drawn and how.
type SceneConfig struct {
	ClearColor      [3]float32 `yaml:"clear_color"`
	SpherePrecision int        `yaml:"sphere_precision"`
	TeapotDetail    int        `yaml:"teapot_detail"`
	Object          int        `yaml:"object"` // 0=teapot 1=sphere 2=cube
	Wireframe       bool       `yaml:"wireframe"`

	OverlayText  string     `yaml:"overlay_text"`
	OverlayX     float32    `yaml:"overlay_x"`
	OverlayY     float32    `yaml:"overlay_y"`
	OverlayColor [3]float32 `yaml:"overlay_color"`
	FontPath     string     `yaml:"font_path"` // empty = built-in Go Regular
	FontSize     float64    `yaml:"font_size"`
}

// ShaderConfig names the PBR program and where its sources live.
// Paths are resolved through the asset search dirs, then the embedded copies.
type ShaderConfig struct {
	Program  string `yaml:"program"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// AssetConfig lists directories searched for shaders and fonts.
type AssetConfig struct {
	Dirs []string `yaml:"dirs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "primview",
			Width:  1024,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Eye:         [3]float32{0, 2, 2},
			Look:        [3]float32{0, 0, 0},
			Up:          [3]float32{0, 1, 0},
			FOV:         45,
			Near:        0.05,
			Far:         350,
			MinDistance: 0.5,
			MaxDistance: 50,
		},
		Material: MaterialConfig{
			LightPosition: [3]float32{0, 2, 2},
			LightColor:    [3]float32{400, 400, 400},
			Exposure:      2.2,
			Albedo:        [3]float32{0.950, 0.71, 0.29},
			Metallic:      1.02,
			Roughness:     0.38,
			AO:            0.2,
		},
		Scene: SceneConfig{
			ClearColor:      [3]float32{0.4, 0.4, 0.4},
			SpherePrecision: 40,
			TeapotDetail:    10,
			OverlayText:     "primview",
			OverlayX:        10,
			OverlayY:        580,
			OverlayColor:    [3]float32{1, 1, 0},
			FontSize:        18,
		},
		Shaders: ShaderConfig{
			Program:  "PBR",
			Vertex:   "shaders/PBRVertex.glsl",
			Fragment: "shaders/PBRFragment.glsl",
		},
		Assets: AssetConfig{
			Dirs: []string{"."},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshots: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "primview",
		},
	}
}
