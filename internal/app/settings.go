package app

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/primview/internal/config"
	"github.com/Faultbox/primview/internal/engine/scene"
)

// Settings is the scene state that survives a restart.
type Settings interface {
	Object() scene.ObjectKind
	Wireframe() bool
	Albedo() scene.Color
}

// SaveSettings copies the selected object, the fill mode and the albedo
// into cfg and writes it to path.
func SaveSettings(cfg *config.Config, s Settings, path string) error {
	cfg.Scene.Object = int(s.Object())
	cfg.Scene.Wireframe = s.Wireframe()
	a := s.Albedo()
	cfg.Material.Albedo = [3]float32{a.R, a.G, a.B}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving settings to %s: %w", path, err)
	}
	return nil
}

// settingsPath is the -config file when one was given, otherwise the
// config.yaml in the user's config directory.
func settingsPath() string {
	if p := config.ConfigPath(); p != "" {
		return p
	}
	return filepath.Join(config.ConfigDir(), "config.yaml")
}
