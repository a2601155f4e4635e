package shader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/primview/internal/assets"
	"github.com/Faultbox/primview/internal/assets/shaders"
)

func TestBindingTable(t *testing.T) {
	var tbl bindingTable

	tests := []struct {
		name      string
		wantPoint uint32
		wantFresh bool
	}{
		{"TransformUBO", 0, true},
		{"Lights", 1, true},
		{"TransformUBO", 0, false},
		{"Material", 2, true},
		{"Lights", 1, false},
	}

	for _, tt := range tests {
		point, fresh := tbl.assign(tt.name)
		if point != tt.wantPoint || fresh != tt.wantFresh {
			t.Errorf("assign(%q) = (%d, %v), want (%d, %v)",
				tt.name, point, fresh, tt.wantPoint, tt.wantFresh)
		}
	}
}

func TestUseUnknownProgram(t *testing.T) {
	r := NewRegistry(assets.NewManager())

	err := r.Use("PBR")
	if !errors.Is(err, ErrUnknownProgram) {
		t.Fatalf("Use() error = %v, want ErrUnknownProgram", err)
	}
	if _, err := r.Program("PBR"); !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("Program() error = %v, want ErrUnknownProgram", err)
	}
}

func TestSetUniformBlockWithoutProgram(t *testing.T) {
	r := NewRegistry(assets.NewManager())

	if err := r.SetUniformBlock("TransformUBO", make([]float32, 48)); err == nil {
		t.Error("expected error with no program in use")
	}
	if len(r.blocks) != 0 {
		t.Errorf("no buffer should be created, got %d", len(r.blocks))
	}
}

func TestSettersWithoutProgramAreIgnored(t *testing.T) {
	r := NewRegistry(assets.NewManager())

	// Must not reach GL or panic.
	r.SetFloat("exposure", 2.2)
	r.SetFloat("metallic", 1)
}

func TestLoadSources(t *testing.T) {
	m := assets.NewManager()
	m.Mount("shaders", fstest.MapFS{
		"a.vert": {Data: []byte("vertex")},
		"a.frag": {Data: []byte("fragment")},
	})

	vs, fs, err := loadSources(m, "shaders/a.vert", "shaders/a.frag")
	if err != nil {
		t.Fatalf("loadSources() error = %v", err)
	}
	if vs != "vertex" || fs != "fragment" {
		t.Errorf("loadSources() = (%q, %q)", vs, fs)
	}

	if _, _, err := loadSources(m, "shaders/a.vert", "shaders/missing.frag"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("missing fragment: error = %v, want ErrNotFound", err)
	}
}

func TestEmbeddedShadersResolve(t *testing.T) {
	m := assets.NewManager()
	m.Mount("shaders", shaders.FS)

	for _, path := range []string{
		"shaders/PBRVertex.glsl",
		"shaders/PBRFragment.glsl",
		"shaders/TextVertex.glsl",
		"shaders/TextFragment.glsl",
	} {
		src, err := m.LoadString(path)
		if err != nil {
			t.Errorf("LoadString(%q) error = %v", path, err)
			continue
		}
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s does not start with a 410 core version line", path)
		}
	}
}

func TestTrimLog(t *testing.T) {
	got := trimLog([]byte("0:12(3): error: bad\n\x00"))
	if got != "0:12(3): error: bad" {
		t.Errorf("trimLog() = %q", got)
	}
}
