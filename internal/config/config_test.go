package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBoardGeometryDerivedSize(t *testing.T) {
	b := DefaultProperties().Board

	if b.Cols != 10 || b.Rows != 20 || b.BlockSize != 30 {
		t.Fatalf("unexpected default board %+v", b)
	}
	if b.Width() != 300 {
		t.Errorf("Width() = %d, expected 300", b.Width())
	}
	if b.Height() != 600 {
		t.Errorf("Height() = %d, expected 600", b.Height())
	}

	b.BlockSize = 16
	if b.Width() != b.Cols*16 || b.Height() != b.Rows*16 {
		t.Error("Width/Height must follow BlockSize")
	}
}

func TestDefaultControls(t *testing.T) {
	c := DefaultProperties().Controls
	if err := c.Validate(); err != nil {
		t.Fatalf("default controls invalid: %v", err)
	}

	counts := map[Action]int{}
	for _, b := range c {
		counts[b.Action]++
		if b.Label == "" {
			t.Errorf("action %q has empty label", b.Action)
		}
	}
	for _, a := range RequiredActions() {
		if counts[a] != 1 {
			t.Errorf("action %q present %d times, expected 1", a, counts[a])
		}
	}

	spin, ok := c.Binding(ActionSpin)
	if !ok {
		t.Fatal("spin binding missing")
	}
	if spin.ID != "rotate" || spin.Label != "Rotate" {
		t.Errorf("spin binding = %+v, expected id rotate / label Rotate", spin)
	}
}

func TestControlsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Controls) Controls
	}{
		{"missing action", func(c Controls) Controls { return c[:3] }},
		{"duplicate action", func(c Controls) Controls { return append(c, c[0]) }},
		{"empty label", func(c Controls) Controls { c[1].Label = ""; return c }},
		{"unknown action", func(c Controls) Controls {
			return append(c, ControlBinding{Action: "jump", Label: "Jump"})
		}},
		{"quit key bound", func(c Controls) Controls { c[2].Keys = []string{"q"}; return c }},
		{"ctrl+c bound", func(c Controls) Controls { c[0].Keys = []string{"left", "ctrl+c"}; return c }},
		{"key on two actions", func(c Controls) Controls { c[3].Keys = []string{"down", "a"}; return c }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := append(Controls(nil), DefaultProperties().Controls...)
			if err := tc.mutate(c).Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestIsReservedKey(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		if !IsReservedKey(k) {
			t.Errorf("IsReservedKey(%q) = false, expected true", k)
		}
	}
	if IsReservedKey("Q") || IsReservedKey("left") {
		t.Error("only q and ctrl+c are reserved")
	}
}

func TestPaletteAndCatalog(t *testing.T) {
	p := DefaultProperties()
	cat, err := p.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	pal := cat.Palette()
	if len(pal) != 7 {
		t.Errorf("expected 7 colors, got %d", len(pal))
	}

	delete(p.Colors, "T")
	if _, err := p.Catalog(); err == nil {
		t.Error("Catalog() should fail with a partial palette")
	}

	p = DefaultProperties()
	p.Colors["X"] = "white"
	if _, err := p.Catalog(); err == nil {
		t.Error("Catalog() should fail with an unknown kind")
	}

	p = DefaultProperties()
	p.Colors["t"] = "pink"
	if _, err := p.Palette(); err == nil {
		t.Error("Palette() should reject a kind listed twice")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Properties
	if err := yaml.Unmarshal(defaultBlockfallYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := fromYAML.Validate(); err != nil {
		t.Fatalf("embedded YAML invalid: %v", err)
	}

	def := DefaultProperties()
	if fromYAML.Board != def.Board {
		t.Errorf("board mismatch: %+v vs %+v", fromYAML.Board, def.Board)
	}
	if fromYAML.Gameplay != def.Gameplay {
		t.Errorf("gameplay mismatch: %+v vs %+v", fromYAML.Gameplay, def.Gameplay)
	}
	if fromYAML.Difficulty != def.Difficulty {
		t.Errorf("difficulty mismatch: %+v vs %+v", fromYAML.Difficulty, def.Difficulty)
	}
	for k, v := range def.Colors {
		if fromYAML.Colors[k] != v {
			t.Errorf("color %s: %q vs %q", k, fromYAML.Colors[k], v)
		}
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	tests := []struct {
		name   string
		colors string
	}{
		{"uppercase key", "  Z: magenta\n"},
		{"lowercase key", "  z: magenta\n"},
		{"padded key", "  ' z ': magenta\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "custom.yaml")
			data := "board:\n  cols: 12\ncolors:\n" + tc.colors
			if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
				t.Fatal(err)
			}

			props, err := Load(path, "")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if props.Board.Cols != 12 {
				t.Errorf("cols = %d, expected 12", props.Board.Cols)
			}
			if props.Board.Rows != 20 {
				t.Errorf("rows should keep default 20, got %d", props.Board.Rows)
			}
			if props.Board.Width() != 360 {
				t.Errorf("Width() = %d, expected 360", props.Board.Width())
			}
			if len(props.Colors) != 7 {
				t.Errorf("expected 7 color keys, got %v", props.Colors)
			}
			if props.Colors["Z"] != "magenta" || props.Colors["I"] != "cyan" {
				t.Errorf("colors not merged: %v", props.Colors)
			}
		})
	}
}

func TestLoadRejectsSamePieceTwiceInOneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	data := "colors:\n  z: magenta\n  Z: red\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("Load() should reject z and Z in the same file")
	}
}

func TestLoadUnknownColorKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  Q: pink\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, "")
	if err == nil || !strings.Contains(err.Error(), "Q") {
		t.Errorf("Load() should name the unknown key, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  cols: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("Load() should reject a 2-column board")
	}
}

func TestApplyPreset(t *testing.T) {
	p := DefaultProperties()
	ApplyPreset(&p, DifficultyHard)
	if !p.Difficulty.Enabled || p.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", p.Difficulty)
	}
	if p.Gameplay.ShowNextPiece {
		t.Error("hard preset should hide the next piece")
	}

	ApplyPreset(&p, DifficultyFixed)
	if p.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	base := DefaultProperties()
	normal := base.WithPreset(DifficultyNormal)
	if normal.Difficulty.InitialLevel != 0.3 {
		t.Errorf("normal initial level = %v", normal.Difficulty.InitialLevel)
	}
	if base.Difficulty.InitialLevel != 0.0 {
		t.Error("WithPreset must not modify the receiver")
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != "" {
		t.Errorf("empty preset should be allowed, got %q, %v", got, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestMarshalRoundTripKeepsGeometry(t *testing.T) {
	p := DefaultProperties()
	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "block_size: 30") {
		t.Errorf("marshaled YAML missing block_size:\n%s", data)
	}
	if strings.Contains(string(data), "width") {
		t.Error("derived width must not be serialized")
	}
}
