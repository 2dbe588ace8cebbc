// Package config provides YAML-based properties loading and difficulty
// management for Blockfall.
package config

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Properties is the complete, process-wide configuration. It is built once
// by Load and shared by pointer; collaborators treat it as read-only.
type Properties struct {
	Board      BoardGeometry     `yaml:"board"`
	Controls   Controls          `yaml:"controls"`
	Colors     map[string]string `yaml:"colors"`
	Gameplay   Gameplay          `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// BoardGeometry defines the play field grid.
// Pixel dimensions are derived and cannot be set independently.
type BoardGeometry struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	BlockSize int `yaml:"block_size"`
}

// Width returns Cols * BlockSize.
func (b BoardGeometry) Width() int {
	return b.Cols * b.BlockSize
}

// Height returns Rows * BlockSize.
func (b BoardGeometry) Height() int {
	return b.Rows * b.BlockSize
}

// Validate checks the geometry is large enough to hold any piece.
func (b BoardGeometry) Validate() error {
	if b.Cols < 4 || b.Rows < 4 {
		return fmt.Errorf("config: board %dx%d is smaller than 4x4", b.Cols, b.Rows)
	}
	if b.BlockSize <= 0 {
		return fmt.Errorf("config: block_size must be positive, got %d", b.BlockSize)
	}
	return nil
}

// Action names a player input that can be bound to keys.
type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionSpin  Action = "spin"
	ActionDown  Action = "down"
)

// RequiredActions lists the actions every control set must bind.
func RequiredActions() []Action {
	return []Action{ActionLeft, ActionRight, ActionSpin, ActionDown}
}

// ControlBinding associates an action with its display metadata and keys.
type ControlBinding struct {
	Action Action   `yaml:"action"`
	ID     string   `yaml:"id"`
	Label  string   `yaml:"label"`
	Icon   string   `yaml:"icon"`
	Keys   []string `yaml:"keys"`
}

// Controls is the ordered list of control bindings.
type Controls []ControlBinding

// reservedKeys always quit and cannot be bound.
var reservedKeys = map[string]bool{"q": true, "ctrl+c": true}

// IsReservedKey reports whether key is kept for quitting.
func IsReservedKey(key string) bool {
	return reservedKeys[key]
}

// Validate checks that each required action appears exactly once with a
// label, and that no key is reserved or bound to two actions.
func (c Controls) Validate() error {
	seen := make(map[Action]int, len(c))
	owner := make(map[string]Action)
	for _, b := range c {
		seen[b.Action]++
		if b.Label == "" {
			return fmt.Errorf("config: control %q has an empty label", b.Action)
		}
		for _, k := range b.Keys {
			if IsReservedKey(k) {
				return fmt.Errorf("config: control %q uses reserved key %q", b.Action, k)
			}
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("config: key %q is bound to both %q and %q", k, prev, b.Action)
			}
			owner[k] = b.Action
		}
	}
	for _, a := range RequiredActions() {
		switch seen[a] {
		case 0:
			return fmt.Errorf("config: control %q is not bound", a)
		case 1:
		default:
			return fmt.Errorf("config: control %q is bound %d times", a, seen[a])
		}
	}
	if len(seen) != len(RequiredActions()) {
		return fmt.Errorf("config: unknown control action in %v", c.actions())
	}
	return nil
}

// Binding returns the binding for an action.
func (c Controls) Binding(a Action) (ControlBinding, bool) {
	for _, b := range c {
		if b.Action == a {
			return b, true
		}
	}
	return ControlBinding{}, false
}

func (c Controls) actions() []Action {
	out := make([]Action, len(c))
	for i, b := range c {
		out[i] = b.Action
	}
	return out
}

// Gameplay holds the rules tuning.
type Gameplay struct {
	LinesPerLevel    int     `yaml:"lines_per_level"`
	GravityTicks     int     `yaml:"gravity_ticks"`      // Ticks per row at the slowest speed
	MinGravityTicks  int     `yaml:"min_gravity_ticks"`  // Fastest allowed fall
	LevelSpeedFactor float64 `yaml:"level_speed_factor"` // Extra speed per cleared level
	SoftDropPoints   int     `yaml:"soft_drop_points"`
	HardDropPoints   int     `yaml:"hard_drop_points"`
	ShowNextPiece    bool    `yaml:"show_next_piece"`
}

// Validate checks gameplay bounds.
func (g Gameplay) Validate() error {
	if g.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive")
	}
	if g.MinGravityTicks <= 0 || g.GravityTicks < g.MinGravityTicks {
		return fmt.Errorf("config: need 0 < min_gravity_ticks <= gravity_ticks, got %d and %d",
			g.MinGravityTicks, g.GravityTicks)
	}
	return nil
}

// Palette converts the color table into a shapes.Palette.
func (p *Properties) Palette() (shapes.Palette, error) {
	pal := make(shapes.Palette, len(p.Colors))
	for letter, color := range p.Colors {
		k, err := shapes.ParseKind(letter)
		if err != nil {
			return nil, fmt.Errorf("config: colors: %w", err)
		}
		if _, dup := pal[k]; dup {
			return nil, fmt.Errorf("config: colors: %s listed twice", k)
		}
		pal[k] = color
	}
	if err := pal.Validate(); err != nil {
		return nil, fmt.Errorf("config: colors: %w", err)
	}
	return pal, nil
}

// Catalog builds the shape catalog for these properties.
func (p *Properties) Catalog() (*shapes.Catalog, error) {
	pal, err := p.Palette()
	if err != nil {
		return nil, err
	}
	return shapes.NewCatalog(pal)
}

// Validate checks every section.
func (p *Properties) Validate() error {
	if err := p.Board.Validate(); err != nil {
		return err
	}
	if err := p.Controls.Validate(); err != nil {
		return err
	}
	if _, err := p.Palette(); err != nil {
		return err
	}
	return p.Gameplay.Validate()
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
