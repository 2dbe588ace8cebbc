package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// FileName is the properties file looked up in the config directories.
const FileName = "blockfall.yaml"

// Load builds the properties and applies the difficulty preset.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default.
// A file only needs to list the keys it overrides.
func Load(customPath string, preset DifficultyPreset) (*Properties, error) {
	props := DefaultProperties()

	// Embedded default sits under every override
	if err := decode(defaultBlockfallYAML, &props); err != nil {
		props = DefaultProperties() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &props); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	} else if path := findConfig(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := decode(data, &props); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	ApplyPreset(&props, preset)

	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &props, nil
}

// decode overlays one YAML document onto props. Color keys are matched by
// piece kind, so "z" in a user file replaces the default "Z".
func decode(data []byte, props *Properties) error {
	base := props.Colors
	props.Colors = nil
	if err := yaml.Unmarshal(data, props); err != nil {
		props.Colors = base
		return err
	}
	merged, err := mergeColors(base, props.Colors)
	if err != nil {
		props.Colors = base
		return err
	}
	props.Colors = merged
	return nil
}

// mergeColors returns base with overlay applied, keyed by canonical kind
// letter. Keys that are not kinds pass through for Validate to report.
func mergeColors(base, overlay map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(base)+len(overlay))
	for letter, color := range base {
		out[canonicalKey(letter)] = color
	}
	seen := make(map[string]string, len(overlay))
	for letter, color := range overlay {
		key := canonicalKey(letter)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("config: colors: %q and %q name the same piece", prev, letter)
		}
		seen[key] = letter
		out[key] = color
	}
	return out, nil
}

func canonicalKey(letter string) string {
	if k, err := shapes.ParseKind(letter); err == nil {
		return k.String()
	}
	return letter
}

// findConfig returns the first existing config file, or empty.
func findConfig() string {
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return userCfgPath
		}
	}
	local := filepath.Join("configs", FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyPreset modifies the properties based on a difficulty preset.
// An empty preset leaves the file's settings alone.
func ApplyPreset(props *Properties, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		props.Difficulty.Enabled = false
	} else {
		props.Difficulty.Enabled = true
		props.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard mode plays without the next-piece preview
	switch preset {
	case DifficultyEasy:
		props.Gameplay.ShowNextPiece = true
	case DifficultyHard:
		props.Gameplay.ShowNextPiece = false
	}
}

// WithPreset returns a copy of the properties with a preset applied.
func (p *Properties) WithPreset(preset DifficultyPreset) *Properties {
	cp := *p
	ApplyPreset(&cp, preset)
	return &cp
}

// Marshal encodes the properties as YAML.
func (p *Properties) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode properties: %w", err)
	}
	return data, nil
}
