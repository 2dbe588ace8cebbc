package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultProperties returns the built-in Blockfall properties.
func DefaultProperties() Properties {
	return Properties{
		Board: BoardGeometry{
			Cols:      10,
			Rows:      20,
			BlockSize: 30,
		},
		Controls: Controls{
			{Action: ActionLeft, ID: "left", Label: "Left", Icon: "icon-[line-md--arrow-left]", Keys: []string{"left", "a", "h"}},
			{Action: ActionRight, ID: "right", Label: "Right", Icon: "icon-[line-md--arrow-right]", Keys: []string{"right", "d", "l"}},
			{Action: ActionSpin, ID: "rotate", Label: "Rotate", Icon: "icon-[streamline-flex--line-arrow-rotate-left-2-remix]", Keys: []string{"up", "w", "k"}},
			{Action: ActionDown, ID: "down", Label: "Down", Icon: "icon-[line-md--arrow-down]", Keys: []string{"down", "s", "j"}},
		},
		Colors: map[string]string{
			"I": "cyan",
			"J": "blue",
			"L": "orange",
			"O": "yellow",
			"S": "green",
			"T": "purple",
			"Z": "red",
		},
		Gameplay: Gameplay{
			LinesPerLevel:    10,
			GravityTicks:     48,
			MinGravityTicks:  2,
			LevelSpeedFactor: 0.25,
			SoftDropPoints:   1,
			HardDropPoints:   2,
			ShowNextPiece:    true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}
