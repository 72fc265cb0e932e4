package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			FallSeconds: 0.5,
		},
		Scoring: TetrisScoring{
			LineBase: 100,
		},
		Window: TetrisWindow{
			CellSize:   30,
			PanelCells: 6,
			Title:      "Blockfall",
		},
	}
}
