// Package config provides YAML-based game configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned by TetrisConfig.Validate.
var (
	ErrInvalidBoard   = errors.New("config: invalid board dimensions")
	ErrInvalidTiming  = errors.New("config: invalid timing")
	ErrInvalidScoring = errors.New("config: invalid scoring")
	ErrInvalidWindow  = errors.New("config: invalid window layout")
)

// Minimum board size that still fits every tetromino at the spawn point.
const (
	MinBoardWidth  = 5
	MinBoardHeight = 4
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
	Window  TetrisWindow  `yaml:"window"`
}

// TetrisBoard defines the playing field dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines the gravity timer.
type TetrisTiming struct {
	FallSeconds float64 `yaml:"fall_seconds"` // Time between forced one-row drops
}

// TetrisScoring defines the line clear reward.
type TetrisScoring struct {
	LineBase int `yaml:"line_base"` // Points = cleared^2 * line_base
}

// TetrisWindow defines the pixel layout of the desktop window.
type TetrisWindow struct {
	CellSize   int    `yaml:"cell_size"`   // Pixel size of one grid cell
	PanelCells int    `yaml:"panel_cells"` // Side panel width, in cells
	Title      string `yaml:"title"`
}

// FallInterval returns the gravity interval as a duration.
func (t TetrisTiming) FallInterval() time.Duration {
	return time.Duration(t.FallSeconds * float64(time.Second))
}

// PixelSize returns the window size in pixels: the board plus the side panel.
func (c TetrisConfig) PixelSize() (int, int) {
	w := c.Window.CellSize * (c.Board.Width + c.Window.PanelCells)
	h := c.Window.CellSize * c.Board.Height
	return w, h
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidBoard, c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight)
	}
	if c.Timing.FallSeconds <= 0 {
		return fmt.Errorf("%w: fall_seconds must be positive, got %v", ErrInvalidTiming, c.Timing.FallSeconds)
	}
	if c.Scoring.LineBase < 0 {
		return fmt.Errorf("%w: line_base must not be negative, got %d", ErrInvalidScoring, c.Scoring.LineBase)
	}
	if c.Window.CellSize <= 0 || c.Window.PanelCells < 0 {
		return fmt.Errorf("%w: cell_size=%d panel_cells=%d",
			ErrInvalidWindow, c.Window.CellSize, c.Window.PanelCells)
	}
	return nil
}
