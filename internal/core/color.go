package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility; the window
// frontend maps the same values to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// String returns the color name, mostly for test failure output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright-white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

// rgb holds the pixel values the window frontend paints each color with.
var rgb = map[Color]color.RGBA{
	ColorDefault:     {255, 255, 255, 255},
	ColorRed:         {255, 0, 0, 255},
	ColorGreen:       {0, 255, 0, 255},
	ColorYellow:      {255, 255, 0, 255},
	ColorBlue:        {0, 0, 255, 255},
	ColorPurple:      {128, 0, 128, 255},
	ColorCyan:        {0, 255, 255, 255},
	ColorWhite:       {220, 220, 220, 255},
	ColorBrightWhite: {255, 255, 255, 255},
	ColorOrange:      {255, 165, 0, 255},
	ColorGray:        {128, 128, 128, 255},
}

// RGBA returns the pixel color of c. Unknown colors map to gray.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[ColorGray]
}
