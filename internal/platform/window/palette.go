package window

import (
	"image/color"

	"github.com/vovakirdan/blockfall/internal/core"
)

var (
	colorBackground = core.ColorBrightWhite.RGBA()
	colorBoard      = core.ColorDefault.RGBA() // Empty cells
	colorText       = color.RGBA{0, 0, 0, 255}
	colorDim        = color.RGBA{110, 110, 110, 255}
)
