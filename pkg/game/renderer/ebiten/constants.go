package ebiten

import (
	"image/color"

	"puzzleadventure/pkg/game/memory"
)

// Window and layout sizes
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720

	margin       = 32
	titleSize    = 28.0
	bodySize     = 18.0
	smallSize    = 14.0
	tileSize     = 96
	tileGap      = 8
	padSize      = 120
	padGap       = 16
	menuRowH     = 40
	menuWidth    = 520
	cornerRadius = 10
)

// Key repeat timing, in ticks (60 per second)
const (
	keyRepeatInitialDelay = 30
	keyRepeatInterval     = 6
)

// theme is one complete colour set
type theme struct {
	background  color.Color
	panel       color.Color
	border      color.Color
	text        color.Color
	subtle      color.Color
	title       color.Color
	selected    color.Color
	selectedBg  color.Color
	caption     color.Color
	tile        color.Color
	tileMovable color.Color
	tileText    color.Color
	tileEmpty   color.Color
	focus       color.Color
	success     color.Color
}

var normalTheme = theme{
	background:  color.RGBA{26, 26, 46, 255},    // Dark blue-gray
	panel:       color.RGBA{30, 30, 50, 220},    // Semi-transparent dark
	border:      color.RGBA{120, 130, 180, 255}, // Soft blue-purple-gray
	text:        color.RGBA{200, 210, 245, 255}, // Soft off-white
	subtle:      color.RGBA{120, 130, 180, 255},
	title:       color.RGBA{180, 150, 250, 255},
	selected:    color.RGBA{255, 255, 255, 255},
	selectedBg:  color.RGBA{60, 80, 100, 200},
	caption:     color.RGBA{255, 220, 100, 255},
	tile:        color.RGBA{60, 60, 80, 255},
	tileMovable: color.RGBA{70, 90, 130, 255},
	tileText:    color.RGBA{200, 210, 245, 255},
	tileEmpty:   color.RGBA{15, 15, 26, 255},
	focus:       color.RGBA{255, 220, 100, 255},
	success:     color.RGBA{100, 255, 150, 255},
}

// highContrastTheme uses black, white and yellow only
var highContrastTheme = theme{
	background:  color.Black,
	panel:       color.Black,
	border:      color.White,
	text:        color.White,
	subtle:      color.White,
	title:       color.RGBA{255, 255, 0, 255},
	selected:    color.Black,
	selectedBg:  color.RGBA{255, 255, 0, 255},
	caption:     color.RGBA{255, 255, 0, 255},
	tile:        color.White,
	tileMovable: color.RGBA{255, 255, 0, 255},
	tileText:    color.Black,
	tileEmpty:   color.Black,
	focus:       color.RGBA{0, 255, 255, 255},
	success:     color.RGBA{255, 255, 0, 255},
}

func themeFor(highContrast bool) theme {
	if highContrast {
		return highContrastTheme
	}
	return normalTheme
}

// padColors returns the dark and lit fill of a colour pad
func padColors(c memory.Color) (dark, lit color.Color) {
	switch c {
	case memory.Red:
		return color.RGBA{110, 30, 30, 255}, color.RGBA{255, 80, 80, 255}
	case memory.Green:
		return color.RGBA{30, 90, 40, 255}, color.RGBA{80, 255, 120, 255}
	case memory.Blue:
		return color.RGBA{30, 50, 120, 255}, color.RGBA{100, 150, 255, 255}
	default:
		return color.RGBA{110, 100, 20, 255}, color.RGBA{255, 235, 80, 255}
	}
}
