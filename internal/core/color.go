package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the game. Platforms map these to their own color types.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Semantic aliases for world elements.
const (
	ColorWall     = ColorGreen
	ColorCoin     = ColorBrightYellow
	ColorPlayer   = ColorBrightCyan
	ColorTerminal = ColorBlue
	ColorHUD      = ColorBrightWhite
	ColorPanel    = ColorBrightGreen
)
