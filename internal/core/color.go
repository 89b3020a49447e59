package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

// Palette used by the game and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorGray
	ColorDarkGray
)
