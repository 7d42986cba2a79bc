package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// String returns a short display name for HUD text.
func (c Color) String() string {
	switch c {
	case ColorRed, ColorBrightRed:
		return "RED"
	case ColorGreen, ColorBrightGreen:
		return "GREEN"
	case ColorYellow, ColorBrightYellow:
		return "YELLOW"
	case ColorBlue, ColorBrightBlue:
		return "BLUE"
	case ColorMagenta, ColorBrightMagenta:
		return "MAGENTA"
	case ColorCyan, ColorBrightCyan:
		return "CYAN"
	case ColorWhite, ColorBrightWhite:
		return "WHITE"
	case ColorOrange:
		return "ORANGE"
	case ColorGray:
		return "GRAY"
	default:
		return "NONE"
	}
}

// DotPalette is the set of colors dots spawn with. The spawner picks the
// target color or one of the others depending on the correct-color ratio.
var DotPalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
}
