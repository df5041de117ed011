package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
)

// ParseColor maps a config color name to a Color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "white":
		return ColorWhite, true
	case "gray", "grey":
		return ColorGray, true
	case "bright_red":
		return ColorBrightRed, true
	case "bright_green":
		return ColorBrightGreen, true
	case "bright_blue":
		return ColorBrightBlue, true
	case "", "default":
		return ColorDefault, true
	default:
		return ColorDefault, false
	}
}
