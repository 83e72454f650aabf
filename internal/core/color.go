package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray

	// Warm ramp used for tiles, lightest to darkest.
	ColorSand
	ColorPeach
	ColorApricot
	ColorOrange
	ColorDarkOrange
	ColorRust
	ColorBrick
	ColorMaroon
	ColorEmber
)
