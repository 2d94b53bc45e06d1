package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

// Predefined colors. The gray ramp is ordered from brightest to darkest and is
// used for distance shading of walls.
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
	ColorBrightWhite
	ColorOrange
	ColorBrick
	ColorBrickDark
	ColorGray
	ColorGrayDark
	ColorGrayDarker
)

// Ramp returns the color at position t in [0, 1] along a slice of colors,
// where 0 picks the first entry and 1 the last.
func Ramp(colors []Color, t float64) Color {
	if len(colors) == 0 {
		return ColorDefault
	}
	i := int(ClampF(t, 0, 1) * float64(len(colors)-1))
	return colors[i]
}
