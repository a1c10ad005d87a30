package core

import "strings"

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
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
	ColorPink
	ColorPurple
)

var hexColors = map[string]Color{
	"#FF0000": ColorBrightRed,
	"#FFB8FF": ColorPink,
	"#00FFFF": ColorBrightCyan,
	"#FFB852": ColorOrange,
	"#00FF00": ColorBrightGreen,
	"#FF8800": ColorOrange,
	"#AA00FF": ColorPurple,
	"#0088FF": ColorBrightBlue,
	"#FFFFFF": ColorBrightWhite,
	"#FFFF00": ColorBrightYellow,
	"#0000FF": ColorBlue,
}

// ColorFromHex maps a "#RRGGBB" string onto the palette. Unknown values
// return fallback.
func ColorFromHex(hex string, fallback Color) Color {
	if c, ok := hexColors[strings.ToUpper(hex)]; ok {
		return c
	}
	return fallback
}
