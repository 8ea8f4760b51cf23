package core

import "fmt"

// Color is a 24-bit cell colour. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	Valid   bool
}

// ColorDefault leaves the terminal's own colour in place.
var ColorDefault = Color{}

// HUD colours.
var (
	ColorYellow = RGB(0xfc, 0xb8, 0x00)
	ColorGray   = RGB(0x8a, 0x8a, 0x8a)
)

// RGB creates an explicit colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// Hex returns the colour as "#rrggbb", or an empty string for the default colour.
func (c Color) Hex() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
