package core

import "fmt"

// Color is a 24-bit RGB foreground color for a screen cell. The zero value
// means "terminal default".
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault returns true for the zero color, which renders unstyled.
func (c Color) IsDefault() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Hex returns the color as a "#rrggbb" string for the rendering layer.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for UI elements.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorGray    = RGB(150, 150, 150)
	ColorDimGray = RGB(90, 90, 90)
	ColorYellow  = RGB(230, 210, 40)
	ColorCyan    = RGB(100, 220, 255)
	ColorGreen   = RGB(80, 220, 80)
	ColorRed     = RGB(255, 60, 60)
	ColorPaddle  = RGB(100, 180, 255)
)
