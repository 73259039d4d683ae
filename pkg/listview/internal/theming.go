package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colours and font used by scenes built on the framework.
type Theme struct {
	BackgroundColor sdl.Color // Frame clear colour
	ItemColor       sdl.Color // Even list rows
	ItemAltColor    sdl.Color // Odd list rows
	HighlightColor  sdl.Color // Row under the pointer
	TextColor       sdl.Color // Label text
	FontPath        string    // Path to the label font; empty disables text
	FontSize        int       // Point size for labels
}

// DefaultTheme is a dark theme with a white thumb-friendly contrast.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101418),
		ItemColor:       HexToColor(0x24303C),
		ItemAltColor:    HexToColor(0x1C2630),
		HighlightColor:  HexToColor(0x008080),
		TextColor:       HexToColor(0xFFFFFF),
		FontSize:        24,
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// WithAlpha returns c with its alpha channel set from a 0..1 fraction.
func WithAlpha(c sdl.Color, alpha float64) sdl.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}
