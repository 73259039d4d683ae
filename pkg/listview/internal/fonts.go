package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

var labelFont *ttf.Font

func loadFont(theme Theme) {
	if theme.FontPath == "" {
		return
	}

	size := theme.FontSize
	if size <= 0 {
		size = DefaultTheme().FontSize
	}

	font, err := ttf.OpenFont(theme.FontPath, size)
	if err != nil {
		GetInternalLogger().Warn("Failed to open label font; text disabled", "path", theme.FontPath, "error", err)
		return
	}

	labelFont = font
}

// Font returns the label font, or nil when none could be loaded.
func Font() *ttf.Font {
	return labelFont
}

func closeFont() {
	if labelFont != nil {
		labelFont.Close()
		labelFont = nil
	}
}
