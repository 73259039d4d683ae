// Package listview provides a scrollable list widget for SDL2 scenes.
//
// A ListView clips a vertical stack of items to a rectangle and scrolls it
// through a camera of its own, by pointer drag, wheel, d-pad or an optional
// drag-operable scrollbar. The package also handles SDL initialisation,
// input translation and the frame loop that drives a scene.
package listview

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// WindowOptions selects the SDL window size and flags.
type WindowOptions = internal.WindowOptions

// Theme holds the colours and label font scenes are drawn with.
type Theme = internal.Theme

// InitOptions configures the framework initialization.
type InitOptions struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window size and flags
	Theme         *Theme        // Colours and label font; nil keeps the default theme
	LogPath       string        // Full path for the log file including filename (creates parent directories)
	LogLevel      string        // Framework log level: debug, info, warn or error
	TouchDevice   string        // evdev touchscreen to read pointer input from, e.g. /dev/input/event2
}

var touch *internal.TouchReader

// Init initializes SDL, the window, theming and input.
// Must be called on the main thread before any scene is run.
// LISTVIEW_LOG_LEVEL and LISTVIEW_TOUCH_DEVICE override the matching options.
func Init(options InitOptions) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		level = v
	}
	if level == "" {
		level = "error"
	}
	internal.SetInternalLogLevel(internal.ParseLevel(level))

	if options.Theme != nil {
		internal.SetTheme(*options.Theme)
	}

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	device := options.TouchDevice
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		device = v
	}
	if device != "" {
		w := internal.GetWindow()
		reader, err := internal.OpenTouch(device, w.GetWidth(), w.GetHeight())
		if err != nil {
			// Mouse input still works; touch is optional.
			internal.GetInternalLogger().Warn("Touch input unavailable", "device", device, "error", err)
		} else {
			touch = reader
			touch.Start()
		}
	}

	return nil
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if touch != nil {
		touch.Close()
		touch = nil
	}
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// DefaultTheme returns the built-in theme, for callers that want to tweak it.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return internal.GetTheme()
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return internal.HexToColor(hex)
}

// Font returns the theme's label font, or nil when none is configured or
// it failed to load.
func Font() *ttf.Font {
	return internal.Font()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
