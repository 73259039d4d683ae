// Package constants defines shared constants, types, and configuration values
// used throughout the listview packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the framework.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "LISTVIEW_LOG_LEVEL"
	TouchDeviceEnvVar  = "LISTVIEW_TOUCH_DEVICE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Only the buttons a list view reacts to are named.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// List view defaults.
const (
	DefaultListX      float64 = 0
	DefaultListY      float64 = 0
	DefaultListWidth  float64 = 100
	DefaultListHeight float64 = 100

	DefaultScrollbarColour uint32  = 0xFFFFFF
	DefaultScrollbarAlpha  float64 = 1
	DefaultScrollbarWidth  float64 = 10

	// MinThumbHeight is the smallest the scrollbar thumb may get, in pixels.
	MinThumbHeight float64 = 10
	// MinThumbRatio is the smallest viewport/content ratio used to size the thumb.
	MinThumbRatio float64 = 0.1

	DefaultScrollStep float64 = 20
)

// Default timing constants.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Time between subsequent repeats
	DefaultFrameTime      = 16 * time.Millisecond  // ~60fps when VSync is unavailable
)
