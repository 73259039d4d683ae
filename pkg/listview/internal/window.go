package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the scenes draw into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func windowSize(opts WindowOptions) (int32, int32) {
	width, height := opts.Width, opts.Height

	if width == 0 || height == 0 {
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = mode.W, mode.H
		} else {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		}
	}

	if constants.IsDevMode() {
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	return width, height
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}

	return int32(n)
}

func newWindow(title string, opts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	width, height := windowSize(opts)

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (window *Window) close() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// Clear fills the frame with the theme background colour.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetViewport(nil)
	window.Renderer.SetClipRect(nil)
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.DefaultFrameTime.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
