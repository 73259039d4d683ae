package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, its image and font add-ons, the window and the
// game controllers. It must run on the main thread.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG); err != nil {
		GetInternalLogger().Warn("SDL_image PNG support unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := newWindow(title, winOpts)
	if err != nil {
		return err
	}
	window = w

	openControllers()
	loadFont(GetTheme())

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.close()
	}
	closeControllers()
	closeFont()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
