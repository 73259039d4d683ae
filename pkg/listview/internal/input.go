package internal

import (
	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// EventKind distinguishes the input events scenes consume.
type EventKind int

const (
	EventButton EventKind = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventWheel
	EventQuit
)

// Event is a platform independent input event.
// Button events carry Button and Pressed; pointer events carry X and Y
// in renderer logical coordinates; wheel events carry WheelY at X, Y.
type Event struct {
	Kind    EventKind
	Button  constants.VirtualButton
	Pressed bool
	X, Y    float64
	WheelY  float64
}

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_TAB:       constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			controllers = append(controllers, c)
		}
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// TranslateSDLEvent converts an SDL event into an Event.
// It returns nil for events scenes do not care about.
func TranslateSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return &Event{Kind: EventQuit}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Kind: EventButton, Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Kind: EventButton, Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return nil
		}
		kind := EventPointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = EventPointerDown
		}
		return &Event{Kind: kind, X: float64(e.X), Y: float64(e.Y)}

	case *sdl.MouseMotionEvent:
		return &Event{Kind: EventPointerMove, X: float64(e.X), Y: float64(e.Y)}

	case *sdl.MouseWheelEvent:
		x, y, _ := sdl.GetMouseState()
		return &Event{Kind: EventWheel, X: float64(x), Y: float64(y), WheelY: float64(e.Y)}
	}

	return nil
}
