package listview

import (
	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
	"github.com/veandco/go-sdl2/sdl"
)

// ButtonHandler receives a virtual button press or release.
type ButtonHandler func(button constants.VirtualButton, pressed bool)

// Loop runs a scene: it feeds input to the scene, updates it, renders it
// and presents the frame until Stop is called or the window is closed.
type Loop struct {
	scene   *scene.Scene
	focus   *ListView
	buttons []ButtonHandler

	running bool
	err     error
}

// NewLoop creates a loop for sc.
func NewLoop(sc *scene.Scene) *Loop {
	return &Loop{scene: sc}
}

// Focus routes d-pad and shoulder buttons to lv for scrolling.
func (l *Loop) Focus(lv *ListView) *Loop {
	l.focus = lv
	return l
}

// OnButton registers fn for buttons the focused list does not use.
func (l *Loop) OnButton(fn ButtonHandler) *Loop {
	l.buttons = append(l.buttons, fn)
	return l
}

// Stop ends Run after the current frame.
func (l *Loop) Stop() {
	l.running = false
}

// Dispatch applies one input event to the scene.
func (l *Loop) Dispatch(ev internal.Event) {
	in := l.scene.Input()

	switch ev.Kind {
	case internal.EventQuit:
		l.err = ErrQuit
		l.Stop()
	case internal.EventPointerDown:
		in.PointerDown(ev.X, ev.Y)
	case internal.EventPointerMove:
		in.PointerMove(ev.X, ev.Y)
	case internal.EventPointerUp:
		in.PointerUp(ev.X, ev.Y)
	case internal.EventWheel:
		in.Wheel(ev.X, ev.Y, ev.WheelY)
	case internal.EventButton:
		if l.focus != nil && l.focus.HandleButton(ev.Button, ev.Pressed) {
			return
		}
		for _, fn := range l.buttons {
			fn(ev.Button, ev.Pressed)
		}
	}
}

// Run drives the scene until Stop is called. It returns ErrQuit if the
// window was closed.
func (l *Loop) Run() error {
	window := internal.GetWindow()
	renderer := window.Renderer

	l.running = true
	l.err = nil

	for l.running {
		if event := sdl.WaitEventTimeout(int(constants.DefaultFrameTime.Milliseconds())); event != nil {
			for ; event != nil; event = sdl.PollEvent() {
				if ev := internal.TranslateSDLEvent(event); ev != nil {
					l.Dispatch(*ev)
				}
			}
		}

		if touch != nil {
			for _, ev := range touch.Poll() {
				l.Dispatch(ev)
			}
		}

		l.scene.Update()

		window.Clear()
		l.scene.Render(renderer)
		window.Present()
	}

	return l.err
}
