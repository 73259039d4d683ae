package internal

import (
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const touchQueueSize = 64

// TouchReader turns an evdev touchscreen into pointer Events.
// Reading happens on its own goroutine; the main loop calls Poll each
// frame to collect what arrived since the previous frame.
type TouchReader struct {
	dev     *evdev.InputDevice
	events  chan Event
	running *atomic.Bool

	xAxis, yAxis  evdev.AbsInfo
	width, height int32
}

// OpenTouch opens the evdev device at path and maps its absolute axes
// onto a width x height surface.
func OpenTouch(path string, width, height int32) (*TouchReader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("read abs info %s: %w", path, err)
	}

	t := &TouchReader{
		dev:     dev,
		events:  make(chan Event, touchQueueSize),
		running: atomic.NewBool(false),
		width:   width,
		height:  height,
	}

	if info, ok := infos[evdev.ABS_MT_POSITION_X]; ok {
		t.xAxis = info
	} else {
		t.xAxis = infos[evdev.ABS_X]
	}
	if info, ok := infos[evdev.ABS_MT_POSITION_Y]; ok {
		t.yAxis = info
	} else {
		t.yAxis = infos[evdev.ABS_Y]
	}

	name, _ := dev.Name()
	GetInternalLogger().Debug("Opened touch device", "path", path, "name", name)

	return t, nil
}

// Start launches the reader goroutine.
func (t *TouchReader) Start() {
	if t.running.Swap(true) {
		return
	}
	go t.readLoop()
}

func (t *TouchReader) readLoop() {
	var state touchState

	for t.running.Load() {
		ev, err := t.dev.ReadOne()
		if err != nil {
			if t.running.Load() {
				GetInternalLogger().Error("Touch device read failed", "error", err)
			}
			return
		}

		if out, ok := state.apply(ev.Type, ev.Code, ev.Value); ok {
			out.X = scaleAxis(float64(state.rawX), t.xAxis, t.width)
			out.Y = scaleAxis(float64(state.rawY), t.yAxis, t.height)
			select {
			case t.events <- out:
			default:
				// Main loop stalled; drop rather than block the reader.
			}
		}
	}
}

// Poll drains queued events without blocking.
func (t *TouchReader) Poll() []Event {
	var out []Event
	for {
		select {
		case ev := <-t.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Close stops the reader and releases the device.
func (t *TouchReader) Close() {
	t.running.Store(false)
	t.dev.Close()
}

// touchState accumulates evdev events until a SYN_REPORT completes a frame.
type touchState struct {
	rawX, rawY  int32
	touching    bool
	wasTouching bool
	moved       bool
}

func (s *touchState) apply(typ evdev.EvType, code evdev.EvCode, value int32) (Event, bool) {
	switch typ {
	case evdev.EV_ABS:
		switch code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			s.rawX = value
			s.moved = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			s.rawY = value
			s.moved = true
		}
	case evdev.EV_KEY:
		if code == evdev.BTN_TOUCH {
			s.touching = value != 0
		}
	case evdev.EV_SYN:
		if code != evdev.SYN_REPORT {
			return Event{}, false
		}
		defer func() {
			s.wasTouching = s.touching
			s.moved = false
		}()

		switch {
		case s.touching && !s.wasTouching:
			return Event{Kind: EventPointerDown}, true
		case !s.touching && s.wasTouching:
			return Event{Kind: EventPointerUp}, true
		case s.touching && s.moved:
			return Event{Kind: EventPointerMove}, true
		}
	}

	return Event{}, false
}

func scaleAxis(raw float64, info evdev.AbsInfo, size int32) float64 {
	span := float64(info.Maximum - info.Minimum)
	if span <= 0 {
		return raw
	}
	return (raw - float64(info.Minimum)) / span * float64(size)
}
