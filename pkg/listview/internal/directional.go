package internal

import (
	"time"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
)

// Direction is a vertical scroll direction driven by buttons.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionPageUp
	DirectionPageDown
)

// DirectionalInput tracks held scroll buttons and handles repeat timing,
// so holding a d-pad direction keeps a list scrolling.
type DirectionalInput struct {
	held struct {
		up, down, pageUp, pageDown bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for a button.
// Returns the direction to apply immediately on press, or DirectionNone.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) Direction {
	var slot *bool
	var dir Direction

	switch button {
	case constants.VirtualButtonUp:
		slot, dir = &d.held.up, DirectionUp
	case constants.VirtualButtonDown:
		slot, dir = &d.held.down, DirectionDown
	case constants.VirtualButtonL1:
		slot, dir = &d.held.pageUp, DirectionPageUp
	case constants.VirtualButtonR1:
		slot, dir = &d.held.pageDown, DirectionPageDown
	default:
		return DirectionNone
	}

	*slot = held
	d.hasRepeated = false
	d.lastRepeatTime = d.now()

	if !held {
		return DirectionNone
	}
	return dir
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.pageUp || d.held.pageDown
}

// HeldDirection returns the currently held direction.
// Single steps win over pages; up wins over down.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.pageUp:
		return DirectionPageUp
	case d.held.pageDown:
		return DirectionPageDown
	}
	return DirectionNone
}

// Update checks if a repeat should fire. Call it every frame.
// The first repeat occurs after repeatDelay, subsequent ones after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()

	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.pageUp = false
	d.held.pageDown = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// Scroll converts a direction into a signed scroll distance.
func (d Direction) Scroll(step, page float64) float64 {
	switch d {
	case DirectionUp:
		return -step
	case DirectionDown:
		return step
	case DirectionPageUp:
		return -page
	case DirectionPageDown:
		return page
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionPageUp:
		return "page-up"
	case DirectionPageDown:
		return "page-down"
	default:
		return ""
	}
}
