package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDirectional() (*DirectionalInput, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = clock.now
	d.lastRepeatTime = clock.t
	return &d, clock
}

func TestDirectionalPressFiresImmediately(t *testing.T) {
	d, _ := newTestDirectional()

	assert.Equal(t, DirectionDown, d.SetHeld(constants.VirtualButtonDown, true))
	assert.True(t, d.IsHeld())
	assert.Equal(t, DirectionNone, d.SetHeld(constants.VirtualButtonDown, false))
	assert.False(t, d.IsHeld())

	assert.Equal(t, DirectionPageUp, d.SetHeld(constants.VirtualButtonL1, true))
	assert.Equal(t, DirectionNone, d.SetHeld(constants.VirtualButtonA, true))
}

func TestDirectionalRepeatTiming(t *testing.T) {
	d, clock := newTestDirectional()
	d.SetHeld(constants.VirtualButtonUp, true)

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionUp, d.Update())

	clock.advance(49 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionUp, d.Update())

	d.SetHeld(constants.VirtualButtonUp, false)
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalHeldPriority(t *testing.T) {
	d, _ := newTestDirectional()

	d.SetHeld(constants.VirtualButtonR1, true)
	assert.Equal(t, DirectionPageDown, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonDown, true)
	assert.Equal(t, DirectionDown, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonUp, true)
	assert.Equal(t, DirectionUp, d.HeldDirection())

	d.Reset()
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionScroll(t *testing.T) {
	assert.Equal(t, -20.0, DirectionUp.Scroll(20, 100))
	assert.Equal(t, 20.0, DirectionDown.Scroll(20, 100))
	assert.Equal(t, -100.0, DirectionPageUp.Scroll(20, 100))
	assert.Equal(t, 100.0, DirectionPageDown.Scroll(20, 100))
	assert.Equal(t, 0.0, DirectionNone.Scroll(20, 100))

	assert.Equal(t, "page-down", DirectionPageDown.String())
	assert.Equal(t, "", DirectionNone.String())
}
