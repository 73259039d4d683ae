package listview

import (
	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
)

// ItemHandler receives an item event with the item, its current index and
// the full list of items.
type ItemHandler func(item scene.GameObject, index int, items []scene.GameObject)

// ItemHandlers holds the optional item event callbacks. Nil slots are skipped.
type ItemHandlers struct {
	Down ItemHandler // Pointer pressed on an item
	Over ItemHandler // Pointer entered an item
	Out  ItemHandler // Pointer left an item
}

// Options configures a ListView.
// Width and Height default to 100 when zero.
type Options struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	ScrollStep float64 `toml:"scroll_step"` // Distance per d-pad/wheel step, default 20

	Handlers ItemHandlers `toml:"-"`
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = constants.DefaultListWidth
	}
	if o.Height == 0 {
		o.Height = constants.DefaultListHeight
	}
	if o.ScrollStep <= 0 {
		o.ScrollStep = constants.DefaultScrollStep
	}
	return o
}

// ScrollbarOptions configures the scrollbar thumb.
//
// Colour defaults to white. Alpha defaults to 1, or 0 when Colour is set
// to 0 (black), which leaves an invisible but draggable thumb.
// Width defaults to 10.
type ScrollbarOptions struct {
	Colour *uint32  `toml:"colour"`
	Alpha  *float64 `toml:"alpha"`
	Width  float64  `toml:"width"`
}

// Colour returns a pointer to hex for use in ScrollbarOptions.
func Colour(hex uint32) *uint32 {
	return &hex
}

// Alpha returns a pointer to a for use in ScrollbarOptions.
func Alpha(a float64) *float64 {
	return &a
}

func (o ScrollbarOptions) resolve() (colour uint32, alpha, width float64) {
	colour = constants.DefaultScrollbarColour
	if o.Colour != nil {
		colour = *o.Colour
	}

	alpha = constants.DefaultScrollbarAlpha
	if o.Alpha != nil {
		alpha = *o.Alpha
	}
	if colour == 0 {
		alpha = 0
	}

	width = o.Width
	if width <= 0 {
		width = constants.DefaultScrollbarWidth
	}

	return colour, alpha, width
}
