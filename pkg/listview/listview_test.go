package listview

import (
	"testing"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// newTestList builds a 200x100 list at (10, 20) in a 640x480 scene.
func newTestList(t *testing.T, opts ...Options) (*scene.Scene, *ListView) {
	t.Helper()

	o := Options{X: 10, Y: 20, Width: 200, Height: 100}
	if len(opts) > 0 {
		o = opts[0]
	}

	sc := scene.New(640, 480)
	t.Cleanup(sc.Destroy)

	return sc, New(sc, o)
}

func rows(heights ...float64) []scene.GameObject {
	items := make([]scene.GameObject, len(heights))
	for i, h := range heights {
		items[i] = scene.NewBox(200, h, sdl.Color{R: uint8(i), A: 255})
	}
	return items
}

// drag presses at (x, y), moves by dy and releases.
func drag(sc *scene.Scene, x, y, dy float64) {
	in := sc.Input()
	in.PointerDown(x, y)
	in.PointerMove(x, y+dy)
	in.PointerUp(x, y+dy)
}

func TestNewDefaults(t *testing.T) {
	sc := scene.New(640, 480)
	defer sc.Destroy()

	lv := New(sc, Options{})

	assert.Equal(t, scene.Rect{X: 0, Y: 0, W: 100, H: 100}, lv.Bounds())
	assert.Equal(t, scene.Rect{X: 0, Y: 0, W: 100, H: 100}, lv.Camera().Viewport())
	assert.Equal(t, 0.0, lv.ScrollOffset())
	assert.Equal(t, 0, lv.Len())
	assert.Nil(t, lv.Scrollbar())
	assert.Len(t, sc.Cameras(), 2)
	assert.Contains(t, sc.DisplayList(), scene.GameObject(lv.Container()))
}

func TestAddStacksItems(t *testing.T) {
	_, lv := newTestList(t)

	items := rows(30, 50, 20)
	lv.Add(items[0])
	lv.Add(items[1:]...)

	require.Equal(t, 3, lv.Len())

	var want float64
	for i, item := range lv.Items() {
		n := item.Base()
		assert.Equal(t, 0.0, n.X(), "item %d x", i)
		assert.Equal(t, want, n.Y(), "item %d y", i)
		assert.True(t, n.Interactive())
		want += n.Height()
	}

	assert.Equal(t, 100.0, lv.ContentHeight())
	assert.Equal(t, 0.0, lv.MaxScroll())
}

func TestExampleDragScenario(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50, 50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{})
	sc.Update()

	require.Equal(t, 150.0, lv.ContentHeight())
	require.Equal(t, 50.0, lv.MaxScroll())
	require.Equal(t, 0.0, lv.ScrollOffset())

	drag(sc, 50, 100, -30)
	sc.Update()

	assert.InDelta(t, 30.0, lv.ScrollOffset(), 1e-9)
	assert.InDelta(t, 50.0, lv.Camera().ScrollY(), 1e-9)

	sb := lv.Scrollbar()
	thumb := 100.0 * 100 / 150
	assert.InDelta(t, thumb, sb.ThumbHeight(), 1e-9)
	assert.InDelta(t, 30.0/50*(100-thumb)+20, sb.ThumbY(), 1e-9)
}

func TestDragOffsetStaysInRange(t *testing.T) {
	for _, dy := range []float64{-1000, -75, -50, -49, -10, 0, 10, 49, 200} {
		sc, lv := newTestList(t)
		lv.Add(rows(50, 50, 50)...)
		sc.Update()
		lv.ScrollTo(25)

		drag(sc, 50, 60, dy)

		offset := lv.ScrollOffset()
		assert.GreaterOrEqual(t, offset, 0.0, "dy=%v", dy)
		assert.LessOrEqual(t, offset, 50.0, "dy=%v", dy)
		assert.InDelta(t, clamp(25-dy, 0, 50), offset, 1e-9, "dy=%v", dy)
	}
}

func TestDragContinuesFromRecordedOffset(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50, 50, 50, 50)...)
	sc.Update()

	drag(sc, 50, 100, -20)
	drag(sc, 50, 100, -30)

	assert.InDelta(t, 50.0, lv.ScrollOffset(), 1e-9)
}

func TestDragWhenContentFits(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(40, 40)...)
	sc.Update()

	drag(sc, 50, 100, -60)

	assert.Equal(t, 0.0, lv.ScrollOffset())
	assert.Equal(t, 0.0, lv.ScrollPercent())
}

func TestScrollToClamps(t *testing.T) {
	_, lv := newTestList(t)
	lv.Add(rows(50, 50, 50)...)

	lv.ScrollTo(20)
	assert.Equal(t, 20.0, lv.ScrollOffset())

	lv.ScrollBy(100)
	assert.Equal(t, 50.0, lv.ScrollOffset())
	assert.Equal(t, 1.0, lv.ScrollPercent())

	lv.ScrollTo(-5)
	assert.Equal(t, 0.0, lv.ScrollOffset())
}

func TestScrollbarThumbHeight(t *testing.T) {
	cases := []struct {
		heights []float64
		want    float64
	}{
		{[]float64{50}, 100},
		{[]float64{50, 50}, 100},
		{[]float64{100, 100}, 50},
		{[]float64{200, 200, 200, 200, 200, 200}, 10},
	}

	for _, c := range cases {
		sc, lv := newTestList(t)
		lv.Add(rows(c.heights...)...)
		lv.EnableScrollbar(&ScrollbarOptions{})
		sc.Update()

		assert.InDelta(t, c.want, lv.Scrollbar().ThumbHeight(), 1e-9, "heights %v", c.heights)
	}
}

func TestScrollbarDragExtremes(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50, 50, 50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{Width: 10})
	sc.Update()

	sb := lv.Scrollbar()
	require.Equal(t, 20.0, sb.ThumbY())
	require.Equal(t, 50.0, sb.ThumbHeight())

	in := sc.Input()

	in.PointerDown(215, 30)
	require.Equal(t, scene.GameObject(sb.Thumb()), in.Dragging())

	in.PointerMove(215, 500)
	assert.Equal(t, 1.0, lv.ScrollPercent())
	assert.Equal(t, 100.0, lv.ScrollOffset())
	assert.Equal(t, 70.0, sb.ThumbY())

	in.PointerMove(215, -500)
	assert.Equal(t, 0.0, lv.ScrollPercent())
	assert.Equal(t, 0.0, lv.ScrollOffset())
	assert.Equal(t, 20.0, sb.ThumbY())

	in.PointerMove(215, 55)
	assert.InDelta(t, 0.5, lv.ScrollPercent(), 1e-9)
	assert.InDelta(t, 45.0, sb.ThumbY(), 1e-9)

	in.PointerUp(215, 55)
	assert.Nil(t, in.Dragging())
}

func TestScrollbarTracksScrollTo(t *testing.T) {
	_, lv := newTestList(t)
	lv.Add(rows(50, 50, 50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{})

	lv.ScrollTo(100)
	assert.Equal(t, 70.0, lv.Scrollbar().ThumbY())

	lv.ScrollTo(0)
	assert.Equal(t, 20.0, lv.Scrollbar().ThumbY())
}

func TestEnableScrollbar(t *testing.T) {
	t.Run("nil is a no-op", func(t *testing.T) {
		sc, lv := newTestList(t)
		before := len(sc.DisplayList())

		lv.EnableScrollbar(nil)

		assert.Nil(t, lv.Scrollbar())
		assert.Len(t, sc.DisplayList(), before)
	})

	t.Run("second call keeps the first scrollbar", func(t *testing.T) {
		sc, lv := newTestList(t)

		lv.EnableScrollbar(&ScrollbarOptions{Colour: Colour(0xFF0000)})
		first := lv.Scrollbar()
		before := len(sc.DisplayList())

		lv.EnableScrollbar(&ScrollbarOptions{Colour: Colour(0x00FF00)})

		assert.Same(t, first, lv.Scrollbar())
		assert.Equal(t, uint32(0xFF0000), lv.Scrollbar().Colour())
		assert.Len(t, sc.DisplayList(), before)
	})

	t.Run("thumb sits right of the list", func(t *testing.T) {
		_, lv := newTestList(t)
		lv.EnableScrollbar(&ScrollbarOptions{})

		thumb := lv.Scrollbar().Thumb()
		assert.Equal(t, 210.0, thumb.X())
		assert.Equal(t, 20.0, thumb.Y())
		assert.True(t, thumb.Draggable())
	})
}

func TestScrollbarOptionsResolve(t *testing.T) {
	tests := []struct {
		name   string
		opts   ScrollbarOptions
		colour uint32
		alpha  float64
		width  float64
	}{
		{"defaults", ScrollbarOptions{}, 0xFFFFFF, 1, 10},
		{"colour only", ScrollbarOptions{Colour: Colour(0x336699)}, 0x336699, 1, 10},
		{"black hides the thumb", ScrollbarOptions{Colour: Colour(0), Alpha: Alpha(0.8)}, 0, 0, 10},
		{"explicit alpha", ScrollbarOptions{Alpha: Alpha(0.5), Width: 6}, 0xFFFFFF, 0.5, 6},
		{"negative width", ScrollbarOptions{Width: -3}, 0xFFFFFF, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colour, alpha, width := tt.opts.resolve()
			assert.Equal(t, tt.colour, colour)
			assert.Equal(t, tt.alpha, alpha)
			assert.Equal(t, tt.width, width)
		})
	}
}

func TestRemoveAtSettles(t *testing.T) {
	_, lv := newTestList(t)
	items := rows(30, 50, 20, 40)
	lv.Add(items...)

	before := make([]float64, len(items))
	for i, item := range items {
		before[i] = item.Base().Y()
	}

	lv.RemoveAt(1)

	got := lv.Items()
	require.Len(t, got, 3)
	assert.Same(t, items[0], got[0])
	assert.Same(t, items[2], got[1])
	assert.Same(t, items[3], got[2])

	assert.Equal(t, before[0], got[0].Base().Y())
	assert.Equal(t, before[2]-50, got[1].Base().Y())
	assert.Equal(t, before[3]-50, got[2].Base().Y())
	assert.Equal(t, 90.0, lv.ContentHeight())
}

func TestRemoveAtOutOfRange(t *testing.T) {
	_, lv := newTestList(t)
	lv.Add(rows(50, 50)...)

	lv.RemoveAt(2)
	lv.RemoveAt(-1)

	assert.Equal(t, 2, lv.Len())
	assert.Equal(t, 100.0, lv.ContentHeight())
}

func TestRemoveAtReclampsOffset(t *testing.T) {
	_, lv := newTestList(t)
	lv.Add(rows(50, 50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{})
	lv.ScrollTo(50)

	lv.RemoveAt(0)

	assert.Equal(t, 0.0, lv.MaxScroll())
	assert.Equal(t, 0.0, lv.ScrollOffset())
	assert.Equal(t, 20.0, lv.Scrollbar().ThumbY())
}

func TestRemove(t *testing.T) {
	_, lv := newTestList(t)
	items := rows(50, 50)
	lv.Add(items...)

	require.NoError(t, lv.Remove(items[0]))
	assert.Equal(t, 1, lv.Len())
	assert.Equal(t, 0.0, items[1].Base().Y())

	err := lv.Remove(scene.NewBox(10, 10, sdl.Color{}))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPartition(t *testing.T) {
	sc, lv := newTestList(t)
	title := scene.NewBox(200, 20, sdl.Color{})
	sc.Add(title)
	lv.Add(rows(50, 50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{})

	sc.Update()

	main := sc.Main()
	for _, item := range lv.Items() {
		assert.True(t, main.Ignores(item))
		assert.False(t, lv.Camera().Ignores(item))
	}

	assert.True(t, lv.Camera().Ignores(title))
	assert.True(t, lv.Camera().Ignores(lv.Scrollbar().Thumb()))
	assert.False(t, lv.Camera().Ignores(lv.Container()))
	assert.False(t, main.Ignores(title))
	assert.False(t, main.Ignores(lv.Container()))

	mainIgnored, listIgnored := main.IgnoredCount(), lv.Camera().IgnoredCount()

	lv.PreUpdate()
	lv.PreUpdate()

	assert.Equal(t, mainIgnored, main.IgnoredCount())
	assert.Equal(t, listIgnored, lv.Camera().IgnoredCount())
}

func TestPartitionPicksUpNewItems(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50)...)
	sc.Update()

	late := scene.NewBox(200, 50, sdl.Color{})
	lv.Add(late)
	assert.False(t, sc.Main().Ignores(late))

	sc.Update()
	assert.True(t, sc.Main().Ignores(late))
}

func TestPartitionBetweenLists(t *testing.T) {
	sc := scene.New(640, 480)
	defer sc.Destroy()

	left := New(sc, Options{X: 0, Y: 0, Width: 200, Height: 100})
	right := New(sc, Options{X: 300, Y: 0, Width: 200, Height: 100})
	left.Add(rows(50, 50)...)
	right.Add(rows(50, 50)...)

	sc.Update()

	for _, item := range left.Items() {
		assert.True(t, right.Camera().Ignores(item))
		assert.False(t, left.Camera().Ignores(item))
	}
	for _, item := range right.Items() {
		assert.True(t, left.Camera().Ignores(item))
		assert.False(t, right.Camera().Ignores(item))
	}
}

func TestItemHandlers(t *testing.T) {
	type call struct {
		kind  string
		index int
		count int
	}
	var calls []call

	record := func(kind string) ItemHandler {
		return func(item scene.GameObject, index int, items []scene.GameObject) {
			assert.Same(t, items[index], item)
			calls = append(calls, call{kind, index, len(items)})
		}
	}

	sc, lv := newTestList(t, Options{
		X: 10, Y: 20, Width: 200, Height: 100,
		Handlers: ItemHandlers{Down: record("down"), Over: record("over"), Out: record("out")},
	})
	lv.Add(rows(50, 50, 50)...)
	sc.Update()

	in := sc.Input()
	in.PointerMove(50, 30)
	in.PointerMove(50, 100)
	in.PointerDown(50, 100)
	in.PointerUp(50, 100)

	assert.Equal(t, []call{
		{"over", 0, 3},
		{"out", 0, 3},
		{"over", 1, 3},
		{"down", 1, 3},
	}, calls)
}

func TestItemDownAfterScroll(t *testing.T) {
	got := -1

	sc, lv := newTestList(t, Options{
		X: 10, Y: 20, Width: 200, Height: 100,
		Handlers: ItemHandlers{Down: func(_ scene.GameObject, index int, _ []scene.GameObject) { got = index }},
	})
	lv.Add(rows(50, 50, 50)...)
	sc.Update()
	lv.ScrollTo(50)

	sc.Input().PointerDown(50, 25)
	assert.Equal(t, 1, got)
}

func TestHandlersSeeIndexAfterRemoval(t *testing.T) {
	got := -1

	sc, lv := newTestList(t, Options{
		X: 10, Y: 20, Width: 200, Height: 100,
		Handlers: ItemHandlers{Down: func(_ scene.GameObject, index int, _ []scene.GameObject) { got = index }},
	})
	lv.Add(rows(40, 40, 40)...)
	sc.Update()
	lv.RemoveAt(0)

	sc.Input().PointerDown(50, 70)
	assert.Equal(t, 1, got)
}

func TestWheelScrolls(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50, 50, 50)...)
	sc.Update()

	sc.Input().Wheel(50, 100, -1)
	assert.Equal(t, constants.DefaultScrollStep, lv.ScrollOffset())

	sc.Input().Wheel(50, 100, 3)
	assert.Equal(t, 0.0, lv.ScrollOffset())

	sc.Input().Wheel(400, 400, -1)
	assert.Equal(t, 0.0, lv.ScrollOffset())
}

func TestHandleButton(t *testing.T) {
	_, lv := newTestList(t, Options{X: 10, Y: 20, Width: 200, Height: 100, ScrollStep: 15})
	lv.Add(rows(100, 100, 100)...)

	assert.True(t, lv.HandleButton(constants.VirtualButtonDown, true))
	assert.Equal(t, 15.0, lv.ScrollOffset())
	assert.True(t, lv.HandleButton(constants.VirtualButtonDown, false))

	lv.HandleButton(constants.VirtualButtonR1, true)
	lv.HandleButton(constants.VirtualButtonR1, false)
	assert.Equal(t, 115.0, lv.ScrollOffset())

	lv.HandleButton(constants.VirtualButtonR1, true)
	lv.HandleButton(constants.VirtualButtonR1, false)
	assert.Equal(t, 200.0, lv.ScrollOffset())

	lv.HandleButton(constants.VirtualButtonUp, true)
	lv.HandleButton(constants.VirtualButtonUp, false)
	assert.Equal(t, 185.0, lv.ScrollOffset())

	lv.HandleButton(constants.VirtualButtonL1, true)
	assert.Equal(t, 85.0, lv.ScrollOffset())

	assert.False(t, lv.HandleButton(constants.VirtualButtonA, true))
	assert.False(t, lv.HandleButton(constants.VirtualButtonLeft, true))
}

func TestSettleKeepsX(t *testing.T) {
	_, lv := newTestList(t)
	items := rows(30, 30)
	lv.Add(items...)

	items[1].Base().SetPosition(12, 500)
	lv.Settle()

	assert.Equal(t, 12.0, items[1].Base().X())
	assert.Equal(t, 30.0, items[1].Base().Y())
}

func TestDestroy(t *testing.T) {
	sc, lv := newTestList(t)
	lv.Add(rows(50, 50)...)
	lv.EnableScrollbar(&ScrollbarOptions{})
	thumb := lv.Scrollbar().Thumb()

	lv.Destroy()

	assert.Len(t, sc.Cameras(), 1)
	assert.NotContains(t, sc.DisplayList(), scene.GameObject(lv.Container()))
	assert.NotContains(t, sc.DisplayList(), scene.GameObject(thumb))
	assert.Nil(t, lv.Scrollbar())

	assert.NotPanics(t, lv.Destroy)
	assert.NotPanics(t, sc.Update)
}

func TestSceneDestroyTearsDownList(t *testing.T) {
	sc := scene.New(640, 480)
	lv := New(sc, Options{X: 10, Y: 20, Width: 200, Height: 100})
	lv.EnableScrollbar(&ScrollbarOptions{})

	sc.Destroy()

	assert.Nil(t, lv.Scene())
	assert.Len(t, sc.Cameras(), 1)
	assert.Empty(t, sc.DisplayList())
}
