package listview

import (
	"log/slog"

	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
)

// ListView is a vertical stack of items clipped to a rectangle and scrolled
// by dragging, through a camera of its own.
//
// Items live in a container positioned at the list's origin and are drawn
// only by the list's camera; everything else in the scene is drawn only by
// the other cameras. The scroll offset is the distance from the top of the
// content to the top of the viewport and stays within [0, MaxScroll()].
type ListView struct {
	scene     *scene.Scene
	container *scene.Container
	camera    *scene.Camera
	scrollbar *Scrollbar

	x, y          float64
	width, height float64

	handlers   ItemHandlers
	scrollStep float64
	dragOffset float64 // scroll offset when the current drag started

	directional internal.DirectionalInput
	log         *slog.Logger
}

// New creates a list view in sc and registers it for per-frame updates.
func New(sc *scene.Scene, opts Options) *ListView {
	opts = opts.withDefaults()

	lv := &ListView{
		scene:       sc,
		x:           opts.X,
		y:           opts.Y,
		width:       opts.Width,
		height:      opts.Height,
		handlers:    opts.Handlers,
		scrollStep:  opts.ScrollStep,
		directional: internal.NewDirectionalInput(),
		log:         internal.GetInternalLogger(),
	}

	lv.container = scene.NewContainer(lv.x, lv.y, lv.width, lv.height)
	lv.container.SetHitArea(scene.Rect{W: lv.width, H: lv.height})
	lv.container.SetDraggable(true)
	lv.container.OnDrag(scene.DragHandlers{
		Start: lv.onDragStart,
		Move:  lv.onDrag,
	})
	lv.container.OnWheel(func(_ scene.Pointer, dy float64) {
		lv.ScrollBy(-dy * lv.scrollStep)
	})

	lv.camera = sc.AddCamera(lv.x, lv.y, lv.width, lv.height)
	lv.camera.SetScroll(lv.x, lv.y)

	sc.Add(lv.container)
	sc.AddUpdater(lv)
	sc.OnShutdown(lv.Destroy)

	lv.log.Debug("List view created", "x", lv.x, "y", lv.y, "width", lv.width, "height", lv.height)

	return lv
}

func (lv *ListView) Scene() *scene.Scene { return lv.scene }

// Container returns the container holding the items.
func (lv *ListView) Container() *scene.Container { return lv.container }

// Camera returns the list's private camera.
func (lv *ListView) Camera() *scene.Camera { return lv.camera }

// Scrollbar returns the scrollbar, or nil if it was never enabled.
func (lv *ListView) Scrollbar() *Scrollbar { return lv.scrollbar }

// Bounds is the list's rectangle on screen.
func (lv *ListView) Bounds() scene.Rect {
	return scene.Rect{X: lv.x, Y: lv.y, W: lv.width, H: lv.height}
}

// Items returns the items in display order.
func (lv *ListView) Items() []scene.GameObject { return lv.container.All() }

func (lv *ListView) Len() int { return lv.container.Len() }

// ContentHeight is the total stacked height of the items.
func (lv *ListView) ContentHeight() float64 {
	_, h := lv.container.ContentSize()
	return h
}

// MaxScroll is the largest scroll offset; 0 when the content fits.
func (lv *ListView) MaxScroll() float64 {
	return maxScroll(lv.ContentHeight(), lv.camera.Height())
}

// ScrollOffset is how far the content is scrolled.
func (lv *ListView) ScrollOffset() float64 {
	return lv.camera.ScrollY() - lv.y
}

// ScrollPercent is ScrollOffset as a fraction of MaxScroll.
func (lv *ListView) ScrollPercent() float64 {
	return scrollPercent(lv.ScrollOffset(), lv.MaxScroll())
}

// ScrollTo moves to offset, clamped to [0, MaxScroll()].
func (lv *ListView) ScrollTo(offset float64) *ListView {
	lv.setOffset(offset)
	if lv.scrollbar != nil {
		lv.scrollbar.sync()
	}
	return lv
}

// ScrollBy moves the content by delta; positive values reveal later items.
func (lv *ListView) ScrollBy(delta float64) *ListView {
	return lv.ScrollTo(lv.ScrollOffset() + delta)
}

func (lv *ListView) setOffset(offset float64) {
	offset = clamp(offset, 0, lv.MaxScroll())
	lv.camera.SetScroll(lv.x, lv.y+offset)
}

func (lv *ListView) onDragStart(scene.Pointer) {
	lv.dragOffset = lv.ScrollOffset()
}

// onDrag scrolls opposite to the pointer: dragging up reveals later items.
func (lv *ListView) onDrag(_ scene.Pointer, _, dragY float64) {
	delta := dragY - lv.y
	lv.ScrollTo(lv.dragOffset - delta)
}

// Add appends items below the current content, in order.
func (lv *ListView) Add(items ...scene.GameObject) *ListView {
	for _, item := range items {
		n := item.Base()
		n.SetPosition(0, lv.ContentHeight())
		n.SetOrigin(0, 0)
		n.SetInteractive(true)
		lv.bindHandlers(item)
		lv.container.Add(item)
	}

	lv.refreshBounds()

	lv.log.Debug("Items added", "added", len(items), "items", lv.Len(), "content_height", lv.ContentHeight())

	return lv
}

func (lv *ListView) bindHandlers(item scene.GameObject) {
	n := item.Base()

	if lv.handlers.Down != nil {
		n.OnPointerDown(func(scene.Pointer) {
			lv.handlers.Down(item, lv.container.IndexOf(item), lv.container.All())
		})
	}
	if lv.handlers.Over != nil {
		n.OnPointerOver(func(scene.Pointer) {
			lv.handlers.Over(item, lv.container.IndexOf(item), lv.container.All())
		})
	}
	if lv.handlers.Out != nil {
		n.OnPointerOut(func(scene.Pointer) {
			lv.handlers.Out(item, lv.container.IndexOf(item), lv.container.All())
		})
	}
}

// RemoveAt removes the item at index and closes the gap it leaves.
// An out of range index leaves the list unchanged.
func (lv *ListView) RemoveAt(index int) *ListView {
	if _, ok := lv.container.RemoveAt(index); !ok {
		lv.log.Warn("Remove index out of range", "index", index, "items", lv.Len())
		return lv
	}

	lv.Settle()
	lv.refreshBounds()
	lv.ScrollTo(lv.ScrollOffset())

	lv.log.Debug("Item removed", "index", index, "items", lv.Len())

	return lv
}

// Remove removes item from the list.
func (lv *ListView) Remove(item scene.GameObject) error {
	index := lv.container.IndexOf(item)
	if index < 0 {
		return ErrItemNotFound
	}
	lv.RemoveAt(index)
	return nil
}

// Settle re-stacks the items from the top, keeping their x positions.
func (lv *ListView) Settle() *ListView {
	var prev *scene.Node
	for _, child := range lv.container.All() {
		n := child.Base()
		if prev == nil {
			n.SetPosition(n.X(), 0)
		} else {
			n.SetPosition(n.X(), prev.Y()+prev.Height())
		}
		prev = n
	}
	return lv
}

func (lv *ListView) refreshBounds() {
	w, h := lv.container.ContentSize()
	lv.camera.SetBounds(lv.x, lv.y, w, h)
}

// PreUpdate runs once per frame from the scene: it partitions visibility
// between the list's camera and the others, then calls Update.
func (lv *ListView) PreUpdate() {
	lv.partition()
	lv.Update()
}

// partition hides the items from every other camera and hides everything
// else on the display list from the list's camera. The list's own
// container stays visible to its camera so the items can be drawn.
func (lv *ListView) partition() {
	items := lv.container.All()

	for _, cam := range lv.scene.Cameras() {
		if cam.ID() == lv.camera.ID() {
			continue
		}
		cam.Ignore(items...)
	}

	for _, obj := range lv.scene.DisplayList() {
		if obj.Base().ID() == lv.container.ID() {
			continue
		}
		lv.camera.Ignore(obj)
	}
}

// Update resizes the scrollbar thumb and applies held-button repeats.
func (lv *ListView) Update() {
	if d := lv.directional.Update(); d != internal.DirectionNone {
		lv.ScrollBy(d.Scroll(lv.scrollStep, lv.height))
	}

	if lv.scrollbar != nil {
		lv.scrollbar.resize(thumbHeight(lv.ContentHeight(), lv.camera.Height(), lv.height))
	}
}

// HandleButton feeds a button press or release to the list.
// Up/Down scroll by a step and L1/R1 by a page, repeating while held.
// It reports whether the button is one the list uses.
func (lv *ListView) HandleButton(button constants.VirtualButton, pressed bool) bool {
	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonL1, constants.VirtualButtonR1:
	default:
		return false
	}

	if d := lv.directional.SetHeld(button, pressed); d != internal.DirectionNone {
		lv.ScrollBy(d.Scroll(lv.scrollStep, lv.height))
	}
	return true
}

// EnableScrollbar adds a draggable scrollbar to the right of the list.
// A nil opts is a no-op, as is enabling it a second time.
func (lv *ListView) EnableScrollbar(opts *ScrollbarOptions) *ListView {
	if opts == nil {
		return lv
	}
	if lv.scrollbar != nil {
		lv.log.Debug("Scrollbar already enabled")
		return lv
	}

	lv.scrollbar = newScrollbar(lv, *opts)
	lv.scrollbar.resize(thumbHeight(lv.ContentHeight(), lv.camera.Height(), lv.height))

	return lv
}

// Destroy removes the list, its camera and its scrollbar from the scene.
// It is called automatically when the scene is destroyed.
func (lv *ListView) Destroy() {
	if lv.scene == nil {
		return
	}

	if lv.scrollbar != nil {
		lv.scrollbar.destroy()
		lv.scrollbar = nil
	}

	lv.scene.RemoveUpdater(lv)
	lv.scene.Remove(lv.container)
	lv.scene.RemoveCamera(lv.camera)
	lv.scene = nil

	lv.log.Debug("List view destroyed")
}
