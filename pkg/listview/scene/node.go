package scene

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

var nextID = atomic.NewInt64(0)

func newID() int {
	return int(nextID.Inc())
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

// SDL rounds r to whole pixels.
func (r Rect) SDL() sdl.Rect {
	return sdl.Rect{X: round32(r.X), Y: round32(r.Y), W: round32(r.W), H: round32(r.H)}
}

func round32(v float64) int32 {
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}

// GameObject is anything that can be placed in a scene.
type GameObject interface {
	// Base returns the node holding the object's transform and input state.
	Base() *Node
	// Draw renders the object into dst, given in screen coordinates.
	Draw(renderer *sdl.Renderer, textures *Textures, dst sdl.Rect)
}

// Group is a GameObject with children drawn and hit-tested after it.
type Group interface {
	GameObject
	All() []GameObject
}

// Pointer describes the pointer at the time a handler runs.
type Pointer struct {
	X, Y           float64 // Screen position
	WorldX, WorldY float64 // Position in the world of Camera
	DownX, DownY   float64 // Screen position of the last press
	IsDown         bool
	Camera         *Camera // Camera the current target was hit through
}

// PointerHandler reacts to press and hover changes.
type PointerHandler func(p Pointer)

// DragHandlers receive drag gestures started on a draggable node.
// Move gets the position the node would have if it followed the pointer,
// in its parent's coordinates; the node itself is not moved.
type DragHandlers struct {
	Start func(p Pointer)
	Move  func(p Pointer, dragX, dragY float64)
	End   func(p Pointer)
}

// Node carries the state every GameObject shares.
type Node struct {
	id      int
	x, y    float64
	width   float64
	height  float64
	originX float64
	originY float64
	depth   int
	hidden  bool
	parent  *Container

	interactive bool
	draggable   bool
	hitArea     *Rect

	onDown  PointerHandler
	onUp    PointerHandler
	onOver  PointerHandler
	onOut   PointerHandler
	onWheel func(p Pointer, dy float64)
	drag    DragHandlers
}

func newNode(width, height float64) Node {
	return Node{id: newID(), width: width, height: height}
}

func (n *Node) ID() int { return n.id }

func (n *Node) X() float64 { return n.x }

func (n *Node) Y() float64 { return n.y }

func (n *Node) Position() (float64, float64) { return n.x, n.y }

func (n *Node) SetPosition(x, y float64) *Node {
	n.x, n.y = x, y
	return n
}

func (n *Node) SetY(y float64) *Node {
	n.y = y
	return n
}

func (n *Node) Width() float64 { return n.width }

func (n *Node) Height() float64 { return n.height }

func (n *Node) SetSize(width, height float64) *Node {
	n.width, n.height = width, height
	return n
}

// SetOrigin sets the normalised anchor of the node's position.
// (0, 0) anchors the top-left corner, (0.5, 0.5) the centre.
func (n *Node) SetOrigin(x, y float64) *Node {
	n.originX, n.originY = x, y
	return n
}

func (n *Node) Depth() int { return n.depth }

func (n *Node) SetDepth(depth int) *Node {
	n.depth = depth
	return n
}

func (n *Node) Visible() bool { return !n.hidden }

func (n *Node) SetVisible(visible bool) *Node {
	n.hidden = !visible
	return n
}

func (n *Node) Parent() *Container { return n.parent }

// LocalBounds is the node's rectangle in its parent's coordinates.
func (n *Node) LocalBounds() Rect {
	return Rect{
		X: n.x - n.originX*n.width,
		Y: n.y - n.originY*n.height,
		W: n.width,
		H: n.height,
	}
}

// WorldBounds is the node's rectangle in world coordinates.
func (n *Node) WorldBounds() Rect {
	r := n.LocalBounds()
	for p := n.parent; p != nil; p = p.parent {
		r.X += p.x - p.originX*p.width
		r.Y += p.y - p.originY*p.height
	}
	return r
}

// SetInteractive makes the node a candidate for pointer hit tests.
func (n *Node) SetInteractive(interactive bool) *Node {
	n.interactive = interactive
	return n
}

func (n *Node) Interactive() bool { return n.interactive }

// SetHitArea restricts hits to area, relative to the node's top-left corner.
func (n *Node) SetHitArea(area Rect) *Node {
	n.hitArea = &area
	return n
}

func (n *Node) hitRect() Rect {
	b := n.WorldBounds()
	if n.hitArea == nil {
		return b
	}
	return Rect{X: b.X + n.hitArea.X, Y: b.Y + n.hitArea.Y, W: n.hitArea.W, H: n.hitArea.H}
}

func (n *Node) SetDraggable(draggable bool) *Node {
	n.draggable = draggable
	if draggable {
		n.interactive = true
	}
	return n
}

func (n *Node) Draggable() bool { return n.draggable }

func (n *Node) OnPointerDown(fn PointerHandler) *Node {
	n.onDown = fn
	return n
}

func (n *Node) OnPointerUp(fn PointerHandler) *Node {
	n.onUp = fn
	return n
}

func (n *Node) OnPointerOver(fn PointerHandler) *Node {
	n.onOver = fn
	return n
}

func (n *Node) OnPointerOut(fn PointerHandler) *Node {
	n.onOut = fn
	return n
}

func (n *Node) OnWheel(fn func(p Pointer, dy float64)) *Node {
	n.onWheel = fn
	return n
}

func (n *Node) OnDrag(handlers DragHandlers) *Node {
	n.drag = handlers
	return n
}
