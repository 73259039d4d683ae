package scene

import "slices"

// hit is an interactive object under the pointer and the camera it was seen through.
type hit struct {
	obj    GameObject
	camera *Camera
	worldX float64
	worldY float64
}

// Input dispatches pointer events to interactive objects.
//
// Presses and hover go to the topmost object under the pointer. A press
// also starts a drag on the topmost draggable object under it, which then
// receives every move until the pointer is released.
type Input struct {
	scene   *Scene
	pointer Pointer

	over GameObject

	dragging   GameObject
	dragCamera *Camera
	dragStartX float64
	dragStartY float64
}

func newInput(s *Scene) *Input {
	return &Input{scene: s}
}

func (in *Input) Pointer() Pointer { return in.pointer }

// Dragging returns the object being dragged, or nil.
func (in *Input) Dragging() GameObject { return in.dragging }

// HitTest returns the interactive objects at a screen point, topmost first.
func (in *Input) HitTest(x, y float64) []GameObject {
	hits := in.hits(x, y)
	out := make([]GameObject, len(hits))
	for i, h := range hits {
		out[i] = h.obj
	}
	return out
}

func (in *Input) hits(x, y float64) []hit {
	var out []hit
	seen := make(map[int]struct{})

	list := in.scene.sorted()
	slices.Reverse(list)

	cameras := in.scene.Cameras()
	slices.Reverse(cameras)

	for _, cam := range cameras {
		if !cam.viewport.Contains(x, y) {
			continue
		}
		wx, wy := cam.ScreenToWorld(x, y)
		for _, obj := range list {
			out = collectHits(out, seen, cam, obj, wx, wy)
		}
	}

	return out
}

// collectHits walks obj depth-first, children before their parent, so
// children on top are reported first.
func collectHits(out []hit, seen map[int]struct{}, cam *Camera, obj GameObject, wx, wy float64) []hit {
	n := obj.Base()
	if !n.Visible() || cam.Ignores(obj) {
		return out
	}

	if g, ok := obj.(Group); ok {
		children := g.All()
		for i := len(children) - 1; i >= 0; i-- {
			out = collectHits(out, seen, cam, children[i], wx, wy)
		}
	}

	if !n.interactive || !n.hitRect().Contains(wx, wy) {
		return out
	}
	if _, dup := seen[n.id]; dup {
		return out
	}
	seen[n.id] = struct{}{}

	return append(out, hit{obj: obj, camera: cam, worldX: wx, worldY: wy})
}

func (in *Input) pointerFor(h hit) Pointer {
	p := in.pointer
	p.Camera = h.camera
	p.WorldX, p.WorldY = h.worldX, h.worldY
	return p
}

// PointerDown presses the pointer at a screen position.
func (in *Input) PointerDown(x, y float64) {
	in.pointer.X, in.pointer.Y = x, y
	in.pointer.DownX, in.pointer.DownY = x, y
	in.pointer.IsDown = true

	hits := in.hits(x, y)
	in.updateOver(hits)

	if len(hits) > 0 {
		if fn := hits[0].obj.Base().onDown; fn != nil {
			fn(in.pointerFor(hits[0]))
		}
	}

	for _, h := range hits {
		n := h.obj.Base()
		if !n.draggable {
			continue
		}
		in.dragging = h.obj
		in.dragCamera = h.camera
		in.dragStartX, in.dragStartY = n.Position()
		if n.drag.Start != nil {
			n.drag.Start(in.pointerFor(h))
		}
		break
	}
}

// PointerMove moves the pointer, updating hover and any drag in progress.
func (in *Input) PointerMove(x, y float64) {
	in.pointer.X, in.pointer.Y = x, y

	hits := in.hits(x, y)
	in.updateOver(hits)

	if in.dragging == nil || !in.pointer.IsDown {
		return
	}

	n := in.dragging.Base()
	if n.drag.Move == nil {
		return
	}

	p := in.pointer
	p.Camera = in.dragCamera
	p.WorldX, p.WorldY = in.dragCamera.ScreenToWorld(x, y)

	dragX := in.dragStartX + (x - in.pointer.DownX)
	dragY := in.dragStartY + (y - in.pointer.DownY)
	n.drag.Move(p, dragX, dragY)
}

// PointerUp releases the pointer, ending any drag.
func (in *Input) PointerUp(x, y float64) {
	in.pointer.X, in.pointer.Y = x, y
	in.pointer.IsDown = false

	if in.dragging != nil {
		if end := in.dragging.Base().drag.End; end != nil {
			p := in.pointer
			p.Camera = in.dragCamera
			end(p)
		}
		in.dragging = nil
		in.dragCamera = nil
	}

	hits := in.hits(x, y)
	if len(hits) > 0 {
		if fn := hits[0].obj.Base().onUp; fn != nil {
			fn(in.pointerFor(hits[0]))
		}
	}
}

// Wheel sends a wheel movement to the topmost object under the pointer
// that handles it. dy is positive when the wheel moves away from the user.
func (in *Input) Wheel(x, y, dy float64) {
	for _, h := range in.hits(x, y) {
		if fn := h.obj.Base().onWheel; fn != nil {
			fn(in.pointerFor(h), dy)
			return
		}
	}
}

func (in *Input) updateOver(hits []hit) {
	var top GameObject
	var topHit hit
	if len(hits) > 0 {
		topHit = hits[0]
		top = topHit.obj
	}

	if sameObject(top, in.over) {
		return
	}

	if in.over != nil {
		if fn := in.over.Base().onOut; fn != nil {
			fn(in.pointer)
		}
	}

	in.over = top

	if top != nil {
		if fn := top.Base().onOver; fn != nil {
			fn(in.pointerFor(topHit))
		}
	}
}

func (in *Input) forget(obj GameObject) {
	if sameObject(in.over, obj) {
		in.over = nil
	}
	if sameObject(in.dragging, obj) {
		in.dragging = nil
		in.dragCamera = nil
	}
}

func (in *Input) reset() {
	in.pointer = Pointer{}
	in.over = nil
	in.dragging = nil
	in.dragCamera = nil
}

func sameObject(a, b GameObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Base().ID() == b.Base().ID()
}
