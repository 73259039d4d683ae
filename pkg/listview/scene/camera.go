package scene

// Camera renders a window into the world onto a rectangle of the screen.
// Objects it ignores are neither drawn nor hit-tested through it.
type Camera struct {
	id       int
	viewport Rect

	scrollX, scrollY float64

	bounds    Rect
	hasBounds bool

	ignored map[int]struct{}
}

func newCamera(x, y, width, height float64) *Camera {
	return &Camera{
		id:       newID(),
		viewport: Rect{X: x, Y: y, W: width, H: height},
		ignored:  make(map[int]struct{}),
	}
}

func (c *Camera) ID() int { return c.id }

func (c *Camera) Viewport() Rect { return c.viewport }

func (c *Camera) Width() float64 { return c.viewport.W }

func (c *Camera) Height() float64 { return c.viewport.H }

func (c *Camera) Scroll() (float64, float64) { return c.scrollX, c.scrollY }

func (c *Camera) ScrollY() float64 { return c.scrollY }

// SetScroll moves the camera, clamped to its bounds when it has any.
func (c *Camera) SetScroll(x, y float64) *Camera {
	c.scrollX = c.clampScroll(x, c.bounds.X, c.bounds.W, c.viewport.W)
	c.scrollY = c.clampScroll(y, c.bounds.Y, c.bounds.H, c.viewport.H)
	return c
}

func (c *Camera) clampScroll(v, start, extent, view float64) float64 {
	if !c.hasBounds {
		return v
	}
	hi := start + extent - view
	if hi < start {
		return start
	}
	return min(max(v, start), hi)
}

// SetBounds limits scrolling to the world rectangle (x, y, width, height).
func (c *Camera) SetBounds(x, y, width, height float64) *Camera {
	c.bounds = Rect{X: x, Y: y, W: width, H: height}
	c.hasBounds = true
	return c.SetScroll(c.scrollX, c.scrollY)
}

func (c *Camera) Bounds() (Rect, bool) { return c.bounds, c.hasBounds }

// Ignore hides objects from this camera.
func (c *Camera) Ignore(objects ...GameObject) *Camera {
	for _, obj := range objects {
		c.ignored[obj.Base().ID()] = struct{}{}
	}
	return c
}

func (c *Camera) Ignores(obj GameObject) bool {
	_, ok := c.ignored[obj.Base().ID()]
	return ok
}

// IgnoredCount returns how many objects the camera ignores.
func (c *Camera) IgnoredCount() int { return len(c.ignored) }

func (c *Camera) ClearIgnored() *Camera {
	clear(c.ignored)
	return c
}

// ScreenToWorld converts a screen point to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x - c.viewport.X + c.scrollX, y - c.viewport.Y + c.scrollY
}

// WorldToScreen converts a world rectangle to screen coordinates.
func (c *Camera) WorldToScreen(r Rect) Rect {
	r.X = r.X - c.scrollX + c.viewport.X
	r.Y = r.Y - c.scrollY + c.viewport.Y
	return r
}
