package scene

import "github.com/veandco/go-sdl2/sdl"

// Container groups children under a shared position.
// It draws nothing itself; children are positioned relative to it.
type Container struct {
	Node
	children []GameObject
}

func NewContainer(x, y, width, height float64) *Container {
	c := &Container{Node: newNode(width, height)}
	c.SetPosition(x, y)
	return c
}

func (c *Container) Base() *Node { return &c.Node }

func (c *Container) Draw(*sdl.Renderer, *Textures, sdl.Rect) {}

// Add appends objects in order, detaching them from any previous container.
func (c *Container) Add(objects ...GameObject) {
	for _, obj := range objects {
		n := obj.Base()
		if n.parent != nil && n.parent != c {
			n.parent.Remove(obj)
		}
		n.parent = c
		c.children = append(c.children, obj)
	}
}

// RemoveAt removes the child at index.
// It reports false and leaves the container untouched if index is out of range.
func (c *Container) RemoveAt(index int) (GameObject, bool) {
	if index < 0 || index >= len(c.children) {
		return nil, false
	}

	obj := c.children[index]
	c.children = append(c.children[:index], c.children[index+1:]...)
	obj.Base().parent = nil

	return obj, true
}

func (c *Container) Remove(obj GameObject) bool {
	_, ok := c.RemoveAt(c.IndexOf(obj))
	return ok
}

// At returns the child at index, or nil when out of range.
func (c *Container) At(index int) GameObject {
	if index < 0 || index >= len(c.children) {
		return nil
	}
	return c.children[index]
}

// IndexOf returns the position of obj, or -1.
func (c *Container) IndexOf(obj GameObject) int {
	id := obj.Base().ID()
	for i, child := range c.children {
		if child.Base().ID() == id {
			return i
		}
	}
	return -1
}

// All returns a copy of the children in order.
func (c *Container) All() []GameObject {
	out := make([]GameObject, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Container) Len() int { return len(c.children) }

// ContentSize is the extent of the children measured from the
// container's own origin.
func (c *Container) ContentSize() (width, height float64) {
	for _, child := range c.children {
		b := child.Base().LocalBounds()
		width = max(width, b.Right())
		height = max(height, b.Bottom())
	}
	return width, height
}
