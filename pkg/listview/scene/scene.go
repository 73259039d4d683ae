// Package scene is the small retained-mode scene graph list views live in.
//
// A Scene owns a display list of GameObjects, a main camera covering the
// whole screen plus any number of secondary cameras, the pointer Input
// dispatcher and the Textures registry. Each frame the owner calls
// Update (which runs registered Updaters) and then Render.
package scene

import (
	"slices"

	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Updater is called once per frame before rendering.
type Updater interface {
	PreUpdate()
}

// Scene is a display list viewed through cameras.
type Scene struct {
	width, height float64

	main        *Camera
	cameras     []*Camera
	displayList []GameObject
	updaters    []Updater
	shutdown    []func()

	input    *Input
	textures *Textures
}

// New creates a scene of the given screen size with a main camera covering it.
func New(width, height float64) *Scene {
	s := &Scene{
		width:    width,
		height:   height,
		textures: NewTextures(),
	}
	s.main = s.AddCamera(0, 0, width, height)
	s.input = newInput(s)
	return s
}

func (s *Scene) Size() (float64, float64) { return s.width, s.height }

func (s *Scene) Main() *Camera { return s.main }

func (s *Scene) Input() *Input { return s.input }

func (s *Scene) Textures() *Textures { return s.textures }

// AddCamera adds a camera whose viewport is the given screen rectangle.
// Later cameras draw over earlier ones.
func (s *Scene) AddCamera(x, y, width, height float64) *Camera {
	c := newCamera(x, y, width, height)
	s.cameras = append(s.cameras, c)
	return c
}

// RemoveCamera removes a secondary camera. The main camera stays.
func (s *Scene) RemoveCamera(c *Camera) {
	if c == s.main {
		return
	}
	s.cameras = slices.DeleteFunc(s.cameras, func(other *Camera) bool { return other == c })
}

// Cameras returns the cameras in draw order.
func (s *Scene) Cameras() []*Camera {
	return slices.Clone(s.cameras)
}

// Add puts objects on the display list.
func (s *Scene) Add(objects ...GameObject) {
	s.displayList = append(s.displayList, objects...)
}

func (s *Scene) Remove(obj GameObject) bool {
	id := obj.Base().ID()
	before := len(s.displayList)
	s.displayList = slices.DeleteFunc(s.displayList, func(o GameObject) bool { return o.Base().ID() == id })
	s.input.forget(obj)
	return len(s.displayList) != before
}

// DisplayList returns the top-level objects in insertion order.
func (s *Scene) DisplayList() []GameObject {
	return slices.Clone(s.displayList)
}

// sorted returns the display list ordered by depth, stable on insertion order.
func (s *Scene) sorted() []GameObject {
	list := slices.Clone(s.displayList)
	slices.SortStableFunc(list, func(a, b GameObject) int {
		return a.Base().Depth() - b.Base().Depth()
	})
	return list
}

func (s *Scene) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

func (s *Scene) RemoveUpdater(u Updater) {
	s.updaters = slices.DeleteFunc(s.updaters, func(other Updater) bool { return other == u })
}

// OnShutdown registers fn to run when the scene is destroyed.
func (s *Scene) OnShutdown(fn func()) {
	s.shutdown = append(s.shutdown, fn)
}

// Update runs every registered Updater.
func (s *Scene) Update() {
	for _, u := range slices.Clone(s.updaters) {
		u.PreUpdate()
	}
}

// Render draws every camera's view of the display list.
func (s *Scene) Render(renderer *sdl.Renderer) {
	list := s.sorted()

	for _, cam := range s.cameras {
		clip := cam.viewport.SDL()
		renderer.SetClipRect(&clip)
		for _, obj := range list {
			s.renderObject(renderer, cam, obj)
		}
	}

	renderer.SetClipRect(nil)
}

func (s *Scene) renderObject(renderer *sdl.Renderer, cam *Camera, obj GameObject) {
	n := obj.Base()
	if !n.Visible() || cam.Ignores(obj) {
		return
	}

	obj.Draw(renderer, s.textures, cam.WorldToScreen(n.WorldBounds()).SDL())

	if g, ok := obj.(Group); ok {
		for _, child := range g.All() {
			s.renderObject(renderer, cam, child)
		}
	}
}

// Destroy runs the shutdown hooks and releases cameras, objects and textures.
func (s *Scene) Destroy() {
	for i := len(s.shutdown) - 1; i >= 0; i-- {
		s.shutdown[i]()
	}
	s.shutdown = nil

	s.textures.Destroy()
	s.cameras = []*Camera{s.main}
	s.main.ClearIgnored()
	s.displayList = nil
	s.updaters = nil
	s.input.reset()

	internal.GetInternalLogger().Debug("Scene destroyed")
}
