package listview

import (
	"fmt"

	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
)

// Scrollbar is a draggable thumb beside a list view. Its height reflects
// how much of the content is visible and its position the scroll offset.
// The track runs the full height of the list.
type Scrollbar struct {
	lv    *ListView
	thumb *scene.Sprite
	key   string

	colour uint32
	alpha  float64
	width  float64
}

func newScrollbar(lv *ListView, opts ScrollbarOptions) *Scrollbar {
	colour, alpha, width := opts.resolve()

	sb := &Scrollbar{
		lv:     lv,
		key:    fmt.Sprintf("listview-%d-thumb", lv.container.ID()),
		colour: colour,
		alpha:  alpha,
		width:  width,
	}

	fill := internal.WithAlpha(internal.HexToColor(colour), alpha)
	lv.scene.Textures().Register(sb.key, scene.FillTexture(fill, int(width), int(lv.height), width/2))

	sb.thumb = scene.NewSprite(sb.key, width, lv.height)
	sb.thumb.SetOrigin(0, 0)
	sb.thumb.SetPosition(lv.x+lv.width, lv.y)
	sb.thumb.SetDepth(1)
	sb.thumb.SetDraggable(true)
	sb.thumb.OnDrag(scene.DragHandlers{Move: sb.onDrag})
	sb.thumb.OnWheel(func(_ scene.Pointer, dy float64) {
		lv.ScrollBy(-dy * lv.scrollStep)
	})

	lv.scene.Add(sb.thumb)

	lv.log.Debug("Scrollbar enabled", "colour", fmt.Sprintf("%06X", colour), "alpha", alpha, "width", width)

	return sb
}

// Thumb returns the thumb sprite.
func (sb *Scrollbar) Thumb() *scene.Sprite { return sb.thumb }

func (sb *Scrollbar) Colour() uint32 { return sb.colour }

func (sb *Scrollbar) Alpha() float64 { return sb.alpha }

func (sb *Scrollbar) Width() float64 { return sb.width }

// ThumbHeight is the current thumb height.
func (sb *Scrollbar) ThumbHeight() float64 { return sb.thumb.Height() }

// ThumbY is the thumb's top edge on screen.
func (sb *Scrollbar) ThumbY() float64 { return sb.thumb.Y() }

// Track returns the top and height of the track the thumb moves along.
func (sb *Scrollbar) Track() (top, height float64) {
	return sb.lv.y, sb.lv.height
}

// onDrag moves the thumb within its track and scrolls the list to match.
func (sb *Scrollbar) onDrag(_ scene.Pointer, _, dragY float64) {
	top, track := sb.Track()
	thumb := sb.ThumbHeight()

	y := clamp(dragY, top, top+track-thumb)
	sb.thumb.SetY(y)

	percent := thumbPercent(y, top, track, thumb)
	sb.lv.setOffset(percent * sb.lv.MaxScroll())
}

// sync moves the thumb to match the list's scroll offset.
func (sb *Scrollbar) sync() {
	top, track := sb.Track()
	sb.thumb.SetY(thumbPosition(sb.lv.ScrollPercent(), top, track, sb.ThumbHeight()))
}

// resize sets the thumb height, keeping its position in step with the list.
func (sb *Scrollbar) resize(height float64) {
	if height != sb.thumb.Height() {
		sb.thumb.SetSize(sb.width, height)
	}
	sb.sync()
}

func (sb *Scrollbar) destroy() {
	sb.lv.scene.Remove(sb.thumb)
	sb.lv.scene.Textures().Unregister(sb.key)
}
