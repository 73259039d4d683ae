package scene

import (
	"fmt"

	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Box is a solid colour rectangle.
type Box struct {
	Node
	Color sdl.Color
}

func NewBox(width, height float64, color sdl.Color) *Box {
	return &Box{Node: newNode(width, height), Color: color}
}

func (b *Box) Base() *Node { return &b.Node }

func (b *Box) Draw(renderer *sdl.Renderer, _ *Textures, dst sdl.Rect) {
	renderer.SetDrawColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	renderer.FillRect(&dst)
}

// Sprite draws a registered texture stretched to the node's size.
type Sprite struct {
	Node
	key   string
	alpha float64
}

func NewSprite(key string, width, height float64) *Sprite {
	return &Sprite{Node: newNode(width, height), key: key, alpha: 1}
}

func (s *Sprite) Base() *Node { return &s.Node }

func (s *Sprite) Key() string { return s.key }

func (s *Sprite) SetTexture(key string) *Sprite {
	s.key = key
	return s
}

func (s *Sprite) Alpha() float64 { return s.alpha }

func (s *Sprite) SetAlpha(alpha float64) *Sprite {
	s.alpha = min(max(alpha, 0), 1)
	return s
}

func (s *Sprite) Draw(renderer *sdl.Renderer, textures *Textures, dst sdl.Rect) {
	texture, err := textures.Resolve(renderer, s.key)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to resolve sprite texture", "key", s.key, "error", err)
		return
	}

	texture.SetAlphaMod(uint8(s.alpha*255 + 0.5))
	renderer.Copy(texture, nil, &dst)
}

// Text is a row with a background fill and a left aligned label.
type Text struct {
	Node
	text       string
	font       *ttf.Font
	Color      sdl.Color
	Background sdl.Color
	Padding    float64
}

func NewText(text string, font *ttf.Font, width, height float64) *Text {
	theme := internal.GetTheme()
	return &Text{
		Node:       newNode(width, height),
		text:       text,
		font:       font,
		Color:      theme.TextColor,
		Background: theme.ItemColor,
		Padding:    10,
	}
}

func (t *Text) Base() *Node { return &t.Node }

func (t *Text) Text() string { return t.text }

func (t *Text) SetText(text string) *Text {
	t.text = text
	return t
}

func (t *Text) textureKey() string {
	return fmt.Sprintf("text-%d-%06x-%s", t.ID(), uint32(t.Color.R)<<16|uint32(t.Color.G)<<8|uint32(t.Color.B), t.text)
}

func (t *Text) Draw(renderer *sdl.Renderer, textures *Textures, dst sdl.Rect) {
	renderer.SetDrawColor(t.Background.R, t.Background.G, t.Background.B, t.Background.A)
	renderer.FillRect(&dst)

	if t.font == nil || t.text == "" {
		return
	}

	key := t.textureKey()
	if !textures.Has(key) {
		textures.Register(key, TextTexture(t.font, t.text, t.Color))
	}

	texture, err := textures.Resolve(renderer, key)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render label", "text", t.text, "error", err)
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	pad := round32(t.Padding)
	w = min(w, dst.W-2*pad)
	if w <= 0 {
		return
	}

	src := sdl.Rect{W: w, H: h}
	label := sdl.Rect{X: dst.X + pad, Y: dst.Y + (dst.H-h)/2, W: w, H: h}
	renderer.Copy(texture, &src, &label)
}
