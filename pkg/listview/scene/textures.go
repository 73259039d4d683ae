package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/BrandonKowalski/listview/pkg/listview/internal"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// ErrUnknownTexture is returned when a key has no registered source.
var ErrUnknownTexture = errors.New("unknown texture")

// TextureSource creates a texture on demand.
type TextureSource func(renderer *sdl.Renderer) (*sdl.Texture, error)

// Textures maps keys to texture sources and keeps the generated textures
// in an LRU cache. An evicted texture is regenerated on its next use.
type Textures struct {
	sources map[string]TextureSource
	cache   *internal.TextureCache
}

func NewTextures() *Textures {
	return &Textures{
		sources: make(map[string]TextureSource),
		cache:   internal.NewTextureCache(),
	}
}

// Register binds key to src, dropping any texture generated for a previous source.
func (t *Textures) Register(key string, src TextureSource) {
	t.sources[key] = src
	t.cache.Delete(key)
}

func (t *Textures) Unregister(key string) {
	delete(t.sources, key)
	t.cache.Delete(key)
}

func (t *Textures) Has(key string) bool {
	_, ok := t.sources[key]
	return ok
}

// Resolve returns the texture for key, generating it if needed.
func (t *Textures) Resolve(renderer *sdl.Renderer, key string) (*sdl.Texture, error) {
	if texture, ok := t.cache.Get(key); ok {
		return texture, nil
	}

	src, ok := t.sources[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTexture, key)
	}

	texture, err := src(renderer)
	if err != nil {
		return nil, fmt.Errorf("generate texture %s: %w", key, err)
	}

	t.cache.Set(key, texture)
	return texture, nil
}

func (t *Textures) Destroy() {
	t.cache.Destroy()
	clear(t.sources)
}

// RoundRectImage rasterises a filled rounded rectangle covering the image.
func RoundRectImage(width, height int, radius float64, c color.Color) *image.NRGBA {
	width, height = max(width, 1), max(height, 1)
	radius = min(radius, float64(width)/2, float64(height)/2)

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, canvas, canvas.Bounds())
	filler := rasterx.NewFiller(width, height, scanner)

	scanner.SetColor(c)
	if radius > 0 {
		rasterx.AddRoundRect(0, 0, float64(width), float64(height), radius, radius, 0, rasterx.RoundGap, filler)
	} else {
		rasterx.AddRect(0, 0, float64(width), float64(height), 0, filler)
	}
	filler.Draw()

	return canvas
}

// FillTexture generates a rounded rectangle texture in colour c.
func FillTexture(c sdl.Color, width, height int, radius float64) TextureSource {
	return func(renderer *sdl.Renderer) (*sdl.Texture, error) {
		fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		return textureFromImage(renderer, RoundRectImage(width, height, radius, fill))
	}
}

// SVGImage rasterises the SVG file at path into a width x height image.
func SVGImage(path string, width, height int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return canvas, nil
}

// SVGTexture loads and rasterises an SVG icon.
func SVGTexture(path string, width, height int) TextureSource {
	return func(renderer *sdl.Renderer) (*sdl.Texture, error) {
		canvas, err := SVGImage(path, width, height)
		if err != nil {
			return nil, err
		}
		return textureFromImage(renderer, canvas)
	}
}

// ImageTexture loads a PNG or other SDL_image supported file.
func ImageTexture(path string) TextureSource {
	return func(renderer *sdl.Renderer) (*sdl.Texture, error) {
		return img.LoadTexture(renderer, path)
	}
}

// TextTexture renders a single line of text.
func TextTexture(font *ttf.Font, text string, c sdl.Color) TextureSource {
	return func(renderer *sdl.Renderer) (*sdl.Texture, error) {
		surface, err := font.RenderUTF8Blended(text, c)
		if err != nil {
			return nil, err
		}
		defer surface.Free()

		return renderer.CreateTextureFromSurface(surface)
	}
}

func textureFromImage(renderer *sdl.Renderer, canvas *image.NRGBA) (*sdl.Texture, error) {
	b := canvas.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&canvas.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(canvas.Stride),
		uint32(sdl.PIXELFORMAT_RGBA32),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
