package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// TextureCache is a least-recently-used store of textures keyed by name.
// Evicted textures are destroyed; owners regenerate them on the next miss.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
	destroy  func(*sdl.Texture)
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		destroy:  destroyTexture,
	}
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}

// SetDestroyFunc replaces how evicted textures are released.
func (c *TextureCache) SetDestroyFunc(fn func(*sdl.Texture)) {
	c.destroy = fn
}

func (c *TextureCache) Get(key string) (*sdl.Texture, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.touch(key)
	}
	return texture, exists
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			c.destroy(old)
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Delete destroys and forgets the texture stored under key.
func (c *TextureCache) Delete(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	c.destroy(texture)
	delete(c.textures, key)
	c.remove(key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	c.remove(key)
	c.order = append(c.order, key)
}

func (c *TextureCache) remove(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		c.destroy(texture)
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		c.destroy(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
