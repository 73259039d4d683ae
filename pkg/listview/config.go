package listview

import (
	"github.com/BurntSushi/toml"
)

// Config is the TOML form of a list view's settings:
//
//	[list]
//	x = 20
//	y = 40
//	width = 400
//	height = 300
//
//	[scrollbar]
//	colour = 0x00FF88
//	width = 12
//
// A missing [scrollbar] table leaves the scrollbar disabled.
type Config struct {
	List      Options           `toml:"list"`
	Scrollbar *ScrollbarOptions `toml:"scrollbar"`
}

// LoadConfig reads a Config from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, NewInfrastructureError("load_config", err)
	}
	return &cfg, nil
}

// ParseConfig reads a Config from TOML text.
func ParseConfig(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, NewInfrastructureError("parse_config", err)
	}
	return &cfg, nil
}

// Options returns the list options with defaults applied.
func (c *Config) Options() Options {
	return c.List.withDefaults()
}
