package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BrandonKowalski/listview/pkg/listview"
	"github.com/BurntSushi/toml"
)

// demoSettings is the [demo] table of the settings file.
type demoSettings struct {
	Items       int     `toml:"items"`
	RowHeight   float64 `toml:"row_height"`
	Locale      string  `toml:"locale"`
	FontPath    string  `toml:"font"`
	FontSize    int     `toml:"font_size"`
	Icon        string  `toml:"icon"` // SVG or PNG shown as the first row
	TouchDevice string  `toml:"touch_device"`
	LogLevel    string  `toml:"log_level"`
	LogPath     string  `toml:"log_path"`
}

type settings struct {
	list *listview.Config
	demo demoSettings
}

func defaultSettings() *settings {
	return &settings{
		list: &listview.Config{Scrollbar: &listview.ScrollbarOptions{}},
		demo: demoSettings{
			Items:     40,
			RowHeight: 48,
			Locale:    "en",
			FontSize:  20,
			LogLevel:  "info",
		},
	}
}

// loadSettings reads path, falling back to the defaults when it does not exist.
func loadSettings(path string) (*settings, error) {
	s := defaultSettings()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	cfg, err := listview.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s.list = cfg

	file := struct {
		Demo demoSettings `toml:"demo"`
	}{Demo: s.demo}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, listview.NewInfrastructureError("load_settings", err)
	}
	s.demo = file.Demo

	if s.demo.Items < 0 {
		s.demo.Items = 0
	}
	if s.demo.RowHeight <= 0 {
		s.demo.RowHeight = 48
	}

	return s, nil
}
