// Command listview-demo shows a scrollable list of localized rows.
//
// Drag the list or its scrollbar, use the wheel or the d-pad to scroll,
// tap a row to open it and press B to come back to the same scroll
// position. Menu removes the last pressed row.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/BrandonKowalski/listview/pkg/listview"
	"github.com/BrandonKowalski/listview/pkg/listview/router"
)

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "listview.toml", "settings file")
	locale := flag.String("locale", "", "label language, overrides the settings file")
	flag.Parse()

	if err := run(*configPath, *locale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, locale string) error {
	s, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	if locale != "" {
		s.demo.Locale = locale
	}

	labels, err := newLabels(s.demo.Locale)
	if err != nil {
		return err
	}

	theme := listview.DefaultTheme()
	if s.demo.FontPath != "" {
		theme.FontPath = s.demo.FontPath
		theme.FontSize = s.demo.FontSize
	}

	err = listview.Init(listview.InitOptions{
		WindowTitle: "List View",
		Theme:       &theme,
		LogPath:     s.demo.LogPath,
		LogLevel:    s.demo.LogLevel,
		TouchDevice: s.demo.TouchDevice,
	})
	if err != nil {
		return err
	}
	defer listview.Close()

	listview.SetRawLogLevel(s.demo.LogLevel)
	logger := listview.GetLogger()
	logger.Info("Starting demo", "config", configPath, "locale", labels.tag.String(), "items", s.demo.Items)

	d := &demo{
		settings: s,
		labels:   labels,
		font:     listview.Font(),
		log:      logger,
		theme:    listview.CurrentTheme(),
		rows:     make(map[int]int),
		removed:  make(map[int]struct{}),
	}

	r := router.New().ExitOn(listview.ErrQuit)
	r.Register(screenList, d.runList).
		Register(screenDetail, d.runDetail).
		OnTransition(d.transition)

	if err := r.Run(screenList, listInput{}); err != nil {
		logger.Error("Demo stopped", "error", err)
		return err
	}

	logger.Info("Demo finished")
	return nil
}
