package main

import (
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/listview/pkg/listview"
	"github.com/BrandonKowalski/listview/pkg/listview/constants"
	"github.com/BrandonKowalski/listview/pkg/listview/router"
	"github.com/BrandonKowalski/listview/pkg/listview/scene"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	screenList router.Screen = iota
	screenDetail
)

// tapSlop is how far the pointer may travel between press and release for
// the release to count as a tap rather than the end of a drag.
const tapSlop = 8

const iconKey = "demo-icon"

type listInput struct {
	Offset float64
}

type listResult struct {
	Selected string
	Offset   float64
	Back     bool
}

type detailInput struct {
	Label string
}

type demo struct {
	settings *settings
	labels   *labels
	font     *ttf.Font
	log      *slog.Logger
	theme    listview.Theme

	rows    map[int]int      // item id to row number, for the current list scene
	removed map[int]struct{} // row numbers removed with the menu button
}

func (d *demo) screenSize() (float64, float64) {
	w := listview.GetWindow()
	return float64(w.GetWidth()), float64(w.GetHeight())
}

func (d *demo) listOptions(width, height float64) listview.Options {
	opts := d.settings.list.Options()
	if d.settings.list.List.Width == 0 {
		opts.X, opts.Width = 20, width-60
	}
	if d.settings.list.List.Height == 0 {
		opts.Y, opts.Height = 60, height-80
	}
	return opts
}

// row builds one list row: a text row when a font is loaded, else a plain box.
func (d *demo) row(label string, width float64, index int) scene.GameObject {
	if d.font != nil {
		t := scene.NewText(label, d.font, width, d.settings.demo.RowHeight)
		t.Background = d.rowColour(index)
		return t
	}
	return scene.NewBox(width, d.settings.demo.RowHeight-2, d.rowColour(index))
}

// icon returns a sprite row for the configured icon and the texture it draws,
// or a nil item when no usable icon is configured.
func (d *demo) icon() (scene.GameObject, scene.TextureSource) {
	path := d.settings.demo.Icon
	if path == "" {
		return nil, nil
	}

	size := d.settings.demo.RowHeight

	var src scene.TextureSource
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		src = scene.SVGTexture(path, int(size), int(size))
	case ".png", ".jpg", ".jpeg":
		src = scene.ImageTexture(path)
	default:
		d.log.Warn("Unsupported icon format", "path", path)
		return nil, nil
	}

	return scene.NewSprite(iconKey, size, size), src
}

func (d *demo) rowColour(index int) sdl.Color {
	if index%2 == 0 {
		return d.theme.ItemColor
	}
	return d.theme.ItemAltColor
}

func (d *demo) highlight(item scene.GameObject, on bool, index int) {
	c := d.rowColour(index)
	if on {
		c = d.theme.HighlightColor
	}
	switch v := item.(type) {
	case *scene.Text:
		v.Background = c
	case *scene.Box:
		v.Color = c
	}
}

// runList shows the list and returns when a row is tapped, B is pressed or
// the window is closed.
func (d *demo) runList(input any) (any, error) {
	in, _ := input.(listInput)

	width, height := d.screenSize()
	sc := scene.New(width, height)
	defer sc.Destroy()

	var result listResult
	var loop *listview.Loop
	lastDown := -1

	opts := d.listOptions(width, height)
	opts.Handlers = listview.ItemHandlers{
		Down: func(item scene.GameObject, index int, _ []scene.GameObject) {
			lastDown = index
			d.log.Debug("Item down", "index", index)
		},
		Over: func(item scene.GameObject, index int, _ []scene.GameObject) {
			d.highlight(item, true, index)
		},
		Out: func(item scene.GameObject, index int, _ []scene.GameObject) {
			d.highlight(item, false, index)
		},
	}

	lv := listview.New(sc, opts)

	clear(d.rows)

	var items []scene.GameObject
	if icon, src := d.icon(); icon != nil {
		sc.Textures().Register(iconKey, src)
		icon.Base().OnPointerUp(d.tapHandler(d.labels.get("IconLabel", nil), &result, &loop))
		items = append(items, icon)
	}
	for n := 1; n <= d.settings.demo.Items; n++ {
		if _, gone := d.removed[n]; gone {
			continue
		}
		label := d.labels.item(n)
		item := d.row(label, opts.Width, len(items))
		item.Base().OnPointerUp(d.tapHandler(label, &result, &loop))
		d.rows[item.Base().ID()] = n
		items = append(items, item)
	}
	lv.Add(items...)

	title := d.titleRow(lv.Len(), opts)
	sc.Add(title)

	lv.EnableScrollbar(d.settings.list.Scrollbar)
	lv.ScrollTo(in.Offset)

	d.log.Info("List ready", "items", lv.Len(), "offset", lv.ScrollOffset(), "max_scroll", lv.MaxScroll())

	loop = listview.NewLoop(sc).Focus(lv)
	loop.OnButton(func(button constants.VirtualButton, pressed bool) {
		if !pressed {
			return
		}
		switch button {
		case constants.VirtualButtonB, constants.VirtualButtonStart:
			result.Back = true
			loop.Stop()
		case constants.VirtualButtonMenu:
			d.removeRow(lv, lastDown)
			lastDown = -1
		}
	})

	if err := loop.Run(); err != nil {
		return nil, err
	}

	result.Offset = lv.ScrollOffset()
	return result, nil
}

// tapHandler selects label when the pointer is released close to where it
// was pressed.
func (d *demo) tapHandler(label string, result *listResult, loop **listview.Loop) scene.PointerHandler {
	return func(p scene.Pointer) {
		if math.Hypot(p.X-p.DownX, p.Y-p.DownY) > tapSlop {
			return
		}
		result.Selected = label
		if *loop != nil {
			(*loop).Stop()
		}
	}
}

func (d *demo) removeRow(lv *listview.ListView, index int) {
	item := lv.Container().At(index)
	if item == nil {
		return
	}

	n, ok := d.rows[item.Base().ID()]
	if !ok {
		return
	}
	d.removed[n] = struct{}{}
	delete(d.rows, item.Base().ID())

	lv.RemoveAt(index)

	for i, row := range lv.Items() {
		d.highlight(row, false, i)
	}

	d.log.Info("Row removed", "row", n, "items", lv.Len(), "offset", lv.ScrollOffset())
}

func (d *demo) titleRow(count int, opts listview.Options) scene.GameObject {
	label := d.labels.title(count)
	if count == 0 {
		label = d.labels.get("EmptyList", nil)
	}

	h := max(opts.Y-20, 24)

	var title scene.GameObject
	if d.font != nil {
		t := scene.NewText(label, d.font, opts.Width, h)
		t.Background = d.theme.BackgroundColor
		title = t
	} else {
		title = scene.NewBox(opts.Width, h, d.theme.HighlightColor)
	}
	title.Base().SetPosition(opts.X, 10)
	return title
}

// runDetail shows the selected row until B is pressed or the screen is tapped.
func (d *demo) runDetail(input any) (any, error) {
	in, _ := input.(detailInput)

	width, height := d.screenSize()
	sc := scene.New(width, height)
	defer sc.Destroy()

	var loop *listview.Loop

	var heading, hint scene.GameObject
	if d.font != nil {
		heading = scene.NewText(in.Label, d.font, width-40, 60)
		hint = scene.NewText(d.labels.get("DetailHint", nil), d.font, width-40, 40)
	} else {
		heading = scene.NewBox(width-40, 60, d.theme.HighlightColor)
		hint = scene.NewBox(width-40, 40, d.theme.ItemColor)
	}
	heading.Base().SetPosition(20, 20)
	hint.Base().SetPosition(20, height-60)

	backdrop := scene.NewBox(width, height, d.theme.BackgroundColor)
	backdrop.SetDepth(-1)
	backdrop.SetInteractive(true)
	backdrop.OnPointerUp(func(scene.Pointer) {
		loop.Stop()
	})

	sc.Add(backdrop, heading, hint)

	loop = listview.NewLoop(sc)
	loop.OnButton(func(button constants.VirtualButton, pressed bool) {
		if pressed && (button == constants.VirtualButtonB || button == constants.VirtualButtonA) {
			loop.Stop()
		}
	})

	d.log.Info("Showing detail", "label", in.Label)

	return nil, loop.Run()
}

// transition routes list taps to the detail screen and brings the list back
// at the offset it was left at.
func (d *demo) transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case screenList:
		res := result.(listResult)
		if res.Back {
			return router.ScreenExit, nil
		}
		stack.Push(screenList, listInput{}, res.Offset)
		return screenDetail, detailInput{Label: res.Selected}

	case screenDetail:
		entry := stack.Pop()
		if entry == nil {
			return screenList, listInput{}
		}
		offset, _ := entry.Resume.(float64)
		return entry.Screen, listInput{Offset: offset}
	}

	return router.ScreenExit, nil
}
