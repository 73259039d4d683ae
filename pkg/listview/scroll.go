package listview

import "github.com/BrandonKowalski/listview/pkg/listview/constants"

// clamp returns v limited to [lo, hi]. When hi < lo, lo wins.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// maxScroll is the largest scroll offset for content of height content
// seen through a viewport of height viewport.
func maxScroll(content, viewport float64) float64 {
	return max(0, content-viewport)
}

// scrollPercent maps an offset to [0, 1]. Content that fits maps to 0.
func scrollPercent(offset, maxOffset float64) float64 {
	if maxOffset <= 0 {
		return 0
	}
	return clamp(offset/maxOffset, 0, 1)
}

// thumbHeight sizes the scrollbar thumb from the viewport/content ratio.
func thumbHeight(content, viewport, track float64) float64 {
	ratio := 1.0
	if content > 0 {
		ratio = viewport / content
	}
	ratio = clamp(ratio, constants.MinThumbRatio, 1)
	return clamp(ratio*track, constants.MinThumbHeight, track)
}

// thumbPosition places a thumb of height thumb at percent of its travel
// along a track starting at top.
func thumbPosition(percent, top, track, thumb float64) float64 {
	return (track-thumb)*percent + top
}

// thumbPercent is the inverse of thumbPosition.
func thumbPercent(y, top, track, thumb float64) float64 {
	travel := track - thumb
	if travel <= 0 {
		return 0
	}
	return clamp((y-top)/travel, 0, 1)
}
