// Package ui draws the control panel and debug overlays beside the fire view.
// Layout and formatting live in untagged files so they can be tested without
// a window; drawing requires the ebiten build tag.
package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"wildfire-ca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlRow struct {
	control core.ParameterControl
	value   string

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func layoutRows(controls []core.ParameterControl, width int) []controlRow {
	rows := make([]controlRow, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		rows[i] = controlRow{control: ctrl, value: "--", top: top, minusRect: minusRect, plusRect: plusRect}
	}
	return rows
}

// statusTop is the y offset of the first status line under the controls.
func statusTop(rows int) int {
	return controlsTop + rows*lineHeight + statusSpacing
}

// hitTest returns the row under (x, y) and the direction of the button hit,
// or -1 and 0 when no button is under the point.
func hitTest(rows []controlRow, x, y int) (int, int) {
	pt := image.Pt(x, y)
	for i := range rows {
		if pt.In(rows[i].minusRect) {
			return i, -1
		}
		if pt.In(rows[i].plusRect) {
			return i, 1
		}
	}
	return -1, 0
}

func refreshValues(rows []controlRow, snapshot core.ParameterSnapshot) {
	for i := range rows {
		param, ok := snapshot.Lookup(rows[i].control.Key)
		if !ok {
			rows[i].value = "--"
			continue
		}
		rows[i].value = formatValue(rows[i].control, param)
	}
}

func formatValue(ctrl core.ParameterControl, param core.Parameter) string {
	v, ok := param.Float()
	if !ok {
		return "--"
	}
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := ctrl.Step
	precision := 1
	switch {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// statusLines renders the read-only "Fire" group as "Label: value" lines.
func statusLines(snapshot core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snapshot.Groups {
		if g.Name != "Fire" {
			continue
		}
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}
