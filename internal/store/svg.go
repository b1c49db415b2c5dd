package store

import (
	"fmt"
	"strings"

	"github.com/san-kum/oscsim/internal/driver"
)

// TrajectorySVG renders a run's value (and its forcing input, dimmed) over
// time as a standalone SVG document.
func TrajectorySVG(result *driver.Result, width, height int) string {
	if len(result.Times) < 2 {
		return ""
	}

	minT, maxT := result.Times[0], result.Times[len(result.Times)-1]
	minV, maxV := result.Values[0], result.Values[0]
	for i := range result.Values {
		if result.Values[i] < minV {
			minV = result.Values[i]
		}
		if result.Values[i] > maxV {
			maxV = result.Values[i]
		}
		if result.Forcings[i] < minV {
			minV = result.Forcings[i]
		}
		if result.Forcings[i] > maxV {
			maxV = result.Forcings[i]
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePath := func(series []float64, stroke string, strokeWidth float64) {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, stroke, strokeWidth))
		for i, v := range series {
			x := (result.Times[i] - minT) / rangeT * float64(width)
			y := float64(height) - (v-minV)/rangeV*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	writePath(result.Forcings, "#445544", 1.0)
	writePath(result.Values, "#00ff88", 1.5)

	sb.WriteString("</svg>")
	return sb.String()
}
