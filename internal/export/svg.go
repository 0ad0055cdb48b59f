// Package export renders recorded runs as SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/world"
)

// FrameToSVG renders one recorded frame at display resolution. Every
// body is an 8x8 square; the player body is drawn as an outline.
func FrameToSVG(f sim.Frame, width, height, player int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, b := range f.Bodies {
		if i == player {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%d" height="%d" fill="none" stroke="#00ff00" stroke-width="1"/>
`, b.X, b.Y, world.BodyExtent, world.BodyExtent))
		} else {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%d" height="%d" fill="#00ff00"/>
`, b.X, b.Y, world.BodyExtent, world.BodyExtent))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrajectoryToSVG renders one body's path through a run as a polyline
// in display coordinates.
func TrajectoryToSVG(frames []sim.Frame, body, width, height int, strokeColor string) string {
	if len(frames) < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	half := float64(world.BodyExtent) / 2
	for i, f := range frames {
		x := f.Bodies[body].X + half
		y := f.Bodies[body].Y + half
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
