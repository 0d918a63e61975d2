package render

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/projection"
)

const (
	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag 3.0+

	// Overlay glyphs
	glyphGridPoint = '.'
	glyphFigLine   = '·'
	glyphSun       = '☉'
	glyphFocus     = '◆'

	// Star colors (grayscale so overlays stay readable)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
	colorStarSet    = "238" // below the observer's horizon

	colorGrid    = "238"
	colorFigure  = "60"  // muted purple
	colorFigName = "103" // lighter purple for figure labels
	colorSun     = "220"
	colorFocus   = "229" // bright gold
	colorLabel   = "250"
)

// figureSamples is the number of points drawn along each constellation
// line arc.
const figureSamples = 24

// Options selects which overlays appear on a sky frame.
type Options struct {
	ShowGrid           bool
	ShowConstellations bool
	ShowLabels         bool
	ShowSun            bool

	// DimBelowHorizon fades stars under the observer's local horizon at
	// Input.Time instead of drawing them at full brightness.
	DimBelowHorizon bool
}

// DefaultOptions returns the overlay set a fresh session starts with.
func DefaultOptions() Options {
	return Options{
		ShowConstellations: true,
		ShowLabels:         true,
		ShowSun:            true,
	}
}

// Input carries everything a frame render needs. The renderer is pure:
// the same input always produces the same canvas.
type Input struct {
	Projector      projection.Projector
	Catalog        astro.StarCatalog
	Constellations []astro.Constellation
	Options        Options
	Observer       astro.Observer
	Time           time.Time

	// FocusName highlights one catalog star and labels it.
	FocusName string
}

// Sky renders a frame onto a fresh canvas sized to the projector's
// viewport. Overlays draw first so stars stay on top.
func Sky(in Input) *Canvas {
	size := in.Projector.Size()
	canvas := NewCanvas(int(size.Width), int(size.Height))

	if in.Options.ShowGrid {
		drawGrid(canvas, in.Projector)
	}
	if in.Options.ShowConstellations {
		drawConstellations(canvas, in)
	}
	drawStars(canvas, in)
	if in.Options.ShowSun {
		drawSun(canvas, in)
	}
	return canvas
}

// drawGrid plots the celestial grid: meridians every 30° of RA and
// parallels every 30° of Dec, sampled densely and projected per point.
func drawGrid(c *Canvas, p projection.Projector) {
	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -84.0; dec <= 84; dec += 2 {
			plotPoint(c, p.ProjectCoord(astro.Equatorial{RAdeg: ra, DecDeg: dec}), glyphGridPoint, colorGrid)
		}
	}
	for dec := -60.0; dec <= 60; dec += 30 {
		for ra := 0.0; ra < 360; ra += 2 {
			plotPoint(c, p.ProjectCoord(astro.Equatorial{RAdeg: ra, DecDeg: dec}), glyphGridPoint, colorGrid)
		}
	}
}

// drawConstellations plots each figure's line arcs and, with labels on,
// the figure name near its first star.
func drawConstellations(c *Canvas, in Input) {
	for _, con := range in.Constellations {
		for _, pair := range con.Lines {
			a, okA := in.Catalog.Lookup(pair[0])
			b, okB := in.Catalog.Lookup(pair[1])
			if !okA || !okB {
				continue
			}
			drawArc(c, in.Projector, a.Coord.Direction(), b.Coord.Direction())
		}

		if !in.Options.ShowLabels || len(con.Lines) == 0 {
			continue
		}
		if anchor, ok := in.Catalog.Lookup(con.Lines[0][0]); ok {
			pt := in.Projector.ProjectCoord(anchor.Coord)
			if pt.Visible {
				c.SetString(int(pt.X)+2, int(pt.Y)+1, con.Name, colorFigName)
			}
		}
	}
}

// drawArc samples the great circle between two unit directions and plots
// every visible sample. Each sample is re-normalized, so arcs follow the
// sphere rather than a chord.
func drawArc(c *Canvas, p projection.Projector, from, to astro.Vec3) {
	for i := 1; i < figureSamples; i++ {
		t := float64(i) / figureSamples
		dir := from.Scale(1 - t).Add(to.Scale(t)).Normalized()
		if dir.Norm() < 0.5 {
			continue // antipodal endpoints, arc undefined at the midpoint
		}
		plotPoint(c, p.Project(dir), glyphFigLine, colorFigure)
	}
}

// drawStars plots every visible catalog star, brightest last so they win
// collisions, then labels the focused star.
func drawStars(c *Canvas, in Input) {
	stars := in.Catalog.Stars
	for i := len(stars) - 1; i >= 0; i-- {
		star := stars[i]
		pt := in.Projector.ProjectCoord(star.Coord)
		if !pt.Visible {
			continue
		}

		glyph, color := starGlyph(star.Mag)
		if in.Options.DimBelowHorizon {
			if astro.CurrentElevation(star.Coord, in.Observer, in.Time) <= 0 {
				color = colorStarSet
			}
		}
		if star.Name == in.FocusName {
			glyph, color = glyphFocus, colorFocus
		}
		plotPoint(c, pt, glyph, color)
	}

	if in.FocusName == "" || !in.Options.ShowLabels {
		return
	}
	if star, ok := in.Catalog.Lookup(in.FocusName); ok {
		pt := in.Projector.ProjectCoord(star.Coord)
		if pt.Visible {
			c.SetString(int(pt.X)+2, int(pt.Y), "◄ "+star.Name, colorFocus)
		}
	}
}

// drawSun plots the Sun at its apparent position for the frame time.
func drawSun(c *Canvas, in Input) {
	pt := in.Projector.ProjectCoord(astro.SunPosition(in.Time))
	plotPoint(c, pt, glyphSun, colorSun)
}

// starGlyph returns the glyph and color for a star's magnitude tier.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

// plotPoint rounds a screen point to a cell and sets it, skipping
// invisible points.
func plotPoint(c *Canvas, pt projection.ScreenPoint, r rune, color lipgloss.Color) {
	if !pt.Visible {
		return
	}
	c.Set(int(math.Round(pt.X)), int(math.Round(pt.Y)), r, color)
}
