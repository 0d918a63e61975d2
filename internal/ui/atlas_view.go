package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/session"
)

// atlasFOVDeg is the fixed wide field of the all-sky atlas. Stereographic
// mapping keeps shapes readable out to the edge at this width.
const atlasFOVDeg = 170.0

// AtlasViewModel renders a flattened all-sky overview around the current
// view direction. It shares the session camera but pins mode and FOV.
type AtlasViewModel struct {
	sess    *session.Manager
	catalog astro.StarCatalog
	figures []astro.Constellation

	width  int
	height int
}

// NewAtlasViewModel creates an atlas view bound to a session.
func NewAtlasViewModel(sess *session.Manager) AtlasViewModel {
	return AtlasViewModel{
		sess:    sess,
		catalog: astro.BrightStarCatalog(),
		figures: astro.ConstellationSet(),
	}
}

// SetSize updates the viewport size.
func (m AtlasViewModel) SetSize(width, height int) AtlasViewModel {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m AtlasViewModel) Update(msg tea.Msg) (AtlasViewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	const step = 10.0
	switch keyMsg.String() {
	case "left":
		m.sess.Rotate(step, 0)
	case "right":
		m.sess.Rotate(-step, 0)
	case "up":
		m.sess.Rotate(0, step)
	case "down":
		m.sess.Rotate(0, -step)

	case "g":
		m.sess.UpdateOptions(func(o render.Options) render.Options {
			o.ShowGrid = !o.ShowGrid
			return o
		})
	case "c":
		m.sess.UpdateOptions(func(o render.Options) render.Options {
			o.ShowConstellations = !o.ShowConstellations
			return o
		})
	case "n":
		m.sess.UpdateOptions(func(o render.Options) render.Options {
			o.ShowLabels = !o.ShowLabels
			return o
		})

	case "r":
		m.sess.ResetView()
	}

	return m, nil
}

// View renders the atlas view.
func (m AtlasViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Atlas view requires a larger terminal"
	}

	snap := m.sess.Snapshot()
	size := projection.Size{Width: float64(m.width), Height: float64(m.height)}
	proj := projection.New(snap.Orientation, atlasFOVDeg, size, projection.ModeStereographic)

	canvas := render.Sky(render.Input{
		Projector:      proj,
		Catalog:        m.catalog,
		Constellations: m.figures,
		Options:        snap.Options,
		Observer:       snap.Observer,
		Time:           snap.Time,
		FocusName:      snap.FocusName,
	})

	return canvas.String()
}

// Init returns nil cmd.
func (m AtlasViewModel) Init() tea.Cmd {
	return nil
}
