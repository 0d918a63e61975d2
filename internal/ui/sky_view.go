package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/session"
)

// zoomStepFactor is the zoom applied per keypress or wheel notch.
const zoomStepFactor = 1.25

// SkyViewModel renders the inside-out sky dome and translates input into
// camera commands.
type SkyViewModel struct {
	sess    *session.Manager
	catalog astro.StarCatalog
	figures []astro.Constellation

	width  int
	height int
}

// NewSkyViewModel creates a sky view bound to a session.
func NewSkyViewModel(sess *session.Manager) SkyViewModel {
	return SkyViewModel{
		sess:    sess,
		catalog: astro.BrightStarCatalog(),
		figures: astro.ConstellationSet(),
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// panStep returns the keyboard pan increment, scaled so one press moves
// the view a constant fraction of the visible field.
func (m SkyViewModel) panStep() float64 {
	return m.sess.Snapshot().FOVDeg / 24
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := m.panStep()
		switch msg.String() {
		case "left":
			// Screen left is east (+RA) in the inside-out view
			m.sess.Rotate(step, 0)
		case "right":
			m.sess.Rotate(-step, 0)
		case "up":
			m.sess.Rotate(0, step)
		case "down":
			m.sess.Rotate(0, -step)

		case "+", "=":
			m.sess.Zoom(zoomStepFactor)
		case "-", "_":
			m.sess.Zoom(1 / zoomStepFactor)

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
		case "s":
			m.sess.UpdateOptions(func(o render.Options) render.Options {
				o.ShowSun = !o.ShowSun
				return o
			})
		case "o":
			m.sess.UpdateOptions(func(o render.Options) render.Options {
				o.DimBelowHorizon = !o.DimBelowHorizon
				return o
			})

		case "m":
			if m.sess.Snapshot().Mode == projection.ModePerspective {
				m.sess.SetMode(projection.ModeStereographic)
			} else {
				m.sess.SetMode(projection.ModePerspective)
			}

		case "a", " ":
			m.sess.ToggleAutoRotate()
		case "r":
			m.sess.ResetView()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse drives the drag state machine and wheel zoom.
func (m SkyViewModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.sess.Zoom(zoomStepFactor)
		return
	case tea.MouseButtonWheelDown:
		m.sess.Zoom(1 / zoomStepFactor)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.sess.StartDrag(float64(msg.X), float64(msg.Y))
		}
	case tea.MouseActionMotion:
		m.sess.UpdateDrag(float64(msg.X), float64(msg.Y))
	case tea.MouseActionRelease:
		m.sess.EndDrag()
	}
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Sky view requires a larger terminal"
	}

	snap := m.sess.Snapshot()
	size := projection.Size{Width: float64(m.width), Height: float64(m.height)}

	canvas := render.Sky(render.Input{
		Projector:      snap.Projector(size),
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
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
