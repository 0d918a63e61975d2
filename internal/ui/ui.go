// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/session"
	"github.com/litescript/ls-skymap/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky ViewMode = iota
	ViewAtlas
	ViewCatalog
)

// frameRate drives auto-rotation stepping and redraws.
const frameRate = 50 * time.Millisecond

// Msg types for Bubble Tea
type (
	// FrameTickMsg triggers per-frame updates.
	FrameTickMsg time.Time

	// JumpToSkyMsg asks the root model to switch to the sky view after a
	// catalog jump.
	JumpToSkyMsg struct{}
)

func frameTick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// Model is the root Bubble Tea model.
type Model struct {
	sess *session.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	sky     SkyViewModel
	atlas   AtlasViewModel
	catalog CatalogViewModel
}

// New creates the root UI model around a shared session.
func New(sess *session.Manager) Model {
	return Model{
		sess:    sess,
		sky:     NewSkyViewModel(sess),
		atlas:   NewAtlasViewModel(sess),
		catalog: NewCatalogViewModel(sess),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewSky
		case "2":
			m.viewMode = ViewAtlas
		case "3":
			m.viewMode = ViewCatalog

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 2 lines, footer 2
		contentHeight := msg.Height - 4
		m.sky = m.sky.SetSize(msg.Width, contentHeight)
		m.atlas = m.atlas.SetSize(msg.Width, contentHeight)
		m.catalog = m.catalog.SetSize(msg.Width, contentHeight)

	case FrameTickMsg:
		m.sess.Step()
		cmds = append(cmds, frameTick())

	case JumpToSkyMsg:
		m.viewMode = ViewSky

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSky:
		m.sky, cmd = m.sky.Update(msg)
	case ViewAtlas:
		m.atlas, cmd = m.atlas.Update(msg)
	case ViewCatalog:
		m.catalog, cmd = m.catalog.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSky:
		content = m.sky.View()
	case ViewAtlas:
		content = m.atlas.View()
	case ViewCatalog:
		content = m.catalog.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := renderWordmark("ls-skymap")
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	snap := m.sess.Snapshot()
	zen := astro.Zenith(snap.Observer, snap.Time)
	status := dimStyle.Render(fmt.Sprintf(
		"v%s | %s | zenith RA %.1f° Dec %+.1f° | RA %.1f° Dec %+.1f° FOV %.0f°",
		version.Version, snap.Observer.Name, zen.RAdeg, zen.DecDeg,
		snap.Orientation.HeadingDeg, snap.Orientation.PitchDeg, snap.FOVDeg))

	return title + "\n" + status
}

// renderWordmark draws the app name with a horizontal truecolor gradient.
func renderWordmark(word string) string {
	runes := []rune(word)
	out := ""
	for i, r := range runes {
		// Violet to gold across the word
		t := float64(i) / float64(len(runes)-1)
		red := int(150 + 105*t)
		green := int(100 + 110*t)
		blue := int(255 - 155*t)
		color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", red, green, blue))
		out += lipgloss.NewStyle().Bold(true).Foreground(color).Render(string(r))
	}
	return "  " + out
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var hint string
	switch m.viewMode {
	case ViewSky:
		hint = "arrows pan | +/- zoom | drag/wheel mouse | g grid | c figures | n names | s sun | o horizon | m mode | a rotate | r reset"
	case ViewAtlas:
		hint = "arrows pan | g grid | c figures | n names | r reset"
	case ViewCatalog:
		hint = "up/down select | enter jump to star | pgup/pgdn page"
	}

	return dimStyle.Render("  [1] sky  [2] atlas  [3] catalog | " + hint + " | q quit")
}
