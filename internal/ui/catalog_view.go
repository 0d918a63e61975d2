package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/session"
)

// CatalogViewModel lists the bright-star catalog with live visibility
// data for the session observer, and jumps the camera to a selected star.
type CatalogViewModel struct {
	sess    *session.Manager
	catalog astro.StarCatalog

	width  int
	height int

	cursor int
	offset int
}

// NewCatalogViewModel creates a catalog view bound to a session.
func NewCatalogViewModel(sess *session.Manager) CatalogViewModel {
	return CatalogViewModel{
		sess:    sess,
		catalog: astro.BrightStarCatalog(),
	}
}

// SetSize updates the viewport size.
func (m CatalogViewModel) SetSize(width, height int) CatalogViewModel {
	m.width = width
	m.height = height
	return m
}

// visibleRows returns how many list rows fit under the detail panel.
func (m CatalogViewModel) visibleRows() int {
	rows := m.height - 4 // column header + three detail lines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Update handles messages.
func (m CatalogViewModel) Update(msg tea.Msg) (CatalogViewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "pgup":
		m.cursor -= m.visibleRows()
	case "pgdown":
		m.cursor += m.visibleRows()
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.catalog.Stars) - 1

	case "enter":
		star := m.catalog.Stars[m.clampedCursor()]
		m.sess.LookAt(star.Coord, star.Name)
		return m, func() tea.Msg { return JumpToSkyMsg{} }
	}

	m.cursor = m.clampedCursor()

	// Keep the cursor in the visible window
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}

	return m, nil
}

func (m CatalogViewModel) clampedCursor() int {
	if m.cursor < 0 {
		return 0
	}
	if m.cursor >= len(m.catalog.Stars) {
		return len(m.catalog.Stars) - 1
	}
	return m.cursor
}

// View renders the catalog list with a detail panel for the selection.
func (m CatalogViewModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "Catalog view requires a larger terminal"
	}

	snap := m.sess.Snapshot()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-18s %-4s %8s %8s %6s  %s",
		"Star", "Con", "RA°", "Dec°", "Mag", "Now")))
	b.WriteString("\n")

	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(m.catalog.Stars) {
		end = len(m.catalog.Stars)
	}

	for i := m.offset; i < end; i++ {
		star := m.catalog.Stars[i]
		el := astro.CurrentElevation(star.Coord, snap.Observer, snap.Time)

		line := fmt.Sprintf("  %-18s %-4s %8.2f %+8.2f %6.2f  %s",
			star.Name, star.Con, star.Coord.RAdeg, star.Coord.DecDeg, star.Mag,
			elevationLabel(el))

		if i == m.cursor {
			b.WriteString(selStyle.Render("▶" + line[1:]))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderDetail(snap, dimStyle))
	return b.String()
}

// renderDetail shows rise/set and solar elongation for the selection.
func (m CatalogViewModel) renderDetail(snap session.Snapshot, style lipgloss.Style) string {
	star := m.catalog.Stars[m.clampedCursor()]

	window, err := astro.RiseSet(star.Coord, snap.Observer, snap.Time)
	var passLine string
	switch {
	case err != nil:
		passLine = "rise/set unavailable"
	case window.AlwaysVisible:
		passLine = fmt.Sprintf("circumpolar | transit %s at %.0f°",
			window.Transit.UTC().Format("15:04"), window.MaxElevation)
	case window.NeverVisible:
		passLine = "never rises at this site"
	default:
		rise := "already up"
		if !window.Rise.IsZero() {
			rise = "rises " + window.Rise.UTC().Format("15:04")
		}
		set := "no set in 24h"
		if !window.Set.IsZero() {
			set = "sets " + window.Set.UTC().Format("15:04")
		}
		passLine = fmt.Sprintf("%s | %s | peak %.0f°", rise, set, window.MaxElevation)
	}

	elong := astro.SolarElongation(star.Coord, snap.Time)

	return style.Render(fmt.Sprintf("  %s (%s)\n  %s UTC\n  sun separation %.0f°",
		star.Name, star.Con, passLine, elong))
}

// elevationLabel formats an elevation with its tier marker.
func elevationLabel(elDeg float64) string {
	switch astro.GetElevationTier(elDeg) {
	case astro.ElevationNone:
		return fmt.Sprintf("set (%.0f°)", elDeg)
	case astro.ElevationLow:
		return fmt.Sprintf("low %.0f°", elDeg)
	case astro.ElevationMedium:
		return fmt.Sprintf("up %.0f°", elDeg)
	default:
		return fmt.Sprintf("high %.0f°", elDeg)
	}
}

// Init returns nil cmd.
func (m CatalogViewModel) Init() tea.Cmd {
	return nil
}
