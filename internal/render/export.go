package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
)

// FrameExport is the JSON-serializable representation of one projected
// frame: camera state plus every catalog object with its screen position
// and explicit visibility flag.
type FrameExport struct {
	Time   time.Time     `json:"time"`
	Camera CameraExport  `json:"camera"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Points []PointExport `json:"points"`
}

// CameraExport is a JSON-friendly camera state.
type CameraExport struct {
	HeadingDeg float64 `json:"heading_deg"`
	PitchDeg   float64 `json:"pitch_deg"`
	FOVDeg     float64 `json:"fov_deg"`
	Mode       string  `json:"mode"`
}

// PointExport is one projected object. X and Y are only meaningful when
// Visible is true.
type PointExport struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"` // "star" or "sun"
	Mag     float64 `json:"mag,omitempty"`
	RAdeg   float64 `json:"ra_deg"`
	DecDeg  float64 `json:"dec_deg"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Visible bool    `json:"visible"`
}

// ExportFrame projects the full catalog (and the Sun, when enabled) for a
// frame input. Invisible objects are included with Visible=false so wire
// consumers can decide what to draw.
func ExportFrame(in Input) *FrameExport {
	size := in.Projector.Size()
	view := in.Projector.ViewDirection()
	orient := astro.EquatorialFromDirection(view)

	export := &FrameExport{
		Time: in.Time,
		Camera: CameraExport{
			HeadingDeg: orient.RAdeg,
			PitchDeg:   orient.DecDeg,
			FOVDeg:     in.Projector.FOVDeg(),
			Mode:       in.Projector.Mode().String(),
		},
		Width:  int(size.Width),
		Height: int(size.Height),
		Points: make([]PointExport, 0, len(in.Catalog.Stars)+1),
	}

	for _, star := range in.Catalog.Stars {
		pt := in.Projector.ProjectCoord(star.Coord)
		export.Points = append(export.Points, PointExport{
			Name:    star.Name,
			Kind:    "star",
			Mag:     star.Mag,
			RAdeg:   star.Coord.RAdeg,
			DecDeg:  star.Coord.DecDeg,
			X:       pt.X,
			Y:       pt.Y,
			Visible: pt.Visible,
		})
	}

	if in.Options.ShowSun {
		sun := astro.SunPosition(in.Time)
		pt := in.Projector.ProjectCoord(sun)
		export.Points = append(export.Points, PointExport{
			Name:    "Sun",
			Kind:    "sun",
			RAdeg:   sun.RAdeg,
			DecDeg:  sun.DecDeg,
			X:       pt.X,
			Y:       pt.Y,
			Visible: pt.Visible,
		})
	}

	return export
}

// WriteJSON writes the frame as indented JSON.
func (e *FrameExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// WriteSky writes a plain ASCII frame with a one-line header, for
// headless terminal output.
func WriteSky(w io.Writer, in Input) error {
	view := astro.EquatorialFromDirection(in.Projector.ViewDirection())
	header := fmt.Sprintf("RA %.1f°  Dec %+.1f°  FOV %.0f°  %s  %s\n",
		view.RAdeg, view.DecDeg,
		in.Projector.FOVDeg(), in.Projector.Mode(),
		in.Time.UTC().Format("2006-01-02 15:04 UTC"))

	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("write sky header: %w", err)
	}
	if _, err := io.WriteString(w, Sky(in).Plain()); err != nil {
		return fmt.Errorf("write sky frame: %w", err)
	}
	return nil
}
