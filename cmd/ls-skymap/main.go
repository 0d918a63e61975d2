// Command ls-skymap is a terminal planetarium: an interactive star map
// rendered from a bright-star catalog through a virtual sky camera.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/server"
	"github.com/litescript/ls-skymap/internal/session"
	"github.com/litescript/ls-skymap/internal/ui"
)

// CLI flags for headless mode
var (
	skyMode      bool
	snapshotPath string
	serveAddr    string
	skyWidth     int
	skyHeight    int
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	site := flag.String("site", "greenwich", "Observing site (greenwich, maunakea, paranal, sidingspring)")
	lat := flag.Float64("lat", 91, "Observer latitude in degrees (overrides -site)")
	lon := flag.Float64("lon", 181, "Observer longitude in degrees, east positive (overrides -site)")
	fov := flag.Float64("fov", 90, "Initial field of view in degrees")
	mode := flag.String("mode", "perspective", "Projection mode (perspective, stereographic)")
	autoRotate := flag.Bool("auto-rotate", false, "Start with sidereal auto-rotation enabled")
	at := flag.String("at", "", "Pin the sky clock to a UTC instant (RFC 3339, e.g. 2026-03-20T21:00:00Z)")
	flag.BoolVar(&skyMode, "sky", false, "Print one ASCII sky frame instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON frame to file (use - for stdout)")
	flag.StringVar(&serveAddr, "serve", "", "Serve frames over WebSocket on this address (e.g. :8394)")
	flag.IntVar(&skyWidth, "width", 120, "Headless frame width in cells")
	flag.IntVar(&skyHeight, "height", 40, "Headless frame height in cells")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg := session.DefaultConfig()
	cfg.Observer = resolveObserver(*site, *lat, *lon)
	cfg.Camera.DefaultFOVDeg = projection.ClampFOV(*fov)

	switch *mode {
	case "perspective":
		cfg.Mode = projection.ModePerspective
	case "stereographic":
		cfg.Mode = projection.ModeStereographic
	default:
		fmt.Fprintf(os.Stderr, "Unknown projection mode %q\n", *mode)
		os.Exit(2)
	}

	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -at time: %v\n", err)
			os.Exit(2)
		}
		cfg.FixedTime = t.UTC()
	}

	headless := skyMode || snapshotPath != "" || serveAddr != ""
	if !headless {
		// Terminal cells are coarser than pixels, so a dragged cell
		// turns the camera further than the pixel default.
		cfg.Camera.DragSensitivityDeg = 1.0
	}

	sess := session.NewManager(cfg)
	if *autoRotate {
		sess.ToggleAutoRotate()
	}

	if headless {
		runHeadless(ctx, sess, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Not a terminal; use -sky, -snapshot-path, or -serve for headless output")
		os.Exit(1)
	}

	model := ui.New(sess)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveObserver picks the site observer, then applies explicit
// coordinate overrides. The flag defaults sit outside the valid ranges
// so "unset" is distinguishable from a real 0,0 observer.
func resolveObserver(site string, lat, lon float64) astro.Observer {
	obs := astro.ObserverForSite(astro.Site(site))
	if lat >= -90 && lat <= 90 {
		obs.LatDeg = lat
		obs.Name = "custom"
	}
	if lon >= -180 && lon <= 180 {
		obs.LonDeg = lon
		obs.Name = "custom"
	}
	return obs
}

// headlessSize converts the cell-count flags to a projection viewport.
func headlessSize() projection.Size {
	return projection.Size{Width: float64(skyWidth), Height: float64(skyHeight)}
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, sess *session.Manager, logger *logging.Logger) {
	if serveAddr != "" {
		srvCfg := server.DefaultConfig()
		srvCfg.Addr = serveAddr
		srv := server.New(srvCfg, sess, logger.WithPrefix("server"))
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	snap := sess.Snapshot()
	in := render.Input{
		Projector:      snap.Projector(headlessSize()),
		Catalog:        astro.BrightStarCatalog(),
		Constellations: astro.ConstellationSet(),
		Options:        snap.Options,
		Observer:       snap.Observer,
		Time:           snap.Time,
		FocusName:      snap.FocusName,
	}

	if snapshotPath != "" {
		export := render.ExportFrame(in)
		if snapshotPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if skyMode {
		if err := render.WriteSky(os.Stdout, in); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
