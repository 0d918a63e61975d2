// Package session provides thread-safe viewing-session state shared by
// the TUI and the frame server.
package session

import (
	"sync"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/camera"
	"github.com/litescript/ls-skymap/internal/projection"
	"github.com/litescript/ls-skymap/internal/render"
)

// Config holds configuration for a session.
type Config struct {
	Camera   camera.Config
	Options  render.Options
	Observer astro.Observer
	Mode     projection.Mode

	// FixedTime pins the sky clock for reproducible frames. Zero means
	// wall-clock time.
	FixedTime time.Time
}

// DefaultConfig returns sensible session defaults.
func DefaultConfig() Config {
	return Config{
		Camera:   camera.DefaultConfig(),
		Options:  render.DefaultOptions(),
		Observer: astro.ObserverForSite(astro.SiteGreenwich),
		Mode:     projection.ModePerspective,
	}
}

// Snapshot is an immutable view of the session for rendering. Renderers
// build projectors from it without touching shared state again.
type Snapshot struct {
	Orientation projection.Orientation
	FOVDeg      float64
	Mode        projection.Mode
	Options     render.Options
	Observer    astro.Observer
	Time        time.Time
	AutoRotate  bool
	FocusName   string
}

// Projector builds a projector for this snapshot at a viewport size.
func (s Snapshot) Projector(size projection.Size) projection.Projector {
	return projection.New(s.Orientation, s.FOVDeg, size, s.Mode)
}

// Manager guards the camera controller and display options behind a
// mutex. The camera itself assumes a single writer; the manager makes
// each mutation atomic so the TUI loop and WebSocket handlers can share
// one session.
type Manager struct {
	mu sync.RWMutex

	cfg       Config
	cam       *camera.Controller
	opts      render.Options
	mode      projection.Mode
	observer  astro.Observer
	focusName string
	lastStep  time.Time
}

// NewManager creates a session manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:      cfg,
		cam:      camera.New(cfg.Camera),
		opts:     cfg.Options,
		mode:     cfg.Mode,
		observer: cfg.Observer,
		lastStep: time.Now(),
	}
}

// Snapshot returns the current state for rendering.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Orientation: m.cam.Orientation(),
		FOVDeg:      m.cam.FOVDeg(),
		Mode:        m.mode,
		Options:     m.opts,
		Observer:    m.observer,
		Time:        m.now(),
		AutoRotate:  m.cam.AutoRotate(),
		FocusName:   m.focusName,
	}
}

// now returns the sky clock time. Callers hold at least a read lock.
func (m *Manager) now() time.Time {
	if !m.cfg.FixedTime.IsZero() {
		return m.cfg.FixedTime
	}
	return time.Now()
}

// StartDrag begins a pointer drag.
func (m *Manager) StartDrag(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.StartDrag(x, y)
}

// UpdateDrag continues a pointer drag.
func (m *Manager) UpdateDrag(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.UpdateDrag(x, y)
}

// EndDrag finishes a pointer drag.
func (m *Manager) EndDrag() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.EndDrag()
}

// Rotate turns the view by angle deltas.
func (m *Manager) Rotate(dHeadingDeg, dPitchDeg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.Rotate(dHeadingDeg, dPitchDeg)
}

// Zoom applies a zoom factor.
func (m *Manager) Zoom(factor float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.Zoom(factor)
}

// LookAt points the view at a coordinate and records the focus name.
func (m *Manager) LookAt(eq astro.Equatorial, focusName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.LookAt(eq)
	m.focusName = focusName
}

// ResetView restores the default view and clears the focus.
func (m *Manager) ResetView() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.ResetView()
	m.focusName = ""
}

// ToggleAutoRotate flips auto-rotation and reports the new state.
func (m *Manager) ToggleAutoRotate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cam.SetAutoRotate(!m.cam.AutoRotate())
	m.lastStep = time.Now()
	return m.cam.AutoRotate()
}

// Step advances auto-rotation by the wall time elapsed since the previous
// Step. The external animation driver calls this once per frame tick.
func (m *Manager) Step() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.cam.StepAutoRotation(now.Sub(m.lastStep))
	m.lastStep = now
}

// SetMode selects the projection mode.
func (m *Manager) SetMode(mode projection.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

// SetOptions replaces the overlay options.
func (m *Manager) SetOptions(opts render.Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = opts
}

// UpdateOptions applies a mutation to the overlay options and returns the
// result.
func (m *Manager) UpdateOptions(mutate func(render.Options) render.Options) render.Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = mutate(m.opts)
	return m.opts
}

// SetObserver changes the observer location.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = obs
}
