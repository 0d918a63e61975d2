// Package camera holds the mutable viewing session: orientation, field of
// view, drag state, and auto-rotation.
package camera

import (
	"math"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/projection"
)

// Config holds the tunable camera constants.
type Config struct {
	// DragSensitivityDeg is degrees of rotation per dragged pixel/cell.
	DragSensitivityDeg float64

	// DefaultFOVDeg, MinFOVDeg, MaxFOVDeg bound the zoom range. The min
	// and max are themselves clamped to the projector's hard limits.
	DefaultFOVDeg float64
	MinFOVDeg     float64
	MaxFOVDeg     float64

	// DefaultHeadingDeg and DefaultPitchDeg are the ResetView target.
	DefaultHeadingDeg float64
	DefaultPitchDeg   float64

	// AutoRotateDegPerSec is the heading drift rate while auto-rotating.
	AutoRotateDegPerSec float64

	// ZoomDamping tempers raw pinch/wheel factors: the applied factor is
	// factor^ZoomDamping, so 1.0 passes input through and 0 ignores it.
	ZoomDamping float64
}

// DefaultConfig returns sensible camera defaults.
func DefaultConfig() Config {
	return Config{
		DragSensitivityDeg:  0.25,
		DefaultFOVDeg:       90,
		MinFOVDeg:           projection.MinFOVDeg,
		MaxFOVDeg:           projection.MaxFOVDeg,
		DefaultHeadingDeg:   0,
		DefaultPitchDeg:     20,
		AutoRotateDegPerSec: 2.0,
		ZoomDamping:         0.6,
	}
}

// Controller is the imperative shell around the projection core. It is a
// plain in-memory state machine (idle or dragging) with no I/O and no
// timers; an external animation driver calls StepAutoRotation. Not safe
// for concurrent use without external synchronization.
type Controller struct {
	cfg Config

	orient projection.Orientation
	fovDeg float64

	dragging     bool
	lastX, lastY float64

	autoRotate bool
}

// New creates a controller at the config's default view.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.ResetView()
	return c
}

// Orientation returns the current orientation.
func (c *Controller) Orientation() projection.Orientation { return c.orient }

// FOVDeg returns the current field of view.
func (c *Controller) FOVDeg() float64 { return c.fovDeg }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// AutoRotate reports whether auto-rotation is enabled.
func (c *Controller) AutoRotate() bool { return c.autoRotate }

// Config returns the camera constants.
func (c *Controller) Config() Config { return c.cfg }

// Projector builds a projector for the current view state.
func (c *Controller) Projector(size projection.Size, mode projection.Mode) projection.Projector {
	return projection.New(c.orient, c.fovDeg, size, mode)
}

// StartDrag begins a drag at a screen position.
func (c *Controller) StartDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// UpdateDrag rotates toward the pointer. Dragging right pans the view
// left and dragging down pans it up, so the sky follows the pointer.
// Ignored while idle.
func (c *Controller) UpdateDrag(x, y float64) {
	if !c.dragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	c.orient = c.orient.Rotate(
		-dx*c.cfg.DragSensitivityDeg,
		dy*c.cfg.DragSensitivityDeg,
	)
}

// EndDrag finishes a drag. Ignored while idle.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Rotate turns the view by explicit angle deltas, independent of the drag
// state machine.
func (c *Controller) Rotate(dHeadingDeg, dPitchDeg float64) {
	c.orient = c.orient.Rotate(dHeadingDeg, dPitchDeg)
}

// Zoom narrows (factor > 1) or widens (factor < 1) the field of view.
// The raw factor is dampened through a power curve, so a zoom by f
// followed by a zoom by 1/f restores the original FOV exactly when no
// clamp triggers. Non-positive factors are ignored.
func (c *Controller) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	damped := math.Pow(factor, c.cfg.ZoomDamping)
	c.fovDeg = c.clampFOV(c.fovDeg / damped)
}

// SetFOV sets the field of view directly, clamped to the config bounds.
func (c *Controller) SetFOV(fovDeg float64) {
	c.fovDeg = c.clampFOV(fovDeg)
}

// SetAutoRotate enables or disables auto-rotation.
func (c *Controller) SetAutoRotate(enabled bool) {
	c.autoRotate = enabled
}

// StepAutoRotation advances the heading eastward for one tick of elapsed
// wall time. No-op unless auto-rotation is enabled.
func (c *Controller) StepAutoRotation(elapsed time.Duration) {
	if !c.autoRotate || elapsed <= 0 {
		return
	}
	c.orient = c.orient.Rotate(c.cfg.AutoRotateDegPerSec*elapsed.Seconds(), 0)
}

// LookAt points the view at a catalog coordinate.
func (c *Controller) LookAt(eq astro.Equatorial) {
	c.orient = projection.NewOrientation(eq.RAdeg, eq.DecDeg)
}

// ResetView restores the default heading, pitch, and field of view.
func (c *Controller) ResetView() {
	c.orient = projection.NewOrientation(c.cfg.DefaultHeadingDeg, c.cfg.DefaultPitchDeg)
	c.fovDeg = c.clampFOV(c.cfg.DefaultFOVDeg)
}

// clampFOV applies the config bounds on top of the projector's hard
// limits. Idempotent.
func (c *Controller) clampFOV(fovDeg float64) float64 {
	lo := projection.ClampFOV(c.cfg.MinFOVDeg)
	hi := projection.ClampFOV(c.cfg.MaxFOVDeg)
	if lo > hi {
		lo, hi = hi, lo
	}
	if fovDeg < lo {
		return lo
	}
	if fovDeg > hi {
		return hi
	}
	return fovDeg
}
