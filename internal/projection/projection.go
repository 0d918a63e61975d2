package projection

import (
	"math"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Mode selects the sphere-to-plane mapping.
type Mode int

const (
	// ModePerspective is a tangent-plane (gnomonic-style) mapping; natural
	// for narrow and medium fields of view.
	ModePerspective Mode = iota

	// ModeStereographic maps through comp/(1+depth); conformal, so wide
	// fields keep their shape near the edges. Used by the all-sky atlas.
	ModeStereographic
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStereographic:
		return "stereographic"
	default:
		return "perspective"
	}
}

// Field of view clamp bounds, degrees.
const (
	MinFOVDeg = 10.0
	MaxFOVDeg = 180.0
)

// ClampFOV limits a field of view to [MinFOVDeg, MaxFOVDeg]. Idempotent.
func ClampFOV(deg float64) float64 {
	if deg < MinFOVDeg {
		return MinFOVDeg
	}
	if deg > MaxFOVDeg {
		return MaxFOVDeg
	}
	return deg
}

// Size is the target viewport in pixels or terminal cells.
type Size struct {
	Width  float64
	Height float64
}

// ScreenPoint is a projected position. Visible is explicit: an invisible
// point carries no meaningful coordinates and must not be drawn.
type ScreenPoint struct {
	X, Y    float64
	Visible bool
}

// Projector maps unit sky directions to screen points for a fixed view
// direction, field of view, viewport, and mode. Construct one per frame;
// the orthonormal basis is computed once up front.
//
// Screen conventions, fixed for every caller: X grows rightward, Y grows
// downward, the view direction lands at the viewport center, celestial
// north is up, and east appears left of center (the inside-out view of
// the sphere).
type Projector struct {
	viewDir astro.Vec3
	right   astro.Vec3
	up      astro.Vec3

	size       Size
	fovDeg     float64
	cosHalfFOV float64
	perspScale float64 // 1 / tan(fov/2)
	stereScale float64 // 1 / tan(fov/4)
	mode       Mode
}

// worldUp is the basis reference: the north celestial pole.
var worldUp = astro.Vec3{X: 0, Y: 0, Z: 1}

// poleUp replaces worldUp when the view direction is (anti)parallel to it,
// keeping the basis defined when looking straight at a pole.
var poleUp = astro.Vec3{X: 1, Y: 0, Z: 0}

// New builds a projector for an orientation.
func New(o Orientation, fovDeg float64, size Size, mode Mode) Projector {
	return NewFromDirection(o.ViewDirection(), fovDeg, size, mode)
}

// NewFromDirection builds a projector for a precomputed unit view
// direction.
func NewFromDirection(viewDir astro.Vec3, fovDeg float64, size Size, mode Mode) Projector {
	fovDeg = ClampFOV(fovDeg)
	halfFOV := degToRad(fovDeg) / 2

	viewDir = viewDir.Normalized()
	right := viewDir.Cross(worldUp).Normalized()
	if right.Norm() < 0.5 {
		// Looking at a pole: the cross product degenerates, substitute the
		// fallback axis so the basis stays defined and deterministic.
		right = viewDir.Cross(poleUp).Normalized()
	}
	up := right.Cross(viewDir)

	return Projector{
		viewDir:    viewDir,
		right:      right,
		up:         up,
		size:       size,
		fovDeg:     fovDeg,
		cosHalfFOV: math.Cos(halfFOV),
		perspScale: 1 / math.Tan(halfFOV),
		stereScale: 1 / math.Tan(halfFOV/2),
		mode:       mode,
	}
}

// FOVDeg returns the clamped field of view.
func (p Projector) FOVDeg() float64 { return p.fovDeg }

// Mode returns the projection mode.
func (p Projector) Mode() Mode { return p.mode }

// Size returns the viewport size.
func (p Projector) Size() Size { return p.size }

// ViewDirection returns the unit view direction.
func (p Projector) ViewDirection() astro.Vec3 { return p.viewDir }

// Basis returns the right and up vectors of the view plane.
func (p Projector) Basis() (right, up astro.Vec3) { return p.right, p.up }

// Visible reports whether a unit direction falls inside the circular
// field-of-view cone. The cone deliberately over-includes points near
// frame corners; callers clip to the viewport when plotting.
func (p Projector) Visible(dir astro.Vec3) bool {
	dot := clamp(dir.Dot(p.viewDir), -1, 1)
	return dot > p.cosHalfFOV
}

// Project maps a unit sky direction to a screen point. Directions outside
// the view cone come back with Visible=false and zero coordinates; the
// function never panics and never returns NaN.
func (p Projector) Project(dir astro.Vec3) ScreenPoint {
	if !p.Visible(dir) {
		return ScreenPoint{}
	}

	rightComp := dir.Dot(p.right)
	upComp := dir.Dot(p.up)
	depth := clamp(dir.Dot(p.viewDir), -1, 1)

	// Normalized offsets in [-1,1] across the cone
	var sx, sy float64
	switch p.mode {
	case ModeStereographic:
		sx = rightComp / (1 + depth) * p.stereScale
		sy = upComp / (1 + depth) * p.stereScale
	default:
		// depth > cos(fov/2) >= 0 here, so the divide is safe for any
		// field of view below 180 degrees
		sx = rightComp / depth * p.perspScale
		sy = upComp / depth * p.perspScale
	}

	return ScreenPoint{
		X:       p.size.Width/2 + sx*p.size.Width/2,
		Y:       p.size.Height/2 - sy*p.size.Height/2,
		Visible: true,
	}
}

// ProjectCoord is Project for an equatorial coordinate.
func (p Projector) ProjectCoord(eq astro.Equatorial) ScreenPoint {
	return p.Project(eq.Direction())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
