// Package projection converts sky directions to screen coordinates for an
// observer at the center of the celestial sphere looking outward.
package projection

import (
	"math"

	"github.com/litescript/ls-skymap/internal/astro"
)

// PitchLimitDeg bounds pitch short of the exact poles, where the view
// basis would degenerate.
const PitchLimitDeg = 85.0

// Orientation is the direction the viewer faces: heading along the
// celestial equator (RA-like, [0,360)) and pitch toward the poles
// (Dec-like, clamped to ±PitchLimitDeg). "Looking at RA=h, Dec=p" and
// "heading=h, pitch=p" are the same direction, so orientations compose
// directly with catalog coordinates.
type Orientation struct {
	HeadingDeg float64
	PitchDeg   float64
}

// NewOrientation returns an orientation with heading normalized and pitch
// clamped.
func NewOrientation(headingDeg, pitchDeg float64) Orientation {
	return Orientation{
		HeadingDeg: NormalizeHeading(headingDeg),
		PitchDeg:   ClampPitch(pitchDeg),
	}
}

// Rotate returns the orientation turned by the given deltas. Heading wraps
// mod 360; pitch clamps at ±PitchLimitDeg.
func (o Orientation) Rotate(dHeadingDeg, dPitchDeg float64) Orientation {
	return NewOrientation(o.HeadingDeg+dHeadingDeg, o.PitchDeg+dPitchDeg)
}

// ViewDirection returns the unit vector the viewer faces, under the same
// axis convention as astro.Equatorial.Direction.
func (o Orientation) ViewDirection() astro.Vec3 {
	return astro.Equatorial{RAdeg: o.HeadingDeg, DecDeg: o.PitchDeg}.Direction()
}

// Coord returns the orientation as an equatorial coordinate.
func (o Orientation) Coord() astro.Equatorial {
	return astro.Equatorial{RAdeg: o.HeadingDeg, DecDeg: o.PitchDeg}
}

// NormalizeHeading wraps a heading to [0,360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ClampPitch limits pitch to [-PitchLimitDeg, PitchLimitDeg]. Idempotent.
func ClampPitch(deg float64) float64 {
	if deg < -PitchLimitDeg {
		return -PitchLimitDeg
	}
	if deg > PitchLimitDeg {
		return PitchLimitDeg
	}
	return deg
}

// AxisRotation is the 3-axis-angle representation of a rotation, in
// radians. Apply composes the axis rotations in the fixed order X, then Y,
// then Z; the same stored angles always produce the same result.
type AxisRotation struct {
	XRad, YRad, ZRad float64
}

// Apply rotates v about X, then Y, then Z.
func (r AxisRotation) Apply(v astro.Vec3) astro.Vec3 {
	// X axis
	c, s := math.Cos(r.XRad), math.Sin(r.XRad)
	v = astro.Vec3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}

	// Y axis
	c, s = math.Cos(r.YRad), math.Sin(r.YRad)
	v = astro.Vec3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}

	// Z axis
	c, s = math.Cos(r.ZRad), math.Sin(r.ZRad)
	return astro.Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}
