package projection

import (
	"math"
	"testing"

	"github.com/litescript/ls-skymap/internal/astro"
)

var testSize = Size{Width: 800, Height: 600}

func TestClampFOV(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{90, 90},
		{5, MinFOVDeg},
		{200, MaxFOVDeg},
		{MinFOVDeg, MinFOVDeg},
		{MaxFOVDeg, MaxFOVDeg},
	}

	for _, tt := range tests {
		got := ClampFOV(tt.in)
		if got != tt.expected {
			t.Errorf("ClampFOV(%v) = %v, want %v", tt.in, got, tt.expected)
		}
		if again := ClampFOV(got); again != got {
			t.Errorf("ClampFOV not idempotent at %v", tt.in)
		}
	}
}

func TestProjectCenter(t *testing.T) {
	// The view direction lands exactly at the viewport center, in both
	// modes and at any field of view.
	for _, mode := range []Mode{ModePerspective, ModeStereographic} {
		for _, fov := range []float64{10, 60, 90, 150} {
			p := New(NewOrientation(0, 0), fov, testSize, mode)
			pt := p.ProjectCoord(astro.Equatorial{RAdeg: 0, DecDeg: 0})
			if !pt.Visible {
				t.Fatalf("%v fov=%v: center not visible", mode, fov)
			}
			if math.Abs(pt.X-400) > 1e-9 || math.Abs(pt.Y-300) > 1e-9 {
				t.Errorf("%v fov=%v: center = (%v, %v), want (400, 300)", mode, fov, pt.X, pt.Y)
			}
		}
	}
}

func TestProjectOrientationConventions(t *testing.T) {
	// Looking at the vernal equinox with a 90 degree field of view:
	// north is up, and east (increasing RA) appears left of center.
	p := New(NewOrientation(0, 0), 90, testSize, ModePerspective)

	north := p.ProjectCoord(astro.Equatorial{RAdeg: 0, DecDeg: 20})
	if !north.Visible || north.Y >= 300 {
		t.Errorf("north point = %+v, want visible above center", north)
	}

	south := p.ProjectCoord(astro.Equatorial{RAdeg: 0, DecDeg: -20})
	if !south.Visible || south.Y <= 300 {
		t.Errorf("south point = %+v, want visible below center", south)
	}

	east := p.ProjectCoord(astro.Equatorial{RAdeg: 20, DecDeg: 0})
	if !east.Visible || east.X >= 400 {
		t.Errorf("east point = %+v, want visible left of center", east)
	}

	west := p.ProjectCoord(astro.Equatorial{RAdeg: 340, DecDeg: 0})
	if !west.Visible || west.X <= 400 {
		t.Errorf("west point = %+v, want visible right of center", west)
	}
}

func TestVisible(t *testing.T) {
	p := New(NewOrientation(0, 0), 90, testSize, ModePerspective)

	tests := []struct {
		name    string
		eq      astro.Equatorial
		visible bool
	}{
		{name: "dead center", eq: astro.Equatorial{RAdeg: 0, DecDeg: 0}, visible: true},
		{name: "inside cone", eq: astro.Equatorial{RAdeg: 40, DecDeg: 0}, visible: true},
		{name: "outside cone", eq: astro.Equatorial{RAdeg: 50, DecDeg: 0}, visible: false},
		{name: "behind viewer", eq: astro.Equatorial{RAdeg: 180, DecDeg: 0}, visible: false},
		{name: "antipodal pole-ish", eq: astro.Equatorial{RAdeg: 0, DecDeg: -89}, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Visible(tt.eq.Direction()); got != tt.visible {
				t.Errorf("Visible(%+v) = %v, want %v", tt.eq, got, tt.visible)
			}
		})
	}
}

func TestVisibleSymmetric(t *testing.T) {
	// Visibility depends only on the angle from the view axis, so points
	// at equal angular offsets in any direction agree.
	p := New(NewOrientation(0, 0), 60, testSize, ModePerspective)
	offsets := []astro.Equatorial{
		{RAdeg: 25, DecDeg: 0},
		{RAdeg: 335, DecDeg: 0},
		{RAdeg: 0, DecDeg: 25},
		{RAdeg: 0, DecDeg: -25},
	}
	for _, eq := range offsets {
		if !p.Visible(eq.Direction()) {
			t.Errorf("%+v should be inside a 60 degree cone", eq)
		}
	}
}

func TestInvisibleProjectsToZero(t *testing.T) {
	p := New(NewOrientation(0, 0), 90, testSize, ModePerspective)
	pt := p.Project(astro.Equatorial{RAdeg: 180, DecDeg: 0}.Direction())
	if pt.Visible {
		t.Fatal("antipodal point reported visible")
	}
	if pt.X != 0 || pt.Y != 0 {
		t.Errorf("invisible point carries coordinates: %+v", pt)
	}
}

func TestZoomMagnifies(t *testing.T) {
	// Narrowing the field of view pushes the same off-center point
	// further from the center, in both modes.
	target := astro.Equatorial{RAdeg: 4, DecDeg: 3}
	for _, mode := range []Mode{ModePerspective, ModeStereographic} {
		var prev float64
		for i, fov := range []float64{120, 90, 60, 30, 15} {
			p := New(NewOrientation(0, 0), fov, testSize, mode)
			pt := p.ProjectCoord(target)
			if !pt.Visible {
				t.Fatalf("%v fov=%v: target not visible", mode, fov)
			}
			r := math.Hypot(pt.X-400, pt.Y-300)
			if i > 0 && r <= prev {
				t.Errorf("%v fov=%v: offset %v not larger than %v at wider FOV", mode, fov, r, prev)
			}
			prev = r
		}
	}
}

func TestProjectEdgeScaling(t *testing.T) {
	// A point just inside the cone edge lands near the horizontal frame
	// border in both modes: both scales are normalized to the half-FOV.
	const fov = 90.0
	eq := astro.Equatorial{RAdeg: 360 - (fov/2 - 0.01), DecDeg: 0} // west side, so +X
	for _, mode := range []Mode{ModePerspective, ModeStereographic} {
		p := New(NewOrientation(0, 0), fov, testSize, mode)
		pt := p.ProjectCoord(eq)
		if !pt.Visible {
			t.Fatalf("%v: edge point not visible", mode)
		}
		if pt.X < 790 || pt.X > 800.5 {
			t.Errorf("%v: edge point X = %v, want just inside 800", mode, pt.X)
		}
	}
}

func TestPoleBasisDeterministic(t *testing.T) {
	// Looking straight at the celestial pole, the usual reference axis
	// degenerates; the fallback must produce the same basis every time.
	dir := astro.Vec3{Z: 1}
	p1 := NewFromDirection(dir, 90, testSize, ModePerspective)
	p2 := NewFromDirection(dir, 90, testSize, ModePerspective)

	r1, u1 := p1.Basis()
	r2, u2 := p2.Basis()
	if r1 != r2 || u1 != u2 {
		t.Fatalf("pole basis not deterministic: (%+v,%+v) vs (%+v,%+v)", r1, u1, r2, u2)
	}

	// The basis stays orthonormal.
	if math.Abs(r1.Norm()-1) > 1e-9 || math.Abs(u1.Norm()-1) > 1e-9 {
		t.Errorf("pole basis not unit length: right=%v up=%v", r1.Norm(), u1.Norm())
	}
	if math.Abs(r1.Dot(u1)) > 1e-9 || math.Abs(r1.Dot(dir)) > 1e-9 {
		t.Errorf("pole basis not orthogonal")
	}

	// And projecting near-pole stars produces finite screen points.
	pt := p1.ProjectCoord(astro.Equatorial{RAdeg: 37.95, DecDeg: 89.26})
	if !pt.Visible || math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		t.Errorf("near-pole projection = %+v", pt)
	}
}

func TestProjectNeverNaN(t *testing.T) {
	// Sweep orientations, modes, and extreme fields of view against a
	// fixed grid of targets; no combination may yield NaN.
	targets := []astro.Equatorial{
		{RAdeg: 0, DecDeg: 0},
		{RAdeg: 180, DecDeg: 0},
		{RAdeg: 90, DecDeg: 89.9},
		{RAdeg: 270, DecDeg: -89.9},
		{RAdeg: 45, DecDeg: 45},
	}
	for _, mode := range []Mode{ModePerspective, ModeStereographic} {
		for _, fov := range []float64{MinFOVDeg, 90, MaxFOVDeg} {
			for heading := 0.0; heading < 360; heading += 45 {
				for _, pitch := range []float64{-85, 0, 85} {
					p := New(NewOrientation(heading, pitch), fov, testSize, mode)
					for _, eq := range targets {
						pt := p.ProjectCoord(eq)
						if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
							t.Fatalf("NaN at mode=%v fov=%v heading=%v pitch=%v target=%+v",
								mode, fov, heading, pitch, eq)
						}
					}
				}
			}
		}
	}
}

func TestFOVClampedOnConstruction(t *testing.T) {
	p := New(NewOrientation(0, 0), 500, testSize, ModePerspective)
	if p.FOVDeg() != MaxFOVDeg {
		t.Errorf("FOVDeg() = %v, want %v", p.FOVDeg(), MaxFOVDeg)
	}
}

func TestModeString(t *testing.T) {
	if ModePerspective.String() != "perspective" {
		t.Errorf("ModePerspective.String() = %q", ModePerspective.String())
	}
	if ModeStereographic.String() != "stereographic" {
		t.Errorf("ModeStereographic.String() = %q", ModeStereographic.String())
	}
}
