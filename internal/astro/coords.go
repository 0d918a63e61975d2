package astro

import (
	"math"
	"time"
)

// Axis convention, used everywhere in this module:
//
//	x = cos(dec)·cos(ra)
//	y = cos(dec)·sin(ra)
//	z = sin(dec)
//
// +Z is the north celestial pole, +X points at RA=0 on the equator.
// Right ascension is degrees in [0,360) throughout the public API; call
// sites holding hours convert at the boundary with HoursToDeg.

// Equatorial represents J2000 equatorial coordinates in degrees.
type Equatorial struct {
	RAdeg  float64 // Right Ascension (0-360)
	DecDeg float64 // Declination (-90 to +90)
}

// Horizontal represents observer-relative horizontal coordinates in degrees.
type Horizontal struct {
	AzDeg float64 // Azimuth (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Direction returns the unit vector for the coordinate under the module's
// axis convention. The result always has magnitude 1.
func (e Equatorial) Direction() Vec3 {
	ra := degToRad(e.RAdeg)
	dec := degToRad(e.DecDeg)
	return Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// EquatorialFromDirection inverts Direction for a unit vector:
// dec = asin(z), ra = atan2(y, x) normalized to [0,360).
// At the exact poles RA is undefined and comes back as 0; this is a known
// degeneracy of the spherical chart, not an error.
func EquatorialFromDirection(v Vec3) Equatorial {
	dec := math.Asin(clamp(v.Z, -1, 1))
	ra := math.Atan2(v.Y, v.X)
	return Equatorial{
		RAdeg:  normalizeAngle360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}

// HoursToDeg converts right ascension hours to degrees.
func HoursToDeg(hours float64) float64 {
	return hours * 15
}

// DegToHours converts right ascension degrees to hours.
func DegToHours(deg float64) float64 {
	return deg / 15
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for a given observer and time.
// Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Elevation: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	lat := degToRad(obs.LatDeg)
	ra := degToRad(eq.RAdeg)
	dec := degToRad(eq.DecDeg)

	lst := LocalSiderealTime(t, obs.LonDeg)
	ha := degToRad(lst) - ra

	// Altitude
	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	// Azimuth; cos clamped to absorb floating-point drift
	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))

	// Positive hour angle puts the object west of south
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AzDeg: radToDeg(az),
		ElDeg: radToDeg(alt),
	}
}

// Zenith returns the equatorial coordinate directly overhead for an
// observer at a given time: RA equals the local sidereal time, Dec equals
// the latitude.
func Zenith(obs Observer, t time.Time) Equatorial {
	return Equatorial{
		RAdeg:  LocalSiderealTime(t, obs.LonDeg),
		DecDeg: clamp(obs.LatDeg, -90, 90),
	}
}

// LocalSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(GreenwichMeanSiderealTime(t) + lonDeg)
}

// GreenwichMeanSiderealTime calculates GMST in degrees for a given UTC time
// using the IAU 1982 formula based on Julian Date.
func GreenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// AngularSeparation calculates the great-circle separation between two
// points on the celestial sphere. All values in degrees.
func AngularSeparation(a, b Equatorial) float64 {
	ra1 := degToRad(a.RAdeg)
	dec1 := degToRad(a.DecDeg)
	ra2 := degToRad(b.RAdeg)
	dec2 := degToRad(b.DecDeg)

	// Haversine form, stable for small separations
	dRA := ra2 - ra1
	dDec := dec2 - dec1

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)

	return radToDeg(2 * math.Asin(math.Sqrt(clamp(h, 0, 1))))
}

// normalizeAngle360 normalizes an angle to [0,360).
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// clamp limits v to [lo,hi]. Applied ahead of every inverse-trig call so
// dot products a hair outside [-1,1] never produce NaN.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
