package astro

import (
	"errors"
	"math"
	"time"
)

// VisibilityWindow represents a rise-transit-set cycle for an object.
type VisibilityWindow struct {
	Rise          time.Time // Time object rises above the horizon
	Transit       time.Time // Time of highest elevation
	Set           time.Time // Time object sets below the horizon
	MaxElevation  float64   // Peak elevation in degrees
	Valid         bool      // Whether a valid window was found
	AlwaysVisible bool      // Object never sets (circumpolar)
	NeverVisible  bool      // Object never rises
}

// MinElevation is the threshold for considering an object "visible".
const MinElevation = 0.0

// ErrEmptyWindow is returned when the scan interval is not positive.
var ErrEmptyWindow = errors.New("visibility scan interval must be positive")

// visibilityStep is the elevation sampling interval for horizon crossings.
// Fixed catalog coordinates change elevation slowly (sidereal rate), so
// five-minute samples with linear interpolation are well within a minute
// of the true crossing.
const visibilityStep = 5 * time.Minute

// RiseSet computes rise, transit, and set times for a fixed equatorial
// coordinate over the 24 hours following start, as seen by obs.
// Circumpolar objects report AlwaysVisible with their transit; objects
// that stay below the horizon report NeverVisible.
func RiseSet(eq Equatorial, obs Observer, start time.Time) (VisibilityWindow, error) {
	return riseSetScan(eq, obs, start, 24*time.Hour, visibilityStep)
}

func riseSetScan(eq Equatorial, obs Observer, start time.Time, span, step time.Duration) (VisibilityWindow, error) {
	if step <= 0 {
		return VisibilityWindow{}, ErrEmptyWindow
	}

	type elSample struct {
		t     time.Time
		elDeg float64
	}

	n := int(span/step) + 1
	samples := make([]elSample, 0, n)

	minEl, maxEl := 90.0, -90.0
	maxIdx := 0
	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * step)
		el := EquatorialToHorizontal(eq, obs, t).ElDeg
		samples = append(samples, elSample{t: t, elDeg: el})
		if el < minEl {
			minEl = el
		}
		if el > maxEl {
			maxEl = el
			maxIdx = i
		}
	}

	if minEl > MinElevation {
		return VisibilityWindow{
			Transit:       samples[maxIdx].t,
			MaxElevation:  maxEl,
			Valid:         true,
			AlwaysVisible: true,
		}, nil
	}
	if maxEl < MinElevation {
		return VisibilityWindow{
			Valid:        true,
			NeverVisible: true,
		}, nil
	}

	// First upward crossing
	var rise time.Time
	riseFound := false
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.elDeg <= MinElevation && curr.elDeg > MinElevation {
			rise = interpolateCrossing(prev.t, curr.t, prev.elDeg, curr.elDeg, MinElevation)
			riseFound = true
			break
		}
	}

	// First downward crossing after the rise (or from the start, if the
	// object was already up)
	var set time.Time
	setFound := false
	startIdx := 0
	if riseFound {
		for i, s := range samples {
			if !s.t.Before(rise) {
				startIdx = i
				break
			}
		}
	}
	for i := startIdx + 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.elDeg > MinElevation && curr.elDeg <= MinElevation {
			set = interpolateCrossing(prev.t, curr.t, prev.elDeg, curr.elDeg, MinElevation)
			setFound = true
			break
		}
	}

	alreadyUp := samples[0].elDeg > MinElevation

	return VisibilityWindow{
		Rise:         rise, // zero when the object was already up at start
		Transit:      samples[maxIdx].t,
		Set:          set,
		MaxElevation: maxEl,
		Valid:        riseFound || setFound || alreadyUp,
	}, nil
}

// interpolateCrossing finds the time when elevation crosses a threshold,
// assuming linear change between the two samples.
func interpolateCrossing(t1, t2 time.Time, el1, el2, threshold float64) time.Time {
	if math.Abs(el2-el1) < 0.0001 {
		return t1
	}

	fraction := clamp((threshold-el1)/(el2-el1), 0, 1)
	dt := t2.Sub(t1)
	return t1.Add(time.Duration(float64(dt) * fraction))
}

// CurrentElevation computes the elevation of a coordinate at a given time.
func CurrentElevation(eq Equatorial, obs Observer, t time.Time) float64 {
	return EquatorialToHorizontal(eq, obs, t).ElDeg
}

// ElevationTier categorizes elevation for display.
type ElevationTier int

const (
	ElevationNone   ElevationTier = iota // Below horizon
	ElevationLow                         // 0-15 degrees
	ElevationMedium                      // 15-45 degrees
	ElevationHigh                        // 45+ degrees
)

// GetElevationTier returns the tier for a given elevation.
func GetElevationTier(elDeg float64) ElevationTier {
	switch {
	case elDeg <= 0:
		return ElevationNone
	case elDeg < 15:
		return ElevationLow
	case elDeg < 45:
		return ElevationMedium
	default:
		return ElevationHigh
	}
}
