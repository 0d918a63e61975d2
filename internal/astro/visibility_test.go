package astro

import (
	"testing"
	"time"
)

var testStart = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestRiseSetCircumpolar(t *testing.T) {
	// Polaris from London never sets.
	polaris := Equatorial{RAdeg: 37.95, DecDeg: 89.26}
	obs := Observer{LatDeg: 51.48, LonDeg: 0}

	w, err := RiseSet(polaris, obs, testStart)
	if err != nil {
		t.Fatalf("RiseSet() error: %v", err)
	}
	if !w.Valid {
		t.Fatal("window not valid")
	}
	if !w.AlwaysVisible {
		t.Error("Polaris from London should be circumpolar")
	}
	if w.NeverVisible {
		t.Error("circumpolar object reported never visible")
	}
	if w.MaxElevation < 50 || w.MaxElevation > 53 {
		t.Errorf("MaxElevation = %v, want near site latitude", w.MaxElevation)
	}
}

func TestRiseSetNeverVisible(t *testing.T) {
	// The south celestial pole region never rises over London.
	southern := Equatorial{RAdeg: 100, DecDeg: -85}
	obs := Observer{LatDeg: 51.48, LonDeg: 0}

	w, err := RiseSet(southern, obs, testStart)
	if err != nil {
		t.Fatalf("RiseSet() error: %v", err)
	}
	if !w.Valid {
		t.Fatal("window not valid")
	}
	if !w.NeverVisible {
		t.Error("dec -85 from lat +51 should never rise")
	}
	if w.AlwaysVisible {
		t.Error("never-visible object reported circumpolar")
	}
}

func TestRiseSetEquatorialObject(t *testing.T) {
	// An equatorial object from a mid-latitude site rises and sets once a
	// sidereal day, peaking at 90 minus the latitude.
	eq := Equatorial{RAdeg: 150, DecDeg: 0}
	obs := Observer{LatDeg: 40, LonDeg: -70}

	w, err := RiseSet(eq, obs, testStart)
	if err != nil {
		t.Fatalf("RiseSet() error: %v", err)
	}
	if !w.Valid {
		t.Fatal("window not valid")
	}
	if w.AlwaysVisible || w.NeverVisible {
		t.Fatalf("expected a rise/set cycle, got %+v", w)
	}
	if w.MaxElevation < 48 || w.MaxElevation > 52 {
		t.Errorf("MaxElevation = %v, want ~50", w.MaxElevation)
	}

	// The set must follow the rise when both fall inside the scan span.
	if !w.Rise.IsZero() && !w.Set.IsZero() && w.Set.Before(w.Rise) {
		// Already-up objects legitimately set before their next rise;
		// here the rise was found first, so ordering must hold.
		if w.Rise.After(testStart) {
			t.Errorf("Set %v before Rise %v", w.Set, w.Rise)
		}
	}

	// About 12 hours above the horizon for dec 0.
	if !w.Rise.IsZero() && !w.Set.IsZero() && w.Set.After(w.Rise) {
		up := w.Set.Sub(w.Rise)
		if up < 11*time.Hour || up > 13*time.Hour {
			t.Errorf("time above horizon = %v, want ~12h", up)
		}
	}
}

func TestRiseSetZeroStep(t *testing.T) {
	eq := Equatorial{RAdeg: 0, DecDeg: 0}
	obs := Observer{LatDeg: 0, LonDeg: 0}
	if _, err := riseSetScan(eq, obs, testStart, 24*time.Hour, 0); err != ErrEmptyWindow {
		t.Errorf("expected ErrEmptyWindow, got %v", err)
	}
}

func TestInterpolateCrossing(t *testing.T) {
	t1 := testStart
	t2 := testStart.Add(10 * time.Minute)

	// Elevation goes -5 to +5: crossing is exactly halfway.
	cross := interpolateCrossing(t1, t2, -5, 5, 0)
	want := testStart.Add(5 * time.Minute)
	if cross != want {
		t.Errorf("interpolateCrossing() = %v, want %v", cross, want)
	}

	// Flat segment falls back to the first sample.
	if got := interpolateCrossing(t1, t2, 1, 1, 0); got != t1 {
		t.Errorf("flat crossing = %v, want %v", got, t1)
	}
}

func TestGetElevationTier(t *testing.T) {
	tests := []struct {
		el       float64
		expected ElevationTier
	}{
		{-10, ElevationNone},
		{0, ElevationNone},
		{5, ElevationLow},
		{20, ElevationMedium},
		{60, ElevationHigh},
	}

	for _, tt := range tests {
		if got := GetElevationTier(tt.el); got != tt.expected {
			t.Errorf("GetElevationTier(%v) = %v, want %v", tt.el, got, tt.expected)
		}
	}
}
