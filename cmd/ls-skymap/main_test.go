package main

import (
	"math"
	"testing"
)

func TestHeadlessSize(t *testing.T) {
	origW, origH := skyWidth, skyHeight
	defer func() { skyWidth, skyHeight = origW, origH }()

	skyWidth, skyHeight = 120, 40
	size := headlessSize()
	if size.Width != 120 || size.Height != 40 {
		t.Errorf("headlessSize() = %vx%v, want 120x40", size.Width, size.Height)
	}
}

func TestResolveObserver(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		lat, lon float64
		wantLat  float64
		wantLon  float64
	}{
		{
			name: "site only",
			site: "maunakea", lat: 91, lon: 181,
			wantLat: 19.820, wantLon: -155.468,
		},
		{
			name: "explicit coordinates override the site",
			site: "greenwich", lat: 40.0, lon: -74.0,
			wantLat: 40.0, wantLon: -74.0,
		},
		{
			name: "latitude alone overrides",
			site: "greenwich", lat: -30, lon: 181,
			wantLat: -30, wantLon: -0.001,
		},
		{
			name: "unknown site falls back to greenwich",
			site: "atlantis", lat: 91, lon: 181,
			wantLat: 51.477, wantLon: -0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := resolveObserver(tt.site, tt.lat, tt.lon)
			if math.Abs(obs.LatDeg-tt.wantLat) > 1e-9 {
				t.Errorf("LatDeg = %v, want %v", obs.LatDeg, tt.wantLat)
			}
			if math.Abs(obs.LonDeg-tt.wantLon) > 1e-9 {
				t.Errorf("LonDeg = %v, want %v", obs.LonDeg, tt.wantLon)
			}
		})
	}
}
