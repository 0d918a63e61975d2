package astro

// Site identifies a preset observing location.
type Site string

const (
	SiteGreenwich    Site = "greenwich"
	SiteMaunaKea     Site = "maunakea"
	SiteParanal      Site = "paranal"
	SiteSidingSpring Site = "sidingspring"
)

// KnownSites maps preset site keys to observer locations.
var KnownSites = map[Site]Observer{
	SiteGreenwich:    {LatDeg: 51.477, LonDeg: -0.001, Name: "Royal Observatory Greenwich"},
	SiteMaunaKea:     {LatDeg: 19.820, LonDeg: -155.468, Name: "Mauna Kea"},
	SiteParanal:      {LatDeg: -24.627, LonDeg: -70.404, Name: "Paranal"},
	SiteSidingSpring: {LatDeg: -31.272, LonDeg: 149.062, Name: "Siding Spring"},
}

// ObserverForSite returns the observer for a preset site key.
// Unknown keys default to Greenwich.
func ObserverForSite(s Site) Observer {
	obs, ok := KnownSites[s]
	if !ok {
		return KnownSites[SiteGreenwich]
	}
	return obs
}
