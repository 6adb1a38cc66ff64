// Package region maps countries and free-text region labels onto the
// canonical macro-regions used by the aggregation stages.
package region

import "strings"

// countryRegions is the static country -> macro-region table. It is
// never mutated after init; ForCountry is a pure lookup.
var countryRegions = map[string]string{
	"china":                "Asia Pacific",
	"japan":                "Asia Pacific",
	"south korea":          "Asia Pacific",
	"singapore":            "Asia Pacific",
	"india":                "Asia Pacific",
	"australia":            "Asia Pacific",
	"vietnam":              "Asia Pacific",
	"thailand":             "Asia Pacific",
	"indonesia":            "Asia Pacific",
	"malaysia":             "Asia Pacific",
	"taiwan":               "Asia Pacific",
	"philippines":          "Asia Pacific",
	"united states":        "North America",
	"canada":               "North America",
	"mexico":               "North America",
	"germany":              "Europe",
	"netherlands":          "Europe",
	"united kingdom":       "Europe",
	"france":               "Europe",
	"belgium":              "Europe",
	"spain":                "Europe",
	"italy":                "Europe",
	"greece":               "Europe",
	"poland":               "Europe",
	"brazil":               "South America",
	"argentina":            "South America",
	"chile":                "South America",
	"peru":                 "South America",
	"colombia":             "South America",
	"panama":               "Central America",
	"united arab emirates": "Middle East",
	"saudi arabia":         "Middle East",
	"qatar":                "Middle East",
	"oman":                 "Middle East",
	"egypt":                "Middle East",
	"turkey":               "Middle East",
	"south africa":         "Africa",
	"nigeria":              "Africa",
	"kenya":                "Africa",
	"morocco":              "Africa",
	"djibouti":             "Africa",
}

// RegionOther is returned for countries with no table entry.
const RegionOther = "Other"

// RegionGlobal is returned when a free-text label matches no candidate.
const RegionGlobal = "Global"

// ForCountry returns the macro-region for a country name. Unmapped
// countries fall back to "Other" rather than failing.
func ForCountry(country string) string {
	if r, ok := countryRegions[strings.ToLower(strings.TrimSpace(country))]; ok {
		return r
	}
	return RegionOther
}

// Match resolves a free-text region label ("South China Sea",
// "european waters") against a list of candidate region names using a
// case-insensitive bidirectional substring match. Candidates are
// checked in slice order, so callers pass them sorted when they need a
// deterministic result. Returns "Global" when nothing matches.
func Match(label string, candidates []string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return RegionGlobal
	}
	for _, candidate := range candidates {
		c := strings.ToLower(candidate)
		if strings.Contains(l, c) || strings.Contains(c, l) {
			return candidate
		}
	}
	return RegionGlobal
}

// Known reports whether a country has an explicit region mapping.
// Callers use this to flag "Other" assignments instead of guessing.
func Known(country string) bool {
	_, ok := countryRegions[strings.ToLower(strings.TrimSpace(country))]
	return ok
}
