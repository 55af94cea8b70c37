package roi

import (
	"gopkg.in/guregu/null.v3"
)

// Location ties an artery's abbreviation to the class ID used by the
// segmentation head. Class 0 is reserved for background, so the four arteries
// occupy 1 through 4.
type Location struct {
	Abbreviation string
	ClassID      int
}

// LocationMap keys the full artery location name, as it appears in the
// annotation store, to its Location.
type LocationMap map[string]Location

var arteryLocations = LocationMap{
	"Left Anterior Descending Artery": {Abbreviation: "LAD", ClassID: 1},
	"Right Coronary Artery":           {Abbreviation: "RCA", ClassID: 2},
	"Left Circumflex Artery":          {Abbreviation: "LCX", ClassID: 3},
	"Left Coronary Artery":            {Abbreviation: "LCA", ClassID: 4},
}

// Locations returns a copy of the artery location registry.
func Locations() LocationMap {
	out := make(LocationMap, len(arteryLocations))
	for k, v := range arteryLocations {
		out[k] = v
	}

	return out
}

// ArteryLocToAbbr converts a full artery location name to its 3-letter
// abbreviation. Names outside the four known arteries yield an invalid
// null.String rather than an error, since unannotated location strings are
// routine in the upstream metadata.
func ArteryLocToAbbr(full string) null.String {
	loc, ok := arteryLocations[full]
	if !ok {
		return null.NewString("", false)
	}

	return null.StringFrom(loc.Abbreviation)
}

// AbbrToArteryLoc is the inverse of ArteryLocToAbbr.
func AbbrToArteryLoc(abbr string) null.String {
	for full, loc := range arteryLocations {
		if loc.Abbreviation == abbr {
			return null.StringFrom(full)
		}
	}

	return null.NewString("", false)
}

// AbbrClassID maps an abbreviation to its segmentation class ID. Unknown
// abbreviations map to 0, the background class, which is the documented
// default rather than an error.
func AbbrClassID(abbr string) int {
	for _, loc := range arteryLocations {
		if loc.Abbreviation == abbr {
			return loc.ClassID
		}
	}

	return 0
}

// Valid ensures the map is bijective in both the abbreviations and the class
// IDs, and that no artery claims the background class.
func (l LocationMap) Valid() bool {
	abbrs := make(map[string]struct{}, len(l))
	classes := make(map[int]struct{}, len(l))

	for _, loc := range l {
		if loc.ClassID == 0 {
			return false
		}

		abbrs[loc.Abbreviation] = struct{}{}
		classes[loc.ClassID] = struct{}{}
	}

	return len(abbrs) == len(l) && len(classes) == len(l)
}
