// Package coca builds reproducible patient cohorts for the coronary artery
// calcification segmentation pipeline. It knows which patients are excluded
// for data-quality reasons, generates the candidate ID range, and partitions
// the surviving cohort into train/test/val under a fixed seed.
package coca

// Each blacklist names one data-quality reason for dropping a patient from
// the cohort. A patient may appear in more than one list. These are fixed at
// compile time; the accessors below hand out copies so callers cannot mutate
// the registry.
var (
	// ROI pixels were annotated as floats and truncated to ints, distorting
	// the surface area enough to corrupt the Agatston score for these scans.
	pixelOverlapBlacklist = []string{"004", "099", "102", "121"}

	// ROI present but carries no artery location label.
	mislabeledROIBlacklist = []string{"013", "135", "270"}

	// More than one scan series, each carrying its own ROI labels, with no
	// way to tell which series the annotations belong to.
	multiImageWithROIBlacklist = []string{"038", "061", "400"}

	// More than one scan series in general.
	multiImageBlacklist = []string{"038", "061", "212", "400"}

	// Image payload present but unreadable.
	invalidImageBlacklist = []string{"159"}

	// No image on record at all.
	missingImageBlacklist = []string{"309"}
)

// PixelOverlapBlacklist returns the patients whose ROI surface area was
// distorted by float-to-int pixel rounding.
func PixelOverlapBlacklist() []string {
	return copyIDs(pixelOverlapBlacklist)
}

// MislabeledROIBlacklist returns the patients whose ROI has no artery
// location.
func MislabeledROIBlacklist() []string {
	return copyIDs(mislabeledROIBlacklist)
}

// MultiImageWithROIBlacklist returns the patients with multiple labeled scan
// series.
func MultiImageWithROIBlacklist() []string {
	return copyIDs(multiImageWithROIBlacklist)
}

// MultiImageBlacklist returns the patients with multiple scan series.
func MultiImageBlacklist() []string {
	return copyIDs(multiImageBlacklist)
}

// InvalidImageBlacklist returns the patients with a corrupt image payload.
func InvalidImageBlacklist() []string {
	return copyIDs(invalidImageBlacklist)
}

// MissingImageBlacklist returns the patients with no image on record.
func MissingImageBlacklist() []string {
	return copyIDs(missingImageBlacklist)
}

// AllBlacklisted returns the union of every exclusion list as a set.
func AllBlacklisted() map[string]struct{} {
	out := make(map[string]struct{})

	for _, list := range [][]string{
		pixelOverlapBlacklist,
		mislabeledROIBlacklist,
		multiImageWithROIBlacklist,
		multiImageBlacklist,
		invalidImageBlacklist,
		missingImageBlacklist,
	} {
		for _, id := range list {
			out[id] = struct{}{}
		}
	}

	return out
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}
