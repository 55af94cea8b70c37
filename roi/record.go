// Package roi extracts trainable geometry from the per-image region-of-
// interest annotations that accompany the calcification CT scans. The
// annotation store is JSON; each image index carries either a flat position
// list (binary segmentation) or a list of labeled sub-regions (multiclass).
package roi

// Point is one annotated pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is a contiguous calcification annotation within one image, labeled
// with the full artery location name.
type Region struct {
	Location string  `json:"loc"`
	Points   []Point `json:"pos"`
}

// BinaryRecord is the annotation for one image in the binary task: geometry
// only, no artery labels.
type BinaryRecord struct {
	Index  int     `json:"idx"`
	Points []Point `json:"pos"`
}

// MulticlassRecord is the annotation for one image in the multiclass task,
// with the location nested inside each region.
type MulticlassRecord struct {
	Index   int      `json:"idx"`
	Regions []Region `json:"roi"`
}

// LabeledPoint is one annotated pixel with its region's artery location
// attached, the flattened form the multiclass label builder consumes.
type LabeledPoint struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Location string `json:"loc"`
}
