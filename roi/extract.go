package roi

import (
	"errors"
	"fmt"
)

// ErrIndexNotFound reports that no annotation record carries the requested
// image index. Callers must be able to tell absence apart from a record that
// exists but has no geometry, so this is never returned for an empty record.
var ErrIndexNotFound = errors.New("roi: image index not found")

// ErrDuplicateIndex reports that more than one annotation record carries the
// requested image index. Upstream annotation exports are supposed to emit one
// record per image; picking the first match would silently mask that
// integrity bug, so duplicates are surfaced instead.
var ErrDuplicateIndex = errors.New("roi: duplicate image index")

// ExtractBinary returns the position list of the record whose index equals
// idx. A record with no positions yields an empty, non-nil slice.
func ExtractBinary(records []BinaryRecord, idx int) ([]Point, error) {
	var found *BinaryRecord

	for i := range records {
		if records[i].Index != idx {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}

		found = &records[i]
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %d", ErrIndexNotFound, idx)
	}

	out := make([]Point, len(found.Points))
	copy(out, found.Points)

	return out, nil
}

// ExtractMulticlass returns one labeled point per position in every region of
// the record whose index equals idx, flattening the nested per-region
// geometry. Region order and within-region point order are preserved. A
// record with no regions yields an empty, non-nil slice.
func ExtractMulticlass(records []MulticlassRecord, idx int) ([]LabeledPoint, error) {
	var found *MulticlassRecord

	for i := range records {
		if records[i].Index != idx {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}

		found = &records[i]
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %d", ErrIndexNotFound, idx)
	}

	out := make([]LabeledPoint, 0, len(found.Regions))
	for _, region := range found.Regions {
		for _, pt := range region.Points {
			out = append(out, LabeledPoint{X: pt.X, Y: pt.Y, Location: region.Location})
		}
	}

	return out, nil
}
