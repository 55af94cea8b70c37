package coca

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// PatientIDWidth is the fixed width of a zero-padded patient identifier.
const PatientIDWidth = 3

// GenerateRange produces the ordered sequence of zero-padded patient IDs from
// min to max inclusive. A min greater than max yields an empty cohort rather
// than an error, since an empty request is a legitimate (if useless) range.
// Values that cannot be represented in 3 digits are an error: silently
// truncating them would hand back IDs that collide with other patients.
func GenerateRange(min, max int) ([]string, error) {
	if min < 0 || min > 999 || max > 999 {
		return nil, pfx.Err(fmt.Errorf("patient IDs are fixed at %d digits; range %d-%d cannot be represented", PatientIDWidth, min, max))
	}

	if min > max {
		return []string{}, nil
	}

	out := make([]string, 0, max-min+1)
	for i := min; i <= max; i++ {
		out = append(out, fmt.Sprintf("%03d", i))
	}

	return out, nil
}

// FilteredRange generates the candidate range and removes every blacklisted
// patient. Since the IDs are zero-padded to a fixed width, the generation
// order is already lexicographic (and therefore numeric) order, so the result
// stays sorted without a separate pass.
func FilteredRange(min, max int) ([]string, error) {
	candidates, err := GenerateRange(min, max)
	if err != nil {
		return nil, err
	}

	excluded := AllBlacklisted()

	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if _, bad := excluded[id]; bad {
			continue
		}

		out = append(out, id)
	}

	return out, nil
}
