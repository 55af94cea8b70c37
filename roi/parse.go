package roi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// StringToIntTuple parses a coordinate string of the form "(10012.4,
// 20032.9)" from the annotation export into integers. Each component is
// truncated toward zero, not rounded, to match the pixel indexing of the
// label rasterizer. Any segment that does not parse as a float is an error;
// the export format has no empty-coordinate case, so a malformed segment
// always means corrupt input.
func StringToIntTuple(s string) ([]int, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("coordinate segment %q is not numeric: %w", part, err))
		}

		out = append(out, int(f))
	}

	return out, nil
}
