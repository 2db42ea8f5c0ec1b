package catalog

import (
	"github.com/amaumene/gostremioccc/internal/constants"
)

// NearestQuality maps a recording's pixel height to the nearest rung of the
// quality ladder. Exact ties resolve to the earlier ladder entry. An empty
// ladder is a programmer error.
func NearestQuality(height int, ladder []constants.QualityLevel) string {
	if len(ladder) == 0 {
		panic("catalog: empty quality ladder")
	}

	best := ladder[0]
	for _, level := range ladder[1:] {
		if abs(height-level.Height) < abs(height-best.Height) {
			best = level
		}
	}

	return best.Label
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
