package scoring

import "strings"

// Regulator rating labels, matched case-insensitively.
const (
	ratingOutstanding = "outstanding"
	ratingGood        = "good"
	ratingRequires    = "requires improvement"
	ratingInadequate  = "inadequate"
)

// ratingPoints maps a four-level rating label to a point value via
// case-insensitive exact match. Unrecognized or absent labels score zero.
func ratingPoints(label *string, outstanding, good, requires float64) float64 {
	if label == nil {
		return 0
	}
	switch strings.ToLower(strings.TrimSpace(*label)) {
	case ratingOutstanding:
		return outstanding
	case ratingGood:
		return good
	case ratingRequires:
		return requires
	case ratingInadequate:
		return 0
	default:
		return 0
	}
}
