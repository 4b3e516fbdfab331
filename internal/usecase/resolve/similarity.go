package resolve

import (
	"strings"

	"github.com/carelens/carematch/internal/normalize"
)

// substringScore is the fixed score when one normalized name contains the other.
const substringScore = 0.8

// NameSimilarity scores two facility names in [0, 1]. Identical normalized
// strings score 1.0, a substring relation scores 0.8, anything else scores
// the Jaccard similarity of the whitespace-tokenized word sets. Symmetric.
func NameSimilarity(a, b string) float64 {
	na, nb := normalize.Text(a), normalize.Text(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return substringScore
	}
	return jaccard(normalize.Tokens(na), normalize.Tokens(nb))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
