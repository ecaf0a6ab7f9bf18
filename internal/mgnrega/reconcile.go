package mgnrega

import (
	"regexp"
	"strings"
)

var (
	// Everything outside ASCII letters, digits, space and the Devanagari
	// block is noise as far as matching goes.
	nameNoise = regexp.MustCompile(`[^a-z0-9\x{0900}-\x{097F} ]+`)
	// "Kanpur Nagar District", "Lucknow Zila" and friends should match
	// their bare names.
	nameStop = regexp.MustCompile(`\b(district|zila|jila)\b`)
)

// NormalizeName reduces a place name to its comparable core: lowercase,
// noise characters stripped, the standalone words district/zila/jila
// removed, whitespace trimmed.
func NormalizeName(s string) string {
	s = strings.ToLower(s)
	s = nameNoise.ReplaceAllString(s, "")
	s = nameStop.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Reconciler maps free-text place names from geocoding onto the canonical
// district names held in the registry for one state.
type Reconciler struct {
	store *Store
	state string
}

func NewReconciler(store *Store, state string) *Reconciler {
	return &Reconciler{store: store, state: state}
}

// Resolve returns the canonical district name matching candidate, or the
// raw candidate unchanged when nothing matches. Canonical names are scanned
// in registry order (lexicographic) and the first whose normalized form is
// equal to, a superstring of, or a substring of the normalized candidate
// wins. There is no scoring; ties go to whichever name sorts first.
func (r *Reconciler) Resolve(candidate string) (name string, matched bool, err error) {
	candNorm := NormalizeName(candidate)

	names, err := r.store.ListDistrictNames(r.state)
	if err != nil {
		return "", false, err
	}

	for _, n := range names {
		nNorm := NormalizeName(n)
		if nNorm == "" {
			continue
		}
		if nNorm == candNorm || strings.Contains(nNorm, candNorm) || strings.Contains(candNorm, nNorm) {
			return n, true, nil
		}
	}

	return candidate, false, nil
}
