package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"star-barista/internal/domain"
	"star-barista/internal/menu"
)

// DefaultCutoff mirrors difflib-style close matching: candidates scoring
// below it are treated as no match at all.
const DefaultCutoff = 0.6

// Matcher does nearest-neighbor lookup over menu item names by normalized
// edit-distance similarity.
type Matcher struct {
	catalog *menu.Catalog
	cutoff  float64
}

func NewMatcher(catalog *menu.Catalog) *Matcher {
	return &Matcher{catalog: catalog, cutoff: DefaultCutoff}
}

// Find returns the closest catalog item for query, if its similarity is at
// least the cutoff. Ties keep the earliest item in menu order.
func (m *Matcher) Find(query string) (domain.MenuItem, bool) {
	query = strings.ToLower(query)

	var best domain.MenuItem
	bestScore := 0.0
	for _, item := range m.catalog.Items() {
		score := Ratio(query, strings.ToLower(item.Name))
		if score > bestScore {
			best = item
			bestScore = score
		}
	}
	if bestScore < m.cutoff {
		return domain.MenuItem{}, false
	}
	return best, true
}

// Ratio is 1 - dist/maxLen on a 0..1 scale; 1 means equal strings.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
