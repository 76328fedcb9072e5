package filter

import (
	"strings"

	"github.com/jmtoutdoors/vallas/internal/models"
)

// Matches reports whether a record satisfies every constrained
// dimension of the criteria. An unconstrained dimension always
// matches, so the empty criteria is the identity filter.
//
// Free-text dimensions (code, format, width, height) use substring
// matching to tolerate partial input; closed-option dimensions
// (element, district, type, department) require exact equality
// because the form presents them as selectors.
func Matches(b models.Billboard, c models.Criteria) bool {
	return containsFold(b.Code, c.Code) &&
		matchExact(b.Element, c.Element) &&
		matchExact(b.District, c.District) &&
		matchExact(b.Type, c.Type) &&
		matchExact(b.Department, c.Department) &&
		containsFold(b.Format, c.Format) &&
		strings.Contains(b.Width, c.Width) &&
		strings.Contains(b.Height, c.Height)
}

// Apply evaluates the criteria against every record, preserving store
// order. The result is a fresh slice; the input is never modified.
func Apply(records []models.Billboard, c models.Criteria) []models.Billboard {
	matched := make([]models.Billboard, 0, len(records))
	for _, b := range records {
		if Matches(b, c) {
			matched = append(matched, b)
		}
	}
	return matched
}

// containsFold is a case-insensitive substring check. An empty
// pattern matches everything, including an empty value.
func containsFold(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

// matchExact requires string equality unless the pattern is empty.
func matchExact(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return value == pattern
}
