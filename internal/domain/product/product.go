package product

import "strings"

// Matching against the catalog is exact on the normalized display name,
// never fuzzy. Normalize is the single definition of "same name" used on
// both sides of the lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DedupeNormalized maps free-text line names to the distinct set of normalized
// names, preserving first-seen order. Empty names are dropped. One catalog
// lookup per distinct name bounds query fan-out on large receipts.
func DedupeNormalized(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		norm := Normalize(n)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}
