package readstore

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in free text before it is
// embedded in a pattern, so user input can never change the pattern's shape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsPattern builds a case-insensitive substring pattern from free text.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}
