package postgres

import "strings"

// Returning builds a RETURNING clause for squirrel's Suffix.
func Returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// NullIfEmpty maps "" to NULL for nullable text columns.
func NullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Qualify prefixes each column with table.
func Qualify(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ContainsPattern turns free text into an ILIKE pattern matching it anywhere,
// with LIKE wildcards in the input taken literally.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
