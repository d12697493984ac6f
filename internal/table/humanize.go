package table

import (
	"strings"
	"unicode"
)

// Humanize turns a snake_case field name into a display label: underscores
// become spaces and each word is title-cased ("avg_grid_pos" → "Avg Grid
// Pos", "q1_position" → "Q1 Position").
func Humanize(name string) string {
	return titleCase(strings.ReplaceAll(name, "_", " "))
}

// HumanizeGP is Humanize plus the domain fix for the "Gp" abbreviation
// ("total_gp_points" → "Total GP Points").
func HumanizeGP(name string) string {
	return strings.ReplaceAll(Humanize(name), "Gp", "GP")
}

// HumanizeColumns relabels every column with the given humanizer.
func (t *Table) HumanizeColumns(humanize func(string) string) *Table {
	mapping := make(map[string]string, len(t.Columns))
	for _, c := range t.Columns {
		if h := humanize(c); h != c {
			mapping[c] = h
		}
	}
	return t.Rename(mapping)
}

// titleCase upper-cases each letter that follows a non-letter and
// lower-cases the rest, digits passing through untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
