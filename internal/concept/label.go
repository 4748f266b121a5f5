package concept

import (
	"regexp"
	"strings"
)

var (
	// Splits an acronym run from a following capitalized word ("SGAExpense"
	// -> "SGA Expense") without exploding the run letter by letter.
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([A-Z][a-z]+)`)
)

// HumanLabel converts a PascalCase XBRL concept name into a readable label,
// keeping acronym sequences glued together.
func HumanLabel(name string) string {
	s := acronymBoundary.ReplaceAllString(name, "$1 $2")
	s = wordBoundary.ReplaceAllString(s, " $1")
	return strings.Join(strings.Fields(s), " ")
}
