package auction

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize collapses whitespace runs in name to single spaces, trims it and
// converts it to title case.
func Normalize(name string) string {
	// a Caser keeps state between calls, so one per call
	return cases.Title(language.Und).String(strings.Join(strings.Fields(name), " "))
}
