package twitter

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newFolder returns the caser used to compare authors and words without
// regard to case. Casers carry state, so each call gets its own.
func newFolder() cases.Caser {
	return cases.Fold()
}

// newLowerer returns the caser producing the lowercase form stored in
// Usernames.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}

// Fold returns the case-folded form of s. Two strings are equal ignoring
// case when their folded forms are equal.
func Fold(s string) string {
	return newFolder().String(s)
}
