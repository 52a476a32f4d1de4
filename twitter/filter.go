package twitter

import (
	"strings"
	"unicode"
)

// WrittenBy returns the posts whose author is username, ignoring case, in
// their original order.
func WrittenBy(posts []Post, username string) []Post {
	folder := newFolder()
	target := folder.String(username)

	result := make([]Post, 0)
	for _, p := range posts {
		if folder.String(p.Author) == target {
			result = append(result, p)
		}
	}
	return result
}

// InTimespan returns the posts sent within span, bounds included, in their
// original order.
func InTimespan(posts []Post, span Timespan) []Post {
	result := make([]Post, 0)
	for _, p := range posts {
		if span.Contains(p.Timestamp) {
			result = append(result, p)
		}
	}
	return result
}

// Containing returns the posts whose text contains at least one of words as a
// whole token, ignoring case, in their original order.
//
// Text is split into tokens on runs of characters other than letters, digits
// and underscore, so "talk" matches "talk!" but not "talking". Tokens and words
// are case-folded only after splitting. Blank words are dropped; if none remain
// nothing matches.
func Containing(posts []Post, words []string) []Post {
	result := make([]Post, 0)

	folder := newFolder()
	wanted := normalizeWords(words, folder.String)
	if len(wanted) == 0 {
		return result
	}

	for _, p := range posts {
		for _, tok := range tokenize(p.Text) {
			if _, ok := wanted[folder.String(tok)]; ok {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

func normalizeWords(words []string, fold func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[fold(w)] = struct{}{}
	}
	return set
}

// tokenize splits text into maximal runs of word characters. Combining marks
// stay with the letter they modify.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
