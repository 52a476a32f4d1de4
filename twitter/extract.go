package twitter

import (
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"
)

// GetTimespan returns the smallest timespan containing the timestamp of every
// post. The boolean is false when posts is empty and no timespan exists.
func GetTimespan(posts []Post) (Timespan, bool) {
	if len(posts) == 0 {
		return Timespan{}, false
	}

	start := posts[0].Timestamp
	end := posts[0].Timestamp
	for _, p := range posts[1:] {
		if p.Timestamp.Before(start) {
			start = p.Timestamp
		}
		if p.Timestamp.After(end) {
			end = p.Timestamp
		}
	}

	return Timespan{Start: start, End: end}, true
}

// Usernames is a set of canonical (lowercase) usernames.
type Usernames map[string]struct{}

// Has reports whether name, in any case, is in the set.
func (u Usernames) Has(name string) bool {
	_, ok := u[newLowerer().String(name)]
	return ok
}

// Len returns the number of distinct usernames.
func (u Usernames) Len() int {
	return len(u)
}

// Sorted returns the usernames in lexical order.
func (u Usernames) Sorted() []string {
	return slices.Sorted(maps.Keys(u))
}

// MentionedUsers returns the set of usernames mentioned in the text of posts.
//
// A mention is "@" followed by one or more username characters. The "@" has
// to start a token (text start or after whitespace), and the name has to end
// at text end, whitespace or ASCII punctuation, so "bob@mit.edu" mentions
// nobody while "hello @alice!" mentions alice.
func MentionedUsers(posts []Post) Usernames {
	users := make(Usernames)
	lower := newLowerer()
	for _, p := range posts {
		scanMentions(p.Text, func(name string) {
			users[lower.String(name)] = struct{}{}
		})
	}
	return users
}

// Mentions returns the lowercased usernames mentioned in text, in order of
// appearance. Repeated mentions are kept.
func Mentions(text string) []string {
	var names []string
	lower := newLowerer()
	scanMentions(text, func(name string) {
		names = append(names, lower.String(name))
	})
	return names
}

func scanMentions(text string, emit func(name string)) {
	for i := 0; i < len(text); i++ {
		if text[i] != '@' || !startsToken(text[:i]) {
			continue
		}

		j := i + 1
		for j < len(text) && isUsernameByte(text[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		if j < len(text) && !endsMention(text[j:]) {
			continue
		}

		emit(text[i+1 : j])
		i = j - 1
	}
}

// startsToken reports whether a token may begin right after prefix.
func startsToken(prefix string) bool {
	if prefix == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(prefix)
	return unicode.IsSpace(r)
}

// endsMention reports whether the first rune of rest terminates a mention.
func endsMention(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	if unicode.IsSpace(r) {
		return true
	}
	return r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}
