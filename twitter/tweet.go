// Package twitter extracts facts from, and filters, in-memory collections of
// short timestamped posts.
//
// Every function is pure: inputs are never modified and results are freshly
// allocated, so the same slice may be shared between goroutines.
package twitter

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is wrapped by errors returned from the strict
// constructors when a caller violates an input contract.
var ErrInvalidArgument = errors.New("invalid argument")

// Post is a single timestamped message.
type Post struct {
	ID        int64     // unique within a collection, guaranteed by the caller
	Author    string    // username, compared case-insensitively
	Text      string    // message body, not assumed to be sanitized
	Timestamp time.Time // when the post was sent
}

// ValidUsername reports whether name is a nonempty run of ASCII letters,
// digits and underscores.
func ValidUsername(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isUsernameByte(name[i]) {
			return false
		}
	}
	return true
}

// ValidateUsername is ValidUsername with an error describing the violation.
func ValidateUsername(name string) error {
	if !ValidUsername(name) {
		return fmt.Errorf("%w: username %q must be letters, digits or underscore", ErrInvalidArgument, name)
	}
	return nil
}

func isUsernameByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_'
}
