// Package reponame normalizes repository names the way GitHub does on creation.
package reponame

import (
	"regexp"
	"strings"
)

// MaxLength is the longest repository name GitHub accepts.
const MaxLength = 100

// ErrNameEmpty is returned when the repository name is empty.
var ErrNameEmpty = &Error{message: "repository name cannot be empty"}

// ErrNameReserved is returned for the names . and .. which GitHub refuses.
var ErrNameReserved = &Error{message: "repository name cannot be . or .."}

// ErrNameEmptyAfterSanitization is returned when nothing valid is left after sanitization.
var ErrNameEmptyAfterSanitization = &Error{message: "repository name becomes empty after sanitization"}

// Error represents an error related to repository names.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

var invalidChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Sanitize returns the name GitHub would give a repository created as name:
//   - every run of characters other than ASCII letters, digits, '.', '_' and '-'
//     becomes a single '-'
//   - names are cut to MaxLength characters
//   - '.' and '..' are refused
func Sanitize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameEmpty
	}

	sanitized := invalidChars.ReplaceAllString(name, "-")
	if len(sanitized) > MaxLength {
		sanitized = sanitized[:MaxLength]
	}

	switch sanitized {
	case "-":
		return "", ErrNameEmptyAfterSanitization
	case ".", "..":
		return "", ErrNameReserved
	}

	return sanitized, nil
}
