package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind enumerates the recoverable, command-scoped failure modes. Every
// kind is terminal for the command that produced it and never fatal to the
// session.
type ErrorKind int

const (
	// KindNotFound means a name, color, or coordinate window matched zero rows.
	KindNotFound ErrorKind = iota
	// KindAmbiguous means a pattern matched multiple stations where one was required.
	KindAmbiguous
	// KindOutOfBounds means a latitude or longitude fell outside the accepted range.
	KindOutOfBounds
	// KindEmptyDirection means a valid line color has no stops in the requested direction.
	KindEmptyDirection
)

// Error is a command-scoped failure. Subject names what failed ("station",
// "line", "latitude", ...); Candidates carries the match list for ambiguous
// resolutions.
type Error struct {
	Kind       ErrorKind
	Subject    string
	Candidates []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Subject)
	case KindAmbiguous:
		return fmt.Sprintf("%s is ambiguous: %s", e.Subject, strings.Join(e.Candidates, ", "))
	case KindOutOfBounds:
		return fmt.Sprintf("%s is out of bounds", e.Subject)
	case KindEmptyDirection:
		return fmt.Sprintf("%s has no stops in the requested direction", e.Subject)
	}
	return e.Subject
}

func notFound(subject string) *Error {
	return &Error{Kind: KindNotFound, Subject: subject}
}

func ambiguous(subject string, candidates []string) *Error {
	return &Error{Kind: KindAmbiguous, Subject: subject, Candidates: candidates}
}

func outOfBounds(subject string) *Error {
	return &Error{Kind: KindOutOfBounds, Subject: subject}
}

func emptyDirection(subject string) *Error {
	return &Error{Kind: KindEmptyDirection, Subject: subject}
}

// KindOf extracts the kind from a command error. The boolean is false for
// infrastructure errors, which callers surface instead of translating.
func KindOf(err error) (ErrorKind, bool) {
	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a command error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
