package engine

import (
	"fmt"
	"strings"
)

// Identifier kinds reported in Unknown.
const (
	KindRule = "rule"
	KindSet  = "set"
)

// Unknown is an identifier the catalog does not know.
type Unknown struct {
	Kind       string
	ID         string
	Suggestion string
}

func (u Unknown) String() string {
	if u.Suggestion == "" {
		return fmt.Sprintf("unknown %s %q", u.Kind, u.ID)
	}
	return fmt.Sprintf("unknown %s %q (did you mean %q?)", u.Kind, u.ID, u.Suggestion)
}

// UnknownIdentifierError lists every unknown rule and set in a configuration.
type UnknownIdentifierError struct {
	Unknown []Unknown
}

func (e *UnknownIdentifierError) Error() string {
	parts := make([]string, len(e.Unknown))
	for i, u := range e.Unknown {
		parts[i] = u.String()
	}
	return strings.Join(parts, "; ")
}
