package idgen

import "github.com/google/uuid"

// NewFunc generates an identifier; tests may stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// NewWithPrefix returns a new identifier prefixed with kind, e.g. "session-…".
func NewWithPrefix(kind string) string {
	if kind == "" {
		return New()
	}
	return kind + "-" + New()
}
