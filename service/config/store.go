package config

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no document has been saved yet.
var ErrNotFound = errors.New("config: not found")

// Store persists a single configuration document of type T.
type Store[T any] interface {
	// Load returns the saved document or ErrNotFound.
	Load(ctx context.Context) (*T, error)

	// Save durably replaces the document.
	Save(ctx context.Context, t *T) error
}
