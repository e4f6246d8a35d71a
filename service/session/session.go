package session

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/ownfm/internal/idgen"
	"github.com/viant/ownfm/service/workspace"
)

// State represents the initialisation state of a session
type State int

const (
	// AwaitingRoot means no work directory has been configured yet.
	AwaitingRoot State = iota
	// Ready means the work directory is set and operations are reachable.
	Ready
)

func (s State) String() string {
	switch s {
	case AwaitingRoot:
		return "awaitingRoot"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Persister stores the work directory between runs.
type Persister interface {
	// LoadRoot returns the previously saved work directory, possibly empty.
	LoadRoot(ctx context.Context) (string, error)
	// SaveRoot durably stores the new work directory.
	SaveRoot(ctx context.Context, root string) error
}

// Session holds the work directory (root) and the current directory (cursor).
// A Session is owned by a single command loop and is not safe for concurrent use.
type Session struct {
	ID     string
	fs     afs.Service
	root   string
	cursor string
}

// SessionID returns the session identifier
func (s *Session) SessionID() string { return s.ID }

// Root returns the work directory, empty while awaiting configuration.
func (s *Session) Root() string { return s.root }

// Cursor returns the current directory.
func (s *Session) Cursor() string { return s.cursor }

// State returns AwaitingRoot until a work directory is set.
func (s *Session) State() State {
	if s.root == "" {
		return AwaitingRoot
	}
	return Ready
}

// SetRoot replaces the work directory and resets the cursor to it. The path
// must designate an existing directory; otherwise the session is unchanged.
func (s *Session) SetRoot(ctx context.Context, path string) error {
	if path == "" {
		return workspace.NewInvalidPathError(path, "work directory is empty")
	}
	path = workspace.Canonical(path)
	if err := s.ensureDirectory(ctx, path); err != nil {
		return err
	}
	s.root = path
	s.cursor = path
	return nil
}

// SetCursor moves the current directory. The path must be confined under the
// work directory and designate an existing directory.
func (s *Session) SetCursor(ctx context.Context, path string) error {
	if path == "" {
		return workspace.NewMissingArgumentError("name")
	}
	path = workspace.Canonical(path)
	if err := workspace.Confine(s.root, path); err != nil {
		return err
	}
	if err := s.ensureDirectory(ctx, path); err != nil {
		return err
	}
	s.cursor = path
	return nil
}

func (s *Session) ensureDirectory(ctx context.Context, path string) error {
	exists, err := s.fs.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return workspace.NewInvalidPathError(path, "does not exist")
	}
	object, err := s.fs.Object(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	if !object.IsDir() {
		return workspace.NewInvalidPathError(path, "is not a directory")
	}
	return nil
}

// New creates an empty session awaiting its work directory.
func New(fs afs.Service) *Session {
	if fs == nil {
		fs = afs.New()
	}
	return &Session{ID: idgen.NewWithPrefix("session"), fs: fs}
}
