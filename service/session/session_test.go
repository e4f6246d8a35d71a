package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ownfm/service/workspace"
)

func TestSession_SetRoot(t *testing.T) {
	ctx := context.Background()
	root := workspace.Canonical(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), nil, 0o644))

	testCases := []struct {
		description string
		path        string
		expectErr   error
	}{
		{description: "existing directory", path: root},
		{description: "missing directory", path: filepath.Join(root, "missing"), expectErr: workspace.ErrInvalidPath},
		{description: "regular file", path: filepath.Join(root, "file.txt"), expectErr: workspace.ErrInvalidPath},
		{description: "empty path", path: "", expectErr: workspace.ErrInvalidPath},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			s := New(afs.New())
			assert.Equal(t, AwaitingRoot, s.State())
			err := s.SetRoot(ctx, tc.path)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
				assert.Equal(t, "", s.Root())
				assert.Equal(t, "", s.Cursor())
				assert.Equal(t, AwaitingRoot, s.State())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.path, s.Root())
			assert.Equal(t, tc.path, s.Cursor())
			assert.Equal(t, Ready, s.State())
		})
	}
}

func TestSession_SetCursor(t *testing.T) {
	ctx := context.Background()
	base := workspace.Canonical(t.TempDir())
	root := filepath.Join(base, "ws")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "wsx"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.txt"), nil, 0o644))

	testCases := []struct {
		description string
		path        string
		expected    string
		expectErr   error
	}{
		{description: "child", path: filepath.Join(root, "sub"), expected: filepath.Join(root, "sub")},
		{description: "nested", path: filepath.Join(root, "sub", "deep"), expected: filepath.Join(root, "sub", "deep")},
		{description: "root", path: root, expected: root},
		{description: "parent of root", path: base, expectErr: workspace.ErrOutsideRoot},
		{description: "prefix sibling", path: filepath.Join(base, "wsx"), expectErr: workspace.ErrOutsideRoot},
		{description: "missing", path: filepath.Join(root, "missing"), expectErr: workspace.ErrInvalidPath},
		{description: "file", path: filepath.Join(root, "note.txt"), expectErr: workspace.ErrInvalidPath},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			s := New(afs.New())
			require.NoError(t, s.SetRoot(ctx, root))
			err := s.SetCursor(ctx, tc.path)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
				assert.Equal(t, root, s.Cursor())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, s.Cursor())
			assert.True(t, workspace.IsConfined(s.Root(), s.Cursor()))
		})
	}
}

func TestSession_SetRootResetsCursor(t *testing.T) {
	ctx := context.Background()
	first := workspace.Canonical(t.TempDir())
	second := workspace.Canonical(t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(first, "sub"), 0o755))

	s := New(afs.New())
	require.NoError(t, s.SetRoot(ctx, first))
	require.NoError(t, s.SetCursor(ctx, filepath.Join(first, "sub")))
	require.NoError(t, s.SetRoot(ctx, second))
	assert.Equal(t, second, s.Cursor())

	assert.True(t, errors.Is(s.SetCursor(ctx, filepath.Join(first, "sub")), workspace.ErrOutsideRoot))
	assert.Equal(t, second, s.Cursor())
}
