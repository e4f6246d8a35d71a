package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ownfm/extension"
	"github.com/viant/ownfm/policy"
	"github.com/viant/ownfm/service/action/input"
	"github.com/viant/ownfm/service/action/system/storage"
	"github.com/viant/ownfm/service/approval/console"
	"github.com/viant/ownfm/service/session"
	"github.com/viant/ownfm/service/workspace"
)

type persister struct {
	root  string
	saves int
	err   error
}

func (p *persister) LoadRoot(context.Context) (string, error) { return p.root, nil }

func (p *persister) SaveRoot(_ context.Context, root string) error {
	if p.err != nil {
		return p.err
	}
	p.root = root
	p.saves++
	return nil
}

type fixture struct {
	root      string
	session   *session.Session
	persister *persister
	router    *Router
	prompts   *bytes.Buffer
}

func newFixture(t *testing.T, answers string, opts ...Option) *fixture {
	base := t.TempDir()
	root := filepath.Join(base, "ws")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "wsx"), 0o755))

	fs := afs.New()
	sess := session.New(fs)
	require.NoError(t, sess.SetRoot(context.Background(), root))

	prompts := &bytes.Buffer{}
	gate := console.New(input.NewWithIO(strings.NewReader(answers), prompts))
	actions := extension.NewActions(storage.New(fs, sess, gate))
	p := &persister{root: sess.Root()}
	return &fixture{
		root:      sess.Root(),
		session:   sess,
		persister: p,
		router:    New(sess, p, actions, opts...),
		prompts:   prompts,
	}
}

func (f *fixture) run(t *testing.T, line string) (*Result, error) {
	t.Helper()
	return f.router.Dispatch(context.Background(), line)
}

func TestRouter_Scenario(t *testing.T) {
	f := newFixture(t, "")

	_, err := f.run(t, "create_dir sub")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(f.root, "sub"))

	result, err := f.run(t, "change_cur_dir sub")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "sub"), f.session.Cursor())
	assert.Equal(t, []string{"Current dir was changed to " + f.session.Cursor() + "."}, result.Lines)

	_, err = f.run(t, "create_emptyf note.txt")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(f.root, "sub", "note.txt"))
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = f.run(t, "write_to_file note.txt hello")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(f.root, "sub", "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	cursor := f.session.Cursor()
	_, err = f.run(t, "delete_dir ../..")
	assert.True(t, errors.Is(err, workspace.ErrOutsideRoot), err)
	_, err = f.run(t, "change_cur_dir ../../wsx")
	assert.True(t, errors.Is(err, workspace.ErrOutsideRoot), err)
	assert.Equal(t, cursor, f.session.Cursor())
}

func TestRouter_Dispatch(t *testing.T) {
	testCases := []struct {
		description string
		setup       func(t *testing.T, root string)
		line        string
		opts        []Option
		expectLines []string
		expectErr   error
		expectQuit  bool
	}{
		{description: "blank line", line: "   "},
		{description: "unknown ignored", line: "dance now"},
		{description: "unknown reported", line: "dance now", opts: []Option{WithReportUnknown(true)}, expectErr: ErrUnknownCommand},
		{description: "command name is first token only", line: "a.txt show_help"},
		{description: "missing argument", line: "create_dir", expectErr: workspace.ErrMissingArgument},
		{description: "missing destination", line: "copy_file a.txt", expectErr: workspace.ErrMissingArgument},
		{description: "extra arguments ignored", line: "create_dir extra more args", expectLines: nil},
		{description: "blocked", line: "delete_file a.txt", opts: []Option{WithPolicy(&policy.Policy{BlockList: []string{"delete_file"}})}, expectErr: ErrCommandBlocked},
		{description: "not allowed", line: "create_dir x", opts: []Option{WithPolicy(&policy.Policy{AllowList: []string{"show_help"}})}, expectErr: ErrCommandBlocked},
		{description: "quit", line: "quit", expectLines: []string{Farewell}, expectQuit: true},
		{
			description: "show content",
			setup: func(t *testing.T, root string) {
				require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
				require.NoError(t, os.Mkdir(filepath.Join(root, "b"), 0o755))
			},
			line:        "show_content",
			expectLines: []string{"a.txt b"},
		},
		{
			description: "copy onto cursor",
			setup: func(t *testing.T, root string) {
				require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
			},
			line:      "copy_file a.txt .",
			expectErr: workspace.ErrAlreadyIsCursor,
		},
		{
			description: "copy from cursor",
			line:        "copy_file . b.txt",
			expectErr:   workspace.ErrAlreadyIsCursor,
		},
		{
			description: "copy missing source",
			line:        "copy_file nope.txt b.txt",
			expectErr:   workspace.ErrInvalidPath,
		},
		{
			description: "delete missing file",
			line:        "delete_file nope.txt",
			expectErr:   workspace.ErrNotFound,
		},
		{
			description: "change to missing dir",
			line:        "change_cur_dir nope",
			expectErr:   workspace.ErrInvalidPath,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := newFixture(t, "", tc.opts...)
			if tc.setup != nil {
				tc.setup(t, f.root)
			}
			result, err := f.run(t, tc.line)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectQuit, result.Quit)
			if tc.expectLines != nil {
				assert.Equal(t, tc.expectLines, result.Lines)
			}
		})
	}
}

func TestRouter_Transfer(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "a.txt"), []byte("alpha"), 0o644))

	result, err := f.run(t, "copy_file a.txt b.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"File " + filepath.Join(f.root, "a.txt") + " was copied to " + filepath.Join(f.root, "b.txt") + "."}, result.Lines)

	_, err = f.run(t, "move_file b.txt c.txt")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(f.root, "b.txt"))
	assert.FileExists(t, filepath.Join(f.root, "c.txt"))

	_, err = f.run(t, "rename_file c.txt d.txt")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(f.root, "d.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	_, err = f.run(t, "delete_file d.txt")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(f.root, "d.txt"))
}

func TestRouter_DeleteDirConfirmation(t *testing.T) {
	testCases := []struct {
		description string
		answers     string
		expectKept  bool
	}{
		{description: "refused", answers: "n\n", expectKept: true},
		{description: "empty answer", answers: "\n", expectKept: true},
		{description: "approved", answers: "Y\n", expectKept: false},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := newFixture(t, tc.answers)
			require.NoError(t, os.MkdirAll(filepath.Join(f.root, "full", "deep"), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(f.root, "full", "deep", "x"), []byte("x"), 0o644))

			_, err := f.run(t, "delete_dir full")
			require.NoError(t, err)
			assert.Contains(t, f.prompts.String(), "is not empty")
			if tc.expectKept {
				assert.FileExists(t, filepath.Join(f.root, "full", "deep", "x"))
				return
			}
			assert.NoDirExists(t, filepath.Join(f.root, "full"))
		})
	}
}

func TestRouter_ChangeWorkDir(t *testing.T) {
	f := newFixture(t, "")
	next := filepath.Join(filepath.Dir(f.root), "wsx")

	result, err := f.run(t, "change_work_dir ../wsx")
	require.NoError(t, err)
	assert.Equal(t, next, f.session.Root())
	assert.Equal(t, next, f.session.Cursor())
	assert.Equal(t, next, f.persister.root)
	assert.Equal(t, 1, f.persister.saves)
	assert.Len(t, result.Lines, 2)

	_, err = f.run(t, "change_work_dir missing")
	assert.True(t, errors.Is(err, workspace.ErrInvalidPath))
	assert.Equal(t, next, f.session.Root())

	f.persister.err = errors.New("disk full")
	_, err = f.run(t, "change_work_dir "+f.root)
	assert.Error(t, err)
	assert.Equal(t, next, f.session.Root())
	assert.Equal(t, next, f.persister.root)
}

func TestRouter_NoWorkDir(t *testing.T) {
	sess := session.New(afs.New())
	router := New(sess, nil, extension.NewActions())

	_, err := router.Dispatch(context.Background(), "show_content")
	assert.True(t, errors.Is(err, ErrNoWorkDir))

	result, err := router.Dispatch(context.Background(), "show_help")
	require.NoError(t, err)
	assert.Len(t, result.Lines, len(router.Commands()))
	assert.Contains(t, strings.Join(result.Lines, "\n"), "write_to_file {name} {data?} - write {data} to file {name}")
}
