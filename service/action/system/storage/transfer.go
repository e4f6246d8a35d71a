package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	astorage "github.com/viant/afs/storage"
	"github.com/viant/ownfm/service/workspace"
)

// TransferInput defines parameters for copy, move and rename
type TransferInput struct {
	Source string `json:"source" required:"true"`
	Dest   string `json:"dest" required:"true"`
}

// TransferOutput contains the resolved source and final destination
type TransferOutput struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// transfer holds validated copy/move/rename arguments.
type transfer struct {
	source string
	dest   string
	object astorage.Object
	target astorage.Object
}

// prepareTransfer validates arguments in a fixed order: missing argument,
// source is the cursor, source missing, destination is the cursor, then
// confinement of source and destination.
func (s *Service) prepareTransfer(ctx context.Context, input *TransferInput) (*transfer, error) {
	if input.Source == "" {
		return nil, workspace.NewMissingArgumentError("source")
	}
	if input.Dest == "" {
		return nil, workspace.NewMissingArgumentError("destination")
	}
	cursor := s.locator.Cursor()
	ret := &transfer{source: s.resolve(input.Source), dest: s.resolve(input.Dest)}
	if ret.source == cursor {
		return nil, workspace.NewAlreadyIsCursorError(ret.source)
	}
	var err error
	if ret.object, err = s.object(ctx, ret.source); err != nil {
		return nil, err
	}
	if ret.object == nil {
		return nil, workspace.NewInvalidPathError(ret.source, "does not exist")
	}
	if ret.dest == cursor {
		return nil, fmt.Errorf("%w: specify the destination file name", workspace.NewAlreadyIsCursorError(ret.dest))
	}
	root := s.locator.Root()
	if err = workspace.Confine(root, ret.source); err != nil {
		return nil, err
	}
	if err = workspace.Confine(root, ret.dest); err != nil {
		return nil, err
	}
	if ret.target, err = s.object(ctx, ret.dest); err != nil {
		return nil, err
	}
	return ret, nil
}

// into retargets the transfer inside an existing destination directory.
func (t *transfer) into() {
	if t.target == nil || !t.target.IsDir() {
		return
	}
	t.dest = filepath.Join(t.dest, filepath.Base(t.source))
	t.target = nil
}

// Copy copies a regular file with its mode and modification time. An
// existing destination file is overwritten; an existing destination
// directory receives a file with the source name.
func (s *Service) Copy(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	t, err := s.prepareTransfer(ctx, input)
	if err != nil {
		return err
	}
	if t.object.IsDir() {
		return workspace.NewInvalidPathError(t.source, "is a directory")
	}
	t.into()
	if t.dest == t.source {
		return workspace.NewInvalidPathError(t.dest, "is the source file")
	}
	source, err := s.confinedTarget(t.source)
	if err != nil {
		return err
	}
	dest, err := s.confinedTarget(t.dest)
	if err != nil {
		return err
	}
	if err = s.fs.Copy(ctx, source, dest); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", t.source, t.dest, err)
	}
	if err = preserveMetadata(t.object, dest); err != nil {
		return err
	}
	output.Source, output.Dest = t.source, t.dest
	return nil
}

// Move moves a file or directory. An existing destination directory receives
// the source under its own name.
func (s *Service) Move(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	t, err := s.prepareTransfer(ctx, input)
	if err != nil {
		return err
	}
	if err = s.ensureCursorKept(t.source); err != nil {
		return err
	}
	t.into()
	return s.relocate(ctx, t, output)
}

// Rename moves the source to exactly the destination path, which must not be
// an existing directory.
func (s *Service) Rename(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	t, err := s.prepareTransfer(ctx, input)
	if err != nil {
		return err
	}
	if err = s.ensureCursorKept(t.source); err != nil {
		return err
	}
	if t.target != nil && t.target.IsDir() {
		return workspace.NewInvalidPathError(t.dest, "is an existing directory")
	}
	return s.relocate(ctx, t, output)
}

func (s *Service) relocate(ctx context.Context, t *transfer, output *TransferOutput) error {
	if t.dest == t.source {
		return workspace.NewInvalidPathError(t.dest, "is the source path")
	}
	if t.object.IsDir() && workspace.IsConfined(t.source, t.dest) {
		return workspace.NewInvalidPathError(t.dest, "is inside the source directory")
	}
	if _, err := s.confinedTarget(t.dest); err != nil {
		return err
	}
	if err := s.ensureParent(ctx, t.dest); err != nil {
		return err
	}
	if isLink(t.source) {
		if err := os.Rename(t.source, t.dest); err != nil {
			return fmt.Errorf("failed to move link %s to %s: %w", t.source, t.dest, err)
		}
		output.Source, output.Dest = t.source, t.dest
		return nil
	}
	if err := s.fs.Move(ctx, t.source, t.dest); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", t.source, t.dest, err)
	}
	output.Source, output.Dest = t.source, t.dest
	return nil
}

// ensureCursorKept refuses to relocate a directory holding the cursor.
func (s *Service) ensureCursorKept(source string) error {
	if workspace.IsConfined(source, s.locator.Cursor()) {
		return fmt.Errorf("%w: %s contains the current directory", workspace.ErrAlreadyIsCursor, source)
	}
	return nil
}

func preserveMetadata(source astorage.Object, dest string) error {
	if err := os.Chmod(dest, source.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to copy mode to %s: %w", dest, err)
	}
	if err := os.Chtimes(dest, source.ModTime(), source.ModTime()); err != nil {
		return fmt.Errorf("failed to copy modification time to %s: %w", dest, err)
	}
	return nil
}
