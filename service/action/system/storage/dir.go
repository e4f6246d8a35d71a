package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/afs/file"
	"github.com/viant/ownfm/service/approval"
	"github.com/viant/ownfm/service/workspace"
)

// CreateDirInput defines parameters for creating a directory
type CreateDirInput struct {
	Name string `json:"name" required:"true"`
}

// CreateDirOutput contains results from a create directory operation
type CreateDirOutput struct {
	Path string `json:"path"`
}

// CreateDir creates a directory whose parent already exists.
func (s *Service) CreateDir(ctx context.Context, input *CreateDirInput, output *CreateDirOutput) error {
	location, err := s.confined("name", input.Name)
	if err != nil {
		return err
	}
	object, err := s.object(ctx, location)
	if err != nil {
		return err
	}
	if object != nil {
		return workspace.NewInvalidPathError(location, "already exists")
	}
	if err = s.ensureParent(ctx, location); err != nil {
		return err
	}
	if err = s.fs.Create(ctx, location, file.DefaultDirOsMode, true); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", location, err)
	}
	output.Path = location
	return nil
}

// DeleteDirInput defines parameters for deleting a directory
type DeleteDirInput struct {
	Name string `json:"name" required:"true"`
}

// DeleteDirOutput contains results from a delete directory operation
type DeleteDirOutput struct {
	Path     string             `json:"path"`
	Entries  int                `json:"entries"`
	Deleted  bool               `json:"deleted"`
	Decision *approval.Decision `json:"decision,omitempty"`
}

// DeleteDir removes an empty directory directly; a non-empty one is removed
// recursively only after the confirmation gate approves it. A refusal leaves
// the directory untouched and is not an error. A symbolic link to a
// directory is removed itself, leaving the linked directory intact.
func (s *Service) DeleteDir(ctx context.Context, input *DeleteDirInput, output *DeleteDirOutput) error {
	location, err := s.confined("name", input.Name)
	if err != nil {
		return err
	}
	if isLink(location) {
		if info, err := os.Stat(location); err != nil || !info.IsDir() {
			return workspace.NewInvalidPathError(location, "is not a link to a directory")
		}
		output.Path = location
		if err = os.Remove(location); err != nil {
			return fmt.Errorf("failed to delete link %s: %w", location, err)
		}
		output.Deleted = true
		return nil
	}
	object, err := s.object(ctx, location)
	if err != nil {
		return err
	}
	if object == nil || !object.IsDir() {
		return workspace.NewInvalidPathError(location, "is not an existing directory")
	}
	output.Path = location
	if workspace.IsConfined(location, s.locator.Cursor()) {
		return fmt.Errorf("%w: %s contains the current directory", workspace.ErrAlreadyIsCursor, location)
	}
	entries, err := s.children(ctx, location)
	if err != nil {
		return err
	}
	output.Entries = len(entries)
	if len(entries) > 0 {
		question := fmt.Sprintf("Dir %s is not empty. Are you sure to delete it? (y/N)", location)
		request := approval.NewRequest(Name+".deleteDir", location, question)
		request.SessionID = s.locator.SessionID()
		decision, err := approval.Confirm(ctx, s.gate, request)
		if err != nil {
			return err
		}
		output.Decision = decision
		if !decision.Approved {
			return nil
		}
	}
	if err = s.fs.Delete(ctx, location); err != nil {
		return fmt.Errorf("failed to delete directory %s: %w", location, err)
	}
	output.Deleted = true
	return nil
}
