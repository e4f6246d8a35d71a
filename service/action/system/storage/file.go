package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/viant/afs/file"
	"github.com/viant/ownfm/internal/clock"
	"github.com/viant/ownfm/service/workspace"
)

// TouchInput defines parameters for creating an empty file
type TouchInput struct {
	Name string `json:"name" required:"true"`
}

// TouchOutput contains results from a touch operation
type TouchOutput struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// Touch creates an empty file, or updates the modification time of an
// existing one without changing its content. A symbolic link is followed.
func (s *Service) Touch(ctx context.Context, input *TouchInput, output *TouchOutput) error {
	location, err := s.confined("name", input.Name)
	if err != nil {
		return err
	}
	target, err := s.confinedTarget(location)
	if err != nil {
		return err
	}
	object, err := s.object(ctx, target)
	if err != nil {
		return err
	}
	output.Path = location
	if object != nil {
		if object.IsDir() {
			return workspace.NewInvalidPathError(location, "is a directory")
		}
		now := clock.Now()
		if err = os.Chtimes(target, now, now); err != nil {
			return fmt.Errorf("failed to update modification time of %s: %w", location, err)
		}
		return nil
	}
	if err = s.ensureParent(ctx, target); err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(nil)); err != nil {
		return fmt.Errorf("failed to create file %s: %w", location, err)
	}
	output.Created = true
	return nil
}

// WriteInput defines parameters for writing a file
type WriteInput struct {
	Name string `json:"name" required:"true"`
	Data string `json:"data,omitempty"`
}

// WriteOutput contains results from a write operation
type WriteOutput struct {
	Path    string    `json:"path"`
	Created bool      `json:"created"`
	Size    int       `json:"size"`
	Stats   DiffStats `json:"stats"`
}

// Write replaces the whole content of a file with Data, creating it when
// absent. Stats report the line changes against the previous content. A
// symbolic link is followed and its target must be inside the work directory.
func (s *Service) Write(ctx context.Context, input *WriteInput, output *WriteOutput) error {
	location, err := s.confined("name", input.Name)
	if err != nil {
		return err
	}
	target, err := s.confinedTarget(location)
	if err != nil {
		return err
	}
	object, err := s.object(ctx, target)
	if err != nil {
		return err
	}
	var previous []byte
	if object != nil {
		if object.IsDir() {
			return workspace.NewInvalidPathError(location, "is a directory")
		}
		if previous, err = s.fs.DownloadWithURL(ctx, target); err != nil {
			return fmt.Errorf("failed to read %s: %w", location, err)
		}
	} else if err = s.ensureParent(ctx, target); err != nil {
		return err
	}
	data := []byte(input.Data)
	if err = s.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", location, err)
	}
	_, stats, err := GenerateDiff(previous, data, location, 0)
	if err != nil {
		return err
	}
	output.Path = location
	output.Created = object == nil
	output.Size = len(data)
	output.Stats = stats
	return nil
}

// DeleteFileInput defines parameters for deleting a file
type DeleteFileInput struct {
	Name string `json:"name" required:"true"`
}

// DeleteFileOutput contains results from a delete file operation
type DeleteFileOutput struct {
	Path string `json:"path"`
}

// DeleteFile removes an existing regular file. A symbolic link is removed
// itself, whatever it points to.
func (s *Service) DeleteFile(ctx context.Context, input *DeleteFileInput, output *DeleteFileOutput) error {
	location, err := s.confined("name", input.Name)
	if err != nil {
		return err
	}
	if isLink(location) {
		if err = os.Remove(location); err != nil {
			return fmt.Errorf("failed to delete link %s: %w", location, err)
		}
		output.Path = location
		return nil
	}
	object, err := s.object(ctx, location)
	if err != nil {
		return err
	}
	if object == nil {
		return workspace.NewNotFoundError(location)
	}
	if object.IsDir() {
		return workspace.NewInvalidPathError(location, "is a directory")
	}
	if err = s.fs.Delete(ctx, location); err != nil {
		return fmt.Errorf("failed to delete %s: %w", location, err)
	}
	output.Path = location
	return nil
}
