package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	astorage "github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/ownfm/service/workspace"
)

// resolve returns the absolute path of the entry name relative to the cursor.
// A symbolic link is kept as the link itself.
func (s *Service) resolve(name string) string {
	return workspace.ResolveEntry(s.locator.Cursor(), name)
}

// confined resolves a required argument and checks it against the work directory.
func (s *Service) confined(argument, name string) (string, error) {
	if name == "" {
		return "", workspace.NewMissingArgumentError(argument)
	}
	location := s.resolve(name)
	if err := workspace.Confine(s.locator.Root(), location); err != nil {
		return "", err
	}
	return location, nil
}

// confinedTarget returns the path location designates once symbolic links
// are followed, checked against the work directory. Operations reading or
// writing file content go through it on top of confined.
func (s *Service) confinedTarget(location string) (string, error) {
	target := workspace.Canonical(location)
	if err := workspace.Confine(s.locator.Root(), target); err != nil {
		return "", err
	}
	return target, nil
}

// isLink reports whether location itself is a symbolic link.
func isLink(location string) bool {
	info, err := os.Lstat(location)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// object returns the file system object at location, or nil when absent.
func (s *Service) object(ctx context.Context, location string) (astorage.Object, error) {
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", location, err)
	}
	if !exists {
		return nil, nil
	}
	object, err := s.fs.Object(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to get object for %s: %w", location, err)
	}
	return object, nil
}

// ensureParent checks that the directory holding location exists.
func (s *Service) ensureParent(ctx context.Context, location string) error {
	parent := filepath.Dir(location)
	object, err := s.object(ctx, parent)
	if err != nil {
		return err
	}
	if object == nil || !object.IsDir() {
		return workspace.NewInvalidPathError(location, "parent directory does not exist")
	}
	return nil
}

// children returns the immediate entries of the directory at location,
// excluding the directory itself which afs reports first.
func (s *Service) children(ctx context.Context, location string) ([]astorage.Object, error) {
	objects, err := s.fs.List(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects at %s: %w", location, err)
	}
	ret := make([]astorage.Object, 0, len(objects))
	for _, object := range objects {
		if filepath.Clean(url.Path(object.URL())) == location {
			continue
		}
		ret = append(ret, object)
	}
	return ret, nil
}
