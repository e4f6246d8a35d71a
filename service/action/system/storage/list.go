package storage

import (
	"context"
	"path"

	"github.com/viant/afs/url"
	"github.com/viant/ownfm/service/workspace"
)

// ListInput defines parameters for listing a directory
type ListInput struct {
	Name string `json:"name,omitempty" description:"directory to list, current directory when empty"`
}

// ListOutput contains results from a list operation
type ListOutput struct {
	Path   string   `json:"path"`
	Assets []*Asset `json:"assets,omitempty" description:"immediate entries in listing order"`
}

// Names returns entry names in listing order.
func (o *ListOutput) Names() []string {
	ret := make([]string, 0, len(o.Assets))
	for _, asset := range o.Assets {
		ret = append(ret, asset.Name)
	}
	return ret
}

// List lists immediate entries of a directory. Listing is read-only and is
// therefore not restricted to the work directory.
func (s *Service) List(ctx context.Context, input *ListInput, output *ListOutput) error {
	location := workspace.Resolve(s.locator.Cursor(), input.Name)
	object, err := s.object(ctx, location)
	if err != nil {
		return err
	}
	if object == nil {
		return workspace.NewNotFoundError(location)
	}
	if !object.IsDir() {
		return workspace.NewInvalidPathError(location, "is not a directory")
	}
	objects, err := s.children(ctx, location)
	if err != nil {
		return err
	}
	output.Path = location
	output.Assets = make([]*Asset, 0, len(objects))
	for _, obj := range objects {
		assetPath := url.Path(obj.URL())
		output.Assets = append(output.Assets, &Asset{
			URL:     obj.URL(),
			Path:    assetPath,
			Name:    path.Base(assetPath),
			IsDir:   obj.IsDir(),
			Mode:    obj.Mode().String(),
			Size:    obj.Size(),
			ModTime: obj.ModTime(),
		})
	}
	return nil
}
