package fs

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/ownfm/service/config"
	"gopkg.in/yaml.v3"
)

// Service implements a YAML file backed config.Store
type Service[T any] struct {
	URL string
	fs  afs.Service
	mu  sync.RWMutex
}

// Load reads and decodes the YAML document.
func (s *Service[T]) Load(ctx context.Context) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if config exists: %w", err)
	}
	if !exists {
		return nil, config.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", s.URL, err)
	}
	var ret T
	if len(bytes.TrimSpace(data)) == 0 {
		return &ret, nil
	}
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", s.URL, err)
	}
	return &ret, nil
}

// Save encodes t as YAML and replaces the file, creating its directory.
func (s *Service[T]) Save(ctx context.Context, t *T) error {
	if t == nil {
		return fmt.Errorf("cannot save nil config")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	parent, _ := url.Split(s.URL, file.Scheme)
	if exists, _ := s.fs.Exists(ctx, parent); !exists {
		if err := s.fs.Create(ctx, parent, file.DefaultDirOsMode, true); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", parent, err)
		}
	}
	if err = s.fs.Upload(ctx, s.URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save config to file %s: %w", s.URL, err)
	}
	return nil
}

// New creates a YAML store at location; a bare path is treated as a local file.
func New[T any](location string, fs afs.Service) (*Service[T], error) {
	if location == "" {
		return nil, fmt.Errorf("config location cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	if url.Scheme(location, "") == "" {
		location = path.Clean(location)
	}
	return &Service[T]{URL: location, fs: fs}, nil
}
