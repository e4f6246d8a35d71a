package ownfm

import (
	"io"

	"github.com/viant/afs"
	"github.com/viant/ownfm/model/types"
	"github.com/viant/ownfm/service/approval"
	"github.com/viant/ownfm/service/config"
)

// Option configures a Service
type Option func(s *Service)

// WithConfig sets the configuration; DefaultConfig is used otherwise.
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithConfigStore sets the store the work directory is persisted to.
func WithConfigStore(store config.Store[Config]) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithIO overrides standard input, output and error streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(s *Service) {
		s.in = in
		s.out = out
		s.errOut = errOut
	}
}

// WithFileSystem sets the afs service used by the session and operations.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithApprovalService overrides the confirmation gate selected by the policy mode.
func WithApprovalService(svc approval.Service) Option {
	return func(s *Service) {
		s.approval = svc
	}
}

// WithExtensionServices registers additional action services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = services
	}
}
