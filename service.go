package ownfm

import (
	"io"
	"os"

	"github.com/viant/afs"
	"github.com/viant/ownfm/extension"
	"github.com/viant/ownfm/model/types"
	"github.com/viant/ownfm/policy"
	"github.com/viant/ownfm/service/action/input"
	"github.com/viant/ownfm/service/action/printer"
	"github.com/viant/ownfm/service/action/system/storage"
	"github.com/viant/ownfm/service/approval"
	"github.com/viant/ownfm/service/approval/auto"
	"github.com/viant/ownfm/service/approval/console"
	"github.com/viant/ownfm/service/command"
	"github.com/viant/ownfm/service/config"
	"github.com/viant/ownfm/service/session"
)

// Version is reported as the tracing service version.
const Version = "0.1.0"

// Service wires the session, the confirmation gate, the action services
// and the command router of one shell.
type Service struct {
	config            *Config
	store             config.Store[Config]
	fs                afs.Service
	in                io.Reader
	out               io.Writer
	errOut            io.Writer
	session           *session.Session
	persister         session.Persister
	input             *input.Service
	printer           *printer.Service
	approval          approval.Service
	actions           *extension.Actions
	extensionServices []types.Service
	router            *command.Router
}

// Session returns the shell session
func (s *Service) Session() *session.Session {
	return s.session
}

// Router returns the command router
func (s *Service) Router() *command.Router {
	return s.router
}

// Actions returns the registered action services
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.session = session.New(s.fs)
	s.persister = &rootStore{store: s.store, config: s.config}
	s.input = input.NewWithIO(s.in, s.out)
	s.printer = printer.NewWithIO(s.out, s.errOut)
	if s.approval == nil {
		s.approval = s.newApproval()
	}
	s.actions = extension.NewActions(
		s.input,
		s.printer,
		storage.New(s.fs, s.session, s.approval),
	)
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
	s.router = command.New(s.session, s.persister, s.actions,
		command.WithPolicy(s.config.Policy),
		command.WithReportUnknown(s.config.Shell.UnknownCommand == UnknownCommandReport),
	)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
}

func (s *Service) newApproval() approval.Service {
	switch s.config.Policy.EffectiveMode() {
	case policy.ModeAuto:
		return auto.New(true, "approved by policy")
	case policy.ModeDeny:
		return auto.New(false, "denied by policy")
	}
	return console.New(s.input)
}

// New creates a shell service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
