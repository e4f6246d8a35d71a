package ownfm

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/ownfm/policy"
	"github.com/viant/ownfm/service/config"
)

// Unknown command handling modes.
const (
	UnknownCommandIgnore = "ignore"
	UnknownCommandReport = "report"
)

// Config is the persisted shell configuration.
type Config struct {
	Default WorkspaceConfig `json:"default" yaml:"default"`
	Shell   ShellConfig     `json:"shell" yaml:"shell"`
	Policy  *policy.Policy  `json:"policy,omitempty" yaml:"policy,omitempty"`
	Tracing TracingConfig   `json:"tracing" yaml:"tracing"`
}

// WorkspaceConfig holds the work directory; empty until first chosen.
type WorkspaceConfig struct {
	WorkDir string `json:"work_dir" yaml:"work_dir"`
}

type ShellConfig struct {
	UnknownCommand string `json:"unknownCommand,omitempty" yaml:"unknownCommand,omitempty"`
}

type TracingConfig struct {
	// File receives spans; "-" means stdout, empty disables tracing.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig returns a Config with no work directory, unknown commands
// ignored and confirmations asked on the terminal.
func DefaultConfig() *Config {
	return &Config{
		Shell:  ShellConfig{UnknownCommand: UnknownCommandIgnore},
		Policy: &policy.Policy{Mode: policy.ModeAsk},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	switch c.Shell.UnknownCommand {
	case "", UnknownCommandIgnore, UnknownCommandReport:
	default:
		errs = append(errs, fmt.Errorf("shell.unknownCommand must be %s or %s, got %q", UnknownCommandIgnore, UnknownCommandReport, c.Shell.UnknownCommand))
	}
	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("policy: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfig reads the configuration from store. A missing document is
// created with defaults so the next run finds it.
func LoadConfig(ctx context.Context, store config.Store[Config]) (*Config, error) {
	cfg, err := store.Load(ctx)
	if errors.Is(err, config.ErrNotFound) {
		cfg = DefaultConfig()
		if err = store.Save(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.Shell.UnknownCommand == "" {
		cfg.Shell.UnknownCommand = UnknownCommandIgnore
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Clone returns a copy that can take runtime overrides without touching c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	ret := *c
	if c.Policy != nil {
		p := *c.Policy
		p.AllowList = append([]string(nil), c.Policy.AllowList...)
		p.BlockList = append([]string(nil), c.Policy.BlockList...)
		ret.Policy = &p
	}
	return &ret
}

// rootStore persists the work directory into the stored configuration
// document. Only work_dir is written back: the document is reloaded on save,
// so runtime overrides applied to the in-memory config never reach the file.
type rootStore struct {
	store  config.Store[Config]
	config *Config
}

func (r *rootStore) LoadRoot(_ context.Context) (string, error) {
	return r.config.Default.WorkDir, nil
}

func (r *rootStore) SaveRoot(ctx context.Context, root string) error {
	if r.store != nil {
		doc, err := r.store.Load(ctx)
		if errors.Is(err, config.ErrNotFound) {
			doc, err = DefaultConfig(), nil
		}
		if err != nil {
			return err
		}
		doc.Default.WorkDir = root
		if err = r.store.Save(ctx, doc); err != nil {
			return err
		}
	}
	r.config.Default.WorkDir = root
	return nil
}
