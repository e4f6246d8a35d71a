package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/ownfm"
	"github.com/viant/ownfm/policy"
	"github.com/viant/ownfm/service/config/fs"
	"github.com/viant/ownfm/tracing"
)

func defaultConfigLocation() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".own-fm", "config.yaml")
	}
	return filepath.Join(home, ".own-fm", "config.yaml")
}

// run starts the shell and returns the process exit code.
func run(ctx context.Context, args ...string) int {
	return runWithIO(ctx, os.Stdin, os.Stdout, os.Stderr, args...)
}

func runWithIO(ctx context.Context, in io.Reader, out, errOut io.Writer, args ...string) int {
	logger := log.New(errOut, "ownfm: ", 0)
	flags := flag.NewFlagSet("ownfm", flag.ContinueOnError)
	flags.SetOutput(errOut)
	location := flags.String("c", defaultConfigLocation(), "configuration file")
	traceFile := flags.String("trace", "", `trace destination file, "-" for stdout`)
	confirm := flags.String("confirm", "", "confirmation mode: ask, auto or deny")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	fileSystem := afs.New()
	store, err := fs.New[ownfm.Config](*location, fileSystem)
	if err != nil {
		logger.Print(err)
		return 1
	}
	saved, err := ownfm.LoadConfig(ctx, store)
	if err != nil {
		logger.Printf("failed to load config %s: %v", *location, err)
		return 1
	}
	cfg := saved.Clone()
	if *confirm != "" {
		if cfg.Policy == nil {
			cfg.Policy = &policy.Policy{}
		}
		cfg.Policy.Mode = *confirm
		if err = cfg.Validate(); err != nil {
			logger.Print(err)
			return 1
		}
	}
	if *traceFile != "" {
		cfg.Tracing.File = *traceFile
	}
	if err = tracing.Init("ownfm", ownfm.Version, cfg.Tracing.File); err != nil {
		logger.Printf("failed to init tracing: %v", err)
		return 1
	}
	defer func() {
		if err := tracing.Shutdown(ctx); err != nil {
			logger.Printf("failed to flush traces: %v", err)
		}
	}()

	srv := ownfm.New(
		ownfm.WithConfig(cfg),
		ownfm.WithConfigStore(store),
		ownfm.WithFileSystem(fileSystem),
		ownfm.WithIO(in, out, errOut),
	)
	if err = srv.Run(ctx); err != nil {
		if !errors.Is(err, ownfm.ErrInputClosed) {
			logger.Print(err)
		}
		return 1
	}
	return 0
}
