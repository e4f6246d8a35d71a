package ownfm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/viant/ownfm/service/action/input"
	"github.com/viant/ownfm/service/action/printer"
	"github.com/viant/ownfm/service/workspace"
)

const (
	helpHint   = "Type 'show_help' to display help."
	rootPrompt = "Choose work directory (absolute path):"
)

// ErrInputClosed is returned by Run when the input ends before quit.
var ErrInputClosed = errors.New("input stream was closed")

// Run restores the saved work directory, asks for one while none is set and
// then processes command lines until quit. It returns nil after quit and
// ErrInputClosed when the input ends first.
func (s *Service) Run(ctx context.Context) error {
	if err := s.print(ctx, helpHint); err != nil {
		return err
	}
	if err := s.restoreRoot(ctx); err != nil {
		return err
	}
	for {
		line, err := s.ask(ctx, s.session.Cursor()+" >")
		if err != nil {
			return err
		}
		result, err := s.router.Dispatch(ctx, line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			if err = s.printError(ctx, err); err != nil {
				return err
			}
			continue
		}
		for _, text := range result.Lines {
			if err = s.print(ctx, text); err != nil {
				return err
			}
		}
		if result.Quit {
			return nil
		}
	}
}

// restoreRoot applies the persisted work directory and prompts until a valid
// one is chosen.
func (s *Service) restoreRoot(ctx context.Context) error {
	saved, err := s.persister.LoadRoot(ctx)
	if err != nil {
		return err
	}
	if saved != "" {
		if err := s.session.SetRoot(ctx, saved); err != nil {
			if err = s.printError(ctx, fmt.Errorf("saved work dir is not usable: %w", err)); err != nil {
				return err
			}
		}
	}
	for s.session.Root() == "" {
		answer, err := s.ask(ctx, rootPrompt)
		if err != nil {
			return err
		}
		location := answer
		if location != "" {
			location = workspace.Resolve("", answer)
		}
		if err := s.session.SetRoot(ctx, location); err != nil {
			if err = s.printError(ctx, fmt.Errorf("wrong path, try again: %w", err)); err != nil {
				return err
			}
			continue
		}
		if err := s.persister.SaveRoot(ctx, s.session.Root()); err != nil {
			return fmt.Errorf("failed to save work dir: %w", err)
		}
	}
	return nil
}

func (s *Service) ask(ctx context.Context, prompt string) (string, error) {
	output := &input.AskOutput{}
	if err := s.actions.Execute(ctx, input.Name, "ask", &input.AskInput{Message: prompt}, output); err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return output.Text, nil
}

func (s *Service) print(ctx context.Context, text string) error {
	return s.actions.Execute(ctx, printer.Name, "print", &printer.Input{Message: text}, &printer.Output{})
}

func (s *Service) printError(ctx context.Context, err error) error {
	return s.actions.Execute(ctx, printer.Name, "print", &printer.Input{Message: err.Error(), Error: true}, &printer.Output{})
}
