package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/ownfm/service/action/input"
	approval "github.com/viant/ownfm/service/approval"
)

// Asker prompts for a line of input.
type Asker interface {
	Ask(ctx context.Context, input *input.AskInput, output *input.AskOutput) error
}

// Service asks the question on the terminal and approves only on "y".
type Service struct {
	asker Asker
}

// Confirm prints the question and approves only when the answer is "y".
// A read failure, including a closed input, is returned as an error.
func (s *Service) Confirm(ctx context.Context, r *approval.Request) (*approval.Decision, error) {
	if r == nil {
		return nil, errors.New("invalid request")
	}
	output := &input.AskOutput{}
	if err := s.asker.Ask(ctx, &input.AskInput{Message: r.Question}, output); err != nil {
		return nil, fmt.Errorf("failed to read confirmation for %s: %w", r.Action, err)
	}
	if approval.IsAffirmative(output.Text) {
		return approval.NewDecision(r, true, ""), nil
	}
	return approval.NewDecision(r, false, "declined by user"), nil
}

// New creates a console confirmation gate.
func New(asker Asker) *Service {
	return &Service{asker: asker}
}
