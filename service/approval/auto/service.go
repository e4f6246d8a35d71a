package auto

import (
	"context"
	"errors"

	approval "github.com/viant/ownfm/service/approval"
)

// Service answers every request with the same decision. It backs the
// "auto" (approve) and "deny" (refuse) confirmation modes.
type Service struct {
	approved bool
	reason   string
}

// Confirm returns the configured decision without asking.
func (s *Service) Confirm(ctx context.Context, r *approval.Request) (*approval.Decision, error) {
	if r == nil {
		return nil, errors.New("invalid request")
	}
	return approval.NewDecision(r, s.approved, s.reason), nil
}

// New returns a service that always decides approved with reason.
func New(approved bool, reason string) *Service {
	return &Service{approved: approved, reason: reason}
}
