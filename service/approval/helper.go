package approval

import (
	"context"
	"errors"
	"strings"

	"github.com/viant/ownfm/internal/clock"
	"github.com/viant/ownfm/internal/idgen"
)

// Affirmative is the only answer accepted as approval (case-insensitive).
const Affirmative = "y"

// IsAffirmative reports whether answer approves a request. Anything other
// than "y"/"Y", including an empty answer, is a refusal.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), Affirmative)
}

// NewRequest builds a request with a fresh ID and creation time.
func NewRequest(action, path, question string) *Request {
	return &Request{
		ID:        idgen.NewWithPrefix("confirm"),
		Action:    action,
		Path:      path,
		Question:  question,
		CreatedAt: clock.Now(),
	}
}

// NewDecision records a decision for r.
func NewDecision(r *Request, approved bool, reason string) *Decision {
	return &Decision{
		ID:        r.ID,
		Approved:  approved,
		Reason:    reason,
		DecidedAt: clock.Now(),
	}
}

// Confirm asks svc about r. A missing decision counts as a refusal, so the
// returned decision is never nil when err is nil.
func Confirm(ctx context.Context, svc Service, r *Request) (*Decision, error) {
	if svc == nil {
		return nil, errors.New("approval service was not configured")
	}
	decision, err := svc.Confirm(ctx, r)
	if err != nil {
		return nil, err
	}
	if decision == nil {
		return NewDecision(r, false, "no decision"), nil
	}
	return decision, nil
}
