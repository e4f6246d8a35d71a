package approval

import "context"

// Service decides confirmation requests. Confirm blocks until a decision is
// available; an error means no decision could be obtained and the guarded
// operation must not run.
type Service interface {
	Confirm(ctx context.Context, r *Request) (*Decision, error)
}
