package command

import "github.com/viant/ownfm/policy"

// Option configures a Router
type Option func(r *Router)

// WithPolicy restricts dispatch to commands allowed by p.
func WithPolicy(p *policy.Policy) Option {
	return func(r *Router) {
		r.policy = p
	}
}

// WithReportUnknown makes unknown commands fail with ErrUnknownCommand
// instead of being ignored.
func WithReportUnknown(report bool) Option {
	return func(r *Router) {
		r.reportUnknown = report
	}
}
