package types

// Service groups related shell operations behind named methods so that the
// command router can look them up by name.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
