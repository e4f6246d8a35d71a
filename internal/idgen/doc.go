// Package idgen issues the opaque identifiers attached to shell sessions and
// confirmation requests. Callers must not parse them.
package idgen
