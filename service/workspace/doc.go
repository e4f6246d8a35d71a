// Package workspace resolves user supplied names into canonical absolute
// paths and decides whether those paths stay inside the configured work
// directory. It also defines the error kinds shared by the session and the
// storage operations.
package workspace
