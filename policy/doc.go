// Package policy holds the declarative shell rules read from configuration:
// how destructive confirmations are answered and which commands may run.
package policy
