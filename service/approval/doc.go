// Package approval implements the confirmation gate guarding irreversible
// operations. A request describes what is about to happen; a decision records
// whether the user agreed. Implementations live in sub-packages: console asks
// on the terminal, auto answers from a fixed policy.
package approval
