package command

import "errors"

var (
	// ErrUnknownCommand is reported for unrecognised commands when the router is configured to report them.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrCommandBlocked is returned when the policy refuses a command.
	ErrCommandBlocked = errors.New("command blocked by policy")
	// ErrNoWorkDir is returned when a command needs a work directory that has not been chosen yet.
	ErrNoWorkDir = errors.New("work directory is not set")
)
