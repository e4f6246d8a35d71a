package command

import (
	"context"
	"strings"
)

// Arg declares a positional argument of a command.
type Arg struct {
	Name     string
	Optional bool
}

// Result is the outcome of a dispatched command line.
type Result struct {
	Lines []string
	// Quit asks the caller to stop reading commands.
	Quit bool
}

type handler func(ctx context.Context, args []string) (*Result, error)

// Command describes one shell command.
type Command struct {
	Name        string
	Args        []Arg
	Description string
	// Detached commands can run before the work directory is set.
	Detached bool
	run      handler
}

// Usage renders the command with its argument placeholders.
func (c *Command) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, arg := range c.Args {
		b.WriteString(" {")
		b.WriteString(arg.Name)
		if arg.Optional {
			b.WriteString("?")
		}
		b.WriteString("}")
	}
	return b.String()
}

func lines(text ...string) *Result {
	return &Result{Lines: text}
}
