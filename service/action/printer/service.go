package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/viant/ownfm/model/types"
)

// Name of the service as registered in the actions registry.
const Name = "printer"

// Service writes shell messages to standard output and errors to standard
// error. Errors are colored red when standard error is a terminal.
type Service struct {
	out    io.Writer
	errOut io.Writer
	alert  *color.Color
}

type Input struct {
	Message string
	Error   bool
}

// Output represents output from printing
type Output struct {
}

// New creates a printer bound to stdout/stderr.
func New() *Service {
	return NewWithIO(os.Stdout, os.Stderr)
}

// NewWithIO creates a printer bound to the supplied writers.
func NewWithIO(out, errOut io.Writer) *Service {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	alert := color.New(color.FgRed)
	if !isTerminal(errOut) {
		alert.DisableColor()
	} else {
		alert.EnableColor()
	}
	return &Service{out: out, errOut: errOut, alert: alert}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "print",
			Description: "Prints the given message to standard output, or to standard error when flagged as error.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "print":
		return s.print, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) print(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	if input.Error {
		s.alert.Fprintln(s.errOut, input.Message)
		return nil
	}
	fmt.Fprintln(s.out, input.Message)
	return nil
}
