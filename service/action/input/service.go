package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/viant/ownfm/model/types"
)

// Name of the service as used by the command router.
const Name = "input"

// Service reads user lines for the shell: command lines, the first-run work
// directory prompt and confirmation answers all come through the same
// buffered reader, so a confirmation never swallows the next command.
//
// Tests can substitute Reader/Writer to avoid interactive TTY requirements.
type Service struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Service that reads from stdin and writes prompts to stdout.
func New() *Service {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO lets callers override the input/output streams (handy for tests).
func NewWithIO(in io.Reader, out io.Writer) *Service {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Service{reader: bufio.NewReader(in), out: out}
}

type AskInput struct {
	Message string `json:"message,omitempty"` // prompt shown to the user
	Default string `json:"default,omitempty"` // fallback value if the user enters empty line
}

type AskOutput struct {
	Text string `json:"text,omitempty"`
}

// Ask prints the prompt and returns the trimmed answer. io.EOF is returned
// only when the stream is closed before any character was read.
func (s *Service) Ask(ctx context.Context, input *AskInput, output *AskOutput) error {
	prompt := strings.TrimRight(input.Message, " ")
	if prompt != "" {
		fmt.Fprint(s.out, prompt+" ")
	}
	line, err := s.ReadLine(ctx)
	if err != nil {
		return err
	}
	if line == "" {
		line = input.Default
	}
	output.Text = line
	return nil
}

// ReadLine reads one line without printing a prompt.
func (s *Service) ReadLine(ctx context.Context) (string, error) {
	response, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		if response == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(response), nil
}

func (s *Service) ask(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*AskInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*AskOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.Ask(ctx, input, output)
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "ask",
			Description: "Prompts the user for a line of input and returns the response.",
			Input:       reflect.TypeOf(&AskInput{}),
			Output:      reflect.TypeOf(&AskOutput{}),
		},
	}
}

func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "ask":
		return s.ask, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
