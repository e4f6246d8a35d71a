package input

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Ask(t *testing.T) {
	type testCase struct {
		name     string
		input    *AskInput
		userIO   string // simulated user keystrokes
		expected *AskOutput
		prompt   string
		err      error
	}

	cases := []testCase{
		{
			name:     "free-form",
			input:    &AskInput{Message: "Choose work directory (absolute path):"},
			userIO:   "/tmp/ws\n",
			expected: &AskOutput{Text: "/tmp/ws"},
			prompt:   "Choose work directory (absolute path): ",
		},
		{
			name:     "default when empty",
			input:    &AskInput{Message: "Delete? (y/N)", Default: "n"},
			userIO:   "\n",
			expected: &AskOutput{Text: "n"},
			prompt:   "Delete? (y/N) ",
		},
		{
			name:     "last line without newline",
			input:    &AskInput{Message: ">"},
			userIO:   "quit",
			expected: &AskOutput{Text: "quit"},
			prompt:   "> ",
		},
		{
			name:     "closed stream",
			input:    &AskInput{Message: ">"},
			userIO:   "",
			expected: &AskOutput{},
			prompt:   "> ",
			err:      io.EOF,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outW := new(strings.Builder)
			svc := NewWithIO(strings.NewReader(tc.userIO), outW)

			exec, err := svc.Method("ask")
			if !assert.NoError(t, err) {
				return
			}
			out := &AskOutput{}
			err = exec(context.Background(), tc.input, out)
			assert.Equal(t, tc.err, err)
			assert.EqualValues(t, tc.expected, out)
			assert.Equal(t, tc.prompt, outW.String())
		})
	}
}

func TestService_SharedReader(t *testing.T) {
	ctx := context.Background()
	svc := NewWithIO(strings.NewReader("delete_dir sub\ny\nshow_cur_dir\n"), io.Discard)

	var lines []string
	for {
		line, err := svc.ReadLine(ctx)
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"delete_dir sub", "y", "show_cur_dir"}, lines)
}
