package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []string
		expectErr   bool
	}{
		{description: "empty line", input: "", expected: nil},
		{description: "blank line", input: "  \t ", expected: nil},
		{description: "single word", input: "show_help", expected: []string{"show_help"}},
		{description: "extra spacing", input: "  copy_file   a.txt\tb.txt  ", expected: []string{"copy_file", "a.txt", "b.txt"}},
		{description: "quoted data", input: `write_to_file note.txt "hello world"`, expected: []string{"write_to_file", "note.txt", "hello world"}},
		{description: "escaped quote", input: `write_to_file n "say \"hi\""`, expected: []string{"write_to_file", "n", `say "hi"`}},
		{description: "empty quoted", input: `write_to_file n ""`, expected: []string{"write_to_file", "n", ""}},
		{description: "quote inside word", input: `create_dir a"b`, expected: []string{"create_dir", `a"b`}},
		{description: "unterminated quote", input: `write_to_file n "oops`, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := Parse(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}
