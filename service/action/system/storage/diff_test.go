package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDiff(t *testing.T) {
	testCases := []struct {
		description string
		old         string
		new         string
		expected    DiffStats
		empty       bool
	}{
		{description: "modified and added", old: "line1\nline2\nline3\n", new: "line1\nline2 changed\nline3\n+added\n", expected: DiffStats{Added: 2, Removed: 1}},
		{description: "new content", old: "", new: "hello", expected: DiffStats{Added: 1}},
		{description: "overwrite single line", old: "hello", new: "world", expected: DiffStats{Added: 1, Removed: 1}},
		{description: "truncate", old: "a\nb\n", new: "", expected: DiffStats{Removed: 2}},
		{description: "identical", old: "same", new: "same", empty: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			diff, stats, err := GenerateDiff([]byte(tc.old), []byte(tc.new), "sample.txt", 3)
			assert.NoError(t, err)
			assert.Equal(t, tc.empty, diff == "")
			assert.Equal(t, tc.expected, stats)
		})
	}
}
