package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_IsAllowed(t *testing.T) {
	testCases := []struct {
		description string
		policy      *Policy
		command     string
		expected    bool
	}{
		{description: "nil policy", policy: nil, command: "delete_dir", expected: true},
		{description: "empty lists", policy: &Policy{}, command: "delete_dir", expected: true},
		{description: "blocked", policy: &Policy{BlockList: []string{"delete_dir"}}, command: "delete_dir", expected: false},
		{description: "blocked case-insensitive", policy: &Policy{BlockList: []string{"DELETE_DIR"}}, command: "delete_dir", expected: false},
		{description: "allow list hit", policy: &Policy{AllowList: []string{"show_content", "quit"}}, command: "quit", expected: true},
		{description: "allow list miss", policy: &Policy{AllowList: []string{"show_content"}}, command: "delete_file", expected: false},
		{description: "block wins over allow", policy: &Policy{AllowList: []string{"quit"}, BlockList: []string{"quit"}}, command: "quit", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.policy.IsAllowed(tc.command))
		})
	}
}

func TestPolicy_Validate(t *testing.T) {
	var nilPolicy *Policy
	assert.NoError(t, nilPolicy.Validate())
	assert.Equal(t, ModeAsk, nilPolicy.EffectiveMode())
	assert.NoError(t, (&Policy{Mode: "AUTO"}).Validate())
	assert.Equal(t, ModeAuto, (&Policy{Mode: "AUTO"}).EffectiveMode())
	assert.Error(t, (&Policy{Mode: "maybe"}).Validate())
}
