package policy

import (
	"fmt"
	"strings"
)

// Confirmation modes.
const (
	ModeAsk  = "ask"  // ask the user before every destructive action (default)
	ModeAuto = "auto" // approve automatically
	ModeDeny = "deny" // refuse automatically
)

// Policy represents the confirmation and command filtering settings of a
// shell session.
//
//   - Mode controls how confirmations are answered (ask / auto / deny).
//   - AllowList, BlockList filter command names regardless of Mode.
//
// A nil *Policy asks before destructive actions and allows every command.
type Policy struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// EffectiveMode returns Mode, defaulting to ModeAsk.
func (p *Policy) EffectiveMode() string {
	if p == nil || p.Mode == "" {
		return ModeAsk
	}
	return strings.ToLower(p.Mode)
}

// Validate checks the confirmation mode.
func (p *Policy) Validate() error {
	switch p.EffectiveMode() {
	case ModeAsk, ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %v", p.Mode)
}

// IsAllowed evaluates AllowList / BlockList.  Both lists match command
// names case-insensitively.
func (p *Policy) IsAllowed(command string) bool {
	if p == nil {
		return true
	}

	normalized := strings.ToLower(command)

	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}

	// AllowList – if empty everything is allowed, otherwise only the listed
	// entries.
	if len(p.AllowList) == 0 {
		return true
	}

	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}

	return false
}
