package workspace

import (
	"path/filepath"
	"strings"
)

// IsConfined reports whether candidate equals root or lies below it. Both
// paths are compared segment by segment, so /home/a does not contain
// /home/abc. An empty root confines nothing.
func IsConfined(root, candidate string) bool {
	if root == "" || candidate == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(candidate))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// Confine returns an *OutsideRootError unless candidate is confined under root.
func Confine(root, candidate string) error {
	if IsConfined(root, candidate) {
		return nil
	}
	return &OutsideRootError{Path: candidate, Root: root}
}
