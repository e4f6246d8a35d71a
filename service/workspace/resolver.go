package workspace

import (
	"os"
	"path/filepath"
)

// Resolve returns the absolute, cleaned form of name relative to base.
// An empty name resolves to base itself; an empty base falls back to the
// process working directory. Resolve never checks existence.
func Resolve(base, name string) string {
	return Canonical(join(base, name))
}

// ResolveEntry is Resolve for a path naming a directory entry: links in the
// parent directories are resolved but the last segment is kept as typed, so
// a symbolic link designates the link itself rather than its target.
func ResolveEntry(base, name string) string {
	p := join(base, name)
	parent := filepath.Dir(p)
	if name == "" || parent == p {
		return Canonical(p)
	}
	return filepath.Join(Canonical(parent), filepath.Base(p))
}

func join(base, name string) string {
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}
	if name == "" {
		return base
	}
	if !filepath.IsAbs(name) {
		return filepath.Join(base, name)
	}
	return filepath.Clean(name)
}

// Canonical cleans p and resolves symbolic links on its deepest existing
// ancestor, keeping the not yet existing tail as typed. A link inside the
// work directory pointing elsewhere therefore resolves to its real target.
func Canonical(p string) string {
	if p == "" {
		return p
	}
	p = filepath.Clean(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	existing, tail := p, ""
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return p
		}
		tail = filepath.Join(filepath.Base(existing), tail)
		existing = parent
	}
	real, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return p
	}
	if tail == "" {
		return real
	}
	return filepath.Join(real, tail)
}
