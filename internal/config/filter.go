package config

import (
	"path/filepath"
	"strings"
)

// IncludeFile returns true if the given relative file path should be
// checked, based on the exclude/include patterns in cfg.
//
// Logic:
//  1. If include patterns are set, the file must match at least one
//     include pattern to be processed.
//  2. If the file matches any exclude pattern, it is excluded.
//  3. Otherwise, the file is included.
func (c *Config) IncludeFile(rel string) bool {
	// Normalize separators to forward slash for matching consistency.
	rel = filepath.ToSlash(rel)

	// Include override: if include patterns are set, file must match
	// at least one.
	if len(c.Check.Include) > 0 {
		matched := false
		for _, pattern := range c.Check.Include {
			if matchGlob(pattern, rel) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Exclude: if the file matches any exclude pattern, skip it.
	for _, pattern := range c.Check.Exclude {
		if matchGlob(pattern, rel) {
			return false
		}
	}

	return true
}

// matchGlob matches a path against a glob pattern. It supports
// both simple glob syntax (filepath.Match) and double-star
// prefix patterns like "vendor/**" and "testdata/**".
func matchGlob(pattern, rel string) bool {
	// Handle double-star suffix: "vendor/**" matches any file under
	// a "vendor/" directory at any depth.
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
			return true
		}
		if !strings.Contains(prefix, "/") {
			if strings.Contains(rel, "/"+prefix+"/") || strings.HasSuffix(rel, "/"+prefix) {
				return true
			}
		}
		return false
	}

	// Handle simple patterns like "main.go" or "*.pb.go".
	matched, err := filepath.Match(pattern, rel)
	if err != nil {
		return false
	}
	if matched {
		return true
	}

	// Also try matching just the base name for patterns without
	// path separators (e.g., "*.pb.go" matches a nested file).
	if !strings.Contains(pattern, "/") {
		base := filepath.Base(rel)
		matched, err := filepath.Match(pattern, base)
		if err != nil {
			return false
		}
		return matched
	}

	return false
}
