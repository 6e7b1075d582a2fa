package lint

import (
	"path/filepath"
	"strings"
)

// MatchGlob matches a glob pattern supporting ** and {a,b} alternation
// against a forward-slash path. A pattern without glob metacharacters is
// a file or directory, and matches that file or anything beneath it.
func MatchGlob(pattern, path string) bool {
	path = strings.TrimPrefix(path, "./")
	for _, p := range ExpandBraces(pattern) {
		p = strings.TrimPrefix(p, "./")
		if !strings.ContainsAny(p, "*?[") {
			if matchPrefix(p, path) {
				return true
			}
			continue
		}
		if matchGlob(p, path) {
			return true
		}
	}
	return false
}

func matchPrefix(dir, path string) bool {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return true
	}
	return path == dir || strings.HasPrefix(path, dir+"/")
}

// MatchAny reports whether path matches at least one pattern.
func MatchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if MatchGlob(p, path) {
			return true
		}
	}
	return false
}

// ExpandBraces expands {a,b} alternations, including nested and repeated
// groups: "src/**/*.{js,ts}" → ["src/**/*.js", "src/**/*.ts"]. A pattern
// with unbalanced braces is returned unchanged.
func ExpandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}

	depth := 0
	closeIdx := -1
	var commas []int
	for i := open; i < len(pattern) && closeIdx < 0; i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}
	if closeIdx < 0 {
		return []string{pattern}
	}

	prefix, suffix := pattern[:open], pattern[closeIdx+1:]
	bounds := append([]int{open}, commas...)
	bounds = append(bounds, closeIdx)

	var out []string
	for i := 0; i+1 < len(bounds); i++ {
		alt := pattern[bounds[i]+1 : bounds[i+1]]
		out = append(out, ExpandBraces(prefix+alt+suffix)...)
	}
	return out
}

// matchGlob extends filepath.Match with support for "**" (zero or more path
// segments). Patterns without "**" delegate directly to filepath.Match.
func matchGlob(pattern, path string) bool {
	if !strings.Contains(pattern, "**") {
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	idx := strings.Index(pattern, "**")
	prefix := pattern[:idx]
	suffix := strings.TrimLeft(pattern[idx+2:], "/")

	if prefix != "" {
		prefix = strings.TrimRight(prefix, "/")
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		path = strings.TrimPrefix(path, prefix)
		path = strings.TrimLeft(path, "/")
	}

	// ** at the end matches everything remaining.
	if suffix == "" {
		return true
	}

	// Try the suffix against every tail: "a/b/c", "b/c", "c".
	parts := strings.Split(path, "/")
	for i := 0; i <= len(parts); i++ {
		tail := strings.Join(parts[i:], "/")
		if matchGlob(suffix, tail) {
			return true
		}
	}

	return false
}
