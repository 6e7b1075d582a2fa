package lint

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExtensions are the files ESLint picks up when given a directory.
var SourceExtensions = []string{"js", "jsx", "ts", "tsx", "mjs", "cjs"}

// FilterChanged narrows globs down to the changed files that still exist
// under rootDir and match at least one glob. A glob naming a directory
// covers the source files beneath it. A nil changed set means no delta
// information; the globs are then returned as they are.
func FilterChanged(rootDir string, globs []string, changed map[string]bool) []string {
	if changed == nil {
		return globs
	}

	patterns := expandDirs(rootDir, globs)
	targets := make([]string, 0, len(changed))
	for path := range changed {
		if !MatchAny(patterns, path) {
			continue
		}
		info, err := os.Stat(filepath.Join(rootDir, filepath.FromSlash(path)))
		if err != nil || info.IsDir() {
			continue
		}
		targets = append(targets, path)
	}
	sort.Strings(targets)
	return targets
}

// expandDirs rewrites literal directory targets into globs over their
// source files, so "src/" does not drag in stylesheets or docs.
func expandDirs(rootDir string, globs []string) []string {
	out := make([]string, 0, len(globs))
	for _, g := range globs {
		if !strings.ContainsAny(g, "*?[{") {
			info, err := os.Stat(filepath.Join(rootDir, filepath.FromSlash(g)))
			if err == nil && info.IsDir() {
				g = strings.TrimSuffix(g, "/") + "/**/*.{" + strings.Join(SourceExtensions, ",") + "}"
			}
		}
		out = append(out, g)
	}
	return out
}
