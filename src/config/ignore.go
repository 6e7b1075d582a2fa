package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/appna-io/apx-linter/src/logging"
)

const (
	// IgnoreJSONFile is checked first and may hold either JSON or plain
	// patterns.
	IgnoreJSONFile = "ignore.apxlintrc"
	IgnoreFile     = ".apxlintignore"
)

// LoadIgnorePatterns returns the ignore patterns of the project in dir
// and the file they came from. Only the first readable candidate is
// consulted; later ones are never merged in.
func LoadIgnorePatterns(dir string) ([]string, string) {
	patterns, source, ok := firstOf(dir, []candidate[[]string]{
		{name: IgnoreJSONFile, parse: ParseIgnore},
		{name: IgnoreFile, parse: ParseIgnore},
	})
	if !ok {
		return nil, ""
	}
	return patterns, source
}

// ParseIgnore decodes ignore-file content. A JSON object contributes its
// "ignore" list, or "ignorePatterns" when "ignore" is absent. Anything
// else is read as newline-separated globs: lines are trimmed, and blank
// lines and lines starting with '#' are dropped.
func ParseIgnore(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			return ignoreFromJSON(obj)
		}
	}
	return ParseIgnoreLines(string(data)), nil
}

func ignoreFromJSON(obj map[string]json.RawMessage) ([]string, error) {
	for _, key := range []string{"ignore", "ignorePatterns"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var list StringList
		if err := json.Unmarshal(raw, &list); err != nil {
			// The file still wins discovery; it just contributes nothing.
			logging.Get("config").Debug().Err(err).Str("key", key).Msg("ignoring malformed ignore list")
			return []string{}, nil
		}
		if list == nil {
			// null falls through to the next key
			continue
		}
		return []string(list), nil
	}
	return []string{}, nil
}

// ParseIgnoreLines parses .gitignore-style content.
func ParseIgnoreLines(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
