// Package config discovers apx-lint project settings and ignore patterns
// from well-known files, and reads runtime knobs from the environment.
//
// Discovery never fails: a missing, unreadable or malformed file only moves
// the search on to the next candidate, and the end of the list means
// "not configured".
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SettingsJSONFile = ".apxlintrc.json"
	SettingsFile     = ".apxlintrc"
	ManifestFile     = "package.json"

	// ManifestField is the package.json key holding settings.
	ManifestField = "apxlint"
)

// DefaultPaths is linted when neither the command line nor the settings
// name any paths.
var DefaultPaths = []string{"src/**/*.{js,jsx,ts,tsx}"}

// Settings is the project-level apx-lint configuration.
type Settings struct {
	Paths StringList `json:"paths" yaml:"paths"`

	// Source is the file the settings were read from.
	Source string `json:"-" yaml:"-"`
}

var errEmpty = errors.New("empty file")

// LoadSettings returns the settings of the project in dir, or nil when
// no candidate file yields any. Candidates are tried in order:
// .apxlintrc.json, .apxlintrc (JSON or YAML), then the "apxlint" field of
// package.json.
func LoadSettings(dir string) *Settings {
	s, source, ok := firstOf(dir, []candidate[*Settings]{
		{name: SettingsJSONFile, parse: parseSettingsJSON},
		{name: SettingsFile, parse: parseSettingsYAML},
		{name: ManifestFile, parse: parseManifest},
	})
	if !ok || s == nil {
		return nil
	}
	s.Source = source
	return s
}

func parseSettingsJSON(data []byte) (*Settings, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmpty
	}
	s := &Settings{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// parseSettingsYAML also covers JSON content, YAML being a superset.
func parseSettingsYAML(data []byte) (*Settings, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmpty
	}
	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// parseManifest yields nil settings, not an error, for a valid manifest
// without the field; package.json is authoritative once it parses.
func parseManifest(data []byte) (*Settings, error) {
	var manifest struct {
		APXLint *Settings `json:"apxlint"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	return manifest.APXLint, nil
}

// ResolvePaths picks the lint targets. Explicit paths from the command
// line win, then the settings' paths, then [DefaultPaths].
func ResolvePaths(cli []string, s *Settings) []string {
	if len(cli) > 0 {
		return append([]string(nil), cli...)
	}
	if s != nil {
		var paths []string
		for _, p := range s.Paths {
			if strings.TrimSpace(p) != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			return paths
		}
	}
	return append([]string(nil), DefaultPaths...)
}
