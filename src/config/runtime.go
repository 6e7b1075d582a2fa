package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the environment variables read by [LoadRuntime].
const EnvPrefix = "APX_LINT_"

// Runtime holds wrapper knobs that are not project settings.
type Runtime struct {
	// ESLint overrides the discovered eslint executable.
	ESLint string `koanf:"eslint"`
	// LogLevel is a zerolog level name.
	LogLevel string `koanf:"log_level"`
	// TargetBranch is diffed against by --changed.
	TargetBranch string `koanf:"target_branch"`
	NoColor      bool   `koanf:"no_color"`
}

// LoadRuntime reads defaults overlaid with APX_LINT_* variables,
// e.g. APX_LINT_LOG_LEVEL=debug sets log_level.
func LoadRuntime() (*Runtime, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"eslint":        "",
		"log_level":     "warn",
		"target_branch": "",
		"no_color":      false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var rt Runtime
	if err := k.Unmarshal("", &rt); err != nil {
		return nil, fmt.Errorf("decoding runtime settings: %w", err)
	}
	return &rt, nil
}
