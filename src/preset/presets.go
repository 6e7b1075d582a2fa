package preset

import (
	"sort"

	"github.com/appna-io/apx-linter/src/rules"
)

const (
	NameRecommended = "recommended"
	NameStrict      = "strict"
	NameRelaxed     = "relaxed"
)

var (
	recommended = Build(Options{})
	strict      = Build(Options{Strict: true})
	relaxed     = Build(Options{Rules: rules.Relaxation()})

	named = map[string]*Config{
		NameRecommended: &recommended,
		NameStrict:      &strict,
		NameRelaxed:     &relaxed,
	}
)

// Recommended is the default preset.
func Recommended() Config { return recommended.Clone() }

// Strict turns the strict overlay on.
func Strict() Config { return strict.Clone() }

// Relaxed turns off explicit-any, console and import-cycle checks.
func Relaxed() Config { return relaxed.Clone() }

// Named looks a preset up by name.
func Named(name string) (Config, bool) {
	c, ok := named[name]
	if !ok {
		return Config{}, false
	}
	return c.Clone(), true
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
