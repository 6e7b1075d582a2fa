// Package lint turns resolved project settings into an ESLint invocation
// and runs it.
package lint

// Invocation is everything the wrapper forwards to ESLint.
type Invocation struct {
	Fix bool
	// Passthrough flags are forwarded verbatim right after --fix.
	Passthrough    []string
	IgnorePatterns []string
	Paths          []string
}

// Args builds the ESLint argument list: the fix flag, pass-through
// flags, one --ignore-pattern pair per pattern, then the paths. Order
// within each group is preserved.
func (inv Invocation) Args() []string {
	args := make([]string, 0, 1+len(inv.Passthrough)+2*len(inv.IgnorePatterns)+len(inv.Paths))
	if inv.Fix {
		args = append(args, "--fix")
	}
	args = append(args, inv.Passthrough...)
	for _, p := range inv.IgnorePatterns {
		args = append(args, "--ignore-pattern", p)
	}
	return append(args, inv.Paths...)
}
