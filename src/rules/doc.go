// Package rules holds the shared ESLint rule set and the pure helpers that
// combine rule tables: [Merge], [Disable] and [SetSeverity].
//
// Every helper returns a fresh [Table]; inputs and the package's own tables
// are never modified.
package rules
