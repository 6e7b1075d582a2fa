package rules

import (
	"sort"
)

// Table maps a rule identifier to its configured value.
type Table map[string]Value

// Clone returns a deep copy of t. A nil table clones to an empty one.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for id, v := range t {
		out[id] = v.Clone()
	}
	return out
}

// IDs returns the rule identifiers in sorted order.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Raw returns the table as plain data for encoders.
func (t Table) Raw() map[string]any {
	out := make(map[string]any, len(t))
	for id, v := range t {
		out[id] = v.Raw()
	}
	return out
}

// Merge combines tables left to right. An identifier present in a later
// table replaces the earlier entry as a whole; options payloads are never
// merged recursively. Inputs are not modified.
func Merge(tables ...Table) Table {
	out := Table{}
	for _, t := range tables {
		for id, v := range t {
			out[id] = v.Clone()
		}
	}
	return out
}

// Disable returns a table turning every given rule off.
func Disable(ids ...string) Table {
	out := make(Table, len(ids))
	for _, id := range ids {
		out[id] = Off()
	}
	return out
}

// SetSeverity returns a copy of t where each rule named in sev takes the
// new severity and keeps its options. Rules absent from t are added
// without options.
func SetSeverity(t Table, sev map[string]Severity) Table {
	out := t.Clone()
	for id, s := range sev {
		v := out[id]
		v.Severity = s
		out[id] = v
	}
	return out
}
