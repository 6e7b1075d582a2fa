package rules

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mitchellh/copystructure"
	"gopkg.in/yaml.v3"
)

// Value is a rule's configured severity plus its rule-specific options.
// It encodes the way ESLint expects: a bare severity when there are no
// options, otherwise an array whose first element is the severity.
type Value struct {
	Severity Severity
	Options  []any
}

// Off, Warn and Error build option-less values.
func Off() Value   { return Value{Severity: SeverityOff} }
func Warn() Value  { return Value{Severity: SeverityWarn} }
func Error() Value { return Value{Severity: SeverityError} }

// With returns a value of severity s carrying the given options.
func With(s Severity, opts ...any) Value {
	if len(opts) == 0 {
		return Value{Severity: s}
	}
	return Value{Severity: s, Options: opts}
}

// Clone returns a deep copy; the options payload shares nothing with v.
func (v Value) Clone() Value {
	out := Value{Severity: v.Severity}
	if len(v.Options) > 0 {
		out.Options = copystructure.Must(copystructure.Copy(v.Options)).([]any)
	}
	return out
}

// Raw returns the plain representation used by every encoder:
// "warn" or ["error", opts...].
func (v Value) Raw() any {
	if len(v.Options) == 0 {
		return v.Severity.String()
	}
	c := v.Clone()
	raw := make([]any, 0, len(c.Options)+1)
	raw = append(raw, v.Severity.String())
	return append(raw, c.Options...)
}

func (v Value) String() string {
	data, err := json.Marshal(v.Raw())
	if err != nil {
		return v.Severity.String()
	}
	return string(data)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	return v.Raw(), nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromRaw converts a decoded JSON or YAML rule entry into a Value.
// Integral float64 numbers in the options are narrowed to int so values
// decoded from JSON compare equal to the ones built in Go.
func FromRaw(raw any) (Value, error) {
	list, ok := raw.([]any)
	if !ok {
		s, err := ParseSeverity(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Severity: s}, nil
	}
	if len(list) == 0 {
		return Value{}, fmt.Errorf("rules: empty rule entry")
	}
	s, err := ParseSeverity(list[0])
	if err != nil {
		return Value{}, err
	}
	var opts []any
	for _, o := range list[1:] {
		opts = append(opts, normalize(o))
	}
	return With(s, opts...), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int(t)
		}
		return t
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
