package rules

import (
	"fmt"
	"strings"
)

// Severity is how ESLint reports a rule violation.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Valid reports whether s is one of off, warn or error.
func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

// ParseSeverity accepts the names ESLint accepts ("off", "warn", "error")
// and the legacy numeric aliases 0, 1 and 2, either as numbers or strings.
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case Severity:
		if t.Valid() {
			return t, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "1":
			return SeverityWarn, nil
		case "error", "2":
			return SeverityError, nil
		}
	case int:
		return severityFromNumber(float64(t))
	case int64:
		return severityFromNumber(float64(t))
	case uint64:
		return severityFromNumber(float64(t))
	case float64:
		return severityFromNumber(t)
	}
	return 0, fmt.Errorf("rules: invalid severity %v", v)
}

func severityFromNumber(n float64) (Severity, error) {
	switch n {
	case 0:
		return SeverityOff, nil
	case 1:
		return SeverityWarn, nil
	case 2:
		return SeverityError, nil
	}
	return 0, fmt.Errorf("rules: invalid severity %v", n)
}
