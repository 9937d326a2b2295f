package diag

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics: informational notes from the formatter,
// warnings for constructs printed unchanged and errors that stop a file.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError blocks formatting: the file is left as is.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// String is the upper-case label used by the pretty printer.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return strings.ToUpper(severityNames[s])
	}
	return "UNKNOWN"
}

// ParseSeverity принимает info, warning (или warn) и error без учёта регистра.
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return SevWarning, nil
	}
	for sev, n := range severityNames {
		if n == name {
			return Severity(sev), nil
		}
	}
	return SevInfo, fmt.Errorf("unknown severity %q (must be info, warning or error)", s)
}

// MarshalText пишет имя в нижнем регистре, как в конфигах.
func (s Severity) MarshalText() ([]byte, error) {
	if int(s) >= len(severityNames) {
		return nil, fmt.Errorf("invalid severity %d", s)
	}
	return []byte(severityNames[s]), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
