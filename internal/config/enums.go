package config

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// LineBreakPolicy selects the separator break used by list-like formatters
// (selector lists, page selectors, document matchers, keyframe selectors).
type LineBreakPolicy uint8

const (
	// PolicyAlways puts every item on its own line.
	PolicyAlways LineBreakPolicy = iota
	// PolicyConsistent keeps the list on one line or breaks after every item.
	PolicyConsistent
	// PolicyWrap breaks only before items that would overflow.
	PolicyWrap
)

func (p LineBreakPolicy) String() string {
	switch p {
	case PolicyAlways:
		return "always"
	case PolicyConsistent:
		return "consistent"
	case PolicyWrap:
		return "wrap"
	}
	return fmt.Sprintf("LineBreakPolicy(%d)", uint8(p))
}

// ParseLineBreakPolicy accepts always, consistent or wrap in any case.
func ParseLineBreakPolicy(s string) (LineBreakPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return PolicyAlways, nil
	case "consistent":
		return PolicyConsistent, nil
	case "wrap":
		return PolicyWrap, nil
	}
	return 0, fmt.Errorf("unknown line break policy %q (want always|consistent|wrap)", s)
}

func (p LineBreakPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *LineBreakPolicy) UnmarshalText(text []byte) error {
	v, err := ParseLineBreakPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *LineBreakPolicy) UnmarshalYAML(node *yaml.Node) error {
	return p.UnmarshalText([]byte(node.Value))
}

// LineBreak selects the newline sequence of the output.
type LineBreak uint8

const (
	LineBreakLF LineBreak = iota
	LineBreakCRLF
)

func (l LineBreak) String() string {
	switch l {
	case LineBreakLF:
		return "lf"
	case LineBreakCRLF:
		return "crlf"
	}
	return fmt.Sprintf("LineBreak(%d)", uint8(l))
}

func (l LineBreak) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *LineBreak) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "lf":
		*l = LineBreakLF
	case "crlf":
		*l = LineBreakCRLF
	default:
		return fmt.Errorf("unknown line break %q (want lf|crlf)", string(text))
	}
	return nil
}

func (l *LineBreak) UnmarshalYAML(node *yaml.Node) error {
	return l.UnmarshalText([]byte(node.Value))
}
