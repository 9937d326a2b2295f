// Package config supplies formatting options: defaults, the line-break
// policy for list-like constructs, and loading from .cssfmt.toml or
// .cssfmt.yaml files.
package config

import (
	"errors"
	"fmt"
)

// Options is passed by value to every formatting run and never mutated.
type Options struct {
	PrintWidth             int             `toml:"print_width" yaml:"print_width"`
	IndentWidth            int             `toml:"indent_width" yaml:"indent_width"`
	UseTabs                bool            `toml:"use_tabs" yaml:"use_tabs"`
	LineBreak              LineBreak       `toml:"line_break" yaml:"line_break"`
	BlockSelectorLineBreak LineBreakPolicy `toml:"block_selector_linebreak" yaml:"block_selector_linebreak"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		PrintWidth:             80,
		IndentWidth:            2,
		UseTabs:                false,
		LineBreak:              LineBreakLF,
		BlockSelectorLineBreak: PolicyConsistent,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.PrintWidth <= 0 {
		return fmt.Errorf("print_width must be positive, got %d", o.PrintWidth)
	}
	if o.IndentWidth <= 0 || o.IndentWidth > 16 {
		return fmt.Errorf("indent_width must be in 1..16, got %d", o.IndentWidth)
	}
	if o.LineBreak > LineBreakCRLF {
		return errors.New("line_break must be lf or crlf")
	}
	if o.BlockSelectorLineBreak > PolicyWrap {
		return errors.New("block_selector_linebreak must be always, consistent or wrap")
	}
	return nil
}

// Newline returns the line terminator selected by LineBreak.
func (o Options) Newline() string {
	if o.LineBreak == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

// Fingerprint is a stable string describing every option, used as part of
// cache keys.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("w=%d;i=%d;t=%t;nl=%s;bsl=%s",
		o.PrintWidth, o.IndentWidth, o.UseTabs, o.LineBreak, o.BlockSelectorLineBreak)
}
