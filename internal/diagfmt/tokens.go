package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

type TokenOutput struct {
	Kind        string      `json:"kind"`
	Text        string      `json:"text,omitempty"`
	Span        source.Span `json:"span"`
	SpaceBefore bool        `json:"space_before,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.SpaceBefore {
			fmt.Fprint(w, " (space)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:        tok.Kind.String(),
			Text:        tok.Text,
			Span:        tok.Span,
			SpaceBefore: tok.SpaceBefore,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
