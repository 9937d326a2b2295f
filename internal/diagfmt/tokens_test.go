package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cssfmt/internal/lexer"
	"cssfmt/internal/source"
)

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.css", []byte("@media print;"))
	toks := lexer.New(fs.Get(id), lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 token lines, got %d:\n%s", len(lines), pretty.String())
	}
	if !strings.Contains(lines[0], `AtKeyword    "@media" at 1:1-1:7`) {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(space)") {
		t.Errorf("second token should be marked as spaced: %q", lines[1])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 4 || out[1].Kind != "Ident" || out[1].Text != "print" || !out[1].SpaceBefore {
		t.Errorf("unexpected tokens: %+v", out)
	}
	if out[3].Kind != "EOF" {
		t.Errorf("last token = %+v", out[3])
	}
}
