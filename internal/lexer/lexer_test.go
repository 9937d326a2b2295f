package lexer_test

import (
	"testing"

	"cssfmt/internal/diag"
	"cssfmt/internal/lexer"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func lex(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	return lexFile(t, "test.css", input)
}

func lexFile(t *testing.T, name, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(input)))
	rep := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: rep}).All(), rep
}

func TestLexerKindsAndSpans(t *testing.T) {
	src := `@media screen and (min-width:10px){a{color:red}}`
	toks, rep := lex(t, src)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}

	want := []struct {
		kind token.Kind
		text string
	}{
		{token.AtKeyword, "@media"},
		{token.Ident, "screen"},
		{token.Ident, "and"},
		{token.LParen, "("},
		{token.Ident, "min-width"},
		{token.Colon, ":"},
		{token.Dimension, "10px"},
		{token.RParen, ")"},
		{token.LBrace, "{"},
		{token.Ident, "a"},
		{token.LBrace, "{"},
		{token.Ident, "color"},
		{token.Colon, ":"},
		{token.Ident, "red"},
		{token.RBrace, "}"},
		{token.RBrace, "}"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d = %s %q, want %s %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
		if w.kind == token.EOF {
			continue
		}
		if got := src[toks[i].Span.Start:toks[i].Span.End]; got != w.text {
			t.Errorf("token %d span covers %q, want %q", i, got, w.text)
		}
	}
}

func TestLexerSpaceBefore(t *testing.T) {
	toks, _ := lex(t, "a  b/* c */d,e")
	got := []bool{}
	for _, tok := range toks {
		if tok.Kind == token.Ident {
			got = append(got, tok.SpaceBefore)
		}
	}
	want := []bool{false, true, true, false}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ident %d SpaceBefore = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerURLAndPercentage(t *testing.T) {
	toks, _ := lex(t, `url(a.css) url("b.css") 50%`)
	kinds := []token.Kind{token.URL, token.URL, token.Percentage, token.EOF}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerReportsUnterminatedString(t *testing.T) {
	_, rep := lex(t, "@charset \"utf-8\n;")
	if len(rep.diagnostics) == 0 {
		t.Fatalf("expected a diagnostic")
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("x.css", []byte("a"))), lexer.Options{})
	_ = lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %s", tok.Kind)
		}
	}
}

func TestLexerCustomPropertyAndInterpolation(t *testing.T) {
	toks, _ := lex(t, `--main #{$x}`)
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.Ident, "--main"},
		{token.Delim, "#"},
		{token.LBrace, "{"},
		{token.Delim, "$"},
		{token.Ident, "x"},
		{token.RBrace, "}"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d = %s %q, want %s %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestLexerLineComments(t *testing.T) {
	src := "// note  \na { b: url(//cdn/x.png); // tail\n}"
	toks, rep := lexFile(t, "site.scss", src)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.Comment, "// note"},
		{token.Ident, "a"},
		{token.LBrace, "{"},
		{token.Ident, "b"},
		{token.Colon, ":"},
		{token.URL, "url(//cdn/x.png)"},
		{token.Semicolon, ";"},
		{token.Comment, "// tail"},
		{token.RBrace, "}"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d = %s %q, want %s %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
		if got := src[toks[i].Span.Start:toks[i].Span.End]; got != w.text {
			t.Errorf("token %d span text = %q", i, got)
		}
	}
	if !toks[0].IsLineComment() || !toks[1].SpaceBefore {
		t.Errorf("line comment flags: %+v %+v", toks[0], toks[1])
	}
}

func TestLexerLineCommentsByDialect(t *testing.T) {
	tests := []struct {
		name     string
		dialect  lexer.Dialect
		comments int
	}{
		{"a.css", lexer.DialectAuto, 0},
		{"a.less", lexer.DialectAuto, 1},
		{"a.SCSS", lexer.DialectAuto, 1},
		{"<stdin>", lexer.DialectSCSS, 1},
		{"a.scss", lexer.DialectCSS, 0},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual(tt.name, []byte("// x /* y */\na{}")))
		lx := lexer.New(file, lexer.Options{Dialect: tt.dialect})
		comments := 0
		for _, tok := range lx.All() {
			if tok.Kind == token.Comment {
				comments++
			}
		}
		if comments != tt.comments {
			t.Errorf("%s (%s): %d comments, want %d", tt.name, lx.Dialect(), comments, tt.comments)
		}
	}
}
