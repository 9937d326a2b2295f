package format

import (
	"bytes"
	"slices"
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/config"
	"cssfmt/internal/diag"
	"cssfmt/internal/lexer"
	"cssfmt/internal/parser"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// CheckRoundTrip formats sf, parses the output again and verifies that the
// statement structure survived, that no token or comment was lost or
// altered, and that a second pass changes nothing.
func CheckRoundTrip(sf *source.File, opt config.Options, maxDiag int) (ok bool, msg string) {
	origBag := diag.NewBag(maxDiag)
	orig := parseOnce(sf, origBag)
	if origBag.HasErrors() {
		return false, "fmt-check: initial parse has errors"
	}

	formatted, err := FormatFile(sf, orig, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs2 := source.NewFileSet()
	rebuilt := fs2.Get(fs2.AddVirtual(sf.Path, formatted))
	newBag := diag.NewBag(maxDiag)
	again := parseOnce(rebuilt, newBag)
	if newBag.HasErrors() {
		return false, "fmt-check: reparse failed"
	}

	if !sameShape(orig.Statements, again.Statements) {
		return false, "fmt-check: statement structure differs after round-trip"
	}
	if !sameTokens(sf, rebuilt) {
		return false, "fmt-check: token stream differs after round-trip"
	}

	second, err := FormatFile(rebuilt, again, opt)
	if err != nil {
		return false, "fmt-check: second pass failed: " + err.Error()
	}
	if !bytes.Equal(formatted, second) {
		return false, "fmt-check: output is not stable under a second pass"
	}
	return true, "fmt-check: OK"
}

func parseOnce(sf *source.File, bag *diag.Bag) *ast.Stylesheet {
	opts := parser.Options{Reporter: &diag.BagReporter{Bag: bag}, MaxErrors: uint(bag.Cap())}
	return parser.ParseFile(sf, opts).Stylesheet
}

// sameTokens сравнивает значимые токены и, отдельно, тексты комментариев:
// форматтер может переставить комментарий за ';', но не потерять его.
// Имена сравниваются без учёта регистра, строки, url и комментарии - точно.
func sameTokens(a, b *source.File) bool {
	codeA, commentsA := tokenStream(a)
	codeB, commentsB := tokenStream(b)
	return slices.Equal(codeA, codeB) && slices.Equal(commentsA, commentsB)
}

func tokenStream(sf *source.File) (code, comments []string) {
	for _, t := range lexer.New(sf, lexer.Options{}).All() {
		switch t.Kind {
		case token.Semicolon, token.CDO, token.CDC, token.EOF:
		case token.Comment:
			comments = append(comments, t.Text)
		case token.String, token.URL:
			code = append(code, t.Text)
		default:
			code = append(code, token.ToLowerASCII(t.Text))
		}
	}
	return code, comments
}

func sameShape(a, b []ast.Statement) bool {
	var sa, sb strings.Builder
	writeShape(&sa, a)
	writeShape(&sb, b)
	return sa.String() == sb.String()
}

// writeShape пишет структурную сигнатуру: виды операторов (без
// комментариев), имена at-rule, виды прелюдий и вложенность блоков.
// Ключевые кадры from/to сравниваются без учёта регистра.
func writeShape(sb *strings.Builder, stmts []ast.Statement) {
	for _, s := range stmts {
		switch x := s.(type) {
		case *ast.AtRule:
			sb.WriteString("@")
			if x.Name != nil {
				sb.WriteString(token.ToLowerASCII(x.Name.Name))
			}
			if x.Prelude != nil {
				sb.WriteString(":" + x.Prelude.Kind().String())
			}
			writeBlockShape(sb, x.Block)
		case *ast.Declaration:
			sb.WriteString("decl:" + x.Name)
		case *ast.QualifiedRule:
			sb.WriteString("rule")
			if x.Selectors != nil {
				sb.WriteString(":" + strings.Repeat(",", len(x.Selectors.Selectors)))
			}
			writeBlockShape(sb, x.Block)
		case *ast.KeyframeBlock:
			sb.WriteString("keyframe:")
			for _, sel := range x.Selectors {
				if id, ok := sel.(*ast.Ident); ok {
					sb.WriteString(token.ToLowerASCII(id.Name))
				}
				sb.WriteString(",")
			}
			writeBlockShape(sb, x.Block)
		case *ast.Comment:
			// комментарии сверяет sameTokens: форматтер может
			// перенести комментарий из значения за ';'
			continue
		}
		sb.WriteString(";")
	}
}

func writeBlockShape(sb *strings.Builder, b *ast.Block) {
	if b == nil {
		return
	}
	sb.WriteString("{")
	writeShape(sb, b.Statements)
	sb.WriteString("}")
}
