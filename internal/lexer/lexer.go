package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cssfmt/internal/diag"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// Lexer turns a stylesheet into significant tokens. The heavy lifting is done
// by the tdewolff CSS tokenizer; this type attaches spans, folds whitespace
// into SpaceBefore and classifies tokens into token.Kind.
type Lexer struct {
	file   *source.File
	inner  *css.Lexer
	opts   Options
	offset int  // байтовое смещение начала следующей лексемы
	space  bool // перед следующим значимым токеном был пробел/комментарий
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Dialect == DialectAuto {
		opts.Dialect = DialectFor(file.Path)
	}
	return &Lexer{
		file:  file,
		inner: css.NewLexer(parse.NewInputBytes(file.Content)),
		opts:  opts,
	}
}

// Next returns the next significant token. Whitespace is never returned.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	for {
		if lx.done {
			return token.Token{Kind: token.EOF, Span: lx.span(len(lx.file.Content), len(lx.file.Content)), SpaceBefore: lx.space}
		}

		tt, data := lx.inner.Next()
		start := lx.offset
		lx.offset += len(data)

		switch tt {
		case css.ErrorToken:
			lx.finish()
			continue
		case css.WhitespaceToken:
			lx.space = true
			continue
		}

		if tt == css.DelimToken && lx.atLineComment(data) {
			if lx.opts.Dialect.LineComments() {
				return lx.lineComment(start)
			}
			lx.warn(diag.LexSlashSlashInCSS, lexSpan{start, start + 2}, "'//' starts a comment only in SCSS and Less; use /* */ in CSS")
		}

		kind := classify(tt)
		tok := token.Token{
			Kind:        kind,
			Span:        lx.span(start, lx.offset),
			Text:        string(data),
			SpaceBefore: lx.space,
		}
		lx.space = kind == token.Comment

		switch tt {
		case css.BadStringToken:
			lx.report(diag.LexUnterminatedString, lexSpan{start, lx.offset}, "unterminated string")
		case css.BadURLToken:
			lx.report(diag.LexBadURL, lexSpan{start, lx.offset}, "malformed url()")
		case css.CommentToken:
			if len(data) < 4 || string(data[len(data)-2:]) != "*/" {
				lx.report(diag.LexUnterminatedComment, lexSpan{start, lx.offset}, "unterminated comment")
			}
		}
		return tok
	}
}

// Dialect returns the dialect the lexer was resolved to.
func (lx *Lexer) Dialect() Dialect {
	return lx.opts.Dialect
}

// atLineComment: текущий Delim "/" и следующий байт тоже '/'.
// url(//cdn/x.css) сюда не попадает, tdewolff отдаёт его целиком как URLToken.
func (lx *Lexer) atLineComment(data []byte) bool {
	return len(data) == 1 && data[0] == '/' && lx.offset < len(lx.file.Content) && lx.file.Content[lx.offset] == '/'
}

// lineComment reads "//..." up to the end of the line, trailing blanks
// excluded, and restarts the inner tokenizer after it.
func (lx *Lexer) lineComment(start int) token.Token {
	content := lx.file.Content
	end := len(content)
	if i := bytes.IndexByte(content[start:], '\n'); i >= 0 {
		end = start + i
	}
	for end > start+2 && (content[end-1] == ' ' || content[end-1] == '\t' || content[end-1] == '\r') {
		end--
	}
	tok := token.Token{
		Kind:        token.Comment,
		Span:        lx.span(start, end),
		Text:        string(content[start:end]),
		SpaceBefore: lx.space,
	}
	lx.offset = end
	lx.inner = css.NewLexer(parse.NewInputBytes(content[end:]))
	lx.space = true
	return tok
}

// All drains the lexer and returns every token including the trailing EOF.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/3+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) finish() {
	lx.done = true
	if err := lx.inner.Err(); err != nil && !errors.Is(err, io.EOF) {
		lx.report(diag.LexUnknownChar, lexSpan{lx.offset, lx.offset}, fmt.Sprintf("tokenizer stopped: %v", err))
		return
	}
	if lx.offset < len(lx.file.Content) {
		// tdewolff трактует NUL как конец ввода
		lx.report(diag.LexUnknownChar, lexSpan{lx.offset, lx.offset + 1}, "unexpected NUL byte")
	}
}

func (lx *Lexer) span(start, end int) source.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("token offset overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("token offset overflow: %w", err))
	}
	return source.Span{File: lx.file.ID, Start: s, End: e}
}

func classify(tt css.TokenType) token.Kind {
	switch tt {
	case css.IdentToken, css.CustomPropertyNameToken:
		return token.Ident
	case css.FunctionToken:
		return token.Function
	case css.AtKeywordToken:
		return token.AtKeyword
	case css.HashToken:
		return token.Hash
	case css.StringToken:
		return token.String
	case css.URLToken:
		return token.URL
	case css.NumberToken:
		return token.Number
	case css.PercentageToken:
		return token.Percentage
	case css.DimensionToken:
		return token.Dimension
	case css.UnicodeRangeToken:
		return token.UnicodeRange
	case css.DelimToken:
		return token.Delim
	case css.ColonToken:
		return token.Colon
	case css.SemicolonToken:
		return token.Semicolon
	case css.CommaToken:
		return token.Comma
	case css.LeftBracketToken:
		return token.LBracket
	case css.RightBracketToken:
		return token.RBracket
	case css.LeftParenthesisToken:
		return token.LParen
	case css.RightParenthesisToken:
		return token.RParen
	case css.LeftBraceToken:
		return token.LBrace
	case css.RightBraceToken:
		return token.RBrace
	case css.CommentToken:
		return token.Comment
	case css.CDOToken:
		return token.CDO
	case css.CDCToken:
		return token.CDC
	case css.IncludeMatchToken, css.DashMatchToken, css.PrefixMatchToken,
		css.SuffixMatchToken, css.SubstringMatchToken, css.ColumnToken:
		return token.Match
	default:
		return token.Invalid
	}
}
