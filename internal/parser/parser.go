package parser

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/lexer"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	Dialect       lexer.Dialect // DialectAuto - по расширению файла
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Stylesheet *ast.Stylesheet
	Bag        *diag.Bag // nil unless Reporter is a *diag.BagReporter
	Errors     uint
}

// Parser - состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token // всегда заканчивается EOF
	pos      int
	opts     Options
	dialect  lexer.Dialect
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile lexes and parses one file. Syntax errors are reported and the
// parser recovers at the next statement, so the returned stylesheet is never nil.
func ParseFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter, Dialect: opts.Dialect})
	p := Parser{
		file:    file,
		toks:    lx.All(),
		opts:    opts,
		dialect: lx.Dialect(),
	}
	p.lastSpan = source.Span{File: file.ID}

	sheet := &ast.Stylesheet{}
	sheet.Statements = p.parseStatements(ctxTop)
	sheet.Sp = source.Span{File: file.ID, Start: 0, End: p.peek().Span.End}

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{Stylesheet: sheet, Bag: bag, Errors: p.opts.CurrentErrors}
}

// raw возвращает текущий токен, включая комментарии
func (p *Parser) raw() token.Token {
	return p.toks[p.pos]
}

// peek returns the current significant token; comments are skipped.
func (p *Parser) peek() token.Token {
	for p.toks[p.pos].Kind == token.Comment {
		p.pos++
	}
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance - съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan - лучший span для диагностики: на EOF указываем сразу после
// последнего съеденного токена.
func (p *Parser) diagSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	limited := p.opts.Enough()
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil || limited {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}
