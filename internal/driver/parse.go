package driver

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/lexer"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

type ParseResult struct {
	FileSet    *source.FileSet
	File       *source.File
	Stylesheet *ast.Stylesheet
	Bag        *diag.Bag
}

// Parse loads a stylesheet from disk and parses it.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	sheet, bag := parse(file, maxDiagnostics)
	return &ParseResult{FileSet: fs, File: file, Stylesheet: sheet, Bag: bag}, nil
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a stylesheet and returns every significant token up to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}
