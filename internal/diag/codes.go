package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadURL              Code = 1004
	LexSlashSlashInCSS     Code = 1005

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedBlock     Code = 2002
	SynUnclosedParen     Code = 2003
	SynUnexpectedRBrace  Code = 2004
	SynExpectPrelude     Code = 2005
	SynBadPrelude        Code = 2006
	SynExpectColon       Code = 2007
	SynExpectIdentifier  Code = 2008
	SynExpectString      Code = 2009
	SynExpectSelector    Code = 2010
	SynEmptyListItem     Code = 2011
	SynUnknownAtRule     Code = 2012
	SynBlockNotAllowed   Code = 2013
	SynUnclosedInterpol  Code = 2014
	SynExpectDeclaration Code = 2015

	// Форматтер
	FmtInfo                 Code = 3000
	FmtUnsupportedConstruct Code = 3001
	FmtInvariantViolation   Code = 3002
	FmtRoundTripMismatch    Code = 3003

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOConfigError    Code = 4003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:             "Unknown error",
		LexInfo:                 "Lexical information",
		LexUnknownChar:          "Unknown character",
		LexUnterminatedString:   "Unterminated string",
		LexUnterminatedComment:  "Unterminated comment",
		LexBadURL:               "Malformed url()",
		LexSlashSlashInCSS:      "'//' is not a comment in CSS",
		SynInfo:                 "Syntax information",
		SynUnexpectedToken:      "Unexpected token",
		SynUnclosedBlock:        "Unclosed block",
		SynUnclosedParen:        "Unclosed parenthesis",
		SynUnexpectedRBrace:     "Unexpected closing brace",
		SynExpectPrelude:        "Expected at-rule prelude",
		SynBadPrelude:           "Malformed at-rule prelude",
		SynExpectColon:          "Expected ':'",
		SynExpectIdentifier:     "Expected identifier",
		SynExpectString:         "Expected string",
		SynExpectSelector:       "Expected selector",
		SynEmptyListItem:        "Empty item in comma-separated list",
		SynUnknownAtRule:        "Unknown at-rule",
		SynBlockNotAllowed:      "Block not allowed here",
		SynUnclosedInterpol:     "Unclosed interpolation",
		SynExpectDeclaration:    "Expected declaration",
		FmtInfo:                 "Formatter information",
		FmtUnsupportedConstruct: "Unsupported construct",
		FmtInvariantViolation:   "Internal invariant violation",
		FmtRoundTripMismatch:    "Formatting is not stable",
		IOLoadFileError:         "I/O load file error",
		IOWriteFileError:        "I/O write file error",
		IOConfigError:           "Configuration error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
