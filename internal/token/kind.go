package token

// Kind represents the category of a CSS token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (bad string, bad url).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident      // color, from, --custom
	Function   // calc(  url-prefix(
	AtKeyword  // @media
	Hash       // #fff, #id
	String     // "x" or 'x'
	URL        // url(x), url("x")
	Number     // 10, 1.5
	Percentage // 50%
	Dimension  // 10px
	UnicodeRange
	Delim // single code point: > + ~ * / = ! $ & . # < etc.
	Colon
	Semicolon
	Comma
	LBracket
	RBracket
	LParen
	RParen
	LBrace
	RBrace
	Comment
	CDO   // <!--
	CDC   // -->
	Match // ~= |= ^= $= *= ||
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	Function:     "Function",
	AtKeyword:    "AtKeyword",
	Hash:         "Hash",
	String:       "String",
	URL:          "URL",
	Number:       "Number",
	Percentage:   "Percentage",
	Dimension:    "Dimension",
	UnicodeRange: "UnicodeRange",
	Delim:        "Delim",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	Comment:      "Comment",
	CDO:          "CDO",
	CDC:          "CDC",
	Match:        "Match",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
