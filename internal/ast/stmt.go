package ast

// Stylesheet is the root of a parsed file.
type Stylesheet struct {
	Base
	Statements []Statement
}

// Block is {...}.
type Block struct {
	Base
	Statements []Statement
}

// Statement is anything that may appear in a stylesheet or block.
type Statement interface {
	Node
	statement()
}

// AtRule is @name [prelude] [block]. Prelude and Block are nil when absent.
type AtRule struct {
	Base
	Name    *Ident // without '@'
	Prelude Prelude
	Block   *Block
}

// Declaration is name: value [!important].
type Declaration struct {
	Base
	Name      string
	Value     *TokenSeq
	Important bool
}

// QualifiedRule is a style rule: selectors { ... }.
type QualifiedRule struct {
	Base
	Selectors *SelectorList
	Block     *Block
}

// SelectorList is a comma separated list of selectors (1..N).
type SelectorList struct {
	Base
	Selectors []*Selector
}

// Selector is a complex selector kept at token level.
type Selector struct {
	Base
	Tokens *TokenSeq
}

// KeyframeBlock is one step of @keyframes: from, 50% { ... }.
type KeyframeBlock struct {
	Base
	Selectors []KeyframeSelector
	Block     *Block
}

// KeyframeSelector is a Percentage or an InterpolableIdent.
type KeyframeSelector interface {
	Node
	keyframeSelector()
}

func (*Percentage) keyframeSelector()        {}
func (*Ident) keyframeSelector()             {}
func (*InterpolatedIdent) keyframeSelector() {}

// Comment is a /* ... */ comment between statements.
type Comment struct {
	Base
	Text string
}

func (*AtRule) statement()        {}
func (*Declaration) statement()   {}
func (*QualifiedRule) statement() {}
func (*KeyframeBlock) statement() {}
func (*Comment) statement()       {}
