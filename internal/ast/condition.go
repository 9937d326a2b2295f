package ast

// MediaQueryList is a comma separated list of media queries.
type MediaQueryList struct {
	Base
	Queries []MediaQuery
}

// MediaQuery is a MediaConditionQuery or MediaTypeQuery.
type MediaQuery interface {
	Node
	mediaQuery()
}

// MediaConditionQuery is a query made of a condition only: (min-width: 1px).
type MediaConditionQuery struct {
	Base
	Condition *Condition
}

// MediaTypeQuery is [not|only] type [and condition].
type MediaTypeQuery struct {
	Base
	Modifier  *Ident // optional
	MediaType InterpolableIdent
	And       *Ident     // the "and" keyword, set together with Condition
	Condition *Condition // optional
}

func (*MediaConditionQuery) mediaQuery() {}
func (*MediaTypeQuery) mediaQuery()      {}

// Condition is a boolean combination shared by @media, @supports and @container.
// The first term has either no keyword or "not"; later terms carry "and"/"or".
type Condition struct {
	Base
	Terms []ConditionTerm
}

type ConditionTerm struct {
	Keyword *Ident // nil, not, and, or
	Operand InParens
}

// InParens is the operand of a condition term.
type InParens interface {
	Node
	inParens()
}

// ParenCondition is a nested condition: (a and b).
type ParenCondition struct {
	Base
	Condition *Condition
}

// Feature is (name: value); in @supports it is a declaration test.
type Feature struct {
	Base
	Name  *Ident
	Value *TokenSeq
}

// BooleanFeature is (name).
type BooleanFeature struct {
	Base
	Name *Ident
}

// RangeFeature is a comparison such as (400px <= width < 700px).
type RangeFeature struct {
	Base
	Tokens *TokenSeq
}

// FunctionQuery is a functional operand: selector(...), style(...), font-tech(...).
type FunctionQuery struct {
	Base
	Function *Function
}

func (*ParenCondition) inParens() {}
func (*Feature) inParens()        {}
func (*BooleanFeature) inParens() {}
func (*RangeFeature) inParens()   {}
func (*FunctionQuery) inParens()  {}
