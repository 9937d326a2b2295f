package ast

// PreludeKind tags the active variant of an at-rule prelude.
type PreludeKind uint8

const (
	PreludeMedia PreludeKind = iota
	PreludeCharset
	PreludeColorProfile
	PreludeContainer
	PreludeCounterStyle
	PreludeCustomMedia
	PreludeDocument
	PreludeFontFeatureValues
	PreludeFontPaletteValues
	PreludeImport
	PreludeKeyframes
	PreludeLayer
	PreludeNamespace
	PreludeNest
	PreludePage
	PreludePositionFallback
	PreludeProperty
	PreludeVendorExpr
	PreludeScrollTimeline
	PreludeSupports
	// PreludeUnknown marks at-rules the grammar does not model.
	PreludeUnknown

	NumPreludeKinds
)

var preludeKindNames = [...]string{
	PreludeMedia:             "media",
	PreludeCharset:           "charset",
	PreludeColorProfile:      "color-profile",
	PreludeContainer:         "container",
	PreludeCounterStyle:      "counter-style",
	PreludeCustomMedia:       "custom-media",
	PreludeDocument:          "document",
	PreludeFontFeatureValues: "font-feature-values",
	PreludeFontPaletteValues: "font-palette-values",
	PreludeImport:            "import",
	PreludeKeyframes:         "keyframes",
	PreludeLayer:             "layer",
	PreludeNamespace:         "namespace",
	PreludeNest:              "nest",
	PreludePage:              "page",
	PreludePositionFallback:  "position-fallback",
	PreludeProperty:          "property",
	PreludeVendorExpr:        "vendor-expression",
	PreludeScrollTimeline:    "scroll-timeline",
	PreludeSupports:          "supports",
	PreludeUnknown:           "unknown",
}

func (k PreludeKind) String() string {
	if int(k) < len(preludeKindNames) {
		return preludeKindNames[k]
	}
	return "PreludeKind(?)"
}

// Prelude is the closed union of at-rule preludes; exactly one variant is active.
type Prelude interface {
	Node
	Kind() PreludeKind
}

type MediaPrelude struct {
	Base
	Queries *MediaQueryList
}

type CharsetPrelude struct {
	Base
	Charset *Str
}

type ColorProfilePrelude struct {
	Base
	Name ColorProfileName
}

type ContainerPrelude struct {
	Base
	Name      *Ident // optional
	Condition *Condition
}

type CounterStylePrelude struct {
	Base
	Name InterpolableIdent
}

type CustomMediaPrelude struct {
	Base
	Name  *DashedIdent
	Value CustomMediaValue
}

type DocumentPrelude struct {
	Base
	Matchers []DocumentMatcher
}

type FontFeatureValuesPrelude struct {
	Base
	Names []FontFamilyName
}

type FontPaletteValuesPrelude struct {
	Base
	Name *DashedIdent
}

type ImportPrelude struct {
	Base
	Href     ImportHref
	Layer    *ImportLayer    // optional
	Supports *ImportSupports // optional
	Media    *MediaQueryList // optional
}

type KeyframesPrelude struct {
	Base
	Name KeyframesName
}

// LayerPrelude is the name list of @layer a, b.c.
type LayerPrelude struct {
	Base
	Names []*LayerName
}

type NamespacePrelude struct {
	Base
	Prefix *Ident // optional
	URI    NamespaceURI
}

type NestPrelude struct {
	Base
	Selectors *SelectorList
}

type PagePrelude struct {
	Base
	Selectors *PageSelectorList
}

type PositionFallbackPrelude struct {
	Base
	Name *DashedIdent
}

type PropertyPrelude struct {
	Base
	Name *DashedIdent
}

// VendorExprPrelude holds preprocessor directive expressions such as
// the condition of @if or the header of @each.
type VendorExprPrelude struct {
	Base
	Expr *TokenSeq
}

type ScrollTimelinePrelude struct {
	Base
	Name InterpolableIdent
}

type SupportsPrelude struct {
	Base
	Condition *Condition
}

// UnknownPrelude keeps the raw tokens of an at-rule the grammar does not know.
type UnknownPrelude struct {
	Base
	Name   string
	Tokens *TokenSeq
}

func (*MediaPrelude) Kind() PreludeKind             { return PreludeMedia }
func (*CharsetPrelude) Kind() PreludeKind           { return PreludeCharset }
func (*ColorProfilePrelude) Kind() PreludeKind      { return PreludeColorProfile }
func (*ContainerPrelude) Kind() PreludeKind         { return PreludeContainer }
func (*CounterStylePrelude) Kind() PreludeKind      { return PreludeCounterStyle }
func (*CustomMediaPrelude) Kind() PreludeKind       { return PreludeCustomMedia }
func (*DocumentPrelude) Kind() PreludeKind          { return PreludeDocument }
func (*FontFeatureValuesPrelude) Kind() PreludeKind { return PreludeFontFeatureValues }
func (*FontPaletteValuesPrelude) Kind() PreludeKind { return PreludeFontPaletteValues }
func (*ImportPrelude) Kind() PreludeKind            { return PreludeImport }
func (*KeyframesPrelude) Kind() PreludeKind         { return PreludeKeyframes }
func (*LayerPrelude) Kind() PreludeKind             { return PreludeLayer }
func (*NamespacePrelude) Kind() PreludeKind         { return PreludeNamespace }
func (*NestPrelude) Kind() PreludeKind              { return PreludeNest }
func (*PagePrelude) Kind() PreludeKind              { return PreludePage }
func (*PositionFallbackPrelude) Kind() PreludeKind  { return PreludePositionFallback }
func (*PropertyPrelude) Kind() PreludeKind          { return PreludeProperty }
func (*VendorExprPrelude) Kind() PreludeKind        { return PreludeVendorExpr }
func (*ScrollTimelinePrelude) Kind() PreludeKind    { return PreludeScrollTimeline }
func (*SupportsPrelude) Kind() PreludeKind          { return PreludeSupports }
func (*UnknownPrelude) Kind() PreludeKind           { return PreludeUnknown }

// ColorProfileName is DashedIdent or DeviceCmyk.
type ColorProfileName interface {
	Node
	colorProfileName()
}

func (*DashedIdent) colorProfileName() {}
func (*DeviceCmyk) colorProfileName()  {}

// CustomMediaValue is a MediaQueryList or CustomMediaBool.
type CustomMediaValue interface {
	Node
	customMediaValue()
}

// CustomMediaBool is the literal true or false of @custom-media.
type CustomMediaBool struct {
	Base
	Value bool
}

func (*MediaQueryList) customMediaValue()  {}
func (*CustomMediaBool) customMediaValue() {}

// DocumentMatcher is a Function (url-prefix(), domain(), regexp()) or Url.
type DocumentMatcher interface {
	Node
	documentMatcher()
}

func (*Function) documentMatcher() {}
func (*Url) documentMatcher()      {}

// FontFamilyName is a Str or UnquotedFontFamilyName.
type FontFamilyName interface {
	Node
	fontFamilyName()
}

// UnquotedFontFamilyName is a space separated run of identifiers (1..N).
type UnquotedFontFamilyName struct {
	Base
	Idents []*Ident
}

func (*Str) fontFamilyName()                    {}
func (*UnquotedFontFamilyName) fontFamilyName() {}

// ImportHref is a Str or Url.
type ImportHref interface {
	Node
	importHref()
}

func (*Str) importHref() {}
func (*Url) importHref() {}

// ImportLayer is the layer or layer(name) part of @import.
type ImportLayer struct {
	Base
	Keyword string     // "layer" as written
	Name    *LayerName // nil for the anonymous form
}

// ImportSupports is the supports(...) part of @import; exactly one of
// Condition and Decl is set.
type ImportSupports struct {
	Base
	Keyword   string // "supports" as written
	Condition *Condition
	Decl      *Feature
}

// KeyframesName is an InterpolableIdent, a Str, or one of the Less forms
// @name and ~"name".
type KeyframesName interface {
	Node
	keyframesName()
}

// LessVariable is a Less variable reference such as @name; Name has no '@'.
type LessVariable struct {
	Base
	Name string
}

// LessEscapedStr is a Less escaped string ~"name".
type LessEscapedStr struct {
	Base
	Str *Str
}

func (*Ident) keyframesName()             {}
func (*InterpolatedIdent) keyframesName() {}
func (*Str) keyframesName()               {}
func (*LessVariable) keyframesName()      {}
func (*LessEscapedStr) keyframesName()    {}

// LayerName is a dot separated run of identifiers (1..N).
type LayerName struct {
	Base
	Idents []*Ident
}

// NamespaceURI is a Str or Url.
type NamespaceURI interface {
	Node
	namespaceURI()
}

func (*Str) namespaceURI() {}
func (*Url) namespaceURI() {}

// PageSelectorList is a comma separated list of page selectors (1..N).
type PageSelectorList struct {
	Base
	Selectors []*PageSelector
}

// PageSelector is [name][:pseudo]*.
type PageSelector struct {
	Base
	Name   *Ident // optional
	Pseudo []*PseudoPage
}

// PseudoPage is :name.
type PseudoPage struct {
	Base
	Name *Ident
}
