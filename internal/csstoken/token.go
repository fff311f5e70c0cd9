package csstoken

// Token is the fixed-size, heap-free value the Lexer produces for every
// lexeme. It carries the lexical Kind, the lexeme's byte length, and
// whatever payload that kind needs (numeric value, quote style, whitespace
// or comment classification, dimension unit, pairwise side). A Cursor pairs
// a Token with the SourceOffset it starts at; together they are the only
// handle ever needed to recover the original text (via Cursor.StrSlice).
//
// The struct is not hand-packed into a literal 8 bytes the way the crate
// this was ported from packs its Rust equivalent: Go has no safe bitfields,
// and forcing one via unsafe would buy back little since the Go runtime
// already pads struct fields to word boundaries. What the spec actually
// requires — Copy semantics, no heap allocation for a lexeme, and the
// length/kind/payload triple — all hold here. See DESIGN.md.
type Token struct {
	Kind            Kind
	HasSign         bool
	IsInt           bool
	QuoteStyle      QuoteStyle
	WhitespaceStyle WhitespaceStyle
	CommentStyle    CommentStyle
	DimensionUnit   DimensionUnit
	// CdcOrCdo discriminates "<!--" (false) from "-->" (true) for a
	// CdcOrCdo token.
	IsCdc bool
	// UnitOffset is the byte offset within the lexeme where a Dimension's
	// unit atom begins (i.e. the numeric part is the first UnitOffset bytes
	// of the lexeme).
	UnitOffset uint32
	Length     uint32
	// DelimChar is the literal character for a Delim token (e.g. '/', '*',
	// '.', '+'). It is the zero byte for every other kind.
	DelimChar byte
	// Value holds the parsed numeric value for Number/Percentage/Dimension
	// tokens.
	Value float64
}

// EOF is the sentinel token an exhausted Lexer returns forever.
var EOF = Token{Kind: Eof}

// Len returns the lexeme's byte length.
func (t Token) Len() uint32 {
	return t.Length
}

// IsEOF reports whether t is the end-of-file token.
func (t Token) IsEOF() bool {
	return t.Kind == Eof
}

// ToPairWise reports which bracket pair this token participates in, if any.
func (t Token) ToPairWise() (PairWise, bool) {
	return FromKind(t.Kind)
}

func isIdentLikeKind(k Kind) bool {
	switch k {
	case Ident, Function, AtKeyword, Hash, Dimension, BadUrl, Url:
		return true
	default:
		return false
	}
}

// NeedsSeparatorFor reports whether emitting next immediately after self
// would re-tokenize as something other than the two intended tokens. This is
// the sole mechanism by which lossless serialization decides to inject a
// whitespace cursor between two adjacent tokens (see csswriter.CursorSink).
func (self Token) NeedsSeparatorFor(next Token) bool {
	a, b := self.Kind, next.Kind

	switch {
	// ident-like immediately followed by another ident-like, or by "(",
	// would continue the first identifier or turn it into a function call.
	case isIdentLikeKind(a) && (isIdentLikeKind(b) || b == LeftParen):
		return true
	// An identifier, at-keyword or hash followed by a number would absorb
	// the number's digits into its name.
	case (a == Ident || a == AtKeyword || a == Hash) && b.IsNumeric():
		return true
	// A number followed by a digit-starting token (another number, or a
	// dimension/percentage) would extend the first number.
	case a == Number && (b == Number || b == Dimension || b == Percentage):
		return true
	// A number immediately followed by an identifier would be lexed as a
	// single Dimension token.
	case a == Number && isIdentLikeKind(b):
		return true
	// A number followed by "." or "+"/"-" could extend into a continuation
	// if a further digit followed; conservatively separate.
	case a == Number && b == Delim && (next.DelimChar == '.' || next.DelimChar == '+' || next.DelimChar == '-'):
		return true
	// Dimension/Percentage followed by anything ident-like or numeric would
	// run into the unit or the next number.
	case (a == Dimension || a == Percentage) && (isIdentLikeKind(b) || b.IsNumeric()):
		return true
	// "@" keyword followed by ident-like text is already folded into the
	// at-keyword lexeme by the lexer; guard the boundary after it too.
	case a == AtKeyword && isIdentLikeKind(b):
		return true
	// "#" hash followed by ident-like text would extend the hash name.
	case a == Hash && isIdentLikeKind(b):
		return true
	// "-" delimiter immediately followed by an identifier starting with "-"
	// (or any ident-like token) could be re-lexed as part of an identifier.
	case a == Delim && self.DelimChar == '-' && isIdentLikeKind(b):
		return true
	// "/" immediately followed by "*" would start a block comment.
	case a == Delim && b == Delim && self.DelimChar == '/' && next.DelimChar == '*':
		return true
	// "<" immediately followed by "!--" text, or "-" followed by "->", could
	// be re-lexed as CdcOrCdo; since CdcOrCdo is its own kind this can only
	// happen if a raw "<" or "-" Delim is adjacent to an ident-like token
	// beginning with those characters, which is already covered above.
	default:
		return false
	}
}
