package csstoken

// KindSet is a 32-bit bitmap over Kinds, used to represent stop sets and
// peek sets cheaply. A Kind's bit index is its ordinal modulo 32 (there are
// fewer than 32 kinds today, so this is a plain 1:1 mapping, but the modulo
// keeps the representation stable if the kind table ever grows).
type KindSet uint32

// NoneKind is the empty KindSet.
const NoneKind KindSet = 0

// New builds a KindSet containing exactly the given kinds.
func New(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns a KindSet with kind additionally present.
func (s KindSet) Add(kind Kind) KindSet {
	return s | (1 << (uint8(kind) % 32))
}

// Contains reports whether kind is a member of s.
func (s KindSet) Contains(kind Kind) bool {
	return s&(1<<(uint8(kind)%32)) != 0
}

// Union returns the set of kinds present in either s or other.
func (s KindSet) Union(other KindSet) KindSet {
	return s | other
}

// Well-known stop/peek sets shared across the parser productions, mirroring
// the hdx css_lexer crate's KindSet constants.
var (
	Trivia                           = New(Whitespace, Comment)
	WhitespaceOnly                   = New(Whitespace)
	CommentsOnly                     = New(Comment)
	RightCurlyOrSemicolon            = New(RightCurly, Semicolon)
	LeftCurlyOrSemicolon             = New(LeftCurly, Semicolon)
	LeftCurlyRightParenOrSemicolon   = New(LeftCurly, RightParen, Semicolon)
	LeftCurlyRightParenCommaOrSemiColon = New(LeftCurly, RightParen, Comma, Semicolon)
)
