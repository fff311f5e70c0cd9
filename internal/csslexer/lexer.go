// Package csslexer turns CSS source text into a stream of csstoken.Tokens,
// following the CSS Syntax Module tokenizer algorithm with two opt-in
// extensions (single-line comments, combined whitespace runs). The Lexer
// never fails: malformed constructs become BadString/BadUrl tokens instead
// of errors, so a Parser built on top can recover and keep going.
package csslexer

import (
	"strings"
	"unicode/utf8"

	"github.com/cssgo/cssgo/internal/csstoken"
)

const eof = -1

// Lexer reads a single source string forward, producing one Token per call
// to Advance. It carries no heap-allocated state beyond the source string
// itself: offsets and tokens are plain values.
type Lexer struct {
	source   string
	offset   uint32
	current  uint32
	codePoint rune
	token    csstoken.Token
	features Feature
}

// New returns a Lexer over source with no extension features enabled.
func New(source string) *Lexer {
	return NewWithFeatures(source, 0)
}

// NewWithFeatures returns a Lexer over source with the given Feature bits
// enabled.
func NewWithFeatures(source string, features Feature) *Lexer {
	l := &Lexer{source: source, features: features}
	l.step()
	// Skip a leading UTF-8 BOM; CSS does not treat U+FEFF as whitespace, but
	// text editors and some toolchains prepend it to UTF-8 files.
	if l.codePoint == 0xFEFF {
		l.step()
	}
	return l
}

// Source returns the full source string this lexer reads from.
func (l *Lexer) Source() string {
	return l.source
}

// AtEnd reports whether the lexer has consumed the entire source.
func (l *Lexer) AtEnd() bool {
	return int(l.offset) == len(l.source)
}

// Offset returns the current position: the offset just past the
// last-produced token.
func (l *Lexer) Offset() csstoken.SourceOffset {
	return csstoken.SourceOffset(l.offset)
}

// Checkpoint captures the lexer's current state as a Cursor: the offset
// immediately before the last-produced token, paired with that token. This
// is the inverse of Hop/Rewind's addressing and is O(1).
func (l *Lexer) Checkpoint() csstoken.Cursor {
	return csstoken.NewCursor(csstoken.SourceOffset(l.offset-l.token.Length), l.token)
}

// Rewind resets the lexer to a previously observed Checkpoint.
func (l *Lexer) Rewind(c csstoken.Cursor) {
	l.seek(uint32(c.Offset) + c.Token.Length)
	l.token = c.Token
}

// Hop advances the lexer to a cursor observed via lookahead (Peek). The
// cursor's end (offset + token length) must be at or past the lexer's
// current position.
func (l *Lexer) Hop(c csstoken.Cursor) {
	l.seek(uint32(c.Offset) + c.Token.Length)
	l.token = c.Token
}

func (l *Lexer) seek(byteOffset uint32) {
	l.offset = byteOffset
	l.current = byteOffset
	l.step()
}

// step decodes the rune at l.current into l.codePoint and advances
// l.current past it.
func (l *Lexer) step() {
	if int(l.current) >= len(l.source) {
		l.codePoint = eof
		return
	}
	cp, width := utf8.DecodeRuneInString(l.source[l.current:])
	if width == 0 {
		cp = eof
	}
	l.codePoint = cp
	l.current += uint32(width)
}

func (l *Lexer) peekByte() (byte, bool) {
	if int(l.current) < len(l.source) {
		return l.source[l.current], true
	}
	return 0, false
}

func (l *Lexer) rest() string {
	return l.source[l.current:]
}

// Advance reads the next token, updates Offset(), and returns it. At EOF
// this returns csstoken.EOF on every call.
func (l *Lexer) Advance() csstoken.Token {
	start := l.offset
	tok := l.readNext()
	end := l.currentStart()
	tok.Length = end - start
	l.token = tok
	l.offset = end
	return tok
}

func (l *Lexer) readNext() csstoken.Token {
	for {
		switch l.codePoint {
		case eof:
			return csstoken.Token{Kind: csstoken.Eof}

		case ' ', '\t', '\n', '\r', '\f':
			return l.consumeWhitespace()

		case '/':
			l.step()
			switch l.codePoint {
			case '*':
				l.step()
				return l.consumeBlockComment()
			case '/':
				if l.features.Has(SingleLineComments) {
					l.step()
					return l.consumeSingleLineComment()
				}
			}
			return delimToken('/')

		case '"', '\'':
			return l.consumeString()

		case '#':
			l.step()
			if isNameContinue(l.codePoint) || l.isValidEscape() {
				return l.consumeHash()
			}
			return delimToken('#')

		case '(':
			l.step()
			return csstoken.Token{Kind: csstoken.LeftParen}
		case ')':
			l.step()
			return csstoken.Token{Kind: csstoken.RightParen}
		case '[':
			l.step()
			return csstoken.Token{Kind: csstoken.LeftSquare}
		case ']':
			l.step()
			return csstoken.Token{Kind: csstoken.RightSquare}
		case '{':
			l.step()
			return csstoken.Token{Kind: csstoken.LeftCurly}
		case '}':
			l.step()
			return csstoken.Token{Kind: csstoken.RightCurly}
		case ',':
			l.step()
			return csstoken.Token{Kind: csstoken.Comma}
		case ':':
			l.step()
			return csstoken.Token{Kind: csstoken.Colon}
		case ';':
			l.step()
			return csstoken.Token{Kind: csstoken.Semicolon}

		case '+':
			if l.wouldStartNumber() {
				return l.consumeNumeric()
			}
			l.step()
			return delimToken('+')

		case '.':
			if l.wouldStartNumber() {
				return l.consumeNumeric()
			}
			l.step()
			return delimToken('.')

		case '-':
			if l.wouldStartNumber() {
				return l.consumeNumeric()
			}
			if strings.HasPrefix(l.rest(), "->") {
				l.step()
				l.step()
				l.step()
				return csstoken.Token{Kind: csstoken.CdcOrCdo, IsCdc: true}
			}
			if l.wouldStartIdentifier() {
				return l.consumeIdentLike()
			}
			l.step()
			return delimToken('-')

		case '<':
			if strings.HasPrefix(l.rest(), "!--") {
				l.step()
				l.step()
				l.step()
				l.step()
				return csstoken.Token{Kind: csstoken.CdcOrCdo, IsCdc: false}
			}
			l.step()
			return delimToken('<')

		case '@':
			l.step()
			if l.wouldStartIdentifier() {
				l.consumeName()
				return csstoken.Token{Kind: csstoken.AtKeyword}
			}
			return delimToken('@')

		case '\\':
			if l.isValidEscape() {
				return l.consumeIdentLike()
			}
			// An invalid escape (backslash followed by a newline, or EOF) is
			// simply a lone "\" delimiter; the lexer never fails.
			l.step()
			return delimToken('\\')

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.consumeNumeric()

		default:
			if isNameStart(l.codePoint) {
				return l.consumeIdentLike()
			}
			c := l.codePoint
			l.step()
			if c >= 0 && c < 128 {
				return delimToken(byte(c))
			}
			return delimToken(0)
		}
	}
}

func delimToken(c byte) csstoken.Token {
	return csstoken.Token{Kind: csstoken.Delim, DelimChar: c}
}

func (l *Lexer) consumeWhitespace() csstoken.Token {
	var style csstoken.WhitespaceStyle
	for isWhitespace(l.codePoint) {
		style = style.WithByte(byte(l.codePoint))
		l.step()
		if !l.features.Has(CombinedWhitespace) {
			break
		}
	}
	return csstoken.Token{Kind: csstoken.Whitespace, WhitespaceStyle: style}
}

func (l *Lexer) consumeBlockComment() csstoken.Token {
	first, hasFirst := l.codePoint, l.codePoint != eof
	var firstByte byte
	if hasFirst && first >= 0 && first < 128 {
		firstByte = byte(first)
	}
	style := csstoken.ClassifyBlockComment(firstByte, hasFirst && first < 128)
	for {
		switch l.codePoint {
		case '*':
			l.step()
			if l.codePoint == '/' {
				l.step()
				return csstoken.Token{Kind: csstoken.Comment, CommentStyle: style}
			}
		case eof:
			// Unterminated comment: the lexer never fails, so the comment
			// simply runs to the end of the source.
			return csstoken.Token{Kind: csstoken.Comment, CommentStyle: style}
		default:
			l.step()
		}
	}
}

func (l *Lexer) consumeSingleLineComment() csstoken.Token {
	first, hasFirst := l.codePoint, l.codePoint != eof
	var firstByte byte
	if hasFirst && first >= 0 && first < 128 {
		firstByte = byte(first)
	}
	style := csstoken.ClassifySingleLineComment(firstByte, hasFirst && first < 128)
	for !isNewline(l.codePoint) && l.codePoint != eof {
		l.step()
	}
	return csstoken.Token{Kind: csstoken.Comment, CommentStyle: style}
}

func (l *Lexer) consumeString() csstoken.Token {
	quote := l.codePoint
	quoteStyle := csstoken.QuoteDouble
	if quote == '\'' {
		quoteStyle = csstoken.QuoteSingle
	}
	l.step()
	for {
		switch l.codePoint {
		case '\\':
			l.step()
			if l.codePoint == '\r' {
				l.step()
				if l.codePoint == '\n' {
					l.step()
				}
				continue
			}
			if l.codePoint != eof {
				l.step()
			}
		case eof:
			return csstoken.Token{Kind: csstoken.BadString, QuoteStyle: quoteStyle}
		case '\n', '\r', '\f':
			return csstoken.Token{Kind: csstoken.BadString, QuoteStyle: quoteStyle}
		case quote:
			l.step()
			return csstoken.Token{Kind: csstoken.String, QuoteStyle: quoteStyle}
		default:
			l.step()
		}
	}
}

func (l *Lexer) consumeHash() csstoken.Token {
	l.consumeName()
	return csstoken.Token{Kind: csstoken.Hash}
}

func (l *Lexer) isValidEscape() bool {
	if l.codePoint != '\\' {
		return false
	}
	c, _ := utf8.DecodeRuneInString(l.rest())
	return !isNewline(c)
}

func (l *Lexer) wouldStartIdentifier() bool {
	if isNameStart(l.codePoint) {
		return true
	}
	if l.codePoint == '-' {
		c, width := utf8.DecodeRuneInString(l.rest())
		if c == utf8.RuneError && width <= 1 {
			return false
		}
		if isNameStart(c) || c == '-' {
			return true
		}
		if c == '\\' {
			c2, _ := utf8.DecodeRuneInString(l.source[int(l.current)+width:])
			return !isNewline(c2)
		}
		return false
	}
	return l.isValidEscape()
}

func (l *Lexer) wouldStartNumber() bool {
	switch {
	case l.codePoint >= '0' && l.codePoint <= '9':
		return true
	case l.codePoint == '.':
		if b, ok := l.peekByte(); ok {
			return b >= '0' && b <= '9'
		}
	case l.codePoint == '+' || l.codePoint == '-':
		rest := l.rest()
		if len(rest) == 0 {
			return false
		}
		if rest[0] >= '0' && rest[0] <= '9' {
			return true
		}
		if rest[0] == '.' && len(rest) > 1 {
			return rest[1] >= '0' && rest[1] <= '9'
		}
	}
	return false
}

func (l *Lexer) consumeName() string {
	start := l.current - runeWidthBefore(l.source, l.current)
	for isNameContinue(l.codePoint) {
		l.step()
	}
	raw := l.source[start:l.currentStart()]
	if !l.isValidEscape() {
		return raw
	}
	var sb strings.Builder
	sb.WriteString(raw)
	sb.WriteRune(l.consumeEscape())
	for {
		if isNameContinue(l.codePoint) {
			sb.WriteRune(l.codePoint)
			l.step()
		} else if l.isValidEscape() {
			sb.WriteRune(l.consumeEscape())
		} else {
			break
		}
	}
	return sb.String()
}

// currentStart returns the byte offset of the code point currently pointed
// to by l.codePoint (i.e. l.current minus its width, or l.current at EOF).
func (l *Lexer) currentStart() uint32 {
	if l.codePoint == eof {
		return l.current
	}
	return l.current - runeWidthBefore(l.source, l.current)
}

func runeWidthBefore(s string, pos uint32) uint32 {
	if pos == 0 {
		return 0
	}
	_, width := utf8.DecodeLastRuneInString(s[:pos])
	return uint32(width)
}

func (l *Lexer) consumeEscape() rune {
	l.step() // Skip the backslash
	c := l.codePoint
	if hex, ok := hexDigit(c); ok {
		l.step()
		for i := 0; i < 5; i++ {
			next, ok := hexDigit(l.codePoint)
			if !ok {
				break
			}
			l.step()
			hex = hex*16 + next
		}
		if isWhitespace(l.codePoint) {
			l.step()
		}
		if hex == 0 || (hex >= 0xD800 && hex <= 0xDFFF) || hex > 0x10FFFF {
			return utf8.RuneError
		}
		return rune(hex)
	}
	if c == eof {
		return utf8.RuneError
	}
	l.step()
	return c
}

func (l *Lexer) consumeIdentLike() csstoken.Token {
	name := l.consumeName()
	if l.codePoint == '(' {
		l.step()
		if len(name) == 3 {
			u, r, v := name[0]|0x20, name[1]|0x20, name[2]|0x20
			if u == 'u' && r == 'r' && v == 'l' {
				for isWhitespace(l.codePoint) {
					l.step()
				}
				if l.codePoint != '"' && l.codePoint != '\'' {
					return l.consumeURL()
				}
			}
		}
		return csstoken.Token{Kind: csstoken.Function}
	}
	return csstoken.Token{Kind: csstoken.Ident}
}

func (l *Lexer) consumeURL() csstoken.Token {
validURL:
	for {
		switch l.codePoint {
		case ')':
			l.step()
			return csstoken.Token{Kind: csstoken.Url}
		case eof:
			return csstoken.Token{Kind: csstoken.Url}
		case ' ', '\t', '\n', '\r', '\f':
			l.step()
			for isWhitespace(l.codePoint) {
				l.step()
			}
			if l.codePoint == ')' {
				l.step()
				return csstoken.Token{Kind: csstoken.Url}
			}
			if l.codePoint == eof {
				return csstoken.Token{Kind: csstoken.Url}
			}
			break validURL
		case '"', '\'', '(':
			break validURL
		case '\\':
			if !l.isValidEscape() {
				break validURL
			}
			l.consumeEscape()
		default:
			if isNonPrintable(l.codePoint) {
				break validURL
			}
			l.step()
		}
	}
	// Consume the remnants of a bad URL up to the closing paren or EOF.
	for {
		switch l.codePoint {
		case ')', eof:
			if l.codePoint == ')' {
				l.step()
			}
			return csstoken.Token{Kind: csstoken.BadUrl}
		case '\\':
			if l.isValidEscape() {
				l.consumeEscape()
				continue
			}
		}
		l.step()
	}
}

func (l *Lexer) consumeNumeric() csstoken.Token {
	var tok csstoken.Token
	tok.IsInt = true
	start := l.currentStart()

	if l.codePoint == '+' || l.codePoint == '-' {
		tok.HasSign = true
		l.step()
	}
	for l.codePoint >= '0' && l.codePoint <= '9' {
		l.step()
	}
	if l.codePoint == '.' {
		l.step()
		tok.IsInt = false
		for l.codePoint >= '0' && l.codePoint <= '9' {
			l.step()
		}
	}
	if l.codePoint == 'e' || l.codePoint == 'E' {
		rest := l.rest()
		c := byte(0)
		if len(rest) > 0 {
			c = rest[0]
		}
		idx := 0
		if c == '+' || c == '-' {
			idx = 1
		}
		if idx < len(rest) && rest[idx] >= '0' && rest[idx] <= '9' {
			tok.IsInt = false
			l.step()
			if l.codePoint == '+' || l.codePoint == '-' {
				l.step()
			}
			for l.codePoint >= '0' && l.codePoint <= '9' {
				l.step()
			}
		}
	}

	numEnd := l.currentStart()
	tok.Value = parseFloat(l.source[start:numEnd])

	if l.wouldStartIdentifier() {
		tok.UnitOffset = numEnd - start
		unitStart := numEnd
		l.consumeName()
		unitEnd := l.currentStart()
		tok.Kind = csstoken.Dimension
		tok.DimensionUnit = csstoken.LookupDimensionUnit(strings.ToLower(l.source[unitStart:unitEnd]))
		return tok
	}
	if l.codePoint == '%' {
		l.step()
		tok.Kind = csstoken.Percentage
		tok.DimensionUnit = csstoken.UnitPercent
		return tok
	}
	tok.Kind = csstoken.Number
	return tok
}

func parseFloat(s string) float64 {
	// CSS numbers are always valid Go float syntax once a leading "+" is
	// stripped (Go's strconv does not accept it).
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	v, _ := parseStrictFloat(s)
	return v
}
