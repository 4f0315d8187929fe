/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package lex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/stringutil"
	"github.com/krotik/gqlcore/token"
)

/*
symbolSet is the set of single-rune punctuators. "..." is handled as a
special three-rune case below, mirroring the teacher's SymbolMap with the
October 2021 grammar's extra punctuators (& and !) added.
*/
var symbolSet = map[rune]bool{
	'!': true, '$': true, '(': true, ')': true, ':': true, '=': true,
	'@': true, '[': true, ']': true, '{': true, '|': true, '}': true,
	'&': true, ',': true,
}

var intRegexp = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
var floatRegexp = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

/*
Lexer lexes a single Source into a flat, trivia-preserving slice of tokens.
Unlike the teacher's goroutine+channel design, Lex runs to completion and
returns a slice: downstream CST construction needs to look ahead and
occasionally re-visit already-produced tokens while enforcing the parser's
token budget, which is awkward over a channel.
*/
type Lexer struct {
	src    *source.Source
	cursor *Cursor
}

/*
New creates a Lexer over src.
*/
func New(src *source.Source) *Lexer {
	return &Lexer{src: src, cursor: NewCursor(src.Text)}
}

/*
Lex tokenizes src in full, always terminating with a single EOF token. It
never panics, even on truncated UTF-8 or wildly invalid input: anything it
cannot classify becomes an Error token whose span still lands on a UTF-8
scalar boundary.
*/
func Lex(src *source.Source) []token.Token {
	l := New(src)
	var out []token.Token

	for {
		t, more := l.next()
		out = append(out, t)
		if !more {
			break
		}
	}

	return out
}

func (l *Lexer) emit(kind token.Kind, start int) token.Token {
	return token.New(kind, start, l.cursor.Pos()-start, l.src)
}

/*
next produces the single next token (trivia included) and reports whether
more tokens follow.
*/
func (l *Lexer) next() (token.Token, bool) {
	c := l.cursor

	if c.AtEOF() {
		c.StartToken()
		return l.emit(token.EOF, c.TokenStart()), false
	}

	r := c.Peek(0)

	switch {
	case r == '\uFEFF' || isWhitespaceRune(r) || r == ',':
		return l.lexWhitespace(), true

	case r == '#':
		return l.lexComment(), true

	case r == '"':
		return l.lexString(), true

	case symbolSet[r]:
		c.StartToken()
		c.Advance()
		return l.emit(token.Punct, c.TokenStart()), true

	case r == '.' && c.HasPrefix("..."):
		c.StartToken()
		c.Advance()
		c.Advance()
		c.Advance()
		return l.emit(token.Punct, c.TokenStart()), true

	case isNameStart(r):
		return l.lexNameOrKeyword(), true

	case r == '-' || isDigit(r):
		return l.lexNumber(), true

	default:
		return l.lexError(), true
	}
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameContinue(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r)
}

/*
lexWhitespace consumes a maximal run of whitespace and BOM characters (and
insignificant commas, per spec 2.1.3) as a single trivia token.
*/
func (l *Lexer) lexWhitespace() token.Token {
	c := l.cursor
	c.StartToken()

	for {
		r := c.Peek(0)
		if r == '\uFEFF' || isWhitespaceRune(r) || r == ',' {
			c.Advance()
			continue
		}
		break
	}

	return l.emit(token.Whitespace, c.TokenStart())
}

/*
lexComment consumes a "#" line comment up to (but excluding) the terminating
newline or EOF.
*/
func (l *Lexer) lexComment() token.Token {
	c := l.cursor
	c.StartToken()
	c.Advance() // '#'

	for {
		r := c.Peek(0)
		if r == RuneEOF || r == '\n' {
			break
		}
		c.Advance()
	}

	return l.emit(token.Comment, c.TokenStart())
}

func (l *Lexer) lexNameOrKeyword() token.Token {
	c := l.cursor
	c.StartToken()
	c.Advance()

	for isNameContinue(c.Peek(0)) {
		c.Advance()
	}

	return l.emit(token.Name, c.TokenStart())
}

/*
lexNumber lexes Int and Float values per spec 2.9.1/2.9.2. A run that looks
like a number but is immediately followed by a NameStart character or an
extra "." is invalid (e.g. "1.2.3" or "123abc") and is reported as a single
Error token covering the whole offending run, per spec 4.B.
*/
func (l *Lexer) lexNumber() token.Token {
	c := l.cursor
	c.StartToken()

	if c.Peek(0) == '-' {
		c.Advance()
	}
	for isDigit(c.Peek(0)) {
		c.Advance()
	}

	isFloat := false

	if c.Peek(0) == '.' && isDigit(c.Peek(1)) {
		isFloat = true
		c.Advance()
		for isDigit(c.Peek(0)) {
			c.Advance()
		}
	}

	if r := c.Peek(0); r == 'e' || r == 'E' {
		isFloat = true
		c.Advance()
		if r := c.Peek(0); r == '+' || r == '-' {
			c.Advance()
		}
		for isDigit(c.Peek(0)) {
			c.Advance()
		}
	}

	// Trailing garbage immediately glued to the number is a lexical error,
	// not a separate token: "123abc" is one Error token, not IntValue+Name.
	if r := c.Peek(0); isNameStart(r) || isDigit(r) || r == '.' {
		for {
			r := c.Peek(0)
			if r == RuneEOF || isWhitespaceRune(r) || r == ',' || r == '\uFEFF' ||
				symbolSet[r] || r == '#' || r == '"' {
				break
			}
			c.Advance()
		}
		return l.emit(token.Error, c.TokenStart())
	}

	text := c.TokenText()
	switch {
	case isFloat && floatRegexp.MatchString(text):
		return l.emit(token.FloatValue, c.TokenStart())
	case !isFloat && intRegexp.MatchString(text):
		return l.emit(token.IntValue, c.TokenStart())
	default:
		return l.emit(token.Error, c.TokenStart())
	}
}

/*
lexString lexes a normal "…" string or a block """…""" string, per spec
2.9.4. Unterminated strings emit an Error token up to the next newline or
EOF, never panicking on a dangling escape at the very end of input.
*/
func (l *Lexer) lexString() token.Token {
	c := l.cursor
	c.StartToken()

	isBlock := c.Peek(1) == '"' && c.Peek(2) == '"'

	if isBlock {
		return l.lexBlockString()
	}

	c.Advance() // opening quote

	for {
		r := c.Peek(0)

		if r == RuneEOF || r == '\n' {
			return l.emit(token.Error, c.TokenStart())
		}
		if r == '"' {
			c.Advance()
			break
		}
		if r == '\\' {
			c.Advance()
			if c.Peek(0) == RuneEOF {
				return l.emit(token.Error, c.TokenStart())
			}
		}
		c.Advance()
	}

	raw := c.TokenText()
	inner := raw[1 : len(raw)-1]

	if _, err := strconv.Unquote(`"` + inner + `"`); err != nil {
		return l.emit(token.Error, c.TokenStart())
	}

	return l.emit(token.StringValue, c.TokenStart())
}

func (l *Lexer) lexBlockString() token.Token {
	c := l.cursor

	c.Advance()
	c.Advance()
	c.Advance()

	for {
		if c.Peek(0) == RuneEOF {
			return l.emit(token.Error, c.TokenStart())
		}
		if c.Peek(0) == '"' && c.Peek(1) == '"' && c.Peek(2) == '"' {
			c.Advance()
			c.Advance()
			c.Advance()
			break
		}
		if c.Peek(0) == '\\' && c.Peek(1) == '"' && c.Peek(2) == '"' && c.Peek(3) == '"' {
			// \""" is an escaped triple-quote inside a block string.
			c.Advance()
			c.Advance()
			c.Advance()
			c.Advance()
			continue
		}
		c.Advance()
	}

	return l.emit(token.BlockStringValue, c.TokenStart())
}

/*
BlockStringValue computes the cooked value of a BlockStringValue token: the
delimiting triple quotes are stripped, uniform leading indentation is
removed, and blank leading/trailing lines are trimmed, per spec 2.9.4 "Block
Strings". This is deliberately the teacher's stringutil helpers, unmodified:
they already implement exactly this rule.
*/
func BlockStringValue(raw string) string {
	inner := raw[3 : len(raw)-3]
	inner = strings.ReplaceAll(inner, `\"""`, `"""`)
	inner = stringutil.ToUnixNewlines(inner)
	inner = stringutil.StripUniformIndentation(inner)
	return stringutil.TrimBlankLines(inner)
}

/*
lexError consumes one maximal run of otherwise-unclassifiable bytes as a
single Error token. The run stops as soon as the remaining input could start
a valid token, and — critically — every Advance() call goes through
Cursor.Advance, which decodes one full rune at a time, so the resulting span
always ends on a UTF-8 scalar boundary even when the input is garbage (S8).
*/
func (l *Lexer) lexError() token.Token {
	c := l.cursor
	c.StartToken()
	c.Advance()

	for {
		r := c.Peek(0)
		if r == RuneEOF || isWhitespaceRune(r) || r == ',' || r == '\uFEFF' ||
			symbolSet[r] || r == '#' || r == '"' || isNameStart(r) || isDigit(r) {
			break
		}
		c.Advance()
	}

	return l.emit(token.Error, c.TokenStart())
}
