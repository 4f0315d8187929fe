/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package token

import "github.com/krotik/gqlcore/source"

/*
Token is one lexical unit: a kind plus a byte span into a Source. Token does
not copy text; Text() slices the backing Source so that lexing a multi-
megabyte schema allocates no per-token strings.
*/
type Token struct {
	Kind   Kind
	Offset int // byte offset into the Source text
	Length int // byte length

	src *source.Source
}

/*
New creates a Token over the given Source.
*/
func New(kind Kind, offset, length int, src *source.Source) Token {
	return Token{Kind: kind, Offset: offset, Length: length, src: src}
}

/*
Text returns the exact source bytes this token spans.
*/
func (t Token) Text() string {
	if t.src == nil {
		return ""
	}
	end := t.Offset + t.Length
	if end > len(t.src.Text) {
		end = len(t.src.Text)
	}
	if t.Offset > end {
		return ""
	}
	return t.src.Text[t.Offset:end]
}

/*
End returns the byte offset one past the last byte of this token.
*/
func (t Token) End() int {
	return t.Offset + t.Length
}

/*
Source returns the Source this token was lexed from.
*/
func (t Token) Source() *source.Source {
	return t.src
}
