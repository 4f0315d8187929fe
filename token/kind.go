/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package token defines the lexical tokens of the GraphQL October 2021
specification, including the trivia tokens (whitespace, comma, comment)
that a lossless parser must keep around to reconstruct the source text.
*/
package token

/*
Kind is a closed enum identifying the lexical class of a Token.
*/
type Kind int

/*
Available token kinds. Punctuators are a single kind (Punct) distinguished
by their Token.Text(); this mirrors the teacher's SymbolMap approach of one
bucket for single-character structural tokens, generalized with the
additional punctuators the October 2021 grammar needs (`&`, `!`, `...`).
*/
const (
	Error Kind = iota
	EOF

	Punct // one of { } ( ) [ ] : = | & ! $ @ ...

	Name

	IntValue
	FloatValue
	StringValue
	BlockStringValue

	Comment
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "Error"
	case EOF:
		return "EOF"
	case Punct:
		return "Punct"
	case Name:
		return "Name"
	case IntValue:
		return "IntValue"
	case FloatValue:
		return "FloatValue"
	case StringValue:
		return "StringValue"
	case BlockStringValue:
		return "BlockStringValue"
	case Comment:
		return "Comment"
	case Whitespace:
		return "Whitespace"
	}
	return "Unknown"
}

/*
IsTrivia reports whether a token kind is retained purely for round-tripping
and ignored by semantic and validation layers.
*/
func (k Kind) IsTrivia() bool {
	return k == Comment || k == Whitespace
}

/*
Keywords recognized at fixed lexical positions by the parser. The lexer
itself emits every identifier-shaped run as Name; the parser decides from
context whether a Name spells a keyword (e.g. "query", "fragment", "on",
"extend", "implements", "null", "true", "false"), matching the GraphQL spec
which reserves no keywords at the lexical level.
*/
var Keywords = map[string]bool{
	"query": true, "mutation": true, "subscription": true,
	"fragment": true, "on": true, "extend": true, "implements": true,
	"schema": true, "scalar": true, "type": true, "interface": true,
	"union": true, "enum": true, "input": true, "directive": true,
	"repeatable": true, "null": true, "true": true, "false": true,
}
