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
	"strings"
	"testing"

	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/token"
)

func kinds(toks []token.Token) []token.Kind {
	var ks []token.Kind
	for _, t := range toks {
		ks = append(ks, t.Kind)
	}
	return ks
}

func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if !t.Kind.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

func TestLexPunctuatorsAndNames(t *testing.T) {
	src := source.NewSource("t", "{ field(arg: $v) }")
	toks := significant(Lex(src))

	want := []token.Kind{token.Punct, token.Name, token.Punct, token.Name,
		token.Punct, token.Punct, token.Name, token.Punct, token.Punct, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d significant tokens, want %d (%v)", len(toks), len(want), kinds(toks))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexEllipsis(t *testing.T) {
	src := source.NewSource("t", "...Frag")
	toks := significant(Lex(src))
	if toks[0].Text() != "..." {
		t.Errorf("expected ellipsis, got %q", toks[0].Text())
	}
	if toks[1].Kind != token.Name || toks[1].Text() != "Frag" {
		t.Errorf("expected Frag name, got %v %q", toks[1].Kind, toks[1].Text())
	}
}

func TestLexIntFloat(t *testing.T) {
	cases := map[string]token.Kind{
		"0": token.IntValue, "-17": token.IntValue, "1.5": token.FloatValue,
		"6.0221413e23": token.FloatValue, "1e50": token.FloatValue,
	}
	for text, want := range cases {
		src := source.NewSource("t", text)
		toks := significant(Lex(src))
		if toks[0].Kind != want {
			t.Errorf("%q: got %v want %v", text, toks[0].Kind, want)
		}
	}
}

func TestLexNumberGlued(t *testing.T) {
	src := source.NewSource("t", "123abc")
	toks := significant(Lex(src))
	if toks[0].Kind != token.Error {
		t.Errorf("expected Error for glued number, got %v", toks[0].Kind)
	}
	if toks[0].Text() != "123abc" {
		t.Errorf("expected error span to cover whole run, got %q", toks[0].Text())
	}
}

func TestLexString(t *testing.T) {
	src := source.NewSource("t", `"hello \"world\""`)
	toks := significant(Lex(src))
	if toks[0].Kind != token.StringValue {
		t.Fatalf("expected StringValue, got %v", toks[0].Kind)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	src := source.NewSource("t", `"hello`)
	toks := significant(Lex(src))
	if toks[0].Kind != token.Error {
		t.Errorf("expected Error for unterminated string, got %v", toks[0].Kind)
	}
}

func TestLexBlockString(t *testing.T) {
	src := source.NewSource("t", "\"\"\"\n  hello\n  world\n\"\"\"")
	toks := significant(Lex(src))
	if toks[0].Kind != token.BlockStringValue {
		t.Fatalf("expected BlockStringValue, got %v", toks[0].Kind)
	}
	cooked := BlockStringValue(toks[0].Text())
	if cooked != "hello\nworld" {
		t.Errorf("unexpected cooked block string: %q", cooked)
	}
}

func TestLexCJKIsError(t *testing.T) {
	src := source.NewSource("t", "field: 中文類型")
	toks := Lex(src)

	var foundError bool
	for _, tok := range toks {
		if tok.Kind == token.Error {
			foundError = true
			if tok.Text() != "中文類型" {
				t.Errorf("unexpected error span: %q", tok.Text())
			}
		}
	}
	if !foundError {
		t.Error("expected an Error token covering the CJK run")
	}
}

func TestLexTriviaRoundTrips(t *testing.T) {
	text := "  # a comment\n{ a, b }\n"
	src := source.NewSource("t", text)
	toks := Lex(src)

	var buf string
	for _, tok := range toks {
		buf += tok.Text()
	}
	if buf != text {
		t.Errorf("trivia-inclusive concatenation does not round-trip: %q != %q", buf, text)
	}
}

func TestLexCommaIsTrivia(t *testing.T) {
	src := source.NewSource("t", "a, b")
	toks := Lex(src)
	for _, tok := range toks {
		if tok.Kind == token.Punct && strings.Contains(tok.Text(), ",") {
			t.Error("comma should be folded into a trivia (whitespace) token, not a punctuator")
		}
	}
}
