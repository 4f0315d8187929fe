/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package token

import (
	"testing"

	"github.com/krotik/gqlcore/source"
)

func TestTokenText(t *testing.T) {
	src := source.NewSource("t.graphql", "query Q { f }")
	tok := New(Name, 6, 1, src)
	if got := tok.Text(); got != "Q" {
		t.Errorf("Text() = %q, want %q", got, "Q")
	}
}

func TestTokenEnd(t *testing.T) {
	tok := New(Name, 6, 1, nil)
	if got := tok.End(); got != 7 {
		t.Errorf("End() = %d, want 7", got)
	}
}

func TestTokenTextNilSource(t *testing.T) {
	tok := New(Name, 0, 5, nil)
	if got := tok.Text(); got != "" {
		t.Errorf("Text() with nil source = %q, want empty", got)
	}
}

func TestTokenTextClampsToSourceLength(t *testing.T) {
	src := source.NewSource("t.graphql", "abc")
	tok := New(Name, 1, 100, src)
	if got := tok.Text(); got != "bc" {
		t.Errorf("Text() = %q, want %q", got, "bc")
	}
}

func TestKindIsTrivia(t *testing.T) {
	cases := []struct {
		k    Kind
		want bool
	}{
		{Whitespace, true},
		{Comment, true},
		{Name, false},
		{Punct, false},
		{EOF, false},
	}
	for _, tc := range cases {
		if got := tc.k.IsTrivia(); got != tc.want {
			t.Errorf("%v.IsTrivia() = %v, want %v", tc.k, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Name.String(); got != "Name" {
		t.Errorf("Name.String() = %q", got)
	}
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q, want Unknown", got)
	}
}

func TestKeywordsTable(t *testing.T) {
	for _, kw := range []string{"query", "mutation", "fragment", "on", "implements", "repeatable"} {
		if !Keywords[kw] {
			t.Errorf("expected %q to be a recognized keyword", kw)
		}
	}
	if Keywords["notAKeyword"] {
		t.Error("notAKeyword should not be in the Keywords table")
	}
}
