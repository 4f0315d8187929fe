/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package gqlcore

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/syntax"
)

/*
TestPropertyRoundTrip exercises invariant 2 (spec.md §8): for every input
that parses without errors, Format(Parse(s)) == s. Inputs are generated
rather than hand-picked, varying whitespace/comma trivia, nesting depth and
field count, since trivia-preservation bugs tend to hide in exactly those
dimensions.
*/
func TestPropertyRoundTrip(t *testing.T) {
	seps := []string{" ", "  ", "\n", ",", " ,\n"}
	for fieldCount := 1; fieldCount <= 6; fieldCount++ {
		for _, sep := range seps {
			var fields []string
			for i := 0; i < fieldCount; i++ {
				fields = append(fields, fmt.Sprintf("f%d", i))
			}
			text := "query Q {" + sep + strings.Join(fields, sep) + sep + "}"

			tree := Parse(text, "t.graphql")
			require.Emptyf(t, tree.Errors, "input: %q", text)
			require.Equal(t, text, Format(tree), "round-trip mismatch for %q", text)
		}
	}
}

/*
TestPropertyRoundTripNestedTypeRefs generates deeply nested list/non-null
type references (the shape scenario S7 exercises once) at several depths,
checking every one round-trips.
*/
func TestPropertyRoundTripNestedTypeRefs(t *testing.T) {
	for depth := 1; depth <= 8; depth++ {
		var open, close string
		for i := 0; i < depth; i++ {
			open += "["
			close += "!]!"
		}
		ty := open + "Int" + close
		text := fmt.Sprintf("query Q($v: %s) { f }", ty)

		tree := Parse(text, "t.graphql")
		require.Emptyf(t, tree.Errors, "input: %q", text)
		require.Equal(t, text, Format(tree))
	}
}

/*
TestPropertyRecursionLimitNoOverflow exercises invariant 6: a chain of
nested list-type references deeper than RecursionLimit yields exactly one
RecursionLimitReached diagnostic and the parser returns instead of
overflowing the Go stack, across a range of limit/depth combinations.
*/
func TestPropertyRecursionLimitNoOverflow(t *testing.T) {
	cases := []struct{ limit, depth int }{
		{limit: 5, depth: 50},
		{limit: 20, depth: 200},
		{limit: 100, depth: 1000},
	}
	for _, tc := range cases {
		var open string
		for i := 0; i < tc.depth; i++ {
			open += "["
		}
		text := fmt.Sprintf("query Q($v: %sInt) { f }", open)

		var tree *syntax.SyntaxTree
		require.NotPanics(t, func() {
			tree = ParseWithOptions(text, "t.graphql", config.ParserOptions{TokenLimit: 1 << 20, RecursionLimit: uint32(tc.limit)})
		})

		count := 0
		for _, d := range tree.Errors {
			if d.Kind == "RecursionLimitReached" {
				count++
			}
		}
		require.Equalf(t, 1, count, "limit=%d depth=%d: expected exactly one RecursionLimitReached diagnostic", tc.limit, tc.depth)
	}
}
