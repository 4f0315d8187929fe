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
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
)

// S1: a minimal explicit schema validates with an explicit Query root.
func TestScenarioS1ExplicitSchemaValidates(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "s.graphql", Text: `schema { query: Query } type Query { id: ID! }`})
	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)
	require.Equal(t, "Query", valid.Get().Roots().Query.String())
}

// S2: a query referencing an undeclared variable is rejected.
func TestScenarioS2UndefinedVariable(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "s.graphql", Text: `type Query { topProducts(first: Int): Product } type Product { name: String }`})
	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)

	_, diags = ParseAndValidateExecutable(valid, `query X { topProducts(first: $v) { name } }`, "q.graphql")
	require.True(t, hasDiagKind(diags, diagnostic.UndefinedVariable))
}

// S3: a field that returns an input object is rejected as a non-output type.
func TestScenarioS3NonOutputFieldType(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "s.graphql", Text: `
type Query { coordinates: Point2D }
input Point2D { x: Float y: Float }
`})
	_, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.True(t, hasDiagKind(diags, diagnostic.NonOutputFieldType))
}

// S4: a field declaring the same argument name twice is rejected.
func TestScenarioS4DuplicateArgument(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "s.graphql", Text: `
type Query { method(arg: Boolean, arg: Boolean): Int }
`})
	_, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.True(t, hasDiagKind(diags, diagnostic.DuplicateDefinition))
}

// S5: a subscription selecting only an introspection field is rejected.
func TestScenarioS5SubscriptionIntrospects(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "s.graphql", Text: `
type Query { id: ID! }
type Subscription { ping: String }
`})
	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)

	_, diags = ParseAndValidateExecutable(valid, `subscription sub { __typename }`, "q.graphql")
	require.True(t, hasDiagKind(diags, diagnostic.SubscriptionIntrospects))
}

// S6: a long fragment-spread chain parses under a small recursion limit without a panic.
func TestScenarioS6LongFragmentChainRecursionLimit(t *testing.T) {
	const n = 1000
	var b strings.Builder
	b.WriteString(`query Q { hero { ...f0 } } `)
	for i := 0; i < n; i++ {
		next := i + 1
		if next == n {
			next = 0
		}
		b.WriteString("fragment f")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" on Character { ...f")
		b.WriteString(strconv.Itoa(next))
		b.WriteString(" } ")
	}

	require.NotPanics(t, func() {
		tree := ParseWithOptions(b.String(), "q.graphql", config.ParserOptions{TokenLimit: 1 << 20, RecursionLimit: 50})
		_ = tree
	})
}

// S7: a deeply nested non-null/list type reference round-trips unchanged.
func TestScenarioS7NestedTypeRefRoundTrips(t *testing.T) {
	text := `query Q($v: [[[[[Int!]!]!]!]!]!) { f }`
	tree := Parse(text, "q.graphql")
	require.Empty(t, tree.Errors)
	require.Equal(t, text, Format(tree))
}

// S8: a non-ASCII identifier run is reported as a parse error without a panic.
func TestScenarioS8NonASCIIIdentifierRecovers(t *testing.T) {
	text := `type Query { field: 中文類型 }`
	require.NotPanics(t, func() {
		tree := Parse(text, "s.graphql")
		require.NotEmpty(t, tree.Errors)
	})
}

func hasDiagKind(diags []diagnostic.Diagnostic, kind diagnostic.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
