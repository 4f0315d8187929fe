/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlcore/ast"
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/syntax"
)

func buildSchema(t *testing.T, text string) *ast.Schema {
	t.Helper()
	src := source.NewSource("t.graphql", text)
	tree := syntax.Parse(src, 1)
	require.Empty(t, tree.Errors)
	return ast.BuildSchema(tree.Document(), 1)
}

func hasKind(diags []diagnostic.Diagnostic, kind diagnostic.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func TestSchemaValidMinimal(t *testing.T) {
	s := buildSchema(t, `type Query { hero: String }`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.Empty(t, diags)
}

func TestSchemaMissingQueryRoot(t *testing.T) {
	s := buildSchema(t, `type Mutation { createReview: String }`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.MissingQueryRoot))
}

func TestSchemaProtectedScalarRedefinition(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
scalar String
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.ProtectedScalarRedefinition))
}

func TestSchemaDuplicateFieldOnObject(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
type Human { id: ID! id: ID! }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.DuplicateDefinition))
}

func TestSchemaInterfaceImplementationIncompatible(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
interface Character { name: String! }
type Human implements Character { name: Int! }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.IncompatibleImplementation))
}

func TestSchemaEmptyUnionMembers(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
union SearchResult
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.EmptyMemberList))
}

func TestSchemaDuplicateEnumValue(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
enum Episode { NEWHOPE NEWHOPE }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.DuplicateEnumValue))
}

func TestSchemaInvalidDirectiveLocation(t *testing.T) {
	s := buildSchema(t, `
directive @onlyField on FIELD_DEFINITION
type Query { hero: String @onlyField }
scalar Custom @onlyField
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.InvalidDirectiveLocation))
}

func TestSchemaRepeatedNonRepeatableDirective(t *testing.T) {
	s := buildSchema(t, `
directive @once on FIELD_DEFINITION
type Query { hero: String @once @once }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.RepeatedNonRepeatableDirective))
}

func TestSchemaUnionMemberMustBeObject(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
union SearchResult = Episode
enum Episode { NEWHOPE }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.NonObjectUnionMember))
}

func TestSchemaUnionWithObjectMembersValid(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
union SearchResult = Human
type Human { name: String }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.False(t, hasKind(diags, diagnostic.NonObjectUnionMember))
}

func TestSchemaImplementsUndefinedInterface(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
type Human implements NotAThing { id: ID! }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UndefinedInterface))
}

func TestSchemaImplementsNonInterfaceType(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
enum Episode { NEWHOPE }
type Human implements Episode { id: ID! }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UndefinedInterface))
}

func TestSchemaCovariantNonNullImplementationAllowed(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
interface Character { name: String }
type Human implements Character { name: String! }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.False(t, hasKind(diags, diagnostic.IncompatibleImplementation))
}

func TestSchemaCovariantInterfaceToObjectImplementationAllowed(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
interface Named { self: Named }
type Human implements Named { self: Human }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.False(t, hasKind(diags, diagnostic.IncompatibleImplementation))
}

func TestSchemaNonCovariantImplementationRejected(t *testing.T) {
	s := buildSchema(t, `
type Query { hero: String }
interface Character { name: String! }
type Human implements Character { name: String }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.IncompatibleImplementation))
}

func TestSchemaValidObjectsWithTypedReturn(t *testing.T) {
	s := buildSchema(t, `
interface Character { id: ID! }
type Human implements Character {
  id: ID!
  friends: [Character]
}
type Query { hero: Human }
`)
	_, diags := Schema(s, config.DefaultValidationOptions())
	require.Empty(t, diags)
}
