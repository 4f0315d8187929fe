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

var testSchemaSDL = `
type Query { hero(episode: String): Character }
type Subscription { reviewAdded: Review }
interface Character { id: ID! name: String! friends: [Character] }
type Human implements Character { id: ID! name: String! friends: [Character] homePlanet: String }
type Review { stars: Int! commentary: String }
`

func buildValidSchema(t *testing.T) Valid[*ast.Schema] {
	t.Helper()
	s := buildSchema(t, testSchemaSDL)
	valid, diags := Schema(s, config.DefaultValidationOptions())
	require.Empty(t, diags)
	return valid
}

func buildExecDoc(t *testing.T, text string) *ast.ExecutableDocument {
	t.Helper()
	src := source.NewSource("q.graphql", text)
	tree := syntax.Parse(src, 1)
	require.Empty(t, tree.Errors)
	return ast.BuildExecutableDocument(tree.Document(), 1)
}

func TestExecutableValidQuery(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `query Hero { hero(episode: "JEDI") { id name } }`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.Empty(t, diags)
}

func TestExecutableDuplicateOperationName(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero { hero(episode: "JEDI") { id } }
query Hero { hero(episode: "JEDI") { id } }
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.DuplicateOperationName))
}

func TestExecutableUndefinedField(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `query Hero { hero(episode: "JEDI") { nickname } }`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UndefinedField))
}

func TestExecutableUnusedFragment(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero { hero(episode: "JEDI") { id } }
fragment Unused on Human { homePlanet }
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UnusedFragment))
}

func TestExecutableUndefinedVariable(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `query Hero { hero(episode: $ep) { id } }`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UndefinedVariable))
}

func TestExecutableUnusedVariable(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `query Hero($ep: String) { hero { id } }`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.UnusedVariable))
}

func TestExecutableFragmentCycle(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero { hero(episode: "JEDI") { ...A } }
fragment A on Character { ...B }
fragment B on Character { ...A }
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.FragmentCycle))
}

func TestExecutableSubscriptionMultipleRoots(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
subscription Sub { reviewAdded { stars } hero(episode: "JEDI") { id } }
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.SubscriptionMultipleRoots))
}

func TestExecutableFieldsConflict(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero {
  hero(episode: "JEDI") { id }
  hero(episode: "EMPIRE") { id }
}
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.FieldsConflict))
}

func TestExecutableFragmentTypeMismatch(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero {
  hero(episode: "JEDI") {
    ... on Review { stars }
  }
}
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.FragmentTypeMismatch))
}

func TestExecutableFragmentTypeMatchAllowed(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Hero {
  hero(episode: "JEDI") {
    ... on Human { homePlanet }
  }
}
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.False(t, hasKind(diags, diagnostic.FragmentTypeMismatch))
}

func TestExecutableIntrospectionDepthExceeded(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Introspect {
  __schema {
    types {
      fields {
        type {
          fields {
            type {
              fields {
                type {
                  name
                }
              }
            }
          }
        }
      }
    }
  }
}
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.True(t, hasKind(diags, diagnostic.IntrospectionDepth))
}

func TestExecutableIntrospectionSingleNestingAllowed(t *testing.T) {
	schema := buildValidSchema(t)
	doc := buildExecDoc(t, `
query Introspect {
  __schema {
    types {
      fields {
        type {
          ofType {
            name
          }
        }
      }
    }
  }
}
`)
	_, diags := ExecutableDocument(schema, doc, config.DefaultValidationOptions())
	require.False(t, hasKind(diags, diagnostic.IntrospectionDepth))
}
