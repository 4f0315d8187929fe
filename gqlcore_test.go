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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krotik/gqlcore/config"
)

func TestParseRoundTrips(t *testing.T) {
	text := `query Hero { hero { name } }`
	tree := Parse(text, "q.graphql")
	require.Empty(t, tree.Errors)
	require.Equal(t, text, Format(tree))
}

func TestNewSchemaAndValidate(t *testing.T) {
	schema := NewSchema(
		NamedSource{Name: "a.graphql", Text: `type Query { hero: Character }
interface Character { id: ID! name: String! }`},
		NamedSource{Name: "b.graphql", Text: `type Human implements Character { id: ID! name: String! homePlanet: String }`},
	)

	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)

	got := valid.Get()
	require.Contains(t, got.Types, "Human")
	require.Contains(t, got.Types, "Character")
}

func TestNewSchemaMissingQueryRootFails(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "a.graphql", Text: `type Mutation { ping: String }`})
	_, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.NotEmpty(t, diags)
}

func TestParseAndValidateExecutable(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "a.graphql", Text: `type Query { hero: String }`})
	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)

	_, ediags := ParseAndValidateExecutable(valid, `query Hero { hero }`, "q.graphql")
	require.Empty(t, ediags)

	_, ediags = ParseAndValidateExecutable(valid, `query Hero { nickname }`, "q.graphql")
	require.NotEmpty(t, ediags)
}

func TestParseAndValidateFieldSet(t *testing.T) {
	schema := NewSchema(NamedSource{Name: "a.graphql", Text: `
type Query { hero: Human }
type Human { id: ID! name: String! }
`})
	valid, diags := ValidateSchema(schema, config.DefaultValidationOptions())
	require.Empty(t, diags)

	fs, fdiags := ParseAndValidateFieldSet(valid, "Human", `id name`, "fs.graphql")
	require.Empty(t, fdiags)
	require.Len(t, *fs, 2)

	_, fdiags = ParseAndValidateFieldSet(valid, "Human", `nickname`, "fs.graphql")
	require.NotEmpty(t, fdiags)
}

func TestParseMixedValidate(t *testing.T) {
	text := `
type Query { hero: String }
query Hero { hero }
`
	result, diags := ParseMixedValidate(text, "mixed.graphql")
	require.Empty(t, diags)
	require.NotNil(t, result.Schema)
	require.NotNil(t, result.Executable)
	require.Len(t, result.Executable.Operations, 1)
}

func TestParseMixedValidateInvalidSchemaStopsExecutableCheck(t *testing.T) {
	text := `
type Mutation { ping: String }
query Hero { hero }
`
	result, diags := ParseMixedValidate(text, "mixed.graphql")
	require.NotEmpty(t, diags)
	require.Nil(t, result.Executable)
}
