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
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/syntax"
)

func buildFieldSet(t *testing.T, text string) ast.FieldSet {
	t.Helper()
	src := source.NewSource("fs.graphql", text)
	tree := syntax.ParseSelectionSet(src, 1)
	require.Empty(t, tree.Errors)
	return ast.BuildFieldSet(tree.Document(), 1)
}

func TestFieldSetValid(t *testing.T) {
	schema := buildValidSchema(t)
	fs := buildFieldSet(t, `id name friends { id }`)

	valid, diags := FieldSet(schema, "Human", fs)
	require.Empty(t, diags)
	require.Len(t, valid.Get(), 3)
}

func TestFieldSetUndefinedField(t *testing.T) {
	schema := buildValidSchema(t)
	fs := buildFieldSet(t, `nickname`)

	_, diags := FieldSet(schema, "Human", fs)
	require.NotEmpty(t, diags)
	require.True(t, diags[0].Blocking())
}
