/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package gqlcore is the public surface of the parser/validator: a single
entry point wiring source -> syntax (lex + recover-on-error parse) ->
ast (typed lowering) -> validate (Valid[T] construction) together, so a
host application never has to reach into the internal packages directly
for the common cases. Each function here is a thin, stateless wrapper —
it builds its own source.SourceMap (or ast.Schema, per the call) from the
strings given to it and returns the result plus whatever diagnostics were
accumulated along the way.
*/
package gqlcore

import (
	"github.com/krotik/gqlcore/ast"
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/syntax"
	"github.com/krotik/gqlcore/validate"
)

// NamedSource is one input file for NewSchema: a file name and its text.
type NamedSource struct {
	Name string
	Text string
}

/*
MixedResult is what ParseMixedValidate hands back for a document mixing
type-system definitions with operations/fragments in one file (the GraphQL
spec permits this even though most tooling splits the two): the schema
contribution and the executable contribution are built and validated
independently, since an executable document can only be checked once a
complete schema exists.
*/
type MixedResult struct {
	Schema     *ast.Schema
	Executable *ast.ExecutableDocument
}

// Parse lexes and parses source under fileName using default ParserOptions.
func Parse(src, fileName string) *syntax.SyntaxTree {
	return ParseWithOptions(src, fileName, config.DefaultParserOptions())
}

// ParseWithOptions is Parse under an explicit token/recursion budget.
func ParseWithOptions(src, fileName string, opts config.ParserOptions) *syntax.SyntaxTree {
	sm := source.NewSourceMap()
	file := sm.AddFile(fileName, src)
	return syntax.ParseWithOptions(sm.Get(file), file, opts)
}

/*
NewSchema parses and lowers every source, merging all of them into one
ast.Schema via ast.MergeSchema (so a type and its extensions can live in
separate files). It does not validate — call ValidateSchema on the
result before trusting it.
*/
func NewSchema(sources ...NamedSource) *ast.Schema {
	return NewSchemaWithOptions(config.DefaultParserOptions(), sources...)
}

// NewSchemaWithOptions is NewSchema under an explicit parser budget.
func NewSchemaWithOptions(opts config.ParserOptions, sources ...NamedSource) *ast.Schema {
	sm := source.NewSourceMap()
	merged := ast.NewSchema()
	for _, ns := range sources {
		file := sm.AddFile(ns.Name, ns.Text)
		tree := syntax.ParseWithOptions(sm.Get(file), file, opts)
		part := ast.BuildSchema(tree.Document(), file)
		ast.MergeSchema(merged, part)
	}
	return merged
}

// ValidateSchema runs every schema-side check against s.
func ValidateSchema(s *ast.Schema, opts config.ValidationOptions) (validate.Valid[*ast.Schema], []diagnostic.Diagnostic) {
	return validate.Schema(s, opts)
}

/*
ParseAndValidateExecutable parses src as an executable document, lowers
it, and validates it against an already-Valid schema.
*/
func ParseAndValidateExecutable(schema validate.Valid[*ast.Schema], src, fileName string) (validate.Valid[*ast.ExecutableDocument], []diagnostic.Diagnostic) {
	return ParseAndValidateExecutableWithOptions(schema, src, fileName, config.DefaultParserOptions(), config.DefaultValidationOptions())
}

// ParseAndValidateExecutableWithOptions is ParseAndValidateExecutable under explicit budgets.
func ParseAndValidateExecutableWithOptions(schema validate.Valid[*ast.Schema], src, fileName string, parserOpts config.ParserOptions, validationOpts config.ValidationOptions) (validate.Valid[*ast.ExecutableDocument], []diagnostic.Diagnostic) {
	sm := source.NewSourceMap()
	file := sm.AddFile(fileName, src)
	tree := syntax.ParseWithOptions(sm.Get(file), file, parserOpts)

	var diags []diagnostic.Diagnostic
	diags = append(diags, tree.Errors...)
	if tree.HasErrors() {
		return validate.Valid[*ast.ExecutableDocument]{}, diags
	}

	doc := ast.BuildExecutableDocument(tree.Document(), file)
	valid, vdiags := validate.ExecutableDocument(schema, doc, validationOpts)
	diags = append(diags, vdiags...)
	return valid, diags
}

/*
ParseAndValidateFieldSet parses src as a bare field-set string (no
enclosing "{ }") and validates every field it names exists on parentType.
*/
func ParseAndValidateFieldSet(schema validate.Valid[*ast.Schema], parentType, src, fileName string) (*ast.FieldSet, []diagnostic.Diagnostic) {
	sm := source.NewSourceMap()
	file := sm.AddFile(fileName, src)
	tree := syntax.ParseSelectionSet(sm.Get(file), file)

	var diags []diagnostic.Diagnostic
	diags = append(diags, tree.Errors...)
	if tree.HasErrors() {
		return nil, diags
	}

	fs := ast.BuildFieldSet(tree.Document(), file)
	valid, vdiags := validate.FieldSet(schema, parentType, fs)
	diags = append(diags, vdiags...)
	if len(vdiags) > 0 {
		hasBlocking := false
		for _, d := range vdiags {
			if d.Blocking() {
				hasBlocking = true
				break
			}
		}
		if hasBlocking {
			return nil, diags
		}
	}
	out := valid.Get()
	return &out, diags
}

/*
ParseMixedValidate handles a document mixing type-system definitions with
operations/fragments: it splits the parsed definitions by kind, builds and
validates the schema half first, then (if the schema is Valid) builds and
validates the executable half against it.
*/
func ParseMixedValidate(src, fileName string) (*MixedResult, []diagnostic.Diagnostic) {
	sm := source.NewSourceMap()
	file := sm.AddFile(fileName, src)
	tree := syntax.ParseWithOptions(sm.Get(file), file, config.DefaultParserOptions())

	var diags []diagnostic.Diagnostic
	diags = append(diags, tree.Errors...)
	if tree.HasErrors() {
		return nil, diags
	}

	schema := ast.BuildSchema(tree.Document(), file)
	validSchema, sdiags := validate.Schema(schema, config.DefaultValidationOptions())
	diags = append(diags, sdiags...)

	result := &MixedResult{Schema: schema}

	hasBlocking := false
	for _, d := range sdiags {
		if d.Blocking() {
			hasBlocking = true
			break
		}
	}
	if hasBlocking {
		return result, diags
	}

	exec := ast.BuildExecutableDocument(tree.Document(), file)
	if len(exec.Operations) > 0 || len(exec.Fragments) > 0 {
		_, ediags := validate.ExecutableDocument(validSchema, exec, config.DefaultValidationOptions())
		diags = append(diags, ediags...)
		result.Executable = exec
	}

	return result, diags
}

/*
Format reconstructs the exact source text a SyntaxTree was parsed from;
for any input that parsed without recovery errors this round-trips
byte-for-byte, per the CST's trivia-preserving design.
*/
func Format(tree *syntax.SyntaxTree) string {
	return tree.Text()
}
