/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package syntax

import (
	"strings"
	"testing"

	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/source"
)

func parse(t *testing.T, text string) *SyntaxTree {
	t.Helper()
	src := source.NewSource("t.graphql", text)
	return Parse(src, 1)
}

func TestParseShorthandQueryRoundTrips(t *testing.T) {
	text := "{ hero { name } }"
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	if tree.Text() != text {
		t.Errorf("Text() = %q, want %q", tree.Text(), text)
	}

	defs := tree.Document().Definitions()
	if len(defs) != 1 || !defs[0].IsOperation() {
		t.Fatalf("expected a single operation definition, got %#v", defs)
	}
	op := defs[0].AsOperation()
	if op.OperationType() != "query" {
		t.Errorf("OperationType() = %q, want query", op.OperationType())
	}
	sels := op.SelectionSet().Selections()
	if len(sels) != 1 || !sels[0].IsField() || sels[0].AsField().Name() != "hero" {
		t.Fatalf("unexpected selections: %#v", sels)
	}
}

func TestParseNamedQueryWithVariablesAndArguments(t *testing.T) {
	text := `query Hero($ep: Episode!) { hero(episode: $ep) { name friends(first: 3) { name } } }`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	if tree.Text() != text {
		t.Errorf("Text() did not round-trip: %q != %q", tree.Text(), text)
	}

	op := tree.Document().Definitions()[0].AsOperation()
	if op.Name() != "Hero" {
		t.Errorf("Name() = %q, want Hero", op.Name())
	}
	vars := op.VariableDefinitions()
	if len(vars) != 1 || vars[0].VariableName() != "ep" {
		t.Fatalf("unexpected variable definitions: %#v", vars)
	}
	ty := vars[0].Type()
	if !ty.IsNonNull() || ty.Name() != "Episode" {
		t.Errorf("unexpected variable type: IsNonNull=%v Name=%q", ty.IsNonNull(), ty.Name())
	}

	hero := op.SelectionSet().Selections()[0].AsField()
	args := hero.Arguments()
	if len(args) != 1 || args[0].Name() != "episode" || !args[0].Value().IsVariable() {
		t.Fatalf("unexpected arguments: %#v", args)
	}
}

func TestParseFragmentDefinition(t *testing.T) {
	text := `fragment HeroFields on Character { name appearsIn }`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	frag := tree.Document().Definitions()[0].AsFragment()
	if frag.Name() != "HeroFields" {
		t.Errorf("Name() = %q, want HeroFields", frag.Name())
	}
	if frag.TypeCondition() != "Character" {
		t.Errorf("TypeCondition() = %q, want Character", frag.TypeCondition())
	}
}

func TestParseObjectTypeDefinitionWithDescriptionAndInterfaces(t *testing.T) {
	text := `"""A droid"""
type Droid implements Character & Machine {
  id: ID!
  name: String
  friends(first: Int = 10): [Character]
}`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}

	def := tree.Document().Definitions()[0]
	obj := ObjectTypeDefinition{def.RedNode}
	if obj.Name() != "Droid" {
		t.Errorf("Name() = %q, want Droid", obj.Name())
	}
	if got := obj.Interfaces(); len(got) != 2 || got[0] != "Character" || got[1] != "Machine" {
		t.Errorf("Interfaces() = %v", got)
	}
	fields := obj.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Name() != "id" || !fields[0].Type().IsNonNull() || fields[0].Type().Name() != "ID" {
		t.Errorf("unexpected field[0]: %+v", fields[0].Type())
	}
	if fields[2].Name() != "friends" || !fields[2].Type().IsList() {
		t.Errorf("expected friends: [Character], got Text=%q", fields[2].Type().Text())
	}
	args := fields[2].Arguments()
	if len(args) != 1 || args[0].Name() != "first" {
		t.Fatalf("unexpected friends() arguments: %#v", args)
	}
	if dv, ok := args[0].DefaultValue(); !ok {
		t.Error("expected a default value for first")
	} else if n, ok := dv.AsInt(); !ok || n != 10 {
		t.Errorf("default value = %v, want 10", n)
	}
}

func TestParseEnumAndUnionAndInput(t *testing.T) {
	text := `enum Episode { NEWHOPE EMPIRE JEDI }
union SearchResult = Human | Droid | Starship
input ReviewInput { stars: Int! commentary: String }`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	defs := tree.Document().Definitions()
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}

	enum := EnumTypeDefinition{defs[0].RedNode}
	if len(enum.Values()) != 3 || enum.Values()[1].Name() != "EMPIRE" {
		t.Errorf("unexpected enum values: %#v", enum.Values())
	}

	union := UnionTypeDefinition{defs[1].RedNode}
	if members := union.MemberTypes(); len(members) != 3 || members[2] != "Starship" {
		t.Errorf("unexpected union members: %v", members)
	}

	input := InputObjectTypeDefinition{defs[2].RedNode}
	if len(input.Fields()) != 2 || input.Fields()[0].Name() != "stars" {
		t.Errorf("unexpected input fields: %#v", input.Fields())
	}
}

func TestParseSchemaAndDirectiveDefinition(t *testing.T) {
	text := `schema { query: Query mutation: Mutation }
directive @auth(role: String!) repeatable on FIELD_DEFINITION | OBJECT`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	defs := tree.Document().Definitions()
	schema := SchemaDefinition{defs[0].RedNode}
	roots := schema.RootOperationTypes()
	if roots["query"] != "Query" || roots["mutation"] != "Mutation" {
		t.Errorf("unexpected roots: %v", roots)
	}

	dir := DirectiveDefinition{defs[1].RedNode}
	if dir.Name() != "auth" || !dir.Repeatable() {
		t.Errorf("unexpected directive definition: name=%q repeatable=%v", dir.Name(), dir.Repeatable())
	}
	if locs := dir.Locations(); len(locs) != 2 || locs[1] != "OBJECT" {
		t.Errorf("unexpected locations: %v", locs)
	}
}

func TestParseExtendObjectType(t *testing.T) {
	text := `extend type Droid @deprecated { primaryFunction: String }`
	tree := parse(t, text)
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	if tree.Document().Definitions()[0].Kind().String() != "ExtendObjectTypeDefinition" {
		t.Errorf("unexpected kind: %v", tree.Document().Definitions()[0].Kind())
	}
}

func TestParseRecoversFromUnexpectedToken(t *testing.T) {
	text := `{ a ]]] b }`
	tree := parse(t, text)
	if len(tree.Errors) == 0 {
		t.Fatal("expected at least one diagnostic for the stray ']]]'")
	}
	// recovery keeps the skipped tokens and the closing brace in the tree
	if !strings.Contains(tree.Text(), "b }") {
		t.Errorf("expected recovered parse to still include trailing tokens, got %q", tree.Text())
	}
}

func TestTokenLimitReached(t *testing.T) {
	var b strings.Builder
	b.WriteString("{ ")
	for i := 0; i < 50; i++ {
		b.WriteString("a ")
	}
	b.WriteString("}")

	src := source.NewSource("t", b.String())
	tree := ParseWithOptions(src, 1, config.ParserOptions{TokenLimit: 10, RecursionLimit: 500})

	found := false
	for _, d := range tree.Errors {
		if d.Kind == "TokenLimitReached" {
			found = true
		}
	}
	if !found {
		t.Error("expected a TokenLimitReached diagnostic")
	}
}

func TestRecursionLimitReached(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("[")
	}
	b.WriteString("Int")
	for i := 0; i < 20; i++ {
		b.WriteString("]")
	}

	text := "query Q($v: " + b.String() + ") { f }"
	src := source.NewSource("t", text)
	tree := ParseWithOptions(src, 1, config.ParserOptions{TokenLimit: 15000, RecursionLimit: 5})

	found := false
	for _, d := range tree.Errors {
		if d.Kind == "RecursionLimitReached" {
			found = true
		}
	}
	if !found {
		t.Error("expected a RecursionLimitReached diagnostic")
	}
	if tree.Recursion.High() < 5 {
		t.Errorf("expected recursion high-water mark >= 5, got %d", tree.Recursion.High())
	}
}
