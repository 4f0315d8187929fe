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
	"strconv"

	"github.com/krotik/gqlcore/cst"
)

// childNodesOf is a nil-safe wrapper for an optional container node whose
// absence (dropped by error recovery, or simply not present in the
// grammar) should read back as no children rather than panic.
func childNodesOf(n *cst.RedNode) []*cst.RedNode {
	if n == nil {
		return nil
	}
	return n.ChildNodes()
}

/*
This file is the "typed view" over the untyped cst.RedNode tree: one thin
wrapper struct per grammar nonterminal the semantic builder and validator
need to walk. No accessor ever panics — a missing child (dropped during
error recovery) simply yields the zero value, leaving the caller free to
skip or report on it.
*/

func textOfName(n *cst.RedNode) string {
	if n == nil {
		return ""
	}
	nameNode := n.FirstChildOfKind(cst.Name)
	if nameNode == nil {
		return ""
	}
	tok := nameNode.FirstToken()
	if tok == nil {
		return ""
	}
	return tok.Text
}

func rawDescriptionText(n *cst.RedNode) (string, bool) {
	if n == nil {
		return "", false
	}
	d := n.FirstChildOfKind(cst.Description)
	if d == nil {
		return "", false
	}
	tok := d.FirstToken()
	if tok == nil {
		return "", false
	}
	return tok.Text, true
}

// Document wraps the root of a parsed GraphQL document.
type Document struct{ *cst.RedNode }

/*
Definitions returns every top-level definition (operations, fragments,
type system definitions and extensions) in document order.
*/
func (d Document) Definitions() []Definition {
	var out []Definition
	for _, c := range d.ChildNodes() {
		out = append(out, Definition{c})
	}
	return out
}

// Definition is a generic wrapper used for top-level dispatch.
type Definition struct{ *cst.RedNode }

func (d Definition) IsOperation() bool { return d.Kind() == cst.OperationDefinition }
func (d Definition) IsFragment() bool  { return d.Kind() == cst.FragmentDefinition }

func (d Definition) AsOperation() OperationDefinition { return OperationDefinition{d.RedNode} }
func (d Definition) AsFragment() FragmentDefinition    { return FragmentDefinition{d.RedNode} }

// OperationDefinition wraps a query/mutation/subscription (named or shorthand).
type OperationDefinition struct{ *cst.RedNode }

func (o OperationDefinition) OperationType() string {
	n := o.FirstChildOfKind(cst.OperationType)
	if n == nil {
		return "query" // shorthand form is always a query
	}
	tok := n.FirstToken()
	if tok == nil {
		return "query"
	}
	return tok.Text
}

func (o OperationDefinition) Name() string { return textOfName(o.RedNode) }

func (o OperationDefinition) VariableDefinitions() []VariableDefinition {
	vs := o.FirstChildOfKind(cst.VariableDefinitions)
	var out []VariableDefinition
	for _, c := range childNodesOf(vs) {
		out = append(out, VariableDefinition{c})
	}
	return out
}

func (o OperationDefinition) Directives() []Directive {
	return directivesOf(o.RedNode)
}

func (o OperationDefinition) SelectionSet() SelectionSet {
	return SelectionSet{o.FirstChildOfKind(cst.SelectionSet)}
}

func directivesOf(n *cst.RedNode) []Directive {
	container := n.FirstChildOfKind(cst.Directives)
	if container == nil {
		return nil
	}
	var out []Directive
	for _, c := range container.ChildrenOfKind(cst.Directive) {
		out = append(out, Directive{c})
	}
	return out
}

// VariableDefinition wraps "$name: Type = default @directives".
type VariableDefinition struct{ *cst.RedNode }

func (v VariableDefinition) VariableName() string {
	variable := v.FirstChildOfKind(cst.Variable)
	return textOfName(variable)
}

func (v VariableDefinition) Type() Type {
	return Type{firstTypeNode(v.RedNode)}
}

func (v VariableDefinition) DefaultValue() (Value, bool) {
	dv := v.FirstChildOfKind(cst.DefaultValue)
	if dv == nil {
		return Value{}, false
	}
	for _, c := range dv.ChildNodes() {
		return Value{c}, true
	}
	return Value{}, false
}

func (v VariableDefinition) Directives() []Directive { return directivesOf(v.RedNode) }

func firstTypeNode(n *cst.RedNode) *cst.RedNode {
	if n == nil {
		return nil
	}
	for _, c := range n.ChildNodes() {
		switch c.Kind() {
		case cst.NamedType, cst.ListType, cst.NonNullType:
			return c
		}
	}
	return nil
}

// Type wraps a NamedType/ListType/NonNullType reference.
type Type struct{ *cst.RedNode }

func (t Type) IsNonNull() bool {
	return t.RedNode != nil && t.Kind() == cst.NonNullType
}

func (t Type) IsList() bool {
	inner := t.RedNode
	if inner == nil {
		return false
	}
	if inner.Kind() == cst.NonNullType {
		inner = firstTypeNode(inner)
	}
	return inner != nil && inner.Kind() == cst.ListType
}

// Name returns the referenced type name for a (possibly non-null) NamedType, or "".
func (t Type) Name() string {
	inner := t.RedNode
	if inner == nil {
		return ""
	}
	if inner.Kind() == cst.NonNullType {
		inner = firstTypeNode(inner)
	}
	if inner == nil || inner.Kind() != cst.NamedType {
		return ""
	}
	return textOfName(inner)
}

// OfType returns the element type of a (possibly non-null) ListType, or the zero Type.
func (t Type) OfType() Type {
	inner := t.RedNode
	if inner == nil {
		return Type{}
	}
	if inner.Kind() == cst.NonNullType {
		inner = firstTypeNode(inner)
	}
	if inner == nil || inner.Kind() != cst.ListType {
		return Type{}
	}
	return Type{firstTypeNode(inner)}
}

// Text reconstructs the type reference's source text (e.g. "[String!]!").
func (t Type) Text() string {
	if t.RedNode == nil {
		return ""
	}
	return t.RedNode.Text()
}

// SelectionSet wraps "{ selection+ }".
type SelectionSet struct{ *cst.RedNode }

func (s SelectionSet) Selections() []Selection {
	if s.RedNode == nil {
		return nil
	}
	var out []Selection
	for _, c := range s.ChildNodes() {
		switch c.Kind() {
		case cst.Field, cst.FragmentSpread, cst.InlineFragment:
			out = append(out, Selection{c})
		}
	}
	return out
}

// Selection is a generic wrapper over Field/FragmentSpread/InlineFragment.
type Selection struct{ *cst.RedNode }

func (s Selection) IsField() bool          { return s.Kind() == cst.Field }
func (s Selection) IsFragmentSpread() bool { return s.Kind() == cst.FragmentSpread }
func (s Selection) IsInlineFragment() bool { return s.Kind() == cst.InlineFragment }

func (s Selection) AsField() Field                   { return Field{s.RedNode} }
func (s Selection) AsFragmentSpread() FragmentSpread { return FragmentSpread{s.RedNode} }
func (s Selection) AsInlineFragment() InlineFragment { return InlineFragment{s.RedNode} }

// Field wraps "alias: name(args) @directives { selectionSet }".
type Field struct{ *cst.RedNode }

func (f Field) Alias() (string, bool) {
	a := f.FirstChildOfKind(cst.Alias)
	if a == nil {
		return "", false
	}
	return textOfName(a), true
}

func (f Field) Name() string { return textOfName(f.RedNode) }

/*
ResponseKey returns the alias if present, otherwise the field name — the
key this field's result appears under (spec's "response key").
*/
func (f Field) ResponseKey() string {
	if alias, ok := f.Alias(); ok {
		return alias
	}
	return f.Name()
}

func (f Field) Arguments() []Argument {
	container := f.FirstChildOfKind(cst.Arguments)
	if container == nil {
		return nil
	}
	var out []Argument
	for _, c := range container.ChildrenOfKind(cst.Argument) {
		out = append(out, Argument{c})
	}
	return out
}

func (f Field) Directives() []Directive { return directivesOf(f.RedNode) }

func (f Field) SelectionSet() (SelectionSet, bool) {
	ss := f.FirstChildOfKind(cst.SelectionSet)
	return SelectionSet{ss}, ss != nil
}

// Argument wraps "name: value".
type Argument struct{ *cst.RedNode }

func (a Argument) Name() string { return textOfName(a.RedNode) }
func (a Argument) Value() Value {
	for _, c := range a.ChildNodes() {
		if c.Kind() != cst.Name {
			return Value{c}
		}
	}
	return Value{}
}

// Directive wraps "@name(args)".
type Directive struct{ *cst.RedNode }

func (d Directive) Name() string { return textOfName(d.RedNode) }
func (d Directive) Arguments() []Argument {
	container := d.FirstChildOfKind(cst.Arguments)
	if container == nil {
		return nil
	}
	var out []Argument
	for _, c := range container.ChildrenOfKind(cst.Argument) {
		out = append(out, Argument{c})
	}
	return out
}

// FragmentSpread wraps "...Name @directives".
type FragmentSpread struct{ *cst.RedNode }

func (f FragmentSpread) Name() string           { return textOfName(f.RedNode) }
func (f FragmentSpread) Directives() []Directive { return directivesOf(f.RedNode) }

// InlineFragment wraps "... on Type @directives { selectionSet }".
type InlineFragment struct{ *cst.RedNode }

func (f InlineFragment) TypeCondition() (string, bool) {
	tc := f.FirstChildOfKind(cst.TypeCondition)
	if tc == nil {
		return "", false
	}
	t := Type{firstTypeNode(tc)}
	return t.Name(), true
}

func (f InlineFragment) Directives() []Directive { return directivesOf(f.RedNode) }
func (f InlineFragment) SelectionSet() SelectionSet {
	return SelectionSet{f.FirstChildOfKind(cst.SelectionSet)}
}

// FragmentDefinition wraps "fragment Name on Type @directives { selectionSet }".
type FragmentDefinition struct{ *cst.RedNode }

func (f FragmentDefinition) Name() string {
	fn := f.FirstChildOfKind(cst.FragmentName)
	return textOfName(fn)
}

func (f FragmentDefinition) TypeCondition() string {
	tc := f.FirstChildOfKind(cst.TypeCondition)
	return Type{firstTypeNode(tc)}.Name()
}

func (f FragmentDefinition) Directives() []Directive   { return directivesOf(f.RedNode) }
func (f FragmentDefinition) SelectionSet() SelectionSet {
	return SelectionSet{f.FirstChildOfKind(cst.SelectionSet)}
}

/*
Value is a generic wrapper over any Value production; use Kind to dispatch
and the As* helpers to read out the cooked Go value.
*/
type Value struct{ *cst.RedNode }

func (v Value) IsVariable() bool { return v.RedNode != nil && v.Kind() == cst.Variable }
func (v Value) IsNull() bool     { return v.RedNode != nil && v.Kind() == cst.NullValue }

func (v Value) VariableName() string { return textOfName(v.RedNode) }

func (v Value) AsInt() (int64, bool) {
	if v.RedNode == nil || v.Kind() != cst.IntValue {
		return 0, false
	}
	tok := v.FirstToken()
	if tok == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(tok.Text, 10, 64)
	return n, err == nil
}

func (v Value) AsFloat() (float64, bool) {
	if v.RedNode == nil || v.Kind() != cst.FloatValue {
		return 0, false
	}
	tok := v.FirstToken()
	if tok == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	return f, err == nil
}

func (v Value) AsBool() (bool, bool) {
	if v.RedNode == nil || v.Kind() != cst.BooleanValue {
		return false, false
	}
	tok := v.FirstToken()
	return tok != nil && tok.Text == "true", tok != nil
}

func (v Value) AsEnum() (string, bool) {
	if v.RedNode == nil || v.Kind() != cst.EnumValue {
		return "", false
	}
	tok := v.FirstToken()
	if tok == nil {
		return "", false
	}
	return tok.Text, true
}

func (v Value) AsStringRaw() (string, bool) {
	if v.RedNode == nil || v.Kind() != cst.StringValue {
		return "", false
	}
	tok := v.FirstToken()
	if tok == nil {
		return "", false
	}
	return tok.Text, true
}

func (v Value) AsList() ([]Value, bool) {
	if v.RedNode == nil || v.Kind() != cst.ListValue {
		return nil, false
	}
	var out []Value
	for _, c := range v.ChildNodes() {
		out = append(out, Value{c})
	}
	return out, true
}

func (v Value) AsObjectFields() ([]ObjectField, bool) {
	if v.RedNode == nil || v.Kind() != cst.ObjectValue {
		return nil, false
	}
	var out []ObjectField
	for _, c := range v.ChildrenOfKind(cst.ObjectField) {
		out = append(out, ObjectField{c})
	}
	return out, true
}

// ObjectField wraps "name: value" inside an ObjectValue.
type ObjectField struct{ *cst.RedNode }

func (f ObjectField) Name() string { return textOfName(f.RedNode) }
func (f ObjectField) Value() Value {
	for _, c := range f.ChildNodes() {
		if c.Kind() != cst.Name {
			return Value{c}
		}
	}
	return Value{}
}

/*
Description returns the associated leading description string for any
definition node carrying a Description child, cooked (block strings have
common indentation stripped) the same way lexer.BlockStringValue does —
see ast/build.go, which calls through to that cooking function directly
rather than duplicating it here.
*/
func Description(n *cst.RedNode) (string, bool) {
	return rawDescriptionText(n)
}

// ScalarTypeDefinition wraps "scalar Name @directives".
type ScalarTypeDefinition struct{ *cst.RedNode }

func (s ScalarTypeDefinition) Name() string          { return textOfName(s.RedNode) }
func (s ScalarTypeDefinition) Directives() []Directive { return directivesOf(s.RedNode) }

// ObjectTypeDefinition wraps "type Name implements I & J @directives { fields }".
type ObjectTypeDefinition struct{ *cst.RedNode }

func (o ObjectTypeDefinition) Name() string            { return textOfName(o.RedNode) }
func (o ObjectTypeDefinition) Directives() []Directive { return directivesOf(o.RedNode) }

func (o ObjectTypeDefinition) Interfaces() []string {
	return interfaceNamesOf(o.RedNode)
}

func (o ObjectTypeDefinition) Fields() []FieldDefinition {
	return fieldDefinitionsOf(o.RedNode)
}

func interfaceNamesOf(n *cst.RedNode) []string {
	container := n.FirstChildOfKind(cst.ImplementsInterfaces)
	if container == nil {
		return nil
	}
	var out []string
	for _, c := range container.ChildNodes() {
		if c.Kind() == cst.NamedType {
			out = append(out, textOfName(c))
		}
	}
	return out
}

func fieldDefinitionsOf(n *cst.RedNode) []FieldDefinition {
	container := n.FirstChildOfKind(cst.FieldsDefinition)
	if container == nil {
		return nil
	}
	var out []FieldDefinition
	for _, c := range container.ChildrenOfKind(cst.FieldDefinition) {
		out = append(out, FieldDefinition{c})
	}
	return out
}

// FieldDefinition wraps "name(args): Type @directives" inside a FieldsDefinition.
type FieldDefinition struct{ *cst.RedNode }

func (f FieldDefinition) Name() string            { return textOfName(f.RedNode) }
func (f FieldDefinition) Directives() []Directive { return directivesOf(f.RedNode) }
func (f FieldDefinition) Type() Type              { return Type{firstTypeNode(f.RedNode)} }

func (f FieldDefinition) Arguments() []InputValueDefinition {
	container := f.FirstChildOfKind(cst.ArgumentsDefinition)
	if container == nil {
		return nil
	}
	var out []InputValueDefinition
	for _, c := range container.ChildrenOfKind(cst.InputValueDefinition) {
		out = append(out, InputValueDefinition{c})
	}
	return out
}

// InputValueDefinition wraps "name: Type = default @directives".
type InputValueDefinition struct{ *cst.RedNode }

func (i InputValueDefinition) Name() string            { return textOfName(i.RedNode) }
func (i InputValueDefinition) Directives() []Directive { return directivesOf(i.RedNode) }
func (i InputValueDefinition) Type() Type              { return Type{firstTypeNode(i.RedNode)} }

func (i InputValueDefinition) DefaultValue() (Value, bool) {
	dv := i.FirstChildOfKind(cst.DefaultValue)
	if dv == nil {
		return Value{}, false
	}
	for _, c := range dv.ChildNodes() {
		return Value{c}, true
	}
	return Value{}, false
}

// InterfaceTypeDefinition wraps "interface Name implements ... @directives { fields }".
type InterfaceTypeDefinition struct{ *cst.RedNode }

func (i InterfaceTypeDefinition) Name() string            { return textOfName(i.RedNode) }
func (i InterfaceTypeDefinition) Directives() []Directive { return directivesOf(i.RedNode) }
func (i InterfaceTypeDefinition) Interfaces() []string    { return interfaceNamesOf(i.RedNode) }
func (i InterfaceTypeDefinition) Fields() []FieldDefinition {
	return fieldDefinitionsOf(i.RedNode)
}

// UnionTypeDefinition wraps "union Name @directives = A | B".
type UnionTypeDefinition struct{ *cst.RedNode }

func (u UnionTypeDefinition) Name() string            { return textOfName(u.RedNode) }
func (u UnionTypeDefinition) Directives() []Directive { return directivesOf(u.RedNode) }

func (u UnionTypeDefinition) MemberTypes() []string {
	container := u.FirstChildOfKind(cst.UnionMemberTypes)
	if container == nil {
		return nil
	}
	var out []string
	for _, c := range container.ChildNodes() {
		if c.Kind() == cst.NamedType {
			out = append(out, textOfName(c))
		}
	}
	return out
}

// EnumTypeDefinition wraps "enum Name @directives { values }".
type EnumTypeDefinition struct{ *cst.RedNode }

func (e EnumTypeDefinition) Name() string            { return textOfName(e.RedNode) }
func (e EnumTypeDefinition) Directives() []Directive { return directivesOf(e.RedNode) }

func (e EnumTypeDefinition) Values() []EnumValueDefinition {
	container := e.FirstChildOfKind(cst.EnumValuesDefinition)
	if container == nil {
		return nil
	}
	var out []EnumValueDefinition
	for _, c := range container.ChildrenOfKind(cst.EnumValueDefinition) {
		out = append(out, EnumValueDefinition{c})
	}
	return out
}

// EnumValueDefinition wraps one member of an EnumValuesDefinition.
type EnumValueDefinition struct{ *cst.RedNode }

func (e EnumValueDefinition) Name() string            { return textOfName(e.RedNode) }
func (e EnumValueDefinition) Directives() []Directive { return directivesOf(e.RedNode) }

// InputObjectTypeDefinition wraps "input Name @directives { fields }".
type InputObjectTypeDefinition struct{ *cst.RedNode }

func (i InputObjectTypeDefinition) Name() string            { return textOfName(i.RedNode) }
func (i InputObjectTypeDefinition) Directives() []Directive { return directivesOf(i.RedNode) }

func (i InputObjectTypeDefinition) Fields() []InputValueDefinition {
	container := i.FirstChildOfKind(cst.InputFieldsDefinition)
	if container == nil {
		return nil
	}
	var out []InputValueDefinition
	for _, c := range container.ChildrenOfKind(cst.InputValueDefinition) {
		out = append(out, InputValueDefinition{c})
	}
	return out
}

// SchemaDefinition wraps "schema @directives { query: Q mutation: M ... }".
type SchemaDefinition struct{ *cst.RedNode }

func (s SchemaDefinition) Directives() []Directive { return directivesOf(s.RedNode) }

func (s SchemaDefinition) RootOperationTypes() map[string]string {
	out := make(map[string]string)
	for _, c := range s.ChildrenOfKind(cst.RootOperationTypeDefinition) {
		opNode := c.FirstChildOfKind(cst.OperationType)
		var opText string
		if opNode != nil {
			if tok := opNode.FirstToken(); tok != nil {
				opText = tok.Text
			}
		}
		out[opText] = Type{firstTypeNode(c)}.Name()
	}
	return out
}

// DirectiveDefinition wraps "directive @name(args) on LOCATION | LOCATION".
type DirectiveDefinition struct{ *cst.RedNode }

func (d DirectiveDefinition) Name() string { return textOfName(d.RedNode) }

func (d DirectiveDefinition) Arguments() []InputValueDefinition {
	container := d.FirstChildOfKind(cst.ArgumentsDefinition)
	if container == nil {
		return nil
	}
	var out []InputValueDefinition
	for _, c := range container.ChildrenOfKind(cst.InputValueDefinition) {
		out = append(out, InputValueDefinition{c})
	}
	return out
}

// Repeatable reports whether the "repeatable" modifier is present; it
// lexes as a Name token directly under DirectiveDefinition, not wrapped in
// its own nonterminal, so this scans immediate leaves for it.
func (d DirectiveDefinition) Repeatable() bool {
	for _, e := range d.Children() {
		if e.IsToken() && e.Token != nil && e.Token.Text == "repeatable" {
			return true
		}
	}
	return false
}

func (d DirectiveDefinition) Locations() []string {
	container := d.FirstChildOfKind(cst.DirectiveLocations)
	if container == nil {
		return nil
	}
	var out []string
	for _, c := range container.ChildrenOfKind(cst.Name) {
		if tok := c.FirstToken(); tok != nil {
			out = append(out, tok.Text)
		}
	}
	return out
}
