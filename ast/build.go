/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package ast

import (
	"github.com/krotik/gqlcore/cst"
	"github.com/krotik/gqlcore/errorutil"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/syntax"
)

/*
builder carries the state threaded through one lowering pass: which name
constructor to use (interned for schema documents, heap for executable
documents — see Name's doc comment) and the source file this document came
from, for Location stamping.
*/
type builder struct {
	file   source.FileId
	mkName func(string) Name
}

func schemaBuilder(file source.FileId) *builder {
	return &builder{file: file, mkName: func(s string) Name {
		n, ok := NewSchemaName(s)
		errorutil.AssertTrue(ok, "lowering a Name token the lexer already validated: "+s)
		return n
	}}
}

func executableBuilder(file source.FileId) *builder {
	return &builder{file: file, mkName: func(s string) Name {
		n, ok := NewName(s)
		errorutil.AssertTrue(ok, "lowering a Name token the lexer already validated: "+s)
		return n
	}}
}

func (b *builder) loc(n *cst.RedNode) *Location {
	if n == nil {
		return nil
	}
	return &Location{File: uint32(b.file), Offset: n.Offset(), End: n.End()}
}

func (b *builder) typeRef(t syntax.Type) *TypeRef {
	if t.RedNode == nil {
		return nil
	}
	nonNull := t.IsNonNull()
	var tr *TypeRef
	if t.IsList() {
		tr = ListOf(b.typeRef(t.OfType()))
	} else {
		tr = Named(b.mkName(t.Name()))
	}
	if nonNull {
		tr = NonNullOf(tr)
	}
	return tr
}

func (b *builder) value(v syntax.Value) Value {
	if v.RedNode == nil {
		return Value{Kind: NullValue}
	}
	if v.IsVariable() {
		return Value{Kind: VariableValue, Variable: v.VariableName()}
	}
	if v.IsNull() {
		return Value{Kind: NullValue}
	}
	if n, ok := v.AsInt(); ok {
		return Value{Kind: IntValue, Int: n}
	}
	if f, ok := v.AsFloat(); ok {
		return Value{Kind: FloatValue, Float: f}
	}
	if bv, ok := v.AsBool(); ok {
		return Value{Kind: BoolValue, Bool: bv}
	}
	if e, ok := v.AsEnum(); ok {
		return Value{Kind: EnumValue, Str: e}
	}
	if s, ok := v.AsStringRaw(); ok {
		return Value{Kind: StringValue, Str: CookStringValue(s)}
	}
	if list, ok := v.AsList(); ok {
		out := make([]Value, len(list))
		for i, e := range list {
			out[i] = b.value(e)
		}
		return Value{Kind: ListValue, List: out}
	}
	if fields, ok := v.AsObjectFields(); ok {
		m := make(map[string]Value, len(fields))
		for _, f := range fields {
			m[f.Name()] = b.value(f.Value())
		}
		return Value{Kind: ObjectValue, Fields: m}
	}
	return Value{Kind: NullValue}
}

func (b *builder) directives(ds []syntax.Directive) []DirectiveUsage {
	if len(ds) == 0 {
		return nil
	}
	out := make([]DirectiveUsage, 0, len(ds))
	for _, d := range ds {
		args := d.Arguments()
		m := make(map[string]Value, len(args))
		for _, a := range args {
			m[a.Name()] = b.value(a.Value())
		}
		out = append(out, DirectiveUsage{Name: b.mkName(d.Name()), Arguments: m})
	}
	return out
}

func (b *builder) inputValue(i syntax.InputValueDefinition) InputValueDef {
	desc, _ := syntax.Description(i.RedNode)
	iv := InputValueDef{
		Name:        b.mkName(i.Name()),
		Description: desc,
		Type:        b.typeRef(i.Type()),
		Directives:  b.directives(i.Directives()),
	}
	if dv, ok := i.DefaultValue(); ok {
		v := b.value(dv)
		iv.Default = &v
	}
	return iv
}

func (b *builder) inputValues(in []syntax.InputValueDefinition) []InputValueDef {
	if len(in) == 0 {
		return nil
	}
	out := make([]InputValueDef, len(in))
	for i, v := range in {
		out[i] = b.inputValue(v)
	}
	return out
}

func (b *builder) field(f syntax.FieldDefinition) FieldDef {
	desc, _ := syntax.Description(f.RedNode)
	return FieldDef{
		Name:        b.mkName(f.Name()),
		Description: desc,
		Arguments:   b.inputValues(f.Arguments()),
		Type:        b.typeRef(f.Type()),
		Directives:  b.directives(f.Directives()),
		Loc:         b.loc(f.RedNode),
	}
}

func (b *builder) fields(in []syntax.FieldDefinition) []FieldDef {
	if len(in) == 0 {
		return nil
	}
	out := make([]FieldDef, len(in))
	for i, v := range in {
		out[i] = b.field(v)
	}
	return out
}

func (b *builder) names(in []string) []Name {
	if len(in) == 0 {
		return nil
	}
	out := make([]Name, len(in))
	for i, s := range in {
		out[i] = b.mkName(s)
	}
	return out
}

/*
upsertType returns the ExtendedType for name, creating an empty one of kind
if this is the first definition or extension seen for it. build.go always
keeps the first Kind it saw; validate does not report a redeclaration with
a conflicting Kind.
*/
func upsertType(schema *Schema, name Name, kind TypeKind) *ExtendedType {
	if t, ok := schema.Types[name.String()]; ok {
		return t
	}
	t := &ExtendedType{Kind: kind, Name: name}
	schema.Types[name.String()] = t
	return t
}

/*
BuildSchema lowers a parsed type-system document into a Schema. It never
rejects anything on its own: duplicate definitions, conflicting kinds and
malformed extensions are all still recorded (a type keeps the first Kind
and location seen for it; repeated members are appended) so validate can inspect and report on
the fully merged shape. Call MergeSchema to fold documents from several
files into one Schema, as SPEC_FULL.md's multi-file merge requires.
*/
func BuildSchema(doc syntax.Document, file source.FileId) *Schema {
	b := schemaBuilder(file)
	schema := NewSchema()
	buildSchemaInto(schema, doc, b)
	return schema
}

func buildSchemaInto(schema *Schema, doc syntax.Document, b *builder) {
	for _, def := range doc.Definitions() {
		switch def.Kind() {
		case cst.SchemaDefinition:
			buildSchemaDefinition(schema, syntax.SchemaDefinition{RedNode: def.RedNode}, b, false, ExtensionId{})
		case cst.ExtendSchemaDefinition:
			buildSchemaDefinition(schema, syntax.SchemaDefinition{RedNode: def.RedNode}, b, true, NewExtensionId())

		case cst.ScalarTypeDefinition:
			buildScalar(schema, syntax.ScalarTypeDefinition{RedNode: def.RedNode}, b, ExtensionId{})
		case cst.ExtendScalarTypeDefinition:
			buildScalar(schema, syntax.ScalarTypeDefinition{RedNode: def.RedNode}, b, NewExtensionId())

		case cst.ObjectTypeDefinition:
			buildObject(schema, syntax.ObjectTypeDefinition{RedNode: def.RedNode}, b, ObjectKind, ExtensionId{})
		case cst.ExtendObjectTypeDefinition:
			buildObject(schema, syntax.ObjectTypeDefinition{RedNode: def.RedNode}, b, ObjectKind, NewExtensionId())

		case cst.InterfaceTypeDefinition:
			buildInterface(schema, syntax.InterfaceTypeDefinition{RedNode: def.RedNode}, b, ExtensionId{})
		case cst.ExtendInterfaceTypeDefinition:
			buildInterface(schema, syntax.InterfaceTypeDefinition{RedNode: def.RedNode}, b, NewExtensionId())

		case cst.UnionTypeDefinition:
			buildUnion(schema, syntax.UnionTypeDefinition{RedNode: def.RedNode}, b, ExtensionId{})
		case cst.ExtendUnionTypeDefinition:
			buildUnion(schema, syntax.UnionTypeDefinition{RedNode: def.RedNode}, b, NewExtensionId())

		case cst.EnumTypeDefinition:
			buildEnum(schema, syntax.EnumTypeDefinition{RedNode: def.RedNode}, b, ExtensionId{})
		case cst.ExtendEnumTypeDefinition:
			buildEnum(schema, syntax.EnumTypeDefinition{RedNode: def.RedNode}, b, NewExtensionId())

		case cst.InputObjectTypeDefinition:
			buildInputObject(schema, syntax.InputObjectTypeDefinition{RedNode: def.RedNode}, b, ExtensionId{})
		case cst.ExtendInputObjectTypeDefinition:
			buildInputObject(schema, syntax.InputObjectTypeDefinition{RedNode: def.RedNode}, b, NewExtensionId())

		case cst.DirectiveDefinition:
			buildDirectiveDefinition(schema, syntax.DirectiveDefinition{RedNode: def.RedNode}, b)
		}
	}
}

func markExtension(t *ExtendedType, ext ExtensionId) {
	if ext != (ExtensionId{}) {
		t.Extensions = append(t.Extensions, ext)
	}
}

func buildSchemaDefinition(schema *Schema, s syntax.SchemaDefinition, b *builder, extend bool, ext ExtensionId) {
	if schema.SchemaDef == nil {
		schema.SchemaDef = &SchemaDefinitionAst{}
	}
	schema.SchemaDef.Explicit = true
	if !extend {
		desc, _ := syntax.Description(s.RedNode)
		schema.SchemaDef.Description = desc
	}
	schema.SchemaDef.Directives = append(schema.SchemaDef.Directives, b.directives(s.Directives())...)
	for op, typeName := range s.RootOperationTypes() {
		name := b.mkName(typeName)
		switch op {
		case "query":
			schema.SchemaDef.Roots.Query = name
		case "mutation":
			schema.SchemaDef.Roots.Mutation = name
		case "subscription":
			schema.SchemaDef.Roots.Subscription = name
		}
	}
	_ = ext
}

func buildScalar(schema *Schema, s syntax.ScalarTypeDefinition, b *builder, ext ExtensionId) {
	name := b.mkName(s.Name())
	t := upsertType(schema, name, ScalarKind)
	if t.Loc == nil {
		t.Loc = b.loc(s.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(s.RedNode)
		t.Description = desc
	}
	t.Directives = append(t.Directives, b.directives(s.Directives())...)
	markExtension(t, ext)
}

func buildObject(schema *Schema, o syntax.ObjectTypeDefinition, b *builder, kind TypeKind, ext ExtensionId) {
	name := b.mkName(o.Name())
	t := upsertType(schema, name, kind)
	if t.Loc == nil {
		t.Loc = b.loc(o.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(o.RedNode)
		t.Description = desc
	}
	t.Interfaces = append(t.Interfaces, b.names(o.Interfaces())...)
	t.Fields = append(t.Fields, b.fields(o.Fields())...)
	t.Directives = append(t.Directives, b.directives(o.Directives())...)
	markExtension(t, ext)
}

func buildInterface(schema *Schema, i syntax.InterfaceTypeDefinition, b *builder, ext ExtensionId) {
	name := b.mkName(i.Name())
	t := upsertType(schema, name, InterfaceKind)
	if t.Loc == nil {
		t.Loc = b.loc(i.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(i.RedNode)
		t.Description = desc
	}
	t.Interfaces = append(t.Interfaces, b.names(i.Interfaces())...)
	t.Fields = append(t.Fields, b.fields(i.Fields())...)
	t.Directives = append(t.Directives, b.directives(i.Directives())...)
	markExtension(t, ext)
}

func buildUnion(schema *Schema, u syntax.UnionTypeDefinition, b *builder, ext ExtensionId) {
	name := b.mkName(u.Name())
	t := upsertType(schema, name, UnionKind)
	if t.Loc == nil {
		t.Loc = b.loc(u.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(u.RedNode)
		t.Description = desc
	}
	t.Members = append(t.Members, b.names(u.MemberTypes())...)
	t.Directives = append(t.Directives, b.directives(u.Directives())...)
	markExtension(t, ext)
}

func buildEnum(schema *Schema, e syntax.EnumTypeDefinition, b *builder, ext ExtensionId) {
	name := b.mkName(e.Name())
	t := upsertType(schema, name, EnumKind)
	if t.Loc == nil {
		t.Loc = b.loc(e.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(e.RedNode)
		t.Description = desc
	}
	for _, v := range e.Values() {
		desc, _ := syntax.Description(v.RedNode)
		t.Values = append(t.Values, EnumValueDef{
			Name:        b.mkName(v.Name()),
			Description: desc,
			Directives:  b.directives(v.Directives()),
			Loc:         b.loc(v.RedNode),
		})
	}
	t.Directives = append(t.Directives, b.directives(e.Directives())...)
	markExtension(t, ext)
}

func buildInputObject(schema *Schema, i syntax.InputObjectTypeDefinition, b *builder, ext ExtensionId) {
	name := b.mkName(i.Name())
	t := upsertType(schema, name, InputObjectKind)
	if t.Loc == nil {
		t.Loc = b.loc(i.RedNode)
	}
	if ext == (ExtensionId{}) {
		desc, _ := syntax.Description(i.RedNode)
		t.Description = desc
	}
	t.InputFields = append(t.InputFields, b.inputValues(i.Fields())...)
	t.Directives = append(t.Directives, b.directives(i.Directives())...)
	markExtension(t, ext)
}

func buildDirectiveDefinition(schema *Schema, d syntax.DirectiveDefinition, b *builder) {
	desc, _ := syntax.Description(d.RedNode)
	schema.Directives[d.Name()] = &DirectiveDefinitionAst{
		Name:        b.mkName(d.Name()),
		Description: desc,
		Arguments:   b.inputValues(d.Arguments()),
		Repeatable:  d.Repeatable(),
		Locations:   append([]string(nil), d.Locations()...),
		Loc:         b.loc(d.RedNode),
	}
}

/*
MergeSchema folds src into dst in place: same-name type/directive
definitions from different files accumulate (fields/members/values append,
single-valued fields like Description keep dst's first value), matching
SPEC_FULL.md §4.E — redeclaration is flagged by validate, never rejected
here.
*/
func MergeSchema(dst *Schema, src *Schema) {
	for name, t := range src.Types {
		if existing, ok := dst.Types[name]; ok {
			existing.Interfaces = append(existing.Interfaces, t.Interfaces...)
			existing.Fields = append(existing.Fields, t.Fields...)
			existing.Members = append(existing.Members, t.Members...)
			existing.Values = append(existing.Values, t.Values...)
			existing.InputFields = append(existing.InputFields, t.InputFields...)
			existing.Directives = append(existing.Directives, t.Directives...)
			existing.Extensions = append(existing.Extensions, t.Extensions...)
			continue
		}
		dst.Types[name] = t
	}
	for name, d := range src.Directives {
		if _, ok := dst.Directives[name]; !ok {
			dst.Directives[name] = d
		}
	}
	if src.SchemaDef != nil {
		if dst.SchemaDef == nil {
			dst.SchemaDef = src.SchemaDef
		} else {
			dst.SchemaDef.Directives = append(dst.SchemaDef.Directives, src.SchemaDef.Directives...)
		}
	}
}

/*
BuildExecutableDocument lowers a parsed document's operations and fragments
into an ExecutableDocument, using the non-interning Name path since
executable documents come from unbounded client input.
*/
func BuildExecutableDocument(doc syntax.Document, file source.FileId) *ExecutableDocument {
	b := executableBuilder(file)
	out := &ExecutableDocument{Fragments: make(map[string]FragmentDef)}

	for _, def := range doc.Definitions() {
		switch {
		case def.IsOperation():
			out.Operations = append(out.Operations, buildOperation(def.AsOperation(), b))
		case def.IsFragment():
			fd := buildFragment(def.AsFragment(), b)
			out.Fragments[fd.Name.String()] = fd
		}
	}
	return out
}

/*
BuildFieldSet lowers a syntax.Document produced by syntax.ParseSelectionSet
(a single shorthand operation wrapping a bare selection list) into a
FieldSet, for gqlcore.ParseAndValidateFieldSet's standalone field-set
strings.
*/
func BuildFieldSet(doc syntax.Document, file source.FileId) FieldSet {
	b := executableBuilder(file)
	for _, def := range doc.Definitions() {
		if def.IsOperation() {
			return FieldSet(b.selections(def.AsOperation().SelectionSet()))
		}
	}
	return nil
}

func buildOperation(o syntax.OperationDefinition, b *builder) OperationDef {
	op := OperationDef{
		OperationType: o.OperationType(),
		Name:          o.Name(),
		Directives:    b.directives(o.Directives()),
		Loc:           b.loc(o.RedNode),
	}
	for _, v := range o.VariableDefinitions() {
		vd := VariableDef{
			Name:       b.mkName(v.VariableName()),
			Type:       b.typeRef(v.Type()),
			Directives: b.directives(v.Directives()),
		}
		if dv, ok := v.DefaultValue(); ok {
			val := b.value(dv)
			vd.Default = &val
		}
		op.Variables = append(op.Variables, vd)
	}
	op.Selections = b.selections(o.SelectionSet())
	return op
}

func buildFragment(f syntax.FragmentDefinition, b *builder) FragmentDef {
	return FragmentDef{
		Name:          b.mkName(f.Name()),
		TypeCondition: b.mkName(f.TypeCondition()),
		Directives:    b.directives(f.Directives()),
		Selections:    b.selections(f.SelectionSet()),
		Loc:           b.loc(f.RedNode),
	}
}

func (b *builder) selections(ss syntax.SelectionSet) []Selection {
	sels := ss.Selections()
	if len(sels) == 0 {
		return nil
	}
	out := make([]Selection, 0, len(sels))
	for _, s := range sels {
		switch {
		case s.IsField():
			out = append(out, b.fieldSelection(s.AsField()))
		case s.IsFragmentSpread():
			fs := s.AsFragmentSpread()
			out = append(out, Selection{
				Kind:         FragmentSpreadKind,
				FragmentName: b.mkName(fs.Name()),
				Directives:   b.directives(fs.Directives()),
				Loc:          b.loc(fs.RedNode),
			})
		case s.IsInlineFragment():
			inf := s.AsInlineFragment()
			var tc Name
			if cond, ok := inf.TypeCondition(); ok {
				tc = b.mkName(cond)
			}
			out = append(out, Selection{
				Kind:          InlineFragmentKind,
				TypeCondition: tc,
				Directives:    b.directives(inf.Directives()),
				Selections:    b.selections(inf.SelectionSet()),
				Loc:           b.loc(inf.RedNode),
			})
		}
	}
	return out
}

func (b *builder) fieldSelection(f syntax.Field) Selection {
	sel := Selection{
		Kind:       FieldSelectionKind,
		Name:       b.mkName(f.Name()),
		Directives: b.directives(f.Directives()),
		Loc:        b.loc(f.RedNode),
	}
	if alias, ok := f.Alias(); ok {
		sel.Alias = alias
	}
	for _, a := range f.Arguments() {
		sel.Arguments = append(sel.Arguments, Argument{Name: b.mkName(a.Name()), Value: b.value(a.Value())})
	}
	if ss, ok := f.SelectionSet(); ok {
		sel.Selections = b.selections(ss)
	}
	return sel
}
