/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package ast

/*
TypeKind tags which of the six GraphQL named-type shapes an ExtendedType
holds. Only the fields relevant to Kind are populated; build.go never mixes
e.g. Fields and Members on the same value.
*/
type TypeKind int

const (
	ScalarKind TypeKind = iota
	ObjectKind
	InterfaceKind
	UnionKind
	EnumKind
	InputObjectKind
)

// DirectiveUsage is one `@name(args)` application, with arguments already cooked.
type DirectiveUsage struct {
	Name      Name
	Arguments map[string]Value
}

// InputValueDef is a field/directive argument or input-object field.
type InputValueDef struct {
	Name        Name
	Description string
	Type        *TypeRef
	Default     *Value
	Directives  []DirectiveUsage
}

// FieldDef is one field of an object or interface type.
type FieldDef struct {
	Name        Name
	Description string
	Arguments   []InputValueDef
	Type        *TypeRef
	Directives  []DirectiveUsage
	Loc         *Location
}

// EnumValueDef is one member of an enum type.
type EnumValueDef struct {
	Name        Name
	Description string
	Directives  []DirectiveUsage
	Loc         *Location
}

/*
ExtendedType is a named type definition together with every `extend` block
contributed to it, each tagged with the ExtensionId that produced it so
validate can report per-extension conflicts; the merged view (Fields,
Interfaces, Members, Values, InputFields, Directives) already reflects all
extensions folded in, in the order they were encountered.
*/
type ExtendedType struct {
	Kind        TypeKind
	Name        Name
	Description string
	Directives  []DirectiveUsage
	Extensions  []ExtensionId

	Interfaces  []Name         // Object, Interface
	Fields      []FieldDef     // Object, Interface
	Members     []Name         // Union
	Values      []EnumValueDef // Enum
	InputFields []InputValueDef // InputObject

	Loc *Location // location of the first definition seen; extensions keep it
}

// DirectiveDefinitionAst is a `directive @name(args) on LOC | LOC` definition.
type DirectiveDefinitionAst struct {
	Name        Name
	Description string
	Arguments   []InputValueDef
	Repeatable  bool
	Locations   []string
	Loc         *Location
}

// RootOperationTypes names the object type backing each of the three root operations.
type RootOperationTypes struct {
	Query        Name
	Mutation     Name
	Subscription Name
}

/*
SchemaDefinitionAst is the (optional) explicit `schema { ... }` block; a
document with none gets the implicit roots (types named Query/Mutation/
Subscription) per the GraphQL spec's default. Schema.Roots resolves them on
each call; the builder does not fill them in.
*/
type SchemaDefinitionAst struct {
	Description string
	Directives  []DirectiveUsage
	Roots       RootOperationTypes
	Explicit    bool
}

/*
Schema is the full semantic model of a GraphQL type system: every named
type plus every directive definition, keyed by name so validate's lookups
are O(1), with the root operation types resolved (explicit schema block, or
the Query/Mutation/Subscription convention).
*/
type Schema struct {
	Types       map[string]*ExtendedType
	Directives  map[string]*DirectiveDefinitionAst
	SchemaDef   *SchemaDefinitionAst
}

// NewSchema returns an empty Schema ready for MergeSchema calls.
func NewSchema() *Schema {
	return &Schema{
		Types:      make(map[string]*ExtendedType),
		Directives: make(map[string]*DirectiveDefinitionAst),
	}
}

/*
Roots resolves the schema's three root operation types: the explicit schema
block's roots if one was declared, otherwise the Query/Mutation/Subscription
naming convention for whichever of those object types exist.
*/
func (s *Schema) Roots() RootOperationTypes {
	if s.SchemaDef != nil && s.SchemaDef.Explicit {
		return s.SchemaDef.Roots
	}
	var r RootOperationTypes
	if t, ok := s.Types["Query"]; ok && t.Kind == ObjectKind {
		r.Query = t.Name
	}
	if t, ok := s.Types["Mutation"]; ok && t.Kind == ObjectKind {
		r.Mutation = t.Name
	}
	if t, ok := s.Types["Subscription"]; ok && t.Kind == ObjectKind {
		r.Subscription = t.Name
	}
	return r
}
