/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package cst implements the green/red concrete syntax tree: an immutable,
hash-consed, value-typed "green" tree plus a cheap-to-create "red" cursor
view that computes absolute offsets and parent links lazily. Every byte of
the original source, including trivia, is retained so the tree can be
serialized back to the exact input text.
*/
package cst

/*
SyntaxKind is a closed tagged enum over every grammar nonterminal plus the
two leaf kinds (Token, for any lexed token including trivia, and Error, for
a run of tokens the parser could not make sense of and skipped during
recovery). Using one flat enum instead of dynamic dispatch through node
interfaces keeps hot parser/validator paths allocation-free, per spec's
design note against virtual dispatch on the grammar tree.
*/
type SyntaxKind int

const (
	Token SyntaxKind = iota // leaf: wraps exactly one lexical token (trivia included)
	Error                   // recovery node: holds the tokens a production could not use

	Document
	OperationDefinition
	OperationType
	VariableDefinitions
	VariableDefinition
	Variable
	SelectionSet
	Field
	Alias
	Arguments
	Argument
	FragmentSpread
	InlineFragment
	FragmentDefinition
	FragmentName
	TypeCondition
	Directive
	Directives

	IntValue
	FloatValue
	StringValue
	BooleanValue
	NullValue
	EnumValue
	ListValue
	ObjectValue
	ObjectField
	DefaultValue

	NamedType
	ListType
	NonNullType

	Name
	Description

	SchemaDefinition
	RootOperationTypeDefinition
	ScalarTypeDefinition
	ObjectTypeDefinition
	FieldDefinition
	FieldsDefinition
	ArgumentsDefinition
	InputValueDefinition
	InterfaceTypeDefinition
	ImplementsInterfaces
	UnionTypeDefinition
	UnionMemberTypes
	EnumTypeDefinition
	EnumValuesDefinition
	EnumValueDefinition
	InputObjectTypeDefinition
	InputFieldsDefinition
	DirectiveDefinition
	DirectiveLocations

	ExtendSchemaDefinition
	ExtendScalarTypeDefinition
	ExtendObjectTypeDefinition
	ExtendInterfaceTypeDefinition
	ExtendUnionTypeDefinition
	ExtendEnumTypeDefinition
	ExtendInputObjectTypeDefinition
)

var kindNames = map[SyntaxKind]string{
	Token: "Token", Error: "Error",

	Document: "Document", OperationDefinition: "OperationDefinition",
	OperationType: "OperationType", VariableDefinitions: "VariableDefinitions",
	VariableDefinition: "VariableDefinition", Variable: "Variable",
	SelectionSet: "SelectionSet", Field: "Field", Alias: "Alias",
	Arguments: "Arguments", Argument: "Argument",
	FragmentSpread: "FragmentSpread", InlineFragment: "InlineFragment",
	FragmentDefinition: "FragmentDefinition", FragmentName: "FragmentName",
	TypeCondition: "TypeCondition", Directive: "Directive", Directives: "Directives",

	IntValue: "IntValue", FloatValue: "FloatValue", StringValue: "StringValue",
	BooleanValue: "BooleanValue", NullValue: "NullValue", EnumValue: "EnumValue",
	ListValue: "ListValue", ObjectValue: "ObjectValue", ObjectField: "ObjectField",
	DefaultValue: "DefaultValue",

	NamedType: "NamedType", ListType: "ListType", NonNullType: "NonNullType",

	Name: "Name", Description: "Description",

	SchemaDefinition:             "SchemaDefinition",
	RootOperationTypeDefinition:  "RootOperationTypeDefinition",
	ScalarTypeDefinition:         "ScalarTypeDefinition",
	ObjectTypeDefinition:         "ObjectTypeDefinition",
	FieldDefinition:              "FieldDefinition",
	FieldsDefinition:             "FieldsDefinition",
	ArgumentsDefinition:          "ArgumentsDefinition",
	InputValueDefinition:         "InputValueDefinition",
	InterfaceTypeDefinition:      "InterfaceTypeDefinition",
	ImplementsInterfaces:         "ImplementsInterfaces",
	UnionTypeDefinition:          "UnionTypeDefinition",
	UnionMemberTypes:             "UnionMemberTypes",
	EnumTypeDefinition:           "EnumTypeDefinition",
	EnumValuesDefinition:         "EnumValuesDefinition",
	EnumValueDefinition:          "EnumValueDefinition",
	InputObjectTypeDefinition:    "InputObjectTypeDefinition",
	InputFieldsDefinition:        "InputFieldsDefinition",
	DirectiveDefinition:          "DirectiveDefinition",
	DirectiveLocations:           "DirectiveLocations",
	ExtendSchemaDefinition:       "ExtendSchemaDefinition",
	ExtendScalarTypeDefinition:   "ExtendScalarTypeDefinition",
	ExtendObjectTypeDefinition:   "ExtendObjectTypeDefinition",
	ExtendInterfaceTypeDefinition: "ExtendInterfaceTypeDefinition",
	ExtendUnionTypeDefinition:    "ExtendUnionTypeDefinition",
	ExtendEnumTypeDefinition:     "ExtendEnumTypeDefinition",
	ExtendInputObjectTypeDefinition: "ExtendInputObjectTypeDefinition",
}

func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
