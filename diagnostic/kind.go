/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package diagnostic implements the structured diagnostics produced by
lexing, parsing and validation: a closed Kind enum, severities, a
Collector, and three renderers (ANSI, plain, JSON). It has no precedent in
the teacher repo, whose hand-rolled parser returns single-shot error
values rather than an accumulated diagnostic list; this package is instead
grounded on the accumulate-into-Errors pattern used by the validation
context types found elsewhere in the example corpus.
*/
package diagnostic

/*
Severity classifies how a Diagnostic should affect the caller: Error and
Fatal diagnostics prevent a Valid[T] from being constructed; Warning and
Info never do.
*/
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

/*
Kind is a closed string enum identifying the specific rule or condition a
Diagnostic reports, stable across releases so machine consumers (the JSON
renderer) can match on it.
*/
type Kind string

const (
	// Lexical/syntactic
	UnexpectedToken       Kind = "UnexpectedToken"
	UnterminatedString    Kind = "UnterminatedString"
	InvalidNumberLiteral  Kind = "InvalidNumberLiteral"
	UnknownCharacter      Kind = "UnknownCharacter"
	TokenLimitReached     Kind = "TokenLimitReached"
	RecursionLimitReached Kind = "RecursionLimitReached"

	// Schema semantic
	DuplicateDefinition         Kind = "DuplicateDefinition"
	MissingQueryRoot            Kind = "MissingQueryRoot"
	DuplicateRootOperationType  Kind = "DuplicateRootOperationType"
	InvalidSelfReferentialDir   Kind = "InvalidSelfReferentialDirective"
	ProtectedScalarRedefinition Kind = "ProtectedScalarRedefinition"
	InvalidSpecifiedByUsage     Kind = "InvalidSpecifiedByUsage"
	IncompatibleImplementation  Kind = "IncompatibleImplementation"
	EmptyMemberList             Kind = "EmptyMemberList"
	DuplicateUnionMember        Kind = "DuplicateUnionMember"
	DuplicateEnumValue          Kind = "DuplicateEnumValue"
	NonOutputFieldType          Kind = "NonOutputFieldType"
	NonInputFieldType           Kind = "NonInputFieldType"
	InvalidDirectiveLocation    Kind = "InvalidDirectiveLocation"
	RepeatedNonRepeatableDirective Kind = "RepeatedNonRepeatableDirective"
	InvalidArgumentCoercion     Kind = "InvalidArgumentCoercion"
	NonObjectUnionMember        Kind = "NonObjectUnionMember"
	UndefinedInterface          Kind = "UndefinedInterface"

	// Executable semantic
	DuplicateOperationName    Kind = "DuplicateOperationName"
	AnonymousOperationNotAlone Kind = "AnonymousOperationNotAlone"
	SubscriptionMultipleRoots Kind = "SubscriptionMultipleRoots"
	SubscriptionIntrospects   Kind = "SubscriptionIntrospects"
	UndefinedField            Kind = "UndefinedField"
	UndefinedFragment         Kind = "UndefinedFragment"
	UndefinedVariable         Kind = "UndefinedVariable"
	UnusedFragment            Kind = "UnusedFragment"
	UnusedVariable            Kind = "UnusedVariable"
	FragmentCycle             Kind = "FragmentCycle"
	FragmentTypeMismatch      Kind = "FragmentTypeMismatch"
	FieldsConflict            Kind = "FieldsConflict"
	IntrospectionDepth        Kind = "IntrospectionDepth"
)
