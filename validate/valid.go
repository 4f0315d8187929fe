/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package validate implements the semantic checks gqlcore runs over a built
ast.Schema or ast.ExecutableDocument: everything spec.md §4.F groups as
"schema checks" and "executable checks". Every check is a plain function
taking the semantic model plus a *diagnostic.Collector — no method receiver,
no shared mutable state beyond the collector — so new checks compose by
simply being added to the sequence of calls Schema/ExecutableDocument make.
*/
package validate

import "github.com/krotik/gqlcore/diagnostic"

/*
Valid[T] is a phantom wrapper: the only way to obtain one is a successful
call to Schema, ExecutableDocument or FieldSet in this package, since v is
unexported and this is the only package that can name it. Holding a
Valid[T] is a static promise that every check in this package passed.
*/
type Valid[T any] struct {
	v T
}

// Get returns the validated value.
func (v Valid[T]) Get() T { return v.v }

func wrap[T any](v T) Valid[T] { return Valid[T]{v: v} }

/*
WithErrors[T] pairs a partial (unsound) semantic model with every
diagnostic found, not just the first. Schema, ExecutableDocument and
FieldSet do not return it: on a blocking diagnostic they return the zero
Valid[T] plus the diagnostics, and the partial model is not handed back.
*/
type WithErrors[T any] struct {
	Partial T
	Errors  []diagnostic.Diagnostic
}
