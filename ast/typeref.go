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
TypeRefKind tags a TypeRef's shape. Kept as a small enum plus plain fields
rather than a Go interface so type-reference comparisons on validation hot
paths (argument coercion, selection merging) stay allocation-free.
*/
type TypeRefKind int

const (
	NamedRef TypeRefKind = iota
	ListRef
)

/*
TypeRef is a GraphQL type reference: a named type, optionally wrapped in
any number of List/NonNull layers. NonNull is carried as a bool on each
layer rather than as separate Kind values, so "[[String!]!]!" is
List{NonNull, List{NonNull, Named{String, NonNull}}} without a combinatorial
Kind per nesting combination.
*/
type TypeRef struct {
	Kind     TypeRefKind
	Name     Name     // set iff Kind == NamedRef
	OfType   *TypeRef // set iff Kind == ListRef
	NonNull  bool
}

// Named builds a nullable named type reference.
func Named(name Name) *TypeRef {
	return &TypeRef{Kind: NamedRef, Name: name}
}

// NonNullOf wraps t as non-null, returning t unchanged if already non-null.
func NonNullOf(t *TypeRef) *TypeRef {
	if t == nil || t.NonNull {
		return t
	}
	cp := *t
	cp.NonNull = true
	return &cp
}

// ListOf builds a nullable list type wrapping of.
func ListOf(of *TypeRef) *TypeRef {
	return &TypeRef{Kind: ListRef, OfType: of}
}

/*
NamedType returns the innermost named type this reference ultimately wraps,
unwrapping any number of List layers.
*/
func (t *TypeRef) NamedType() Name {
	for t != nil {
		if t.Kind == NamedRef {
			return t.Name
		}
		t = t.OfType
	}
	return Name{}
}

// String reconstructs the GraphQL type reference syntax, e.g. "[String!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	var s string
	switch t.Kind {
	case NamedRef:
		s = t.Name.String()
	case ListRef:
		s = "[" + t.OfType.String() + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

/*
Equal reports structural equality, including nullability at every layer —
used by directive-usage and fields-can-merge checks to compare declared vs.
observed type shapes.
*/
func (t *TypeRef) Equal(o *TypeRef) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.NonNull != o.NonNull {
		return false
	}
	if t.Kind == NamedRef {
		return t.Name.Equal(o.Name)
	}
	return t.OfType.Equal(o.OfType)
}
