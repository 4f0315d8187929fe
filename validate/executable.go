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
	"github.com/krotik/gqlcore/ast"
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
)

/*
ExecutableDocument runs every executable check in spec.md §4.F's order over
doc against schema (which must already be Valid), returning a
Valid[*ast.ExecutableDocument] if nothing blocking was found.
*/
func ExecutableDocument(schema Valid[*ast.Schema], doc *ast.ExecutableDocument, opts config.ValidationOptions) (Valid[*ast.ExecutableDocument], []diagnostic.Diagnostic) {
	c := diagnostic.NewCollector()
	s := schema.Get()

	checkOperationNames(doc, c)
	checkSubscriptionShape(s, doc, c)
	fieldUsed := checkFragmentUsage(doc, c)
	checkUndefinedVariables(doc, c)
	checkFieldExistence(s, doc, c)
	checkFragmentApplicability(s, doc, c)
	checkFieldsCanMerge(s, doc, c)
	if opts.IntrospectionDepthLimit {
		checkIntrospectionDepth(doc, c)
	}
	_ = fieldUsed

	diags := c.Diagnostics()
	if c.HasBlocking() {
		return Valid[*ast.ExecutableDocument]{}, diags
	}
	return wrap(doc), diags
}

func checkOperationNames(doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	seen := map[string]bool{}
	anonymous := 0
	for _, op := range doc.Operations {
		if op.Name == "" {
			anonymous++
			continue
		}
		if seen[op.Name] {
			report(c, 0, op.Loc, diagnostic.Error, diagnostic.DuplicateOperationName,
				"operation name "+op.Name+" is used more than once")
		}
		seen[op.Name] = true
	}
	if anonymous > 0 && (anonymous+len(seen)) > 1 {
		report(c, 0, nil, diagnostic.Error, diagnostic.AnonymousOperationNotAlone,
			"an anonymous operation must be the only operation in the document")
	}
}

func checkSubscriptionShape(s *ast.Schema, doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	roots := s.Roots()
	for _, op := range doc.Operations {
		if op.OperationType != "subscription" {
			continue
		}
		if len(op.Selections) != 1 {
			report(c, 0, op.Loc, diagnostic.Error, diagnostic.SubscriptionMultipleRoots,
				"subscription "+op.Name+" must select exactly one root field")
		}
		for _, sel := range op.Selections {
			if sel.Kind != ast.FieldSelectionKind {
				continue
			}
			if roots.Subscription.String() != "" {
				if t, ok := s.Types[roots.Subscription.String()]; ok {
					if isIntrospectionField(t, sel.Name.String()) {
						report(c, 0, sel.Loc, diagnostic.Error, diagnostic.SubscriptionIntrospects,
							"subscription "+op.Name+" must not select an introspection field")
					}
				}
			}
		}
	}
}

func isIntrospectionField(t *ast.ExtendedType, name string) bool {
	return name == "__schema" || name == "__type" || name == "__typename"
}

/*
checkFragmentUsage marks every fragment reachable from some operation
(directly or through nested spreads), then reports UnusedFragment for
every fragment definition never reached; it returns the reachable set,
which ExecutableDocument does not use.
*/
func checkFragmentUsage(doc *ast.ExecutableDocument, c *diagnostic.Collector) map[string]bool {
	used := map[string]bool{}
	var walk func(sels []ast.Selection, stack map[string]bool)
	walk = func(sels []ast.Selection, stack map[string]bool) {
		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				walk(sel.Selections, stack)
			case ast.InlineFragmentKind:
				walk(sel.Selections, stack)
			case ast.FragmentSpreadKind:
				name := sel.FragmentName.String()
				if stack[name] {
					report(c, 0, sel.Loc, diagnostic.Error, diagnostic.FragmentCycle,
						"fragment "+name+" spreads itself, directly or indirectly")
					continue
				}
				if used[name] {
					continue
				}
				used[name] = true
				fd, ok := doc.Fragments[name]
				if !ok {
					report(c, 0, sel.Loc, diagnostic.Error, diagnostic.UndefinedFragment,
						"fragment "+name+" is not defined")
					continue
				}
				stack[name] = true
				walk(fd.Selections, stack)
				delete(stack, name)
			}
		}
	}

	for _, op := range doc.Operations {
		walk(op.Selections, map[string]bool{})
	}
	for name, fd := range doc.Fragments {
		if !used[name] {
			report(c, 0, fd.Loc, diagnostic.Warning, diagnostic.UnusedFragment,
				"fragment "+name+" is never used")
		}
	}
	return used
}

/*
checkUndefinedVariables reports every $variable referenced in an
operation's selections/directives/argument values that was not declared as
one of its own variable definitions, and every declared variable never
referenced (UnusedVariable, a lint rather than an error).
*/
func checkUndefinedVariables(doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	for _, op := range doc.Operations {
		declared := map[string]bool{}
		for _, v := range op.Variables {
			declared[v.Name.String()] = true
		}
		used := map[string]bool{}

		var visitValue func(v ast.Value)
		visitValue = func(v ast.Value) {
			switch v.Kind {
			case ast.VariableValue:
				used[v.Variable] = true
				if !declared[v.Variable] {
					report(c, 0, op.Loc, diagnostic.Error, diagnostic.UndefinedVariable,
						"variable $"+v.Variable+" is not defined by operation "+op.Name)
				}
			case ast.ListValue:
				for _, e := range v.List {
					visitValue(e)
				}
			case ast.ObjectValue:
				for _, e := range v.Fields {
					visitValue(e)
				}
			}
		}
		visitDirectives := func(ds []ast.DirectiveUsage) {
			for _, d := range ds {
				for _, v := range d.Arguments {
					visitValue(v)
				}
			}
		}
		var walk func(sels []ast.Selection)
		walk = func(sels []ast.Selection) {
			for _, sel := range sels {
				visitDirectives(sel.Directives)
				for _, a := range sel.Arguments {
					visitValue(a.Value)
				}
				walk(sel.Selections)
			}
		}
		visitDirectives(op.Directives)
		walk(op.Selections)
		// fragment spreads used by this operation also consume variables;
		// fragments are walked document-wide since the same fragment can be
		// shared by several operations with different variable sets.
		var walkFragments func(sels []ast.Selection, seen map[string]bool)
		walkFragments = func(sels []ast.Selection, seen map[string]bool) {
			for _, sel := range sels {
				if sel.Kind == ast.FragmentSpreadKind {
					name := sel.FragmentName.String()
					if seen[name] {
						continue
					}
					seen[name] = true
					if fd, ok := doc.Fragments[name]; ok {
						visitDirectives(fd.Directives)
						walk(fd.Selections)
						walkFragments(fd.Selections, seen)
					}
				} else {
					walkFragments(sel.Selections, seen)
				}
			}
		}
		walkFragments(op.Selections, map[string]bool{})

		for _, v := range op.Variables {
			if !used[v.Name.String()] {
				report(c, 0, op.Loc, diagnostic.Warning, diagnostic.UnusedVariable,
					"variable $"+v.Name.String()+" is never used in operation "+op.Name)
			}
		}
	}
}

/*
checkFieldExistence walks each operation's selections against the schema,
resolving the parent type at each level (starting from the matching root
type), and reports UndefinedField for any field name the parent type does
not declare. Fragments are resolved using their own type condition.
*/
func checkFieldExistence(s *ast.Schema, doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	roots := s.Roots()

	var walk func(sels []ast.Selection, parent string)
	walk = func(sels []ast.Selection, parent string) {
		parentType, ok := s.Types[parent]
		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				if !ok {
					continue
				}
				if isIntrospectionField(parentType, sel.Name.String()) {
					continue
				}
				fd := lookupField(s, parentType, sel.Name.String())
				if fd == nil {
					report(c, 0, sel.Loc, diagnostic.Error, diagnostic.UndefinedField,
						"field "+sel.Name.String()+" does not exist on type "+parent)
					continue
				}
				if len(sel.Selections) > 0 {
					walk(sel.Selections, fd.Type.NamedType().String())
				}
			case ast.InlineFragmentKind:
				cond := parent
				if !sel.TypeCondition.IsZero() {
					cond = sel.TypeCondition.String()
				}
				walk(sel.Selections, cond)
			case ast.FragmentSpreadKind:
				if fd2, ok := doc.Fragments[sel.FragmentName.String()]; ok {
					walk(fd2.Selections, fd2.TypeCondition.String())
				}
			}
		}
	}

	for _, op := range doc.Operations {
		var root ast.Name
		switch op.OperationType {
		case "query":
			root = roots.Query
		case "mutation":
			root = roots.Mutation
		case "subscription":
			root = roots.Subscription
		}
		walk(op.Selections, root.String())
	}
}

/*
checkFragmentApplicability implements spec §5.5.1.2/5.5.2.3's
fragment-spread-is-possible rule: an inline fragment's or named fragment's
type condition must share at least one possible concrete type with the
type of the selection set it is spread into, otherwise the fragment can
never apply to any response object shape. Selections under a meta field
(__schema/__type/__typename) are left unwalked, same as checkFieldExistence,
since lookupField never resolves those names to a declared field.
*/
func checkFragmentApplicability(s *ast.Schema, doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	roots := s.Roots()

	var walk func(sels []ast.Selection, parent string)
	walk = func(sels []ast.Selection, parent string) {
		parentType, ok := s.Types[parent]
		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				if !ok {
					continue
				}
				fd := lookupField(s, parentType, sel.Name.String())
				if fd == nil || len(sel.Selections) == 0 {
					continue
				}
				walk(sel.Selections, fd.Type.NamedType().String())
			case ast.InlineFragmentKind:
				cond := parent
				if !sel.TypeCondition.IsZero() {
					cond = sel.TypeCondition.String()
					if parent != "" && !fragmentApplies(s, parent, cond) {
						report(c, 0, sel.Loc, diagnostic.Error, diagnostic.FragmentTypeMismatch,
							"inline fragment on "+cond+" can never be selected against type "+parent)
					}
				}
				walk(sel.Selections, cond)
			case ast.FragmentSpreadKind:
				fd2, ok := doc.Fragments[sel.FragmentName.String()]
				if !ok {
					continue
				}
				cond := fd2.TypeCondition.String()
				if parent != "" && !fragmentApplies(s, parent, cond) {
					report(c, 0, sel.Loc, diagnostic.Error, diagnostic.FragmentTypeMismatch,
						"fragment "+sel.FragmentName.String()+" on "+cond+" can never be selected against type "+parent)
				}
				walk(fd2.Selections, cond)
			}
		}
	}

	for _, op := range doc.Operations {
		var root ast.Name
		switch op.OperationType {
		case "query":
			root = roots.Query
		case "mutation":
			root = roots.Mutation
		case "subscription":
			root = roots.Subscription
		}
		walk(op.Selections, root.String())
	}
}

/*
possibleTypes expands a named type into the set of concrete object type
names a response value typed as typeName could actually be: itself for an
object type, its member types for a union, and the object types that
declare it among their interfaces for an interface.
*/
func possibleTypes(s *ast.Schema, typeName string) map[string]bool {
	t, ok := s.Types[typeName]
	if !ok {
		return nil
	}
	switch t.Kind {
	case ast.ObjectKind:
		return map[string]bool{typeName: true}
	case ast.UnionKind:
		out := map[string]bool{}
		for _, m := range t.Members {
			out[m.String()] = true
		}
		return out
	case ast.InterfaceKind:
		out := map[string]bool{}
		for name, ot := range s.Types {
			if ot.Kind != ast.ObjectKind {
				continue
			}
			for _, iface := range ot.Interfaces {
				if iface.String() == typeName {
					out[name] = true
					break
				}
			}
		}
		return out
	}
	return nil
}

/*
fragmentApplies reports whether a fragment declared on fragType can ever
be selected against a selection set of parentType, i.e. whether their
possible-type sets overlap. Either side resolving to an unknown type
defers to the separate undefined-type checks rather than reporting here.
*/
func fragmentApplies(s *ast.Schema, parentType, fragType string) bool {
	pp := possibleTypes(s, parentType)
	fp := possibleTypes(s, fragType)
	if pp == nil || fp == nil {
		return true
	}
	for name := range pp {
		if fp[name] {
			return true
		}
	}
	return false
}

/*
lookupField resolves a field by name on t, following interface field
inheritance is unnecessary here since FieldDef lists are already the
type's own declared fields (objects don't re-list interface fields unless
they redeclare them, same as the GraphQL spec requires).
*/
func lookupField(s *ast.Schema, t *ast.ExtendedType, name string) *ast.FieldDef {
	if t == nil {
		return nil
	}
	for i := range t.Fields {
		if t.Fields[i].Name.String() == name {
			return &t.Fields[i]
		}
	}
	return nil
}

/*
checkFieldsCanMerge implements a simplified version of spec 5.3.2's
"fields in set can merge": for every selection set, fields sharing a
response key must reference the same field name and carry identical
argument lists, or FieldsConflict is reported. A visited-pair cache (keyed
by the two selections' source offsets) avoids rechecking the same pair of
fields when the same sub-selection is reached through more than one
fragment spread.
*/
func checkFieldsCanMerge(s *ast.Schema, doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	visited := map[[2]int]bool{}

	var collect func(sels []ast.Selection, out *[]ast.Selection, depth int)
	collect = func(sels []ast.Selection, out *[]ast.Selection, depth int) {
		if depth > 50 {
			return // defend against pathological fragment nesting; reported separately as recursion
		}
		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				*out = append(*out, sel)
			case ast.InlineFragmentKind:
				collect(sel.Selections, out, depth+1)
			case ast.FragmentSpreadKind:
				if fd, ok := doc.Fragments[sel.FragmentName.String()]; ok {
					collect(fd.Selections, out, depth+1)
				}
			}
		}
	}

	var checkSet func(sels []ast.Selection)
	checkSet = func(sels []ast.Selection) {
		var fields []ast.Selection
		collect(sels, &fields, 0)

		byKey := map[string][]ast.Selection{}
		for _, f := range fields {
			byKey[f.ResponseKey()] = append(byKey[f.ResponseKey()], f)
		}
		for _, group := range byKey {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					a, b := group[i], group[j]
					key := pairKey(a, b)
					if visited[key] {
						continue
					}
					visited[key] = true
					if a.Name.String() != b.Name.String() {
						report(c, 0, b.Loc, diagnostic.Error, diagnostic.FieldsConflict,
							"fields with response key "+a.ResponseKey()+" refer to different field names "+a.Name.String()+" and "+b.Name.String())
						continue
					}
					if !argumentsEqual(a.Arguments, b.Arguments) {
						report(c, 0, b.Loc, diagnostic.Error, diagnostic.FieldsConflict,
							"fields with response key "+a.ResponseKey()+" have different arguments")
					}
				}
			}
		}

		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				if len(sel.Selections) > 0 {
					checkSet(sel.Selections)
				}
			case ast.InlineFragmentKind:
				checkSet(sel.Selections)
			case ast.FragmentSpreadKind:
				if fd, ok := doc.Fragments[sel.FragmentName.String()]; ok {
					checkSet(fd.Selections)
				}
			}
		}
	}

	for _, op := range doc.Operations {
		checkSet(op.Selections)
	}
}

func pairKey(a, b ast.Selection) [2]int {
	ao, bo := 0, 0
	if a.Loc != nil {
		ao = a.Loc.Offset
	}
	if b.Loc != nil {
		bo = b.Loc.Offset
	}
	if ao > bo {
		ao, bo = bo, ao
	}
	return [2]int{ao, bo}
}

func argumentsEqual(a, b []ast.Argument) bool {
	if len(a) != len(b) {
		return false
	}
	byName := map[string]ast.Value{}
	for _, arg := range a {
		byName[arg.Name.String()] = arg.Value
	}
	for _, arg := range b {
		av, ok := byName[arg.Name.String()]
		if !ok || !valuesEqual(av, arg.Value) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b ast.Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.IntValue:
		return a.Int == b.Int
	case ast.FloatValue:
		return a.Float == b.Float
	case ast.StringValue, ast.EnumValue:
		return a.Str == b.Str
	case ast.BoolValue:
		return a.Bool == b.Bool
	case ast.VariableValue:
		return a.Variable == b.Variable
	case ast.NullValue:
		return true
	case ast.ListValue:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !valuesEqual(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case ast.ObjectValue:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

/*
isIntrospectionListField reports whether name is one of the
type-introspection fields whose nesting
apollo-rs's introspection_max_depth check counts (crates/apollo-compiler/
src/execution/introspection_max_depth.rs, introspection/max_depth.rs):
each one returns more __Type values to recurse into, which is what makes
unbounded nesting expensive, unlike scalar leaves such as "name" or "kind".
*/
func isIntrospectionListField(name string) bool {
	switch name {
	case "fields", "interfaces", "possibleTypes", "inputFields":
		return true
	}
	return false
}

/*
checkIntrospectionDepth unifies apollo-rs's two divergent introspection
nesting checks (spec.md §9's resolved Open Question) into one rule:
within a __schema/__type selection, the named type-introspection fields
("fields", "interfaces", "possibleTypes", "inputFields") may not nest more
than three deep. Other fields reached along the way (e.g. "types",
"ofType", "name") are walked but don't themselves count toward the limit,
since they don't recurse into another full __Type response.
*/
func checkIntrospectionDepth(doc *ast.ExecutableDocument, c *diagnostic.Collector) {
	const maxDepth = 3

	var walk func(sels []ast.Selection, depth int, inIntrospection bool)
	walk = func(sels []ast.Selection, depth int, inIntrospection bool) {
		for _, sel := range sels {
			switch sel.Kind {
			case ast.FieldSelectionKind:
				name := sel.Name.String()
				nowIntrospecting := inIntrospection || name == "__schema" || name == "__type"
				nextDepth := depth
				if nowIntrospecting && isIntrospectionListField(name) {
					nextDepth++
					if nextDepth >= maxDepth {
						report(c, 0, sel.Loc, diagnostic.Error, diagnostic.IntrospectionDepth,
							"introspection selection nests deeper than the allowed limit of 3")
						continue
					}
				}
				walk(sel.Selections, nextDepth, nowIntrospecting)
			case ast.InlineFragmentKind:
				walk(sel.Selections, depth, inIntrospection)
			case ast.FragmentSpreadKind:
				if fd, ok := doc.Fragments[sel.FragmentName.String()]; ok {
					walk(fd.Selections, depth, inIntrospection)
				}
			}
		}
	}

	for _, op := range doc.Operations {
		walk(op.Selections, 0, false)
	}
}
