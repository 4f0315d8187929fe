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
	"sort"

	"github.com/krotik/gqlcore/ast"
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/source"
)

var builtinScalars = map[string]bool{"Int": true, "Float": true, "String": true, "Boolean": true, "ID": true}

/*
builtinDirectiveLocations carries the locations GraphQL's built-in
directives (@skip, @include, @deprecated, @specifiedBy) bind, so directive
usage checks have something to fall back on for documents that never
define them explicitly.
*/
var builtinDirectiveLocations = map[string][]string{
	"skip":        {"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	"include":     {"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	"deprecated":  {"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"},
	"specifiedBy": {"SCALAR"},
}

func report(c *diagnostic.Collector, file source.FileId, loc *ast.Location, sev diagnostic.Severity, kind diagnostic.Kind, msg string) {
	d := diagnostic.Diagnostic{File: file, Severity: sev, Kind: kind, Primary: msg}
	if loc != nil {
		d.Range = diagnostic.ByteRange{Start: loc.Offset, End: loc.End}
		d.File = source.FileId(loc.File)
	}
	c.Report(d)
}

/*
Schema runs every schema check in spec.md §4.F's order over s, returning a
Valid[*ast.Schema] if none of them reported a blocking diagnostic, or the
zero Valid[*ast.Schema] otherwise; the partial schema is not handed back.
Every diagnostic (blocking or not) is returned in both cases.
*/
func Schema(s *ast.Schema, opts config.ValidationOptions) (Valid[*ast.Schema], []diagnostic.Diagnostic) {
	c := diagnostic.NewCollector()

	checkSchemaDefinition(s, c)
	checkRootTypes(s, c)
	checkDirectiveDefinitions(s, c)
	checkProtectedScalars(s, c)
	checkTypeDefinitions(s, c)
	checkDirectiveUsages(s, c)
	_ = opts // validation options currently only affect executable checks (introspection depth)

	diags := c.Diagnostics()
	if c.HasBlocking() {
		return Valid[*ast.Schema]{}, diags
	}
	return wrap(s), diags
}

func checkSchemaDefinition(s *ast.Schema, c *diagnostic.Collector) {
	if s.SchemaDef == nil {
		return
	}
	roots := s.Roots()
	seen := map[string]bool{}
	for _, name := range []ast.Name{roots.Query, roots.Mutation, roots.Subscription} {
		if name.IsZero() {
			continue
		}
		if seen[name.String()] {
			report(c, 0, nil, diagnostic.Error, diagnostic.DuplicateRootOperationType,
				"root operation type "+name.String()+" used for more than one operation")
		}
		seen[name.String()] = true
	}
}

func checkRootTypes(s *ast.Schema, c *diagnostic.Collector) {
	roots := s.Roots()
	if roots.Query.IsZero() {
		report(c, 0, nil, diagnostic.Error, diagnostic.MissingQueryRoot, "schema has no query root type")
	}
}

func checkDirectiveDefinitions(s *ast.Schema, c *diagnostic.Collector) {
	for _, d := range s.Directives {
		for _, arg := range d.Arguments {
			for _, du := range arg.Directives {
				if du.Name.String() == d.Name.String() {
					report(c, 0, d.Loc, diagnostic.Error, diagnostic.InvalidSelfReferentialDir,
						"directive @"+d.Name.String()+" cannot reference itself in its own argument definitions")
				}
			}
		}
	}
}

func checkProtectedScalars(s *ast.Schema, c *diagnostic.Collector) {
	for name, t := range s.Types {
		if !builtinScalars[name] {
			continue
		}
		report(c, 0, t.Loc, diagnostic.Error, diagnostic.ProtectedScalarRedefinition,
			"built-in scalar "+name+" cannot be redefined or extended")
	}
	for _, t := range s.Types {
		for _, du := range t.Directives {
			if du.Name.String() != "specifiedBy" {
				continue
			}
			if t.Kind != ast.ScalarKind {
				report(c, 0, t.Loc, diagnostic.Error, diagnostic.InvalidSpecifiedByUsage,
					"@specifiedBy may only be used on scalar type definitions")
			}
		}
	}
}

func checkTypeDefinitions(s *ast.Schema, c *diagnostic.Collector) {
	for _, t := range s.Types {
		switch t.Kind {
		case ast.ObjectKind, ast.InterfaceKind:
			checkObjectOrInterface(s, t, c)
		case ast.UnionKind:
			checkUnion(s, t, c)
		case ast.EnumKind:
			checkEnum(t, c)
		case ast.InputObjectKind:
			checkInputObject(t, c)
		}
	}
}

func checkObjectOrInterface(s *ast.Schema, t *ast.ExtendedType, c *diagnostic.Collector) {
	fieldNames := map[string]*ast.FieldDef{}
	for i := range t.Fields {
		f := &t.Fields[i]
		if _, ok := fieldNames[f.Name.String()]; ok {
			report(c, 0, f.Loc, diagnostic.Error, diagnostic.DuplicateDefinition,
				"field "+f.Name.String()+" is defined more than once on "+t.Name.String())
			continue
		}
		fieldNames[f.Name.String()] = f
		if !isOutputType(s, f.Type) {
			report(c, 0, f.Loc, diagnostic.Error, diagnostic.NonOutputFieldType,
				"field "+t.Name.String()+"."+f.Name.String()+" has a non-output type "+f.Type.String())
		}
		argNames := map[string]bool{}
		for _, arg := range f.Arguments {
			if argNames[arg.Name.String()] {
				report(c, 0, f.Loc, diagnostic.Error, diagnostic.DuplicateDefinition,
					"argument "+arg.Name.String()+" of "+t.Name.String()+"."+f.Name.String()+" must only be defined once")
				continue
			}
			argNames[arg.Name.String()] = true
			if !isInputType(s, arg.Type) {
				report(c, 0, f.Loc, diagnostic.Error, diagnostic.NonInputFieldType,
					"argument "+arg.Name.String()+" of "+t.Name.String()+"."+f.Name.String()+" has a non-input type "+arg.Type.String())
			}
		}
	}

	for _, iface := range t.Interfaces {
		it, ok := s.Types[iface.String()]
		if !ok || it.Kind != ast.InterfaceKind {
			report(c, 0, t.Loc, diagnostic.Error, diagnostic.UndefinedInterface,
				t.Name.String()+" implements "+iface.String()+", which is not a defined interface type")
			continue
		}
		for _, ifield := range it.Fields {
			of, ok := fieldNames[ifield.Name.String()]
			if !ok {
				report(c, 0, t.Loc, diagnostic.Error, diagnostic.IncompatibleImplementation,
					t.Name.String()+" does not implement field "+ifield.Name.String()+" required by interface "+iface.String())
				continue
			}
			if !isValidImplementationFieldType(s, of.Type, ifield.Type) {
				report(c, 0, of.Loc, diagnostic.Error, diagnostic.IncompatibleImplementation,
					t.Name.String()+"."+of.Name.String()+" type "+of.Type.String()+" is not compatible with interface "+iface.String()+"'s "+ifield.Type.String())
			}
		}
	}
}

/*
isValidImplementationFieldType implements spec §3.7.3's field covariance
rule: an implementing field's type may be the interface field's type
exactly, or a strictly more specific non-null/list wrapping of it, or (for
named types) an object implementing the interface or a member of the
union the interface field declares.
*/
func isValidImplementationFieldType(s *ast.Schema, fieldType, implementedType *ast.TypeRef) bool {
	if fieldType == nil || implementedType == nil {
		return fieldType == implementedType
	}

	if fieldType.NonNull {
		inner := *fieldType
		inner.NonNull = false
		if implementedType.NonNull {
			implInner := *implementedType
			implInner.NonNull = false
			return isValidImplementationFieldType(s, &inner, &implInner)
		}
		return isValidImplementationFieldType(s, &inner, implementedType)
	}
	if implementedType.NonNull {
		// fieldType is nullable but the interface requires non-null: not a covariant narrowing.
		return false
	}

	if fieldType.Kind == ast.ListRef {
		if implementedType.Kind != ast.ListRef {
			return false
		}
		return isValidImplementationFieldType(s, fieldType.OfType, implementedType.OfType)
	}
	if implementedType.Kind == ast.ListRef {
		return false
	}

	if fieldType.Name.Equal(implementedType.Name) {
		return true
	}

	fieldDef, ok := s.Types[fieldType.Name.String()]
	if !ok {
		return false
	}
	implDef, ok := s.Types[implementedType.Name.String()]
	if !ok {
		return false
	}

	if fieldDef.Kind == ast.ObjectKind && implDef.Kind == ast.UnionKind {
		for _, m := range implDef.Members {
			if m.Equal(fieldDef.Name) {
				return true
			}
		}
		return false
	}
	if (fieldDef.Kind == ast.ObjectKind || fieldDef.Kind == ast.InterfaceKind) && implDef.Kind == ast.InterfaceKind {
		for _, iface := range fieldDef.Interfaces {
			if iface.Equal(implDef.Name) {
				return true
			}
		}
		return false
	}
	return false
}

func isOutputType(s *ast.Schema, t *ast.TypeRef) bool {
	if t == nil {
		return false
	}
	name := t.NamedType().String()
	if builtinScalars[name] {
		return true
	}
	dt, ok := s.Types[name]
	if !ok {
		return true // unresolved type names are reported separately; don't cascade
	}
	return dt.Kind == ast.ScalarKind || dt.Kind == ast.ObjectKind || dt.Kind == ast.InterfaceKind ||
		dt.Kind == ast.UnionKind || dt.Kind == ast.EnumKind
}

func isInputType(s *ast.Schema, t *ast.TypeRef) bool {
	if t == nil {
		return false
	}
	name := t.NamedType().String()
	if builtinScalars[name] {
		return true
	}
	dt, ok := s.Types[name]
	if !ok {
		return true
	}
	return dt.Kind == ast.ScalarKind || dt.Kind == ast.EnumKind || dt.Kind == ast.InputObjectKind
}

func checkUnion(s *ast.Schema, t *ast.ExtendedType, c *diagnostic.Collector) {
	if len(t.Members) == 0 {
		report(c, 0, t.Loc, diagnostic.Error, diagnostic.EmptyMemberList,
			"union "+t.Name.String()+" must define at least one member type")
	}
	seen := map[string]bool{}
	for _, m := range t.Members {
		if seen[m.String()] {
			report(c, 0, t.Loc, diagnostic.Error, diagnostic.DuplicateUnionMember,
				"union "+t.Name.String()+" lists member "+m.String()+" more than once")
		}
		seen[m.String()] = true

		if mt, ok := s.Types[m.String()]; ok && mt.Kind != ast.ObjectKind {
			report(c, 0, t.Loc, diagnostic.Error, diagnostic.NonObjectUnionMember,
				"union "+t.Name.String()+" member "+m.String()+" must be an object type")
		}
	}
}

func checkEnum(t *ast.ExtendedType, c *diagnostic.Collector) {
	seen := map[string]bool{}
	for _, v := range t.Values {
		if seen[v.Name.String()] {
			report(c, 0, v.Loc, diagnostic.Error, diagnostic.DuplicateEnumValue,
				"enum "+t.Name.String()+" lists value "+v.Name.String()+" more than once")
		}
		seen[v.Name.String()] = true
	}
}

func checkInputObject(t *ast.ExtendedType, c *diagnostic.Collector) {
	seen := map[string]bool{}
	for _, f := range t.InputFields {
		if seen[f.Name.String()] {
			report(c, 0, nil, diagnostic.Error, diagnostic.DuplicateDefinition,
				"input field "+f.Name.String()+" is defined more than once on "+t.Name.String())
		}
		seen[f.Name.String()] = true
	}
}

/*
checkDirectiveUsages validates every directive application found anywhere
in the schema against its definition's locations and repeatability. It
does not attempt full argument-type coercion beyond shape checks (Go has
no dependent types to express "matches declared InputValueDef.Type"
more cheaply than re-walking the value), reporting InvalidArgumentCoercion
for the cases that are cheap to catch: an argument name not declared on
the directive at all.
*/
func checkDirectiveUsages(s *ast.Schema, c *diagnostic.Collector) {
	visit := func(loc *ast.Location, typeName, where string, usages []ast.DirectiveUsage) {
		counts := map[string]int{}
		for _, du := range usages {
			counts[du.Name.String()]++
			def, ok := s.Directives[du.Name.String()]
			var locs []string
			var repeatable bool
			if ok {
				locs = def.Locations
				repeatable = def.Repeatable
			} else {
				locs = builtinDirectiveLocations[du.Name.String()]
			}
			if len(locs) > 0 && !contains(locs, where) {
				report(c, 0, loc, diagnostic.Error, diagnostic.InvalidDirectiveLocation,
					"directive @"+du.Name.String()+" is not allowed on "+where+" ("+typeName+")")
			}
			if !repeatable && counts[du.Name.String()] > 1 {
				report(c, 0, loc, diagnostic.Error, diagnostic.RepeatedNonRepeatableDirective,
					"directive @"+du.Name.String()+" is not repeatable but is applied more than once on "+typeName)
			}
			if ok {
				declared := map[string]bool{}
				for _, a := range def.Arguments {
					declared[a.Name.String()] = true
				}
				for argName := range du.Arguments {
					if !declared[argName] {
						report(c, 0, loc, diagnostic.Error, diagnostic.InvalidArgumentCoercion,
							"directive @"+du.Name.String()+" has no argument named "+argName)
					}
				}
			}
		}
	}

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := s.Types[name]
		where := typeSystemLocation(t.Kind)
		visit(t.Loc, t.Name.String(), where, t.Directives)
		for _, f := range t.Fields {
			visit(f.Loc, t.Name.String()+"."+f.Name.String(), "FIELD_DEFINITION", f.Directives)
		}
		for _, v := range t.Values {
			visit(v.Loc, t.Name.String()+"."+v.Name.String(), "ENUM_VALUE", v.Directives)
		}
		for _, iv := range t.InputFields {
			visit(nil, t.Name.String()+"."+iv.Name.String(), "INPUT_FIELD_DEFINITION", iv.Directives)
		}
	}
}

func typeSystemLocation(k ast.TypeKind) string {
	switch k {
	case ast.ScalarKind:
		return "SCALAR"
	case ast.ObjectKind:
		return "OBJECT"
	case ast.InterfaceKind:
		return "INTERFACE"
	case ast.UnionKind:
		return "UNION"
	case ast.EnumKind:
		return "ENUM"
	case ast.InputObjectKind:
		return "INPUT_OBJECT"
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
