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
	"github.com/krotik/gqlcore/diagnostic"
)

/*
FieldSet validates a standalone selection list (e.g. a federation-style
`@key(fields: "...")` string) against parentType, with its own
field-existence walk of the kind checkFieldExistence runs per operation
(both resolve fields through lookupField). Unlike a full
executable document it has no operation type, no variables and cannot
reference fragments, so only field existence is checked.
*/
func FieldSet(schema Valid[*ast.Schema], parentType string, fs ast.FieldSet) (Valid[ast.FieldSet], []diagnostic.Diagnostic) {
	c := diagnostic.NewCollector()
	s := schema.Get()

	var walk func(sels []ast.Selection, parent string)
	walk = func(sels []ast.Selection, parent string) {
		pt, ok := s.Types[parent]
		for _, sel := range sels {
			if sel.Kind != ast.FieldSelectionKind {
				report(c, 0, sel.Loc, diagnostic.Error, diagnostic.UndefinedField,
					"a field set may only contain field selections")
				continue
			}
			if !ok {
				continue
			}
			fd := lookupField(s, pt, sel.Name.String())
			if fd == nil {
				report(c, 0, sel.Loc, diagnostic.Error, diagnostic.UndefinedField,
					"field "+sel.Name.String()+" does not exist on type "+parent)
				continue
			}
			if len(sel.Selections) > 0 {
				walk(sel.Selections, fd.Type.NamedType().String())
			}
		}
	}
	walk([]ast.Selection(fs), parentType)

	diags := c.Diagnostics()
	if c.HasBlocking() {
		return Valid[ast.FieldSet]{}, diags
	}
	return wrap(fs), diags
}
