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
	"github.com/krotik/gqlcore/cst"
	"github.com/krotik/gqlcore/token"
)

/*
parseType parses a Type reference: NamedType, ListType, or either wrapped
in a trailing "!" NonNullType. List nesting recurses and is tracked
against RecursionLimit.
*/
func (p *parser) parseType(children *[]cst.GreenChild) bool {
	ok, exit := p.enterRecursive()
	defer exit()

	if !ok {
		p.recoverUntil(children, func(token.Token) bool { return true })
		return false
	}

	var base []cst.GreenChild

	switch {
	case p.isName(0):
		var inner []cst.GreenChild
		p.expectName(&inner)
		base = append(base, cst.GreenChild{Node: p.b.Node(cst.NamedType, inner)})

	case p.isPunct(0, "["):
		var inner []cst.GreenChild
		p.expectPunct(&inner, "[")
		p.parseType(&inner)
		p.expectPunct(&inner, "]")
		base = append(base, cst.GreenChild{Node: p.b.Node(cst.ListType, inner)})

	default:
		p.errorUnexpected(p.peekSig(0), "a type")
		return false
	}

	if p.isPunct(0, "!") {
		_, bang, _ := p.bump()
		base = append(base, bang)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.NonNullType, base)})
		return true
	}

	*children = append(*children, base...)
	return true
}

/*
parseVariableDefinitions parses "(" VariableDefinition+ ")" if a "(" is
present; it is always optional at the call site (operations need not
declare variables).
*/
func (p *parser) parseVariableDefinitions(children *[]cst.GreenChild) {
	if !p.isPunct(0, "(") {
		return
	}

	var inner []cst.GreenChild
	p.expectPunct(&inner, "(")

	for p.isPunct(0, "$") && p.tokenBudgetOk() {
		if !p.parseVariableDefinition(&inner) {
			p.recoverUntil(&inner, func(t token.Token) bool {
				return t.Kind == token.Punct && (t.Text() == ")" || t.Text() == "$")
			})
			if !p.isPunct(0, "$") {
				break
			}
		}
	}

	p.expectPunct(&inner, ")")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.VariableDefinitions, inner)})
}

func (p *parser) parseVariableDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if !p.parseVariable(&inner) {
		return false
	}
	if !p.expectPunct(&inner, ":") {
		return false
	}
	if !p.parseType(&inner) {
		return false
	}
	if p.isPunct(0, "=") {
		p.parseDefaultValue(&inner, true)
	}
	p.parseDirectives(&inner, true)

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.VariableDefinition, inner)})
	return true
}

/*
parseDefaultValue parses "=" ConstValue.
*/
func (p *parser) parseDefaultValue(children *[]cst.GreenChild, constOnly bool) {
	var inner []cst.GreenChild
	p.expectPunct(&inner, "=")
	p.parseValue(&inner, constOnly)
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.DefaultValue, inner)})
}
