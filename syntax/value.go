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
parseValue parses a Value (or, when constOnly is true, a ConstValue —
no Variable allowed, used inside default values and directive arguments
on type system definitions). ListValue/ObjectValue recursion is tracked
against RecursionLimit.
*/
func (p *parser) parseValue(children *[]cst.GreenChild, constOnly bool) bool {
	switch {
	case p.isPunct(0, "$"):
		if constOnly {
			p.errorUnexpected(p.peekSig(0), "a constant value")
			return false
		}
		return p.parseVariable(children)

	case p.peekSig(0).Kind == token.IntValue:
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.IntValue, []cst.GreenChild{leaf})})
		return true

	case p.peekSig(0).Kind == token.FloatValue:
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FloatValue, []cst.GreenChild{leaf})})
		return true

	case p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue:
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.StringValue, []cst.GreenChild{leaf})})
		return true

	case p.isKeyword(0, "true") || p.isKeyword(0, "false"):
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.BooleanValue, []cst.GreenChild{leaf})})
		return true

	case p.isKeyword(0, "null"):
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.NullValue, []cst.GreenChild{leaf})})
		return true

	case p.isName(0):
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.EnumValue, []cst.GreenChild{leaf})})
		return true

	case p.isPunct(0, "["):
		return p.parseListValue(children, constOnly)

	case p.isPunct(0, "{"):
		return p.parseObjectValue(children, constOnly)
	}

	p.errorUnexpected(p.peekSig(0), "a value")
	return false
}

func (p *parser) parseVariable(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if !p.expectPunct(&inner, "$") {
		return false
	}
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Variable, inner)})
	return true
}

func (p *parser) parseListValue(children *[]cst.GreenChild, constOnly bool) bool {
	ok, exit := p.enterRecursive()
	defer exit()

	var inner []cst.GreenChild
	p.expectPunct(&inner, "[")

	if ok {
		for !p.isPunct(0, "]") && !p.atEOF() && p.tokenBudgetOk() {
			if !p.parseValue(&inner, constOnly) {
				p.recoverUntil(&inner, func(t token.Token) bool {
					return t.Kind == token.Punct && (t.Text() == "]" || t.Text() == "{" || t.Text() == "}")
				})
				if !p.isPunct(0, "]") {
					break
				}
			}
		}
	}

	p.expectPunct(&inner, "]")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ListValue, inner)})
	return true
}

func (p *parser) parseObjectValue(children *[]cst.GreenChild, constOnly bool) bool {
	ok, exit := p.enterRecursive()
	defer exit()

	var inner []cst.GreenChild
	p.expectPunct(&inner, "{")

	if ok {
		for p.isName(0) && p.tokenBudgetOk() {
			if !p.parseObjectField(&inner, constOnly) {
				p.recoverUntil(&inner, func(t token.Token) bool {
					return t.Kind == token.Punct && (t.Text() == "}" || t.Text() == "{")
				})
				if !p.isName(0) {
					break
				}
			}
		}
	}

	p.expectPunct(&inner, "}")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ObjectValue, inner)})
	return true
}

func (p *parser) parseObjectField(children *[]cst.GreenChild, constOnly bool) bool {
	var inner []cst.GreenChild
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	if !p.expectPunct(&inner, ":") {
		return false
	}
	if !p.parseValue(&inner, constOnly) {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ObjectField, inner)})
	return true
}
