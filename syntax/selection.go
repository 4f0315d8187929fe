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
parseSelectionSet parses "{" Selection+ "}". Nesting recurses and is
tracked against RecursionLimit.
*/
func (p *parser) parseSelectionSet(children *[]cst.GreenChild) bool {
	ok, exit := p.enterRecursive()
	defer exit()

	var inner []cst.GreenChild
	if !p.expectPunct(&inner, "{") {
		*children = append(*children, inner...)
		return false
	}

	if ok {
		for !p.isPunct(0, "}") && !p.atEOF() && p.tokenBudgetOk() {
			if !p.parseSelection(&inner) {
				p.recoverUntil(&inner, func(t token.Token) bool {
					return t.Kind == token.Punct && (t.Text() == "}" || t.Text() == "...")
				})
				if p.isPunct(0, "}") {
					break
				}
				if p.atEOF() {
					break
				}
			}
		}
	}

	p.expectPunct(&inner, "}")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.SelectionSet, inner)})
	return true
}

func (p *parser) parseSelection(children *[]cst.GreenChild) bool {
	if p.isPunct(0, "...") {
		return p.parseFragmentOrInlineFragment(children)
	}
	if p.isName(0) {
		return p.parseField(children)
	}
	p.errorUnexpected(p.peekSig(0), "a field, \"...\" fragment spread, or inline fragment")
	return false
}

func (p *parser) parseField(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild

	if p.isName(0) && p.isPunct(1, ":") {
		var alias []cst.GreenChild
		p.expectName(&alias)
		_, colon, _ := p.bump() // ":"
		alias = append(alias, colon)
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.Alias, alias)})
	}

	if _, ok := p.expectName(&inner); !ok {
		return false
	}

	if p.isPunct(0, "(") {
		p.parseArguments(&inner, false)
	}

	p.parseDirectives(&inner, false)

	if p.isPunct(0, "{") {
		p.parseSelectionSet(&inner)
	}

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Field, inner)})
	return true
}

func (p *parser) parseArguments(children *[]cst.GreenChild, constOnly bool) {
	var inner []cst.GreenChild
	p.expectPunct(&inner, "(")

	for p.isName(0) && p.tokenBudgetOk() {
		if !p.parseArgument(&inner, constOnly) {
			p.recoverUntil(&inner, func(t token.Token) bool {
				return t.Kind == token.Punct && t.Text() == ")"
			})
			break
		}
	}

	p.expectPunct(&inner, ")")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Arguments, inner)})
}

func (p *parser) parseArgument(children *[]cst.GreenChild, constOnly bool) bool {
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
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Argument, inner)})
	return true
}

/*
parseDirectives parses zero or more Directive nodes, wrapped together in a
single Directives node when at least one is present; absent entirely when
there is no leading "@".
*/
func (p *parser) parseDirectives(children *[]cst.GreenChild, constOnly bool) {
	if !p.isPunct(0, "@") {
		return
	}

	var inner []cst.GreenChild
	for p.isPunct(0, "@") && p.tokenBudgetOk() {
		p.parseDirective(&inner, constOnly)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Directives, inner)})
}

func (p *parser) parseDirective(children *[]cst.GreenChild, constOnly bool) bool {
	var inner []cst.GreenChild
	if !p.expectPunct(&inner, "@") {
		return false
	}
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	if p.isPunct(0, "(") {
		p.parseArguments(&inner, constOnly)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Directive, inner)})
	return true
}

func (p *parser) parseFragmentOrInlineFragment(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	p.expectPunct(&inner, "...")

	if p.isKeyword(0, "on") || p.isPunct(0, "@") || p.isPunct(0, "{") {
		if p.isKeyword(0, "on") {
			p.parseTypeCondition(&inner)
		}
		p.parseDirectives(&inner, false)
		p.parseSelectionSet(&inner)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.InlineFragment, inner)})
		return true
	}

	if p.isName(0) {
		p.parseFragmentName(&inner)
		p.parseDirectives(&inner, false)
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FragmentSpread, inner)})
		return true
	}

	p.errorUnexpected(p.peekSig(0), "a type condition, directive, selection set, or fragment name")
	return false
}

func (p *parser) parseFragmentName(children *[]cst.GreenChild) bool {
	if p.isKeyword(0, "on") {
		p.errorUnexpected(p.peekSig(0), "a fragment name other than \"on\"")
		return false
	}
	var inner []cst.GreenChild
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FragmentName, inner)})
	return true
}

func (p *parser) parseTypeCondition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	_, on, _ := p.bump() // "on"
	inner = append(inner, on)
	if !p.parseType(&inner) {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.TypeCondition, inner)})
	return true
}
