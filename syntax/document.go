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
parseDocument parses the whole token stream as a Document: a sequence of
executable definitions (operations, fragments) and/or type system
definitions/extensions, in any order, terminated by EOF. It never returns
an error — parse failures are accumulated diagnostics plus Error nodes,
consistent with the rest of the parser.
*/
func (p *parser) parseDocument() *cst.GreenNode {
	var children []cst.GreenChild

	for !p.atEOF() {
		if !p.tokenBudgetOk() {
			p.recoverUntil(&children, func(token.Token) bool { return false })
			break
		}
		if !p.parseDefinition(&children) {
			p.recoverUntil(&children, func(t token.Token) bool {
				return isDefinitionStart(t)
			})
		}
	}

	// trailing trivia plus the EOF token become part of the document so
	// Text() reproduces the input exactly; bump consumes both in one call
	// since everything left at this point is trivia followed by EOF.
	if p.pos < len(p.toks) {
		trivia, eofLeaf, _ := p.bump()
		children = append(children, trivia...)
		children = append(children, eofLeaf)
	}

	return p.b.Node(cst.Document, children)
}

func isDefinitionStart(t token.Token) bool {
	if t.Kind == token.StringValue || t.Kind == token.BlockStringValue {
		return true
	}
	if t.Kind != token.Name {
		return false
	}
	switch t.Text() {
	case "query", "mutation", "subscription", "fragment",
		"schema", "scalar", "type", "interface", "union", "enum", "input",
		"directive", "extend":
		return true
	}
	return false
}

func (p *parser) parseDefinition(children *[]cst.GreenChild) bool {
	t := p.peekSig(0)

	if p.isPunct(0, "{") {
		return p.parseShorthandOperation(children)
	}

	if t.Kind == token.StringValue || t.Kind == token.BlockStringValue {
		return p.parseTypeSystemDefinitionWithDescription(children)
	}

	if t.Kind != token.Name {
		p.errorUnexpected(t, "a definition")
		return false
	}

	switch t.Text() {
	case "query", "mutation", "subscription":
		return p.parseOperationDefinition(children)
	case "fragment":
		return p.parseFragmentDefinition(children)
	case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
		return p.parseTypeSystemDefinition(children, nil)
	case "extend":
		return p.parseTypeSystemExtension(children)
	}

	p.errorUnexpected(t, "a definition")
	return false
}

func (p *parser) parseShorthandOperation(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if !p.parseSelectionSet(&inner) {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.OperationDefinition, inner)})
	return true
}

func (p *parser) parseOperationDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild

	_, opType, _ := p.bump()
	inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.OperationType, []cst.GreenChild{opType})})

	if p.isName(0) {
		p.expectName(&inner)
	}

	p.parseVariableDefinitions(&inner)
	p.parseDirectives(&inner, false)

	if !p.parseSelectionSet(&inner) {
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.OperationDefinition, inner)})
		return false
	}

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.OperationDefinition, inner)})
	return true
}

func (p *parser) parseFragmentDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	_, kw, _ := p.bump() // "fragment"
	inner = append(inner, kw)

	if !p.parseFragmentName(&inner) {
		return false
	}
	if !p.isKeyword(0, "on") {
		p.errorUnexpected(p.peekSig(0), "\"on\"")
		return false
	}
	if !p.parseTypeCondition(&inner) {
		return false
	}
	p.parseDirectives(&inner, false)
	if !p.parseSelectionSet(&inner) {
		return false
	}

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FragmentDefinition, inner)})
	return true
}
