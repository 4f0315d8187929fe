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

func (p *parser) parseTypeSystemDefinitionWithDescription(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	trivia, leaf, _ := p.bump()
	inner = append(inner, trivia...)
	inner = append(inner, leaf)
	desc := cst.GreenChild{Node: p.b.Node(cst.Description, inner)}

	t := p.peekSig(0)
	if t.Kind != token.Name || !isTypeSystemKeyword(t.Text()) {
		p.errorUnexpected(t, "a type system definition")
		*children = append(*children, desc)
		return false
	}
	return p.parseTypeSystemDefinition(children, &desc)
}

func isTypeSystemKeyword(text string) bool {
	switch text {
	case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
		return true
	}
	return false
}

func (p *parser) parseTypeSystemDefinition(children *[]cst.GreenChild, desc *cst.GreenChild) bool {
	t := p.peekSig(0)
	switch t.Text() {
	case "schema":
		return p.parseSchemaDefinition(children, desc, false)
	case "scalar":
		return p.parseScalarTypeDefinition(children, desc, false)
	case "type":
		return p.parseObjectTypeDefinition(children, desc, false)
	case "interface":
		return p.parseInterfaceTypeDefinition(children, desc, false)
	case "union":
		return p.parseUnionTypeDefinition(children, desc, false)
	case "enum":
		return p.parseEnumTypeDefinition(children, desc, false)
	case "input":
		return p.parseInputObjectTypeDefinition(children, desc, false)
	case "directive":
		return p.parseDirectiveDefinition(children, desc)
	}
	p.errorUnexpected(t, "a type system definition")
	return false
}

/*
parseTypeSystemExtension handles the "extend" keyword, resolving the
ambiguity between e.g. "extend type" and "extend schema" with the second
lookahead token, then delegating to the same body parsers as the base
definitions (descriptions are never valid on an extension).
*/
func (p *parser) parseTypeSystemExtension(children *[]cst.GreenChild) bool {
	var extKw []cst.GreenChild
	_, kw, _ := p.bump() // "extend"
	extKw = append(extKw, kw)

	t := p.peekSig(0)
	if t.Kind != token.Name {
		p.errorUnexpected(t, "a type system definition keyword")
		*children = append(*children, extKw...)
		return false
	}

	switch t.Text() {
	case "schema":
		return p.parseSchemaDefinitionBody(children, extKw, true)
	case "scalar":
		return p.parseScalarTypeDefinitionBody(children, extKw, true)
	case "type":
		return p.parseObjectTypeDefinitionBody(children, extKw, true)
	case "interface":
		return p.parseInterfaceTypeDefinitionBody(children, extKw, true)
	case "union":
		return p.parseUnionTypeDefinitionBody(children, extKw, true)
	case "enum":
		return p.parseEnumTypeDefinitionBody(children, extKw, true)
	case "input":
		return p.parseInputObjectTypeDefinitionBody(children, extKw, true)
	}

	p.errorUnexpected(t, "a type system definition keyword")
	*children = append(*children, extKw...)
	return false
}

func (p *parser) parseSchemaDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseSchemaDefinitionBody(children, inner, false)
}

func (p *parser) parseSchemaDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "schema"
	inner = append(inner, kw)

	p.parseDirectives(&inner, true)

	if p.isPunct(0, "{") {
		var body []cst.GreenChild
		p.expectPunct(&body, "{")
		for p.isName(0) && p.tokenBudgetOk() {
			p.parseRootOperationTypeDefinition(&body)
		}
		p.expectPunct(&body, "}")
		inner = append(inner, body...)
	}

	kind := cst.SchemaDefinition
	if extend {
		kind = cst.ExtendSchemaDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseRootOperationTypeDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if !p.isKeyword(0, "query") && !p.isKeyword(0, "mutation") && !p.isKeyword(0, "subscription") {
		p.errorUnexpected(p.peekSig(0), "\"query\", \"mutation\", or \"subscription\"")
		return false
	}
	_, opType, _ := p.bump()
	inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.OperationType, []cst.GreenChild{opType})})
	if !p.expectPunct(&inner, ":") {
		return false
	}
	if !p.parseType(&inner) {
		return false
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.RootOperationTypeDefinition, inner)})
	return true
}

func (p *parser) parseScalarTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseScalarTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseScalarTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "scalar"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseDirectives(&inner, true)

	kind := cst.ScalarTypeDefinition
	if extend {
		kind = cst.ExtendScalarTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseObjectTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseObjectTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseObjectTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "type"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseImplementsInterfaces(&inner)
	p.parseDirectives(&inner, true)
	p.parseFieldsDefinition(&inner)

	kind := cst.ObjectTypeDefinition
	if extend {
		kind = cst.ExtendObjectTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseImplementsInterfaces(children *[]cst.GreenChild) {
	if !p.isKeyword(0, "implements") {
		return
	}
	var inner []cst.GreenChild
	_, kw, _ := p.bump()
	inner = append(inner, kw)

	if p.isPunct(0, "&") {
		_, amp, _ := p.bump()
		inner = append(inner, amp)
	}
	if !p.parseType(&inner) {
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ImplementsInterfaces, inner)})
		return
	}
	for p.isPunct(0, "&") && p.tokenBudgetOk() {
		_, amp, _ := p.bump()
		inner = append(inner, amp)
		p.parseType(&inner)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ImplementsInterfaces, inner)})
}

func (p *parser) parseFieldsDefinition(children *[]cst.GreenChild) {
	if !p.isPunct(0, "{") {
		return
	}
	var inner []cst.GreenChild
	p.expectPunct(&inner, "{")
	for p.isName(0) && p.tokenBudgetOk() {
		if !p.parseFieldDefinition(&inner) {
			p.recoverUntil(&inner, func(t token.Token) bool {
				return t.Kind == token.Punct && t.Text() == "}"
			})
			break
		}
	}
	p.expectPunct(&inner, "}")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FieldsDefinition, inner)})
}

func (p *parser) parseFieldDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue {
		trivia, leaf, _ := p.bump()
		var descInner []cst.GreenChild
		descInner = append(descInner, trivia...)
		descInner = append(descInner, leaf)
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.Description, descInner)})
	}
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseArgumentsDefinition(&inner)
	if !p.expectPunct(&inner, ":") {
		return false
	}
	if !p.parseType(&inner) {
		return false
	}
	p.parseDirectives(&inner, true)

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.FieldDefinition, inner)})
	return true
}

func (p *parser) parseArgumentsDefinition(children *[]cst.GreenChild) {
	if !p.isPunct(0, "(") {
		return
	}
	var inner []cst.GreenChild
	p.expectPunct(&inner, "(")
	for (p.isName(0) || p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue) && p.tokenBudgetOk() {
		if !p.parseInputValueDefinition(&inner) {
			p.recoverUntil(&inner, func(t token.Token) bool {
				return t.Kind == token.Punct && t.Text() == ")"
			})
			break
		}
	}
	p.expectPunct(&inner, ")")
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.ArgumentsDefinition, inner)})
}

func (p *parser) parseInputValueDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue {
		trivia, leaf, _ := p.bump()
		var descInner []cst.GreenChild
		descInner = append(descInner, trivia...)
		descInner = append(descInner, leaf)
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.Description, descInner)})
	}
	if _, ok := p.expectName(&inner); !ok {
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

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.InputValueDefinition, inner)})
	return true
}

func (p *parser) parseInterfaceTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseInterfaceTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseInterfaceTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "interface"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseImplementsInterfaces(&inner)
	p.parseDirectives(&inner, true)
	p.parseFieldsDefinition(&inner)

	kind := cst.InterfaceTypeDefinition
	if extend {
		kind = cst.ExtendInterfaceTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseUnionTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseUnionTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseUnionTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "union"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseDirectives(&inner, true)
	p.parseUnionMemberTypes(&inner)

	kind := cst.UnionTypeDefinition
	if extend {
		kind = cst.ExtendUnionTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseUnionMemberTypes(children *[]cst.GreenChild) {
	if !p.isPunct(0, "=") {
		return
	}
	var inner []cst.GreenChild
	_, eq, _ := p.bump()
	inner = append(inner, eq)

	if p.isPunct(0, "|") {
		_, pipe, _ := p.bump()
		inner = append(inner, pipe)
	}
	if !p.parseType(&inner) {
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.UnionMemberTypes, inner)})
		return
	}
	for p.isPunct(0, "|") && p.tokenBudgetOk() {
		_, pipe, _ := p.bump()
		inner = append(inner, pipe)
		p.parseType(&inner)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.UnionMemberTypes, inner)})
}

func (p *parser) parseEnumTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseEnumTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseEnumTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "enum"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseDirectives(&inner, true)

	if p.isPunct(0, "{") {
		var body []cst.GreenChild
		p.expectPunct(&body, "{")
		for (p.isName(0) || p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue) && p.tokenBudgetOk() {
			if !p.parseEnumValueDefinition(&body) {
				p.recoverUntil(&body, func(t token.Token) bool {
					return t.Kind == token.Punct && t.Text() == "}"
				})
				break
			}
		}
		p.expectPunct(&body, "}")
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.EnumValuesDefinition, body)})
	}

	kind := cst.EnumTypeDefinition
	if extend {
		kind = cst.ExtendEnumTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseEnumValueDefinition(children *[]cst.GreenChild) bool {
	var inner []cst.GreenChild
	if p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue {
		trivia, leaf, _ := p.bump()
		var descInner []cst.GreenChild
		descInner = append(descInner, trivia...)
		descInner = append(descInner, leaf)
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.Description, descInner)})
	}
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseDirectives(&inner, true)
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.EnumValueDefinition, inner)})
	return true
}

func (p *parser) parseInputObjectTypeDefinition(children *[]cst.GreenChild, desc *cst.GreenChild, _ bool) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	return p.parseInputObjectTypeDefinitionBody(children, inner, false)
}

func (p *parser) parseInputObjectTypeDefinitionBody(children *[]cst.GreenChild, prefix []cst.GreenChild, extend bool) bool {
	inner := prefix
	_, kw, _ := p.bump() // "input"
	inner = append(inner, kw)
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseDirectives(&inner, true)

	if p.isPunct(0, "{") {
		var body []cst.GreenChild
		p.expectPunct(&body, "{")
		for (p.isName(0) || p.peekSig(0).Kind == token.StringValue || p.peekSig(0).Kind == token.BlockStringValue) && p.tokenBudgetOk() {
			if !p.parseInputValueDefinition(&body) {
				p.recoverUntil(&body, func(t token.Token) bool {
					return t.Kind == token.Punct && t.Text() == "}"
				})
				break
			}
		}
		p.expectPunct(&body, "}")
		inner = append(inner, cst.GreenChild{Node: p.b.Node(cst.InputFieldsDefinition, body)})
	}

	kind := cst.InputObjectTypeDefinition
	if extend {
		kind = cst.ExtendInputObjectTypeDefinition
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(kind, inner)})
	return true
}

func (p *parser) parseDirectiveDefinition(children *[]cst.GreenChild, desc *cst.GreenChild) bool {
	var inner []cst.GreenChild
	if desc != nil {
		inner = append(inner, *desc)
	}
	_, kw, _ := p.bump() // "directive"
	inner = append(inner, kw)
	if !p.expectPunct(&inner, "@") {
		return false
	}
	if _, ok := p.expectName(&inner); !ok {
		return false
	}
	p.parseArgumentsDefinition(&inner)

	if p.isKeyword(0, "repeatable") {
		_, rep, _ := p.bump()
		inner = append(inner, rep)
	}

	if !p.isKeyword(0, "on") {
		p.errorUnexpected(p.peekSig(0), "\"on\"")
		return false
	}
	_, on, _ := p.bump()
	inner = append(inner, on)
	p.parseDirectiveLocations(&inner)

	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.DirectiveDefinition, inner)})
	return true
}

func (p *parser) parseDirectiveLocations(children *[]cst.GreenChild) {
	var inner []cst.GreenChild
	if p.isPunct(0, "|") {
		_, pipe, _ := p.bump()
		inner = append(inner, pipe)
	}
	if _, ok := p.expectName(&inner); !ok {
		*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.DirectiveLocations, inner)})
		return
	}
	for p.isPunct(0, "|") && p.tokenBudgetOk() {
		_, pipe, _ := p.bump()
		inner = append(inner, pipe)
		p.expectName(&inner)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.DirectiveLocations, inner)})
}
