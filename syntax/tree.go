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
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/cst"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/internal/lex"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/token"
)

/*
SyntaxTree is the result of parsing one source file: the green tree root,
every diagnostic accumulated along the way (lexical, syntactic, or budget
related), the recursion high-water mark, and how many significant tokens
were consumed.
*/
type SyntaxTree struct {
	Root           *cst.GreenNode
	Errors         []diagnostic.Diagnostic
	Recursion      LimitTracker
	TokensConsumed int
	File           source.FileId
}

/*
Document returns the typed root accessor over Root.
*/
func (t *SyntaxTree) Document() Document {
	return Document{RedNode: cst.NewRoot(t.Root)}
}

/*
HasErrors reports whether any accumulated diagnostic is Error or Fatal
severity.
*/
func (t *SyntaxTree) HasErrors() bool {
	for _, d := range t.Errors {
		if d.Blocking() {
			return true
		}
	}
	return false
}

/*
Text reconstructs the exact source text; for any input that parsed
without recovery errors this equals the original input byte-for-byte.
*/
func (t *SyntaxTree) Text() string {
	return t.Root.Text()
}

/*
Parse lexes and parses src as file using default ParserOptions.
*/
func Parse(src *source.Source, file source.FileId) *SyntaxTree {
	return ParseWithOptions(src, file, config.DefaultParserOptions())
}

/*
ParseWithOptions lexes and parses source under the given token/recursion
budget.
*/
func ParseWithOptions(src *source.Source, file source.FileId, opts config.ParserOptions) *SyntaxTree {
	toks := lex.Lex(src)
	p := newParser(toks, file, opts)
	root := p.parseDocument()

	return &SyntaxTree{
		Root:           root,
		Errors:         p.diags.Diagnostics(),
		Recursion:      *p.recursion,
		TokensConsumed: int(p.tokenCount),
		File:           file,
	}
}

/*
ParseSelectionSet lexes and parses a standalone field-set string — a bare
sequence of field/fragment selections with no enclosing "{ }", the
grammar a federation-style `@key(fields: "...")` argument uses — under
default ParserOptions. The returned tree's Document() exposes a full
Document root whose only definition is a shorthand operation wrapping the
parsed selections, so callers reuse the same Document/SelectionSet
accessors as a full query.
*/
func ParseSelectionSet(src *source.Source, file source.FileId) *SyntaxTree {
	return ParseSelectionSetWithOptions(src, file, config.DefaultParserOptions())
}

/*
ParseSelectionSetWithOptions is ParseSelectionSet under an explicit
token/recursion budget.
*/
func ParseSelectionSetWithOptions(src *source.Source, file source.FileId, opts config.ParserOptions) *SyntaxTree {
	toks := lex.Lex(src)
	p := newParser(toks, file, opts)

	var inner []cst.GreenChild
	for !p.atEOF() && p.tokenBudgetOk() {
		if !p.parseSelection(&inner) {
			p.recoverUntil(&inner, func(t token.Token) bool { return t.Kind == token.Punct && t.Text() == "..." })
			if p.atEOF() {
				break
			}
		}
	}
	selSet := p.b.Node(cst.SelectionSet, inner)
	opDef := p.b.Node(cst.OperationDefinition, []cst.GreenChild{{Node: selSet}})
	root := p.b.Node(cst.Document, []cst.GreenChild{{Node: opDef}})

	return &SyntaxTree{
		Root:           root,
		Errors:         p.diags.Diagnostics(),
		Recursion:      *p.recursion,
		TokensConsumed: int(p.tokenCount),
		File:           file,
	}
}
