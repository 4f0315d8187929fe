/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package syntax implements the recursive-descent parser over a lexed token
stream, producing a cst green tree plus a typed accessor view over it. It
generalizes the teacher's single newParserError-and-abort design into
accumulate-and-continue: every production owns a small recovery token set,
so one bad token costs one diagnostic and an Error node rather than the
whole parse.
*/
package syntax

import (
	"fmt"

	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/cst"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/token"
)

/*
parser holds all mutable state for a single parse. It is not exported;
callers use Parse/ParseWithOptions.
*/
type parser struct {
	toks  []token.Token
	pos   int
	b     *cst.Builder
	diags *diagnostic.Collector
	file  source.FileId
	opts  config.ParserOptions

	tokenCount    uint32
	limitReported bool

	recursion *LimitTracker
	recReported bool
}

func newParser(toks []token.Token, file source.FileId, opts config.ParserOptions) *parser {
	return &parser{
		toks:      toks,
		b:         cst.NewBuilder(),
		diags:     diagnostic.NewCollector(),
		file:      file,
		opts:      opts,
		recursion: NewLimitTracker(int(opts.RecursionLimit)),
	}
}

/*
enterRecursive must be paired with a deferred call to the returned func.
It reports RecursionLimitReached (once) the first time the limit is
exceeded; ok is false on every call while over budget, signalling the
caller to stop descending and emit a shallow Error node instead.
*/
func (p *parser) enterRecursive() (ok bool, exit func()) {
	within := p.recursion.Enter()
	if !within && !p.recReported {
		p.recReported = true
		t := p.peekSig(0)
		p.report(diagnostic.Fatal, diagnostic.RecursionLimitReached, t,
			"too much recursion", nil)
	}
	return within, p.recursion.Exit
}

/*
tokenBudgetOk reports whether the parser is still within TokenLimit,
reporting TokenLimitReached (once) the moment it is first exceeded.
*/
func (p *parser) tokenBudgetOk() bool {
	if p.tokenCount <= p.opts.TokenLimit {
		return true
	}
	if !p.limitReported {
		p.limitReported = true
		t := p.peekSig(0)
		p.report(diagnostic.Fatal, diagnostic.TokenLimitReached, t,
			"token limit reached", nil)
	}
	return false
}

func (p *parser) report(sev diagnostic.Severity, kind diagnostic.Kind, t token.Token, msg string, help *string) {
	d := diagnostic.Diagnostic{
		File:     p.file,
		Range:    diagnostic.ByteRange{Start: t.Offset, End: t.End()},
		Severity: sev,
		Kind:     kind,
		Primary:  msg,
		Help:     help,
	}
	p.diags.Report(d)
}

func (p *parser) errorUnexpected(t token.Token, expected string) {
	msg := fmt.Sprintf("unexpected %s; expected %s", describeToken(t), expected)
	p.report(diagnostic.Error, diagnostic.UnexpectedToken, t, msg, nil)
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Text())
}

/*
peekSig returns the nth (0-based) significant (non-trivia) token ahead of
the current position without consuming anything, used for dispatch and
the 2-token lookahead that resolves `extend` ambiguity.
*/
func (p *parser) peekSig(n int) token.Token {
	idx := p.pos
	seen := 0
	for idx < len(p.toks) {
		t := p.toks[idx]
		if t.Kind.IsTrivia() {
			idx++
			continue
		}
		if seen == n {
			return t
		}
		seen++
		idx++
	}
	return p.toks[len(p.toks)-1]
}

/*
bump consumes leading trivia plus exactly one significant token, wrapping
each as a green leaf and counting the significant token against the token
budget. It never returns past EOF.
*/
func (p *parser) bump() ([]cst.GreenChild, cst.GreenChild, token.Token) {
	var trivia []cst.GreenChild
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		if t.Kind.IsTrivia() {
			trivia = append(trivia, leafChild(t))
			p.pos++
			continue
		}
		p.pos++
		p.tokenCount++
		return trivia, leafChild(t), t
	}
	eof := p.toks[len(p.toks)-1]
	return trivia, leafChild(eof), eof
}

/*
leafChild wraps a lexed token as a bare green leaf, directly — not double-
wrapped through cst.Builder.Leaf's extra Token-kind node — so
cst.RedNode.FirstToken can find it as an immediate child.
*/
func leafChild(t token.Token) cst.GreenChild {
	return cst.GreenChild{Token: &cst.GreenToken{Kind: t.Kind, Text: t.Text()}}
}

/*
isPunct reports whether the nth lookahead token is the punctuator text.
*/
func (p *parser) isPunct(n int, text string) bool {
	t := p.peekSig(n)
	return t.Kind == token.Punct && t.Text() == text
}

/*
isKeyword reports whether the nth lookahead token is the Name text (GraphQL
keywords are contextual Names, never a distinct lexical kind).
*/
func (p *parser) isKeyword(n int, text string) bool {
	t := p.peekSig(n)
	return t.Kind == token.Name && t.Text() == text
}

func (p *parser) isName(n int) bool {
	return p.peekSig(n).Kind == token.Name
}

func (p *parser) atEOF() bool {
	return p.peekSig(0).Kind == token.EOF
}

/*
expectPunct consumes the expected punctuator if present, appending its
leaf (and any leading trivia) to children; on mismatch it reports
UnexpectedToken and appends nothing.
*/
func (p *parser) expectPunct(children *[]cst.GreenChild, text string) bool {
	if p.isPunct(0, text) {
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		*children = append(*children, leaf)
		return true
	}
	p.errorUnexpected(p.peekSig(0), fmt.Sprintf("%q", text))
	return false
}

/*
expectName consumes the next token as a Name node if it is lexically a
Name, appending it to children.
*/
func (p *parser) expectName(children *[]cst.GreenChild) (cst.GreenChild, bool) {
	if p.isName(0) {
		trivia, leaf, _ := p.bump()
		*children = append(*children, trivia...)
		name := p.b.Node(cst.Name, []cst.GreenChild{leaf})
		nameChild := cst.GreenChild{Node: name}
		*children = append(*children, nameChild)
		return nameChild, true
	}
	p.errorUnexpected(p.peekSig(0), "a name")
	return cst.GreenChild{}, false
}

/*
recoverUntil consumes tokens (via bump, trivia included) up to but not
including the next token for which stop returns true, or EOF, wrapping
everything it swallowed in a single Error node. An empty Error node (the
very next token already satisfies stop) is still emitted so callers have
a uniform child to attach.
*/
func (p *parser) recoverUntil(children *[]cst.GreenChild, stop func(token.Token) bool) {
	var skipped []cst.GreenChild
	for !p.atEOF() && !stop(p.peekSig(0)) {
		trivia, leaf, _ := p.bump()
		skipped = append(skipped, trivia...)
		skipped = append(skipped, leaf)
	}
	*children = append(*children, cst.GreenChild{Node: p.b.Node(cst.Error, skipped)})
}
