/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package cst

import (
	"strconv"
	"strings"

	"github.com/krotik/gqlcore/stringutil"
	"github.com/krotik/gqlcore/token"
)

/*
GreenToken is a leaf of the green tree: a lexical token kind plus its owned
text (trivia included). Unlike token.Token it does not reference a Source —
it is a value, detached from any particular parse, so it can be shared
between green trees built from equal-but-distinct sources.
*/
type GreenToken struct {
	Kind token.Kind
	Text string
}

/*
GreenChild is one child of a GreenNode: either a nested GreenNode or a
GreenToken, never both.
*/
type GreenChild struct {
	Node  *GreenNode
	Token *GreenToken
}

/*
Len returns the byte length this child contributes to its parent.
*/
func (c GreenChild) Len() int {
	if c.Node != nil {
		return c.Node.textLen
	}
	return len(c.Token.Text)
}

/*
GreenNode is an immutable, value-typed node of the green tree. It stores no
parent pointer and no absolute offset — both are properties of a cursor (see
RedNode), not of the node itself, so the same GreenNode can be reached from
many different positions without copying.
*/
type GreenNode struct {
	Kind     SyntaxKind
	Children []GreenChild
	textLen  int
	hash     string
}

/*
Len returns the total byte length spanned by this node and all its children,
trivia included.
*/
func (n *GreenNode) Len() int {
	return n.textLen
}

/*
Text reconstructs the exact source text spanned by this node by
concatenating every descendant token's text in document order. For a
SyntaxTree whose parse produced no recovery errors, Text() on the root
equals the original input byte-for-byte (spec property 2 / S7).
*/
func (n *GreenNode) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *GreenNode) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.writeText(b)
		} else {
			b.WriteString(c.Token.Text)
		}
	}
}

/*
Builder hash-conses GreenNodes: two calls to Node with the same kind and an
identical sequence of children return the pointer to a single shared
*GreenNode. This is purely a memory/dedup optimization (e.g. the ubiquitous
"Int!" NamedType+NonNullType pair in a large schema) — it has no effect on
tree semantics, since GreenNode is immutable and carries no identity-
sensitive state.
*/
type Builder struct {
	cache map[string]*GreenNode
}

/*
NewBuilder creates an empty hash-consing Builder.
*/
func NewBuilder() *Builder {
	return &Builder{cache: make(map[string]*GreenNode)}
}

/*
Leaf wraps a single lexical token (trivia included) as a green Token node.
*/
func (b *Builder) Leaf(kind token.Kind, text string) *GreenNode {
	return b.Node(Token, []GreenChild{{Token: &GreenToken{Kind: kind, Text: text}}})
}

/*
Node builds (or reuses, on a hash hit) a GreenNode of the given kind with
the given children.
*/
func (b *Builder) Node(kind SyntaxKind, children []GreenChild) *GreenNode {
	total := 0
	var key strings.Builder
	key.WriteString(strconv.Itoa(int(kind)))
	key.WriteByte('|')

	for _, c := range children {
		total += c.Len()
		if c.Node != nil {
			key.WriteString("N:")
			key.WriteString(c.Node.hash)
		} else {
			key.WriteString("T:")
			key.WriteString(strconv.Itoa(int(c.Token.Kind)))
			key.WriteByte(':')
			key.WriteString(c.Token.Text)
		}
		key.WriteByte(';')
	}

	hash := stringutil.MD5HexString(key.String())

	if existing, ok := b.cache[hash]; ok && existing.Kind == kind && len(existing.Children) == len(children) {
		return existing
	}

	n := &GreenNode{Kind: kind, Children: children, textLen: total, hash: hash}
	b.cache[hash] = n
	return n
}

/*
CacheSize reports how many distinct green nodes this builder has produced,
for tests and memory-usage diagnostics.
*/
func (b *Builder) CacheSize() int {
	return len(b.cache)
}
