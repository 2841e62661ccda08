// Package genast defines the two-node abstract syntax tree for a compiled
// generator expression: literal text and compound `$<IDENT:arg,arg,...>`
// forms. Nodes are constructed once by a host-supplied parser (out of scope
// for this module) and are immutable for the lifetime of the compiled
// expression.
package genast

// Node is the base type for a compiled generator-expression node.
//
// There are exactly two concrete kinds: Text and Content. Unlike a typical
// AST with a large node zoo, a generator expression has no statements, no
// declarations, and no user-defined operators, so a closed two-member sum
// type (expressed here as an interface with an unexported marker method) is
// sufficient.
type Node interface {
	// String returns the node reconstructed as generator-expression source,
	// primarily for error messages and debugging.
	String() string

	// node is unexported so Node can only be implemented inside this
	// package, keeping the sum type closed.
	node()
}

// Text is a literal run of bytes with no further structure. It evaluates to
// itself.
type Text struct {
	Value string
}

// NewText constructs a literal text node.
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) node()          {}
func (t *Text) String() string { return t.Value }

// Content is a compound `$<...>` form. Identifier is the sequence of nodes
// that concatenate to produce the operator's identifier string (normally a
// single Text leaf, but a parser may allow nested expressions there too).
// Params holds one entry per comma-separated parameter; each parameter is
// itself a sequence of nodes (text interleaved with nested `$<...>` forms)
// that concatenate to produce that parameter's evaluated value.
type Content struct {
	Identifier []Node
	Params     [][]Node
}

// NewContent constructs a compound node from an identifier sequence and a
// list of parameter sequences.
func NewContent(identifier []Node, params [][]Node) *Content {
	return &Content{Identifier: identifier, Params: params}
}

func (c *Content) node() {}

func (c *Content) String() string {
	out := "$<"
	for _, n := range c.Identifier {
		out += n.String()
	}
	for i, p := range c.Params {
		if i == 0 {
			out += ":"
		} else {
			out += ","
		}
		for _, n := range p {
			out += n.String()
		}
	}
	out += ">"
	return out
}
