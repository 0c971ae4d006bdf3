package lisp

import "io"

// Node is a node in a syntax tree produced by a parser.  Read converts Nodes
// into LVals.
type Node interface {
	// Tag names the grammar rule(s) which produced the node.
	Tag() string
	// Contents is the literal source text of a leaf node.
	Contents() string
	Children() []Node
}

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  The returned LVals are evaluated one after another.
	Read(name string, r io.Reader) ([]*LVal, error)
}
