/*
Package parser provides the TysonLang parser.

	number := /-?[0-9]+/
	symbol := /[a-zA-Z0-9_+\-*\/\\=<>!&]+/
	sexpr  := '(' <expr>* ')'
	qexpr  := '{' <expr>* '}'
	expr   := <number> | <symbol> | <sexpr> | <qexpr>
	root   := /^/ <expr>* /$/

Syntax nodes carry tags in the style of the mpc library (e.g.
"expr|number|regex") so that lisp.Read can convert them to values.
*/
package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/isak-s/tysonLang/lisp"
	parsec "github.com/prataprc/goparsec"
)

// Node is a syntax tree node.  Node implements lisp.Node.
type Node struct {
	tag      string
	contents string
	children []lisp.Node
}

var _ lisp.Node = (*Node)(nil)

// Tag implements lisp.Node.
func (n *Node) Tag() string { return n.tag }

// Contents implements lisp.Node.
func (n *Node) Contents() string { return n.contents }

// Children implements lisp.Node.
func (n *Node) Children() []lisp.Node { return n.children }

// String renders n as an indented tree, one node per line.
func (n *Node) String() string {
	var buf bytes.Buffer
	dumpNode(&buf, n, "")
	return buf.String()
}

func dumpNode(w io.Writer, n lisp.Node, indent string) {
	if n.Contents() != "" {
		fmt.Fprintf(w, "%s%s:%s\n", indent, n.Tag(), n.Contents())
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, n.Tag())
	}
	for _, c := range n.Children() {
		dumpNode(w, c, indent+"  ")
	}
}

// SyntaxError is returned when input text does not match the grammar.
type SyntaxError struct {
	Offset int
	Text   string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %q", err.Offset, err.Text)
}

// Parse parses text and returns the root node of its syntax tree.  The root
// node is tagged lisp.RootTag and contains every top-level expression in
// text, so an entire line of input reads as one S-expression.
func Parse(text []byte) (*Node, error) {
	exprs, err := parseExprs(text)
	if err != nil {
		return nil, err
	}
	root := &Node{tag: lisp.RootTag}
	root.children = append(root.children, &Node{tag: "regex"})
	root.children = append(root.children, exprs...)
	root.children = append(root.children, &Node{tag: "regex"})
	return root, nil
}

// ParseLVal parses text and returns each of its top-level expressions as an
// LVal.
func ParseLVal(text []byte) ([]*lisp.LVal, error) {
	exprs, err := parseExprs(text)
	if err != nil {
		return nil, err
	}
	vals := make([]*lisp.LVal, len(exprs))
	for i := range exprs {
		vals[i] = lisp.Read(exprs[i])
	}
	return vals, nil
}

func parseExprs(text []byte) ([]lisp.Node, error) {
	text = bytes.TrimSpace(text)
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	var exprs []lisp.Node
	root, s := parser(s)
	for root != nil {
		exprs = append(exprs, syntaxNodes(root)...)
		root, s = parser(s)
	}
	if !s.Endof() {
		offset := s.GetCursor()
		rest := string(text[offset:])
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[:i]
		}
		return exprs, &SyntaxError{Offset: offset, Text: rest}
	}
	return exprs, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	number := parsec.Token(`-?[0-9]+`, "number")
	symbol := parsec.Token(`[a-zA-Z0-9_+\-*/\\=<>!&]+`, "symbol")

	var expr parsec.Parser // forward declaration allows for recursive parsing
	sexpr := parsec.And(listNode("sexpr"), openP, parsec.Kleene(nil, &expr), closeP)
	qexpr := parsec.And(listNode("qexpr"), openB, parsec.Kleene(nil, &expr), closeB)
	// number precedes symbol because the symbol pattern also matches digits
	expr = parsec.OrdChoice(exprNode, number, symbol, sexpr, qexpr)
	return expr
}

func listNode(name string) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return &Node{
			tag:      "expr|" + name + "|>",
			children: syntaxNodes(nodes),
		}
	}
}

func exprNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	children := syntaxNodes(nodes)
	if len(children) == 0 {
		return &Node{tag: "expr|>"}
	}
	return children[0]
}

// syntaxNodes flattens the parsec result n into syntax nodes.  Terminals
// matched by a Token become leaf expressions, bracket atoms become char
// nodes.
func syntaxNodes(n parsec.ParsecNode) []lisp.Node {
	switch n := n.(type) {
	case *Node:
		return []lisp.Node{n}
	case *parsec.Terminal:
		switch n.Name {
		case "number", "symbol":
			return []lisp.Node{&Node{tag: "expr|" + n.Name + "|regex", contents: n.Value}}
		default:
			return []lisp.Node{&Node{tag: "char", contents: n.Value}}
		}
	case []parsec.ParsecNode:
		var nodes []lisp.Node
		for _, c := range n {
			nodes = append(nodes, syntaxNodes(c)...)
		}
		return nodes
	default:
		return nil
	}
}

type reader struct{}

// NewReader returns a lisp.Reader that parses source streams and returns
// their top-level expressions.
func NewReader() lisp.Reader {
	return reader{}
}

func (reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	vals, err := ParseLVal(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vals, nil
}
