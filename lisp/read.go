package lisp

import (
	"strconv"
	"strings"
)

// RootTag is the tag of the node at the root of a parsed input.
const RootTag = ">"

// Read converts the syntax tree rooted at node into an LVal.  The root of a
// tree and nodes tagged ``sexpr'' become S-expressions, nodes tagged ``qexpr''
// become Q-expressions.  Bracket and regex nodes are dropped.
func Read(node Node) *LVal {
	tag := node.Tag()
	if strings.Contains(tag, "number") {
		return readNumber(node.Contents())
	}
	if strings.Contains(tag, "symbol") {
		return Symbol(node.Contents())
	}

	var v *LVal
	switch {
	case tag == RootTag, strings.Contains(tag, "sexpr"):
		v = SExpr(nil)
	case strings.Contains(tag, "qexpr"):
		v = QExpr(nil)
	default:
		return Errorf("unknown syntax node: %s", tag)
	}
	for _, c := range node.Children() {
		if isPunctuation(c) {
			continue
		}
		v.Cells = append(v.Cells, Read(c))
	}
	return v
}

func readNumber(s string) *LVal {
	x, err := strconv.Atoi(s)
	if err != nil {
		return Errorf(errInvalidNumber)
	}
	return Number(x)
}

func isPunctuation(node Node) bool {
	switch node.Contents() {
	case "(", ")", "{", "}":
		return true
	}
	return node.Tag() == "regex"
}
