package lisptest

import (
	"testing"

	"github.com/isak-s/tysonLang/lisp"
	"github.com/isak-s/tysonLang/tysontest"
)

func TestEval(t *testing.T) {
	tests := tysontest.TestSuite{
		{"numbers", tysontest.TestSequence{
			{"3", "3", ""},
			{"-7", "-7", ""},
		}},
		{"symbols", tysontest.TestSequence{
			{"()", "()", ""},
			{"a", "Error: Unbound symbol! 'a'", ""},
			{"+", "<builtin>", ""},
			{"(+)", "<builtin>", ""},
		}},
		{"quoted expressions", tysontest.TestSequence{
			{"{}", "{}", ""},
			{"{1 2 3}", "{1 2 3}", ""},
			{"{a (b c)}", "{a (b c)}", ""},
		}},
		{"arithmetic", tysontest.TestSequence{
			{"(+ 1 2 3)", "6", ""},
			{"(- 10 4 3)", "3", ""},
			{"(- 5)", "5", ""},
			{"(* 2 3 4)", "24", ""},
			{"(/ 7 2)", "3", ""},
			{"(/ -7 2)", "-3", ""},
			{"(+ 1 (* 2 3))", "7", ""},
			{"(/ 4 0)", "Error: Division By Zero!", ""},
			{"(+ 1 {2})", "Error: Cannot operate on non-number!", ""},
		}},
		{"comparison", tysontest.TestSequence{
			{"(> 2 1)", "1", ""},
			{"(<= 2 1)", "0", ""},
			{"(>= 1 1)", "1", ""},
			{"(< 1 2)", "1", ""},
			{"(== {1 2} {1 2})", "1", ""},
			{"(== {1 2} {1 (2)})", "0", ""},
			{"(!= 1 {1})", "1", ""},
			{"(== + +)", "1", ""},
			{"(== + -)", "0", ""},
			{`(== \ lambda)`, "1", ""},
			{"(> 1 {})", "Error: Function '>' passed incorrect type for argument 1. Got Q-Expression, Expected Number.", ""},
			{"(== 1)", "Error: Function '==' passed incorrect number of arguments. Got 1, Expected 2.", ""},
		}},
		{"lists", tysontest.TestSequence{
			{"(list 1 2 3)", "{1 2 3}", ""},
			{"(head {1 2 3})", "{1}", ""},
			{"(tail {1 2 3})", "{2 3}", ""},
			{"(tail {})", "Error: Function 'tail' passed {}!", ""},
			{"(head 1)", "Error: Function 'head' passed incorrect type for argument 0! Got Number, expected Q-Expression", ""},
			{"(head {1} {2})", "Error: Function 'head' passed too many arguments! Got 2, expected 1", ""},
			{"(join {1} {2 3} {})", "{1 2 3}", ""},
			{"(join {1} 2)", "Error: Function 'join' passed incorrect type for argument 1! Got Number, expected Q-Expression", ""},
			{"(len {1 2 3})", "3", ""},
			{"(len {})", "0", ""},
			{"(eval {+ 1 2})", "3", ""},
			{"(eval (head {(+ 1 2) 5}))", "3", ""},
			{"(eval {})", "()", ""},
		}},
		{"conditional", tysontest.TestSequence{
			{"(if (> 2 1) {+ 1 1} {0})", "2", ""},
			{"(if 0 {1} {2})", "2", ""},
			{"(if 1 2 3)", "Error: Function 'if' passed incorrect type for argument 1. Got Number, Expected Q-Expression.", ""},
		}},
		{"definition", tysontest.TestSequence{
			{"(def {x y} 1 2)", "()", ""},
			{"(+ x y)", "3", ""},
			{"(def {x} 1 2)", "Error: Function 'def' passed too many arguments for symbols. Got 1, Expected 2.", ""},
			{"(def {1} 2)", "Error: Function 'def' cannot define non-symbol. Got Number, Expected Symbol.", ""},
			{"(def 1 2)", "Error: Function 'def' passed incorrect type for argument 0. Got Number, Expected Q-Expression.", ""},
		}},
		{"lambda", tysontest.TestSequence{
			{`((\ {x y} {+ x y}) 3 4)`, "7", ""},
			{`(\ {x} {* x x})`, `(\ {x} {* x x})`, ""},
			{`(lambda {x} {x})`, `(\ {x} {x})`, ""},
			{`(\ {1} {x})`, "Error: Cannot define non-symbol. Got Number, expected Symbol", ""},
			{`((\ {x} {x}) 1 2)`, "Error: Function '<>' passed too many arguments! Got 2, expected 1", ""},
			{`(1 2)`, "Error: first element is not a function!", ""},
		}},
		{"named functions", tysontest.TestSequence{
			{`(def {f} (\ {x} {* x x}))`, "()", ""},
			{"(f 5)", "25", ""},
			{"f", `(\ {x} {* x x})`, ""},
		}},
		{"currying", tysontest.TestSequence{
			{`(def {add} (\ {x y} {+ x y}))`, "()", ""},
			{"((add 1) 2)", "3", ""},
			{"(add 1)", `(\ {y} {+ x y})`, ""},
			{"(def {inc} (add 1))", "()", ""},
			{"(inc 41)", "42", ""},
			{"(inc 1)", "2", ""},
			{"add", `(\ {x y} {+ x y})`, ""},
		}},
		{"variadic", tysontest.TestSequence{
			{`((\ {x & xs} {xs}) 1 2 3)`, "{2 3}", ""},
			{`((\ {x & xs} {xs}) 1)`, "{}", ""},
			{`(((\ {x y & xs} {join (list x y) xs}) 1) 2 3 4)`, "{1 2 3 4}", ""},
			{`((\ {x &} {x}) 1 2)`, "Error: Function format invalid. Symbol '&' not followed by single symbol.", ""},
		}},
		{"nullary", tysontest.TestSequence{
			{`(def {g} (\ {} {def {z} 9}))`, "()", ""},
			{"(g)", "()", ""},
			{"z", "9", ""},
			{`(\ {} {5})`, `(\ {} {5})`, ""},
			{`(def {h} (\ {} {\ {} {1}}))`, "()", ""},
			{"(h)", `(\ {} {1})`, ""},
			{"((h))", `(\ {} {1})`, ""},
			{"(eval (list h))", `(\ {} {1})`, ""},
		}},
		{"caller scope", tysontest.TestSequence{
			{"(def {k} 5)", "()", ""},
			{`(def {h} (\ {x} {+ x k}))`, "()", ""},
			{"(h 1)", "6", ""},
			{"(def {k} 10)", "()", ""},
			{"(h 1)", "11", ""},
		}},
		{"local definition", tysontest.TestSequence{
			{"(def {a} 1)", "()", ""},
			{`((\ {x} {= {a} x}) 5)`, "()", ""},
			{"a", "1", ""},
			{`((\ {x} {def {a} x}) 5)`, "()", ""},
			{"a", "5", ""},
		}},
		{"errors", tysontest.TestSequence{
			{"(+ 1 (/ 1 0) undefined)", "Error: Division By Zero!", ""},
			{"(list 1 (head {}) q)", "Error: Function 'head' passed {}!", ""},
			{"(list 1 nope (head {}))", "Error: Unbound symbol! 'nope'", ""},
		}},
		{"environment", tysontest.TestSequence{
			{`((\ {a b} {get_env}) 1 2)`, "(a)", ""},
			{"(print 1 {2} x)", "Error: Unbound symbol! 'x'", ""},
			{"(print 1 {2})", "()", "1 {2}\n"},
		}},
	}
	tysontest.RunTestSuite(t, tests)
}

func TestEval_stackOverflow(t *testing.T) {
	r := &tysontest.Runner{
		Config: []lisp.Config{lisp.WithMaximumStackHeight(100)},
	}
	r.RunTestSuite(t, tysontest.TestSuite{
		{"unbounded recursion", tysontest.TestSequence{
			{`(def {loop} (\ {n} {loop n}))`, "()", ""},
			{"(loop 1)", "Error: Stack overflow! Maximum call depth of 100 exceeded.", ""},
			{"(+ 1 2)", "3", ""},
		}},
	})
}

func TestEval_prelude(t *testing.T) {
	tysontest.Prelude().RunTestSuite(t, tysontest.TestSuite{
		{"constants", tysontest.TestSequence{
			{"nil", "{}", ""},
			{"true", "1", ""},
			{"false", "0", ""},
		}},
		{"fun", tysontest.TestSequence{
			{"(fun {sq x} {* x x})", "()", ""},
			{"(sq 4)", "16", ""},
		}},
		{"packing", tysontest.TestSequence{
			{"(unpack + {1 2 3})", "6", ""},
			{"(pack head 1 2 3)", "{1}", ""},
			{"(curry + {5 6})", "11", ""},
			{"(uncurry len 1 2)", "2", ""},
		}},
		{"logic", tysontest.TestSequence{
			{"(not 0)", "1", ""},
			{"(and 1 0)", "0", ""},
			{"(or 0 1)", "1", ""},
			{"(or 0 0)", "0", ""},
		}},
		{"composition", tysontest.TestSequence{
			{"(flip - 1 10)", "9", ""},
			{"((comp len tail) {1 2 3})", "2", ""},
		}},
		{"list access", tysontest.TestSequence{
			{"(fst {1 2 3})", "1", ""},
			{"(snd {1 2 3})", "2", ""},
			{"(trd {1 2 3})", "3", ""},
			{"(nth 1 {4 5 6})", "5", ""},
			{"(last {4 5 6})", "6", ""},
			{"(take 2 {1 2 3})", "{1 2}", ""},
			{"(drop 2 {1 2 3})", "{3}", ""},
			{"(elem 2 {1 2 3})", "1", ""},
			{"(elem 4 {1 2 3})", "0", ""},
		}},
		{"higher order", tysontest.TestSequence{
			{`(map (\ {x} {* x x}) {1 2 3})`, "{1 4 9}", ""},
			{`(filter (\ {x} {> x 1}) {1 2 3})`, "{2 3}", ""},
			{"(foldl + 0 {1 2 3})", "6", ""},
			{"(sum {1 2 3 4})", "10", ""},
			{"(product {1 2 3 4})", "24", ""},
			{"(reverse {1 2 3})", "{3 2 1}", ""},
		}},
		{"sequencing", tysontest.TestSequence{
			{"(do (def {q} 3) (+ q 1))", "4", ""},
			{"(let {do (= {w} 7) w})", "7", ""},
			{"w", "Error: Unbound symbol! 'w'", ""},
		}},
	})
}
