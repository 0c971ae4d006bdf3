// Package lisplib is used to conveniently load the standard prelude into a
// TysonLang environment.
package lisplib

import "github.com/isak-s/tysonLang/lisp"

// PreludeName is the source name reported for errors in the prelude.
const PreludeName = "prelude"

// LoadLibrary evaluates the prelude in env.  The runtime of env must have a
// Reader (see lisp.WithReader).
func LoadLibrary(env *lisp.LEnv) *lisp.LVal {
	if env.Runtime.Reader == nil {
		return lisp.Errorf("%s: no reader for environment runtime", PreludeName)
	}
	lerr := env.LoadString(PreludeName, Prelude)
	if lerr.Type == lisp.LError {
		return lisp.Errorf("%s: %s", PreludeName, lerr.Str)
	}
	return lisp.Nil()
}

// Symbols returns the names defined by the prelude, in definition order.
func Symbols() []string {
	names := make([]string, len(preludeSymbols))
	copy(names, preludeSymbols)
	return names
}

var preludeSymbols = []string{
	"nil", "true", "false",
	"fun", "unpack", "pack", "curry", "uncurry",
	"not", "and", "or",
	"flip", "comp",
	"fst", "snd", "trd", "nth", "last", "take", "drop", "elem",
	"map", "filter", "foldl", "sum", "product", "reverse",
	"do", "let",
}

// Prelude is the source of the standard prelude.
const Prelude = `
(def {nil} {})
(def {true} 1)
(def {false} 0)

(def {fun} (\ {f b} {def (head f) (\ (tail f) b)}))

(fun {unpack f l} {eval (join (list f) l)})
(fun {pack f & xs} {f xs})
(def {curry} unpack)
(def {uncurry} pack)

(fun {not x} {- 1 x})
(fun {and x y} {* x y})
(fun {or x y} {if (+ x y) {true} {false}})

(fun {flip f a b} {f b a})
(fun {comp f g x} {f (g x)})

(fun {fst l} {eval (head l)})
(fun {snd l} {eval (head (tail l))})
(fun {trd l} {eval (head (tail (tail l)))})
(fun {nth n l} {if (== n 0) {fst l} {nth (- n 1) (tail l)}})
(fun {last l} {nth (- (len l) 1) l})
(fun {take n l} {if (== n 0) {nil} {join (head l) (take (- n 1) (tail l))}})
(fun {drop n l} {if (== n 0) {l} {drop (- n 1) (tail l)}})
(fun {elem x l} {if (== l nil) {false} {if (== x (fst l)) {true} {elem x (tail l)}}})

(fun {map f l} {if (== l nil) {nil} {join (list (f (fst l))) (map f (tail l))}})
(fun {filter f l} {if (== l nil) {nil} {join (if (f (fst l)) {head l} {nil}) (filter f (tail l))}})
(fun {foldl f z l} {if (== l nil) {z} {foldl f (f z (fst l)) (tail l)}})
(fun {sum l} {foldl + 0 l})
(fun {product l} {foldl * 1 l})
(fun {reverse l} {if (== l nil) {nil} {join (reverse (tail l)) (head l)}})

(fun {do & l} {if (== l nil) {nil} {last l}})
(fun {let b} {((\ {_} b) ())})
`
