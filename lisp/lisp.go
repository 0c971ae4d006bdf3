package lisp

import (
	"bytes"
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LError
	LNumber
	LSymbol
	LFun
	LSExpr
	LQExpr
)

var lvalTypeStrings = []string{
	LInvalid: "Unknown",
	LError:   "Error",
	LNumber:  "Number",
	LSymbol:  "Symbol",
	LFun:     "Function",
	LSExpr:   "S-Expression",
	LQExpr:   "Q-Expression",
}

func (t LType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a function that performs executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value
type LVal struct {
	Type LType

	// Num is the value of an LNumber.
	Num int

	// Str is the name of an LSymbol or the message of an LError.
	Str string

	// Cells holds the elements of an LSExpr or LQExpr.
	Cells []*LVal

	// Variables needed for function values.  Builtin functions have a nil
	// Env and Body.
	Builtin LBuiltin
	FID     string
	Env     *LEnv
	Formals *LVal
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Bool returns Number(1) if ok is true and Number(0) otherwise.
func Bool(ok bool) *LVal {
	if ok {
		return Number(1)
	}
	return Number(0)
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing an S-expression, a symbolic expression.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// QExpr returns an LVal representing an Q-expression, a quoted expression, a
// list.
func QExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LQExpr,
		Cells: cells,
	}
}

// Nil returns an empty S-expression, the value of definitions and other
// expressions evaluated only for their effect.
func Nil() *LVal {
	return SExpr(nil)
}

// Formals returns a Q-expression of symbols suitable as the formal argument
// list of a function.
func Formals(argSymbols ...string) *LVal {
	cells := make([]*LVal, len(argSymbols))
	for i, sym := range argSymbols {
		cells[i] = Symbol(sym)
	}
	return QExpr(cells)
}

// Fun returns an LVal representing a builtin function.  The fid identifies
// the native implementation and is the basis of equality between builtins.
func Fun(fid string, formals *LVal, fn LBuiltin) *LVal {
	if formals == nil {
		formals = Formals()
	}
	return &LVal{
		Type:    LFun,
		Builtin: fn,
		FID:     fid,
		Formals: formals,
	}
}

// Lambda returns anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The function's environment has no parent or runtime until it is fully
// applied.
func Lambda(formals *LVal, body *LVal) *LVal {
	env := &LEnv{ID: getEnvID()}
	return &LVal{
		Type:    LFun,
		FID:     env.getFID(),
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Str:  err.Error(),
	}
}

// Errorf returns an LVal representing with a formatted error message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  fmt.Sprintf(format, v...),
	}
}

// IsBuiltin returns true if v is a native function.
func (v *LVal) IsBuiltin() bool {
	return v.Type == LFun && v.Builtin != nil
}

// IsNullary returns true if v is a function that takes no arguments.
func (v *LVal) IsNullary() bool {
	return v.Type == LFun && (v.Formals == nil || len(v.Formals.Cells) == 0)
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Copy creates a deep copy of the receiver.  A function's environment is
// copied but its parent is shared.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	cp.Env = v.Env.Copy()
	cp.Formals = v.Formals.Copy()
	cp.Body = v.Body.Copy()
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// Equal returns true if v and other are structurally equal.  Builtin
// functions are equal when they share a native implementation.  Lambdas are
// equal when their formals and bodies are equal, regardless of the values
// bound in their environments.
func (v *LVal) Equal(other *LVal) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LNumber:
		return v.Num == other.Num
	case LError, LSymbol:
		return v.Str == other.Str
	case LFun:
		if v.Builtin != nil || other.Builtin != nil {
			return v.Builtin != nil && other.Builtin != nil && v.FID == other.FID
		}
		return v.Formals.Equal(other.Formals) && v.Body.Equal(other.Body)
	case LSExpr, LQExpr:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.Itoa(v.Num)
	case LError:
		return "Error: " + v.Str
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LQExpr:
		return exprString(v, "{", "}")
	case LFun:
		if v.Builtin != nil {
			return "<builtin>"
		}
		return fmt.Sprintf("(\\ %v %v)", v.Formals, v.Body)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
