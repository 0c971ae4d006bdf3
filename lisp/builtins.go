package lisp

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

// get_env must remain the last builtin.  It omits the final binding of the
// frame it inspects, which in a fresh environment is itself.
var langBuiltins = []*langBuiltin{
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"head", Formals("lis"), builtinHead},
	{"tail", Formals("lis"), builtinTail},
	{"eval", Formals("expr"), builtinEval},
	{"join", Formals(VarArgSymbol, "lists"), builtinJoin},
	{"len", Formals("lis"), builtinLen},
	{"if", Formals("condition", "then", "else"), builtinIf},
	{"==", Formals("a", "b"), builtinEq},
	{"!=", Formals("a", "b"), builtinNEq},
	{">", Formals("a", "b"), builtinGT},
	{"<", Formals("a", "b"), builtinLT},
	{">=", Formals("a", "b"), builtinGEq},
	{"<=", Formals("a", "b"), builtinLEq},
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals(VarArgSymbol, "x"), builtinSub},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"/", Formals(VarArgSymbol, "x"), builtinDiv},
	{"def", Formals("symbols", VarArgSymbol, "values"), builtinDef},
	{"=", Formals("symbols", VarArgSymbol, "values"), builtinPut},
	{LambdaSymbol, Formals("formals", "body"), builtinLambda},
	{"lambda", Formals("formals", "body"), builtinLambda},
	{"print", Formals(VarArgSymbol, "args"), builtinPrint},
	{"debug-stack", Formals(), builtinDebugStack},
	{"get_env", Formals(), builtinGetEnv},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

// builtinFID identifies the native implementation of f.  Names bound to the
// same Go function share an identity.
func builtinFID(f LBuiltinDef) string {
	if b, ok := f.(*langBuiltin); ok {
		return runtime.FuncForPC(reflect.ValueOf(b.fun).Pointer()).Name()
	}
	return fmt.Sprintf("<builtin-function ``%s''>", f.Name())
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return QExpr(args.Cells)
}

func builtinHead(env *LEnv, args *LVal) *LVal {
	if lerr := checkListArg("head", args, true); lerr != nil {
		return lerr
	}
	return QExpr(args.Cells[0].Cells[:1])
}

func builtinTail(env *LEnv, args *LVal) *LVal {
	if lerr := checkListArg("tail", args, true); lerr != nil {
		return lerr
	}
	return QExpr(args.Cells[0].Cells[1:])
}

func builtinEval(env *LEnv, args *LVal) *LVal {
	if lerr := checkListArg("eval", args, false); lerr != nil {
		return lerr
	}
	return env.Eval(SExpr(args.Cells[0].Cells))
}

func builtinJoin(env *LEnv, args *LVal) *LVal {
	for i, c := range args.Cells {
		if c.Type != LQExpr {
			return Errorf(errWrongType, "join", i, c.Type, LQExpr)
		}
	}
	q := QExpr(nil)
	for _, c := range args.Cells {
		q.Cells = append(q.Cells, c.Cells...)
	}
	return q
}

func builtinLen(env *LEnv, args *LVal) *LVal {
	if lerr := checkListArg("len", args, false); lerr != nil {
		return lerr
	}
	return Number(args.Cells[0].Len())
}

// checkListArg validates the single Q-expression argument taken by the list
// builtins.
func checkListArg(fun string, args *LVal, nonEmpty bool) *LVal {
	if args.Len() != 1 {
		return Errorf(errTooManyArguments, fun, args.Len(), 1)
	}
	if args.Cells[0].Type != LQExpr {
		return Errorf(errWrongType, fun, 0, args.Cells[0].Type, LQExpr)
	}
	if nonEmpty && args.Cells[0].Len() == 0 {
		return Errorf(errEmptyList, fun)
	}
	return nil
}

// (if condition {then} {else})
func builtinIf(env *LEnv, args *LVal) *LVal {
	if lerr := checkArgs("if", args, LNumber, LQExpr, LQExpr); lerr != nil {
		return lerr
	}
	branch := args.Cells[2]
	if args.Cells[0].Num != 0 {
		branch = args.Cells[1]
	}
	return env.Eval(SExpr(branch.Cells))
}

// checkArgs validates the number and types of args.
func checkArgs(fun string, args *LVal, types ...LType) *LVal {
	if args.Len() != len(types) {
		return Errorf(errArgNum, fun, args.Len(), len(types))
	}
	for i, t := range types {
		if args.Cells[i].Type != t {
			return Errorf(errArgType, fun, i, args.Cells[i].Type, t)
		}
	}
	return nil
}

func builtinEq(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return Errorf(errArgNum, "==", args.Len(), 2)
	}
	return Bool(args.Cells[0].Equal(args.Cells[1]))
}

func builtinNEq(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return Errorf(errArgNum, "!=", args.Len(), 2)
	}
	return Bool(!args.Cells[0].Equal(args.Cells[1]))
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return compareNumbers(">", args, func(a, b int) bool { return a > b })
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return compareNumbers("<", args, func(a, b int) bool { return a < b })
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	return compareNumbers(">=", args, func(a, b int) bool { return a >= b })
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	return compareNumbers("<=", args, func(a, b int) bool { return a <= b })
}

func compareNumbers(fun string, args *LVal, cmp func(a, b int) bool) *LVal {
	if lerr := checkArgs(fun, args, LNumber, LNumber); lerr != nil {
		return lerr
	}
	return Bool(cmp(args.Cells[0].Num, args.Cells[1].Num))
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return arithmetic("+", args)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return arithmetic("-", args)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return arithmetic("*", args)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return arithmetic("/", args)
}

// arithmetic folds op over args from the left.  A single operand is returned
// unchanged, even by ``-''.
func arithmetic(op string, args *LVal) *LVal {
	for _, c := range args.Cells {
		if c.Type != LNumber {
			return Errorf(errNonNumber)
		}
	}
	if args.Len() == 0 {
		return Errorf(errArgNum, op, 0, 1)
	}
	x := args.Cells[0].Num
	for _, c := range args.Cells[1:] {
		switch op {
		case "+":
			x += c.Num
		case "-":
			x -= c.Num
		case "*":
			x *= c.Num
		case "/":
			if c.Num == 0 {
				return Errorf(errDivZero)
			}
			x /= c.Num
		}
	}
	return Number(x)
}

// (def {x y} 1 2)
func builtinDef(env *LEnv, args *LVal) *LVal {
	return defineSymbols("def", env.PutGlobal, args)
}

// (= {x y} 1 2)
func builtinPut(env *LEnv, args *LVal) *LVal {
	return defineSymbols("=", env.Put, args)
}

func defineSymbols(fun string, put func(k, v *LVal), args *LVal) *LVal {
	if args.Len() == 0 {
		return Errorf(errArgNum, fun, 0, 1)
	}
	if args.Cells[0].Type != LQExpr {
		return Errorf(errArgType, fun, 0, args.Cells[0].Type, LQExpr)
	}
	syms := args.Cells[0]
	for _, sym := range syms.Cells {
		if sym.Type != LSymbol {
			return Errorf(errDefineNonSymbol, fun, sym.Type, LSymbol)
		}
	}
	if syms.Len() != args.Len()-1 {
		return Errorf(errDefineCount, fun, syms.Len(), args.Len()-1)
	}
	for i, sym := range syms.Cells {
		put(sym, args.Cells[i+1])
	}
	return Nil()
}

// (\ {formals} {body})
func builtinLambda(env *LEnv, args *LVal) *LVal {
	if lerr := checkArgs(LambdaSymbol, args, LQExpr, LQExpr); lerr != nil {
		return lerr
	}
	formals := args.Cells[0]
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return Errorf(errLambdaNonSymbol, sym.Type, LSymbol)
		}
	}
	return Lambda(formals, args.Cells[1])
}

func builtinPrint(env *LEnv, args *LVal) *LVal {
	strs := make([]string, len(args.Cells))
	for i := range args.Cells {
		strs[i] = args.Cells[i].String()
	}
	fmt.Fprintln(env.Runtime.Stdout, strings.Join(strs, " "))
	return Nil()
}

func builtinDebugStack(env *LEnv, args *LVal) *LVal {
	env.Runtime.Stack.DebugPrint(env.Runtime.Stderr)
	return Nil()
}

// get_env lists the symbols bound in the current frame, except the most
// recently added one.
func builtinGetEnv(env *LEnv, args *LVal) *LVal {
	names := env.Names()
	lis := SExpr(nil)
	for i := 0; i < len(names)-1; i++ {
		lis.Cells = append(lis.Cells, Symbol(names[i]))
	}
	return lis
}
