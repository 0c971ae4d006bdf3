package lisp

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

type binding struct {
	Sym string
	Val *LVal
}

// LEnv is a lisp environment.  The bindings of an LEnv are kept in the order
// they were first defined.
type LEnv struct {
	ID      uint
	Scope   []binding
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  An environment without
// a parent receives a new Runtime.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = StandardRuntime()
	}
	return &LEnv{
		ID:      getEnvID(),
		Parent:  parent,
		Runtime: runtime,
	}
}

// InitializeUserEnv adds the default builtins to env and applies the given
// configuration.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

func (env *LEnv) getFID() string {
	return fmt.Sprintf("anon%d", env.ID)
}

// Copy returns a new LEnv with a copy of env.Scope but a shared parent and
// runtime (not quite a deep copy).
func (env *LEnv) Copy() *LEnv {
	if env == nil {
		return nil
	}
	cp := &LEnv{}
	*cp = *env
	cp.Scope = make([]binding, len(env.Scope))
	for i, b := range env.Scope {
		cp.Scope[i] = binding{b.Sym, b.Val.Copy()}
	}
	return cp
}

// Names returns the symbols bound in env (but not its parents) in the order
// they were defined.
func (env *LEnv) Names() []string {
	names := make([]string, len(env.Scope))
	for i := range env.Scope {
		names[i] = env.Scope[i].Sym
	}
	return names
}

// Get takes an LSymbol k and returns a copy of the LVal it is bound to in env.
func (env *LEnv) Get(k *LVal) *LVal {
	for i := range env.Scope {
		if env.Scope[i].Sym == k.Str {
			return env.Scope[i].Val.Copy()
		}
	}
	if env.Parent != nil {
		return env.Parent.Get(k)
	}
	return Errorf(errUnboundSymbol, k.Str)
}

// Put takes an LSymbol k and binds a copy of v to it in env.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	if v == nil {
		panic("nil value")
	}
	for i := range env.Scope {
		if env.Scope[i].Sym == k.Str {
			env.Scope[i].Val = v.Copy()
			return
		}
	}
	env.Scope = append(env.Scope, binding{k.Str, v.Copy()})
}

// GetGlobal takes LSymbol k and returns the value it is bound to in the root
// environment (global scope).
func (env *LEnv) GetGlobal(k *LVal) *LVal {
	return env.root().Get(k)
}

// PutGlobal takes an LSymbol k and binds it to v in root environment (global
// scope).
func (env *LEnv) PutGlobal(k, v *LVal) {
	env.root().Put(k, v)
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		exist := env.Get(k)
		if exist.Type != LError {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Fun(builtinFID(f), f.Formals(), f.Eval))
	}
}

// Load reads source code from r using the runtime's Reader and evaluates each
// expression in turn.  Load stops at the first expression that evaluates to
// an error and returns it, otherwise the value of the last expression is
// returned.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return Errorf("no reader for environment runtime")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return Error(err)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return ret
		}
	}
	return ret
}

// LoadString evaluates the expressions in source.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval consumes v: S-expressions are evaluated in place.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates s and returns the resulting LVal.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return Errorf("not an s-expression")
	}
	var name string
	if len(s.Cells) > 0 && s.Cells[0].Type == LSymbol {
		name = s.Cells[0].Str
	}

	// Every cell is evaluated before looking for errors so that effects to
	// the right of a failure still happen.
	for i := range s.Cells {
		s.Cells[i] = env.Eval(s.Cells[i])
	}
	for i := range s.Cells {
		if s.Cells[i].Type == LError {
			return s.Cells[i]
		}
	}

	switch len(s.Cells) {
	case 0:
		return s
	case 1:
		// Only a nullary function named by a symbol is applied.  Computed
		// function values are returned as they are.
		if name != "" && s.Cells[0].IsNullary() {
			return env.call(name, s.Cells[0], SExpr(nil))
		}
		return s.Cells[0]
	}

	f := s.Cells[0]
	if f.Type != LFun {
		return Errorf(errNotAFunction)
	}
	return env.call(name, f, SExpr(s.Cells[1:]))
}

// call pushes a frame for fun onto the call stack and invokes it.
func (env *LEnv) call(name string, fun *LVal, args *LVal) *LVal {
	stack := env.Runtime.Stack
	if stack.Overflow() {
		env.Runtime.Logger.Debug("call stack overflow",
			"function", name,
			"height", stack.Height())
		return Errorf(errStackOverflow, stack.MaxHeight)
	}
	if name == "" {
		name = fun.FID
	}
	stack.PushFID(fun.FID, name)
	defer stack.Pop()
	return env.Call(fun, args)
}

// Call invokes LFun fun with the list args.  A lambda that receives fewer
// arguments than it has formals returns a copy of itself with the given
// arguments bound.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}

	// The caller's copy of fun is never modified.  Partial application binds
	// into, and returns, the copy.
	fun = fun.Copy()
	given := len(args.Cells)
	total := len(fun.Formals.Cells)
	for len(args.Cells) > 0 {
		if len(fun.Formals.Cells) == 0 {
			return Errorf(errTooManyArguments, "<>", given, total)
		}
		argSym := fun.Formals.Cells[0]
		fun.Formals.Cells = fun.Formals.Cells[1:]
		if argSym.Str == VarArgSymbol {
			if len(fun.Formals.Cells) != 1 {
				return Errorf(errVarArgFormat)
			}
			fun.Env.Put(fun.Formals.Cells[0], QExpr(args.Cells))
			fun.Formals.Cells = nil
			args.Cells = nil
			break
		}
		fun.Env.Put(argSym, args.Cells[0])
		args.Cells = args.Cells[1:]
	}
	if len(fun.Formals.Cells) > 0 && fun.Formals.Cells[0].Str == VarArgSymbol {
		if len(fun.Formals.Cells) != 2 {
			return Errorf(errVarArgFormat)
		}
		// We never bound the final argument to a value so we do it here.
		fun.Env.Put(fun.Formals.Cells[1], QExpr(nil))
		fun.Formals.Cells = nil
	}
	if len(fun.Formals.Cells) != 0 {
		env.Runtime.Logger.Debug("partial application",
			"function", fun.FID,
			"bound", given,
			"remaining", len(fun.Formals.Cells))
		return fun
	}

	env.Runtime.Logger.Debug("apply lambda",
		"function", fun.FID,
		"args", given)
	fun.Env.Parent = env
	fun.Env.Runtime = env.Runtime
	return fun.Env.Eval(SExpr(fun.Body.Cells))
}
