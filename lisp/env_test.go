package lisp

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvPutGet(t *testing.T) {
	global := NewEnv(nil)
	local := NewEnv(global)
	assert.Same(t, global.Runtime, local.Runtime)

	v := QExpr([]*LVal{Number(1)})
	global.Put(Symbol("x"), v)
	v.Cells[0] = Number(2)
	assert.Equal(t, "{1}", global.Get(Symbol("x")).String(), "put must copy")

	got := global.Get(Symbol("x"))
	got.Cells[0] = Number(3)
	assert.Equal(t, "{1}", global.Get(Symbol("x")).String(), "get must copy")

	assert.Equal(t, "{1}", local.Get(Symbol("x")).String())
	local.Put(Symbol("x"), Number(5))
	assert.Equal(t, "5", local.Get(Symbol("x")).String())
	assert.Equal(t, "{1}", global.Get(Symbol("x")).String())

	local.PutGlobal(Symbol("y"), Number(7))
	assert.Equal(t, "7", global.Get(Symbol("y")).String())
	assert.Equal(t, "7", local.GetGlobal(Symbol("y")).String())

	global.Put(Symbol("x"), Number(9))
	assert.Equal(t, []string{"x", "y"}, global.Names())

	lerr := local.Get(Symbol("nope"))
	assert.Equal(t, LError, lerr.Type)
	assert.Equal(t, "Unbound symbol! 'nope'", lerr.Str)

	local.Put(Number(1), Number(1))
	assert.Equal(t, []string{"x"}, local.Names())
}

func TestEnvCopy(t *testing.T) {
	global := NewEnv(nil)
	global.Put(Symbol("g"), Number(1))
	local := NewEnv(global)
	local.Put(Symbol("x"), QExpr([]*LVal{Number(1)}))

	cp := local.Copy()
	assert.Same(t, global, cp.Parent)
	assert.Same(t, local.Runtime, cp.Runtime)
	assert.Equal(t, local.ID, cp.ID)
	assert.Equal(t, []string{"x"}, cp.Names())

	cp.Put(Symbol("x"), Number(2))
	cp.Put(Symbol("y"), Number(3))
	assert.Equal(t, "{1}", local.Get(Symbol("x")).String())
	assert.Equal(t, "2", cp.Get(Symbol("x")).String())
	assert.Equal(t, []string{"x"}, local.Names())

	cp.Scope[0].Val.Num = 4
	assert.Equal(t, "{1}", local.Get(Symbol("x")).String())

	cp.PutGlobal(Symbol("g"), Number(5))
	assert.Equal(t, "5", local.Get(Symbol("g")).String())
	assert.Nil(t, (*LEnv)(nil).Copy())
}

func TestAddBuiltins(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()
	names := env.Names()
	require.Len(t, names, len(langBuiltins))
	assert.Equal(t, "get_env", names[len(names)-1])

	lis := env.Eval(SExpr([]*LVal{Symbol("get_env")}))
	require.Equal(t, LSExpr, lis.Type)
	assert.Equal(t, len(names)-1, lis.Len())
	assert.Equal(t, "list", lis.Cells[0].Str)
	assert.Equal(t, "debug-stack", lis.Cells[lis.Len()-1].Str)

	assert.Panics(t, func() { env.AddBuiltins() })
}

func TestEvalSExpr(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()

	v := env.Eval(SExpr([]*LVal{Symbol("+"), Number(1), Number(2)}))
	assert.Equal(t, "3", v.String())

	v = env.Eval(SExpr([]*LVal{SExpr([]*LVal{Number(4)})}))
	assert.Equal(t, "4", v.String())

	v = env.Eval(SExpr(nil))
	assert.Equal(t, "()", v.String())

	v = env.Eval(QExpr([]*LVal{Symbol("undefined")}))
	assert.Equal(t, "{undefined}", v.String())

	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestCall(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()
	add := Lambda(Formals("x", "y"), QExpr([]*LVal{Symbol("+"), Symbol("x"), Symbol("y")}))

	partial := env.Call(add, SExpr([]*LVal{Number(1)}))
	require.Equal(t, LFun, partial.Type)
	assert.Equal(t, `(\ {y} {+ x y})`, partial.String())
	assert.Equal(t, `(\ {x y} {+ x y})`, add.String())
	assert.Empty(t, add.Env.Scope)
	assert.Nil(t, partial.Env.Parent)
	assert.Nil(t, add.Env.Runtime)
	assert.Nil(t, partial.Env.Runtime)

	v := env.Call(partial, SExpr([]*LVal{Number(2)}))
	assert.Equal(t, "3", v.String())
	assert.Nil(t, partial.Env.Parent)

	v = env.Call(add, SExpr([]*LVal{Number(1), Number(2), Number(3)}))
	assert.Equal(t, "Function '<>' passed too many arguments! Got 3, expected 2", v.Str)

	variadic := Lambda(Formals(VarArgSymbol, "xs"), QExpr([]*LVal{Symbol("xs")}))
	v = env.Call(variadic, SExpr(nil))
	assert.Equal(t, "{}", v.String())
}

func TestEvalLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithLogger(logger), WithMaximumStackHeight(3))
	require.Equal(t, LSExpr, lerr.Type)

	add := Lambda(Formals("x", "y"), QExpr([]*LVal{Symbol("+"), Symbol("x"), Symbol("y")}))
	env.Put(Symbol("add"), add)
	env.Eval(SExpr([]*LVal{Symbol("add"), Number(1)}))
	assert.Contains(t, logs.String(), "partial application")
	env.Eval(SExpr([]*LVal{Symbol("add"), Number(1), Number(2)}))
	assert.Contains(t, logs.String(), "apply lambda")

	loop := Lambda(Formals("n"), QExpr([]*LVal{Symbol("loop"), Symbol("n")}))
	env.Put(Symbol("loop"), loop)
	v := env.Eval(SExpr([]*LVal{Symbol("loop"), Number(1)}))
	assert.Equal(t, "Stack overflow! Maximum call depth of 3 exceeded.", v.Str)
	assert.Contains(t, logs.String(), "call stack overflow")
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}

func TestInitializeUserEnv(t *testing.T) {
	var out bytes.Buffer
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithStdout(&out))
	require.Equal(t, LSExpr, lerr.Type)
	env.Eval(SExpr([]*LVal{Symbol("print"), Number(1)}))
	assert.Equal(t, "1\n", out.String())

	env = NewEnv(nil)
	lerr = InitializeUserEnv(env, WithMaximumStackHeight(-1))
	assert.Equal(t, LError, lerr.Type)

	env = NewEnv(nil)
	lerr = env.LoadString("test", "(+ 1 2)")
	assert.Equal(t, "no reader for environment runtime", lerr.Str)
}
