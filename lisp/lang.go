package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// LambdaSymbol is the name of the builtin which constructs functions.
const LambdaSymbol = `\`
