package lisp

// Error message formats.  The text of these messages is part of the language's
// observable behavior.
const (
	errTooManyArguments = "Function '%s' passed too many arguments! Got %d, expected %d"
	errWrongType        = "Function '%s' passed incorrect type for argument %d! Got %s, expected %s"
	errEmptyList        = "Function '%s' passed {}!"
	errArgType          = "Function '%s' passed incorrect type for argument %d. Got %s, Expected %s."
	errArgNum           = "Function '%s' passed incorrect number of arguments. Got %d, Expected %d."
	errDefineNonSymbol  = "Function '%s' cannot define non-symbol. Got %s, Expected %s."
	errDefineCount      = "Function '%s' passed too many arguments for symbols. Got %d, Expected %d."
	errLambdaNonSymbol  = "Cannot define non-symbol. Got %s, expected %s"
	errNonNumber        = "Cannot operate on non-number!"
	errDivZero          = "Division By Zero!"
	errVarArgFormat     = "Function format invalid. Symbol '&' not followed by single symbol."
	errUnboundSymbol    = "Unbound symbol! '%s'"
	errNotAFunction     = "first element is not a function!"
	errInvalidNumber    = "invalid number"
	errStackOverflow    = "Stack overflow! Maximum call depth of %d exceeded."
)

// ErrorVal implements the error interface so that lisp errors can be returned
// to Go code.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Str
}

// GoError returns an error that represents v.  If v is not LError then nil is
// returned.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
