package equation

import "fmt"

// Result is the outcome of calculating an expression. Value is meaningful
// only when OK is true; Message explains the failure when it is not.
type Result struct {
	// Message is the reason of failure, empty on success.
	Message string
	// Value is the calculated value.
	Value float64
	// OK is true if no issues happened, otherwise false.
	OK bool
}

// Parse compiles an expression so it can be evaluated with a context.
func Parse(src string) (*Expr, error) {
	return compile(scanTokens(src))
}

// Calculate compiles and evaluates an expression with no variable
// bindings. Every failure, including a violated internal invariant, is
// reported through the Result rather than an error or a panic.
func Calculate(src string) Result {
	return NewContext().Calculate(src)
}

// Calculate compiles and evaluates an expression with the context's
// variable bindings.
func (ctx *Context) Calculate(src string) (r Result) {
	defer func() {
		if v := recover(); v != nil {
			r = Result{Message: (&InternalError{Cause: fmt.Sprint(v)}).Error()}
		}
	}()
	e, err := Parse(src)
	if err != nil {
		return Result{Message: err.Error()}
	}
	v, err := ctx.Eval(e)
	if err != nil {
		return Result{Message: err.Error()}
	}
	return Result{Value: v, OK: true}
}
