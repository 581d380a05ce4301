package equation

import (
	"math"
	"strconv"
)

// Context is a context for evaluating expressions: a value stack plus
// variable bindings. The zero value is ready to use. It is not safe to use
// a Context concurrently; compiled expressions and the package lookup
// tables are.
type Context struct {
	stack []float64
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The copy
// shares no state with the original.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]float64, 0, cap(ctx.stack)),
		names: make(map[string]float64, len(ctx.names)),
	}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("equation: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether the context binds it.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Eval runs a compiled expression on the context's value stack and returns
// the result. Division by zero and variables the context does not bind are
// reported as errors; an expression evaluated without error leaves exactly
// one value on the stack, which is the result.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	ctx.stack = ctx.stack[:0]
	for _, in := range e.prog {
		switch in.kind {
		case instrNum:
			ctx.push(in.num)
		case instrVar:
			v, ok := ctx.names[in.name]
			if !ok {
				return 0, &NameError{Name: in.name}
			}
			ctx.push(v)
		case instrOp:
			if err := ctx.apply(in.op); err != nil {
				return 0, err
			}
		default:
			panic("equation: invalid instruction in compiled program")
		}
	}
	if len(ctx.stack) != 1 {
		return 0, &InternalError{Cause: "value stack holds " + strconv.Itoa(len(ctx.stack)) + " values after evaluation"}
	}
	return ctx.stack[0], nil
}

// apply pops an operation's operands and pushes its result. For binary
// operations the first value popped is the right-hand operand: with
// "5 3 -" on the program, 3 is popped first and the result is 5 - 3.
func (ctx *Context) apply(op Operation) error {
	if len(ctx.stack) < op.arity() {
		return &UnderflowError{Op: op}
	}
	switch op {
	case OpNeg:
		ctx.push(-ctx.pop())
	case OpSqrt:
		ctx.push(math.Sqrt(ctx.pop()))
	case OpAdd:
		r, l := ctx.pop(), ctx.pop()
		ctx.push(l + r)
	case OpSub:
		r, l := ctx.pop(), ctx.pop()
		ctx.push(l - r)
	case OpMul:
		r, l := ctx.pop(), ctx.pop()
		ctx.push(l * r)
	case OpDiv:
		r, l := ctx.pop(), ctx.pop()
		if r == 0 {
			return &DivisionByZeroError{}
		}
		ctx.push(l / r)
	case OpPow:
		r, l := ctx.pop(), ctx.pop()
		ctx.push(math.Pow(l, r))
	default:
		panic("equation: invalid operation " + op.String())
	}
	return nil
}

func (ctx *Context) push(v float64) {
	ctx.stack = append(ctx.stack, v)
}

func (ctx *Context) pop() float64 {
	v := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return v
}
