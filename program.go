package equation

import (
	"strconv"
	"strings"
)

// Operation is one of the seven evaluable operations in a compiled
// program.
type Operation int8

const (
	OpNeg Operation = iota + 1 // unary negation
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpSqrt
)

func (op Operation) String() string {
	switch op {
	case OpNeg:
		return "neg"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpSqrt:
		return "sqrt"
	}
	return "Operation(" + strconv.Itoa(int(op)) + ")"
}

// arity is the number of operands the operation pops.
func (op Operation) arity() int {
	switch op {
	case OpNeg, OpSqrt:
		return 1
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return 2
	}
	panic("equation: no arity for " + op.String())
}

// toOperation converts an operator token kind popped from the operator
// stack to the operation it evaluates as.
func toOperation(k tokenKind) Operation {
	switch k {
	case kindUnaryMinus:
		return OpNeg
	case kindAdd:
		return OpAdd
	case kindSub:
		return OpSub
	case kindMul:
		return OpMul
	case kindDiv:
		return OpDiv
	case kindPow:
		return OpPow
	case kindSqrt:
		return OpSqrt
	}
	panic("equation: " + k.String() + " is not an operation")
}

type instrKind int8

const (
	instrNone instrKind = iota
	instrNum            // push num
	instrVar            // push the value bound to name
	instrOp             // pop op's operands, push its result
)

// instr is one item of a compiled reverse Polish notation program.
type instr struct {
	kind instrKind
	op   Operation
	name string
	num  float64
}

// Expr is a compiled expression that can be evaluated with a context.
type Expr struct {
	// prog is the reverse Polish notation program.
	prog []instr
	// names is the sorted list of variable names used in the expression.
	names []string
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String renders the compiled program in postfix order, one space between
// items. "2 + 3 * 4" compiles to "2 3 4 * +".
func (e *Expr) String() string {
	var b strings.Builder
	for i, in := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch in.kind {
		case instrNum:
			b.WriteString(strconv.FormatFloat(in.num, 'g', -1, 64))
		case instrVar:
			b.WriteString(in.name)
		case instrOp:
			b.WriteString(in.op.String())
		default:
			b.WriteString("???")
		}
	}
	return b.String()
}
