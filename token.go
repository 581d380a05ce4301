package equation

import "strconv"

// tokenKind is the semantic classification of a raw token.
type tokenKind int8

const (
	// kindUndefined never classifies a real token. It is the state of
	// "previous token" before the first token of an expression.
	kindUndefined tokenKind = iota
	kindNumber
	kindVariable
	kindOpen
	kindClose
	kindUnaryMinus
	kindAdd
	kindSub
	kindMul
	kindDiv
	kindPow
	kindSqrt

	nKinds = int(kindSqrt) + 1
)

func (k tokenKind) String() string {
	switch k {
	case kindUndefined:
		return "undefined"
	case kindNumber:
		return "number"
	case kindVariable:
		return "variable"
	case kindOpen:
		return "open parenthesis"
	case kindClose:
		return "close parenthesis"
	case kindUnaryMinus:
		return "unary minus '-'"
	case kindAdd:
		return "addition sign '+'"
	case kindSub:
		return "subtraction sign '-'"
	case kindMul:
		return "multiplication sign '*'"
	case kindDiv:
		return "division sign '/'"
	case kindPow:
		return "power sign '^'"
	case kindSqrt:
		return "sqrt function"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// describe names a classified token for error messages, quoting the
// original text where the kind alone is ambiguous.
func describe(k tokenKind, text string) string {
	switch k {
	case kindNumber, kindVariable:
		return k.String() + " " + text
	default:
		return k.String()
	}
}

// keywords maps the fixed keyword and symbol set to kinds. Classification
// of everything else is by numeric parse, falling back to variable.
var keywords = map[string]tokenKind{
	"(":    kindOpen,
	")":    kindClose,
	"+":    kindAdd,
	"-":    kindSub,
	"*":    kindMul,
	"/":    kindDiv,
	"^":    kindPow,
	"sqrt": kindSqrt,
}

// classify maps a raw token to its kind and, for numbers, its value. A
// token is a number only if the whole of it parses as one; "2x" is a
// variable, not a truncated 2.
func classify(text string) (tokenKind, float64) {
	if k, ok := keywords[text]; ok {
		return k, 0
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return kindNumber, n
	}
	return kindVariable, 0
}

// kindSet is a set of token kinds.
type kindSet uint16

func kinds(ks ...tokenKind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k tokenKind) bool {
	return s&(1<<k) != 0
}

// follows maps a previous token kind to the set of kinds allowed to come
// after it. kindUndefined as the previous kind means the current token is
// the first in the expression. The table is built once and never mutated,
// so it is safe to share across concurrent compilations.
//
//	previous                     | permitted next
//	-----------------------------+-----------------------------------------
//	number, variable, )          | + - * / ^ )
//	unary -, + - * / ^           | number, variable, sqrt, (, unary -
//	undefined, (                 | number, variable, sqrt, (, unary -
//	sqrt                         | (
var follows = func() [nKinds]kindSet {
	var t [nKinds]kindSet
	afterOperand := kinds(kindAdd, kindSub, kindMul, kindDiv, kindPow, kindClose)
	afterOperator := kinds(kindNumber, kindVariable, kindSqrt, kindOpen, kindUnaryMinus)
	atOpening := kinds(kindNumber, kindVariable, kindSqrt, kindOpen, kindUnaryMinus)
	for _, k := range []tokenKind{kindNumber, kindVariable, kindClose} {
		t[k] = afterOperand
	}
	for _, k := range []tokenKind{kindUnaryMinus, kindAdd, kindSub, kindMul, kindDiv, kindPow} {
		t[k] = afterOperator
	}
	for _, k := range []tokenKind{kindUndefined, kindOpen} {
		t[k] = atOpening
	}
	t[kindSqrt] = kinds(kindOpen)
	return t
}()

// priority returns the binding strength of an operator or parenthesis
// kind. Higher binds tighter and is popped from the operator stack first.
// Parentheses are 0 so that nothing pops past an open parenthesis.
func priority(k tokenKind) int8 {
	switch k {
	case kindOpen, kindClose:
		return 0
	case kindAdd, kindSub:
		return 1
	case kindMul, kindDiv:
		return 2
	case kindPow:
		return 3
	case kindUnaryMinus:
		return 4
	case kindSqrt:
		return 5
	}
	panic("equation: no priority for " + k.String())
}
