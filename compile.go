package equation

// compile converts a scanned token sequence to a reverse Polish notation
// program using the shunting-yard algorithm, validating the order of
// tokens as it goes. Every operator, including ^, is treated as
// left-associative: the operator stack is popped while its top has
// priority greater than or equal to the incoming operator's.
func compile(tokens []rawToken) (*Expr, error) {
	var (
		prog     []instr
		ops      []tokenKind
		prev     rawToken
		prevKind = kindUndefined
		operands int
		names    map[string]bool
	)
	for _, tok := range tokens {
		kind, num := classify(tok.text)
		// A minus is binary subtraction only after a completed operand;
		// anywhere else it negates. "3 - -5" is 3 - (-5).
		if kind == kindSub {
			switch prevKind {
			case kindNumber, kindVariable, kindClose:
				// binary subtraction
			default:
				kind = kindUnaryMinus
			}
		}
		if !follows[prevKind].has(kind) {
			return nil, &TokenOrderError{
				Col:   tok.pos,
				Prev:  describe(prevKind, prev.text),
				Curr:  describe(kind, tok.text),
				First: prevKind == kindUndefined,
			}
		}
		switch kind {
		case kindNumber:
			prog = append(prog, instr{kind: instrNum, num: num})
			operands++
		case kindVariable:
			prog = append(prog, instr{kind: instrVar, name: tok.text})
			if names == nil {
				names = make(map[string]bool)
			}
			names[tok.text] = true
			operands++
		case kindOpen, kindSqrt:
			ops = append(ops, kind)
		case kindClose:
			for {
				if len(ops) == 0 {
					return nil, &ParenError{Col: tok.pos}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == kindOpen {
					break
				}
				prog = append(prog, instr{kind: instrOp, op: toOperation(top)})
			}
		case kindUnaryMinus:
			// Prefix operators take no pending operations off the
			// stack: in "- -5" the outer minus waits for the inner one
			// to produce its operand.
			ops = append(ops, kind)
		case kindAdd, kindSub, kindMul, kindDiv, kindPow:
			for len(ops) > 0 && priority(ops[len(ops)-1]) >= priority(kind) {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				prog = append(prog, instr{kind: instrOp, op: toOperation(top)})
			}
			ops = append(ops, kind)
		default:
			panic("equation: compiling token of kind " + kind.String())
		}
		prevKind, prev = kind, tok
	}
	if operands == 0 {
		return nil, &NoOperandsError{}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == kindOpen {
			return nil, &ParenError{Col: prev.pos, Open: true}
		}
		prog = append(prog, instr{kind: instrOp, op: toOperation(top)})
	}
	e := Expr{
		prog:  prog,
		names: make([]string, 0, len(names)),
	}
	for k := range names {
		e.names = append(e.names, k)
	}
	sortstrs(e.names)
	if len(e.names) == 0 {
		e.names = nil
	}
	return &e, nil
}

// sortstrs sorts a short string slice in place; expressions rarely use
// more than a handful of variables.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
