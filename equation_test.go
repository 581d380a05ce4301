package equation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	equation "github.com/rvr313/OTUS-Calculator"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
		want float64
		msg  string
	}{
		{"precedence", "2 + 3 * 4", true, 14, ""},
		{"grouping", "(2 + 3) * 4", true, 20, ""},
		{"power-left-assoc", "2 ^ 3 ^ 2", true, 64, ""},
		{"neg-first", "-3 + 5", true, 2, ""},
		{"neg-after-sub", "3 - -5", true, 8, ""},
		{"sqrt", "sqrt(16)", true, 4, ""},
		{"sqrt-expr", "sqrt(2+2)", true, 2, ""},
		{"extra-open", "(2 + 3", false, 0, "extra open parenthesis"},
		{"extra-close", "2 + 3)", false, 0, "extra close parenthesis"},
		{"empty", "", false, 0, "does not contain any operands"},
		{"whitespace", " \t ", false, 0, "does not contain any operands"},
		{"div-zero", "5 / 0", false, 0, "division by zero"},
		{"op-first", "+ 2", false, 0, "cannot be the first in an expression"},
		{"num-after-num", "2 3", false, 0, "cannot be after the number 2"},
		{"trailing-op", "2 +", false, 0, "malformed expression"},
		{"unbound-var", "x + 1", false, 0, `undefined variable: "x"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := equation.Calculate(c.src)
			assert.Equal(t, c.ok, r.OK)
			assert.Equal(t, c.want, r.Value)
			if c.msg == "" {
				assert.Empty(t, r.Message)
			} else {
				assert.Contains(t, r.Message, c.msg)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	// Re-running any expression, failing or not, gives the identical
	// result: no state survives a call.
	srcs := []string{"2 + 3 * 4", "5 / 0", "(2 + 3", "", "x", "2 +"}
	for _, src := range srcs {
		first := equation.Calculate(src)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, equation.Calculate(src), "calculating %q", src)
		}
	}
}

func TestCalculateWithBindings(t *testing.T) {
	ctx := equation.NewContext(equation.SetVars(map[string]float64{"x": 3, "y": 4}))
	r := ctx.Calculate("sqrt(x^2 + y^2)")
	require.True(t, r.OK, r.Message)
	assert.Equal(t, 5.0, r.Value)

	// A binding does not leak into the plain entry point.
	r = equation.Calculate("sqrt(x^2 + y^2)")
	assert.False(t, r.OK)
	assert.Contains(t, r.Message, "undefined variable")
}

func ExampleCalculate() {
	for _, src := range []string{"2 + 3 * 4", "2 ^ 3 ^ 2", "5 / 0"} {
		r := equation.Calculate(src)
		if !r.OK {
			fmt.Println(src, "->", r.Message)
			continue
		}
		fmt.Println(src, "->", r.Value)
	}
	// Output:
	// 2 + 3 * 4 -> 14
	// 2 ^ 3 ^ 2 -> 64
	// 5 / 0 -> division by zero
}

func ExampleContext_Eval() {
	e, err := equation.Parse("x^3/2 - x")
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := equation.NewContext()
	for i := 0.0; i < 4; i++ {
		y, err := ctx.Set("x", i).Eval(e)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("x = %g   y = %g\n", i, y)
	}
	// Output:
	// x = 0   y = 0
	// x = 1   y = -0.5
	// x = 2   y = 2
	// x = 3   y = 10.5
}
