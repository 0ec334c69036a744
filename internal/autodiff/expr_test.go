package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revgrad-ml/revgrad/internal/autodiff"
)

// evalAt compiles e on a tape with one variable bound to x and returns the
// forward value.
func evalAt(t *testing.T, build func(sym *autodiff.Expr) *autodiff.Expr, x float64) float64 {
	t.Helper()
	tape := autodiff.NewTape()
	sym := autodiff.Symbol(tape.Var(x))
	tape.Compile(build(sym))
	return tape.Forward()
}

// TestExpr_CompositionTable exercises every operand-shape combination of
// the composition API against direct arithmetic.
func TestExpr_CompositionTable(t *testing.T) {
	x := 2.0
	tests := []struct {
		name  string
		build func(sym *autodiff.Expr) *autodiff.Expr
		want  float64
	}{
		{"add_expr", func(s *autodiff.Expr) *autodiff.Expr { return s.Add(s) }, x + x},
		{"sub_expr", func(s *autodiff.Expr) *autodiff.Expr { return s.Sub(s) }, 0},
		{"mul_expr", func(s *autodiff.Expr) *autodiff.Expr { return s.Mul(s) }, x * x},
		{"div_expr", func(s *autodiff.Expr) *autodiff.Expr { return s.Div(s) }, 1},
		{"pow_expr", func(s *autodiff.Expr) *autodiff.Expr { return s.Pow(s) }, math.Pow(x, x)},

		{"add_const", func(s *autodiff.Expr) *autodiff.Expr { return s.AddConst(3) }, x + 3},
		{"sub_const", func(s *autodiff.Expr) *autodiff.Expr { return s.SubConst(3) }, x - 3},
		{"mul_const", func(s *autodiff.Expr) *autodiff.Expr { return s.MulConst(3) }, 3 * x},
		{"div_const", func(s *autodiff.Expr) *autodiff.Expr { return s.DivConst(4) }, x / 4},
		{"powf", func(s *autodiff.Expr) *autodiff.Expr { return s.Powf(0.5) }, math.Sqrt(x)},
		{"powi", func(s *autodiff.Expr) *autodiff.Expr { return s.Powi(3) }, x * x * x},
		{"powi_negative", func(s *autodiff.Expr) *autodiff.Expr { return s.Powi(-2) }, 1 / (x * x)},

		{"const_add", func(s *autodiff.Expr) *autodiff.Expr { return autodiff.ConstAdd(3, s) }, 3 + x},
		{"const_sub", func(s *autodiff.Expr) *autodiff.Expr { return autodiff.ConstSub(3, s) }, 3 - x},
		{"const_mul", func(s *autodiff.Expr) *autodiff.Expr { return autodiff.ConstMul(3, s) }, 3 * x},
		// ConstDiv lowers to the bare reciprocal of its expression operand.
		{"const_div", func(s *autodiff.Expr) *autodiff.Expr { return autodiff.ConstDiv(1, s) }, 1 / x},

		{"neg", func(s *autodiff.Expr) *autodiff.Expr { return s.Neg() }, -x},
		{"recip", func(s *autodiff.Expr) *autodiff.Expr { return s.Recip() }, 1 / x},
		{"exp", func(s *autodiff.Expr) *autodiff.Expr { return s.Exp() }, math.Exp(x)},
		{"ln", func(s *autodiff.Expr) *autodiff.Expr { return s.Ln() }, math.Log(x)},
		{"sin", func(s *autodiff.Expr) *autodiff.Expr { return s.Sin() }, math.Sin(x)},
		{"cos", func(s *autodiff.Expr) *autodiff.Expr { return s.Cos() }, math.Cos(x)},
		{"tan", func(s *autodiff.Expr) *autodiff.Expr { return s.Tan() }, math.Tan(x)},
		{"sinh", func(s *autodiff.Expr) *autodiff.Expr { return s.Sinh() }, math.Sinh(x)},
		{"cosh", func(s *autodiff.Expr) *autodiff.Expr { return s.Cosh() }, math.Cosh(x)},
		{"tanh", func(s *autodiff.Expr) *autodiff.Expr { return s.Tanh() }, math.Tanh(x)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, evalAt(t, tt.build, x), 1e-12)
		})
	}
}

// TestCompile_SymbolResolvesInPlace: a Symbol leaf lowers to the index it
// names without creating a node.
func TestCompile_SymbolResolvesInPlace(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(1.0)

	root := tape.Compile(autodiff.Symbol(x))
	assert.Equal(t, x, root)
	assert.Equal(t, 1, tape.Len())
}

// TestCompile_NoDeduplication: structurally equal sub-trees lower into
// independent node chains; only shared Symbol leaves join their gradients.
func TestCompile_NoDeduplication(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(2.0)
	sym := autodiff.Symbol(x)

	// sin(x) built twice: two separate Sin nodes on the tape.
	tape.Compile(sym.Sin().Add(sym.Sin()))
	assert.Equal(t, 4, tape.Len()) // var + sin + sin + add

	tape.Forward()
	tape.Backward()
	// Both chains bottom out at the same variable, so contributions sum.
	assert.InDelta(t, 2*math.Cos(2), tape.Gradient(x), 1e-12)
}

// TestCompile_SharedSymbol: reusing one Symbol as both operands triggers
// gradient accumulation through a single node chain.
func TestCompile_SharedSymbol(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(3.0)
	sym := autodiff.Symbol(x)

	tape.Compile(sym.Mul(sym))
	assert.Equal(t, 2, tape.Len()) // var + mul

	assert.InDelta(t, 9.0, tape.Forward(), 1e-12)
	tape.Backward()
	assert.InDelta(t, 6.0, tape.Gradient(x), 1e-12)
}

// TestScenario_SquarePlusTwo: f(x) = 2 + x*x at x = 3.
func TestScenario_SquarePlusTwo(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(3.0)
	sym := autodiff.Symbol(x)

	tape.Compile(autodiff.ConstAdd(2.0, sym.Mul(sym)))

	assert.InDelta(t, 11.0, tape.Forward(), 1e-12)
	tape.Backward()
	assert.InDelta(t, 6.0, tape.Gradient(x), 1e-12)
}

// TestScenario_SinTimesY: f(x, y) = sin(x)*y at x = 0, y = 5.
func TestScenario_SinTimesY(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(0.0)
	y := tape.Var(5.0)

	tape.Compile(autodiff.Symbol(x).Sin().Mul(autodiff.Symbol(y)))

	assert.InDelta(t, 0.0, tape.Forward(), 1e-12)
	tape.Backward()
	assert.InDelta(t, 5.0, tape.Gradient(x), 1e-12)
	assert.InDelta(t, 0.0, tape.Gradient(y), 1e-12)
}

// TestScenario_Recip: f(x) = 1/x at x = 2.
func TestScenario_Recip(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(2.0)

	tape.Compile(autodiff.Symbol(x).Recip())

	assert.InDelta(t, 0.5, tape.Forward(), 1e-12)
	tape.Backward()
	assert.InDelta(t, -0.25, tape.Gradient(x), 1e-12)
}

// TestBackward_NegScalesByOperand: negation propagates -g times the
// operand's value.
func TestBackward_NegScalesByOperand(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(2.0)

	tape.Compile(autodiff.Symbol(x).Neg())
	assert.InDelta(t, -2.0, tape.Forward(), 1e-12)

	tape.Backward()
	assert.InDelta(t, -2.0, tape.Gradient(x), 1e-12)
}

// TestBackward_PowExponent: the exponent partial of l^r is ln(l)*l^(r-1).
func TestBackward_PowExponent(t *testing.T) {
	tape := autodiff.NewTape()
	l := tape.Var(2.0)
	r := tape.Var(3.0)

	tape.Compile(autodiff.Symbol(l).Pow(autodiff.Symbol(r)))
	assert.InDelta(t, 8.0, tape.Forward(), 1e-12)

	tape.Backward()
	assert.InDelta(t, 3*math.Pow(2, 2), tape.Gradient(l), 1e-12)
	assert.InDelta(t, math.Log(2)*math.Pow(2, 2), tape.Gradient(r), 1e-12)
}

// TestExpr_DeepChain: traversal depth is not bounded by the call stack.
func TestExpr_DeepChain(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(0.5)

	// 100k chained nodes: f(x) = x + 1 + 1 + ... + 1
	e := autodiff.Symbol(x)
	const depth = 100_000
	for i := 0; i < depth; i++ {
		e = e.AddConst(1.0)
	}
	tape.Compile(e)

	assert.InDelta(t, 0.5+depth, tape.Forward(), 1e-9)
	tape.Backward()
	assert.InDelta(t, 1.0, tape.Gradient(x), 1e-12)
}
