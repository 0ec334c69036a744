package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRules_Forward checks each operator's forward formula in isolation.
func TestRules_Forward(t *testing.T) {
	tests := []struct {
		kind Kind
		a, b float64
		want float64
	}{
		{Add, 2, 3, 5},
		{Sub, 2, 3, -1},
		{Mul, 2, 3, 6},
		{Div, 3, 2, 1.5},
		{Pow, 2, 3, 8},
		{Addf, 3, 2, 5},   // const 2 + operand 3
		{Subf, 3, 2, 1},   // operand 3 - const 2
		{Mulf, 3, 2, 6},   // const 2 * operand 3
		{Powf, 2, 3, 8},   // operand 2 ^ const 3
		{Powi, 2, 3, 8},   // operand 2 ^ int 3
		{Powi, 2, -2, 0.25},
		{Neg, 2, 0, -2},
		{Recip, 4, 0, 0.25},
		{Exp, 1, 0, math.E},
		{Ln, math.E, 0, 1},
		{Sin, math.Pi / 2, 0, 1},
		{Cos, 0, 0, 1},
		{Tan, 0, 0, 0},
		{Sinh, 0, 0, 0},
		{Cosh, 0, 0, 1},
		{Tanh, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := Lookup(tt.kind).Eval(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

// TestRules_Backward checks each operator's partial derivatives in isolation
// with upstream gradient g.
func TestRules_Backward(t *testing.T) {
	g := 2.0
	tests := []struct {
		kind   Kind
		a, b   float64
		wantDA float64
		wantDB float64
	}{
		{Add, 2, 3, g, g},
		{Sub, 2, 3, g, -g},
		{Mul, 2, 3, 3 * g, 2 * g},
		{Div, 3, 2, g / 2, -g * 3 / 4},
		// Pow's exponent partial is ln(a)*a^(b-1)*g.
		{Pow, 2, 3, 3 * 4 * g, math.Log(2) * 4 * g},
		{Addf, 3, 2, g, 0},
		{Subf, 3, 2, g, 0},
		{Mulf, 3, 2, 2 * g, 0},
		{Powf, 2, 3, 3 * 4 * g, 0},
		{Powi, 2, 3, 3 * 4 * g, 0},
		// Neg scales the upstream gradient by the operand value.
		{Neg, 3, 0, -g * 3, 0},
		{Recip, 2, 0, -g / 4, 0},
		{Exp, 1, 0, math.E * g, 0},
		{Ln, 4, 0, g / 4, 0},
		{Sin, 1, 0, math.Cos(1) * g, 0},
		{Cos, 1, 0, -math.Sin(1) * g, 0},
		{Tan, 1, 0, (1 + math.Tan(1)*math.Tan(1)) * g, 0},
		{Sinh, 1, 0, math.Cosh(1) * g, 0},
		{Cosh, 1, 0, math.Sinh(1) * g, 0},
		{Tanh, 1, 0, (1 - math.Tanh(1)*math.Tanh(1)) * g, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			da, db := Lookup(tt.kind).Diff(tt.a, tt.b, g)
			assert.InDelta(t, tt.wantDA, da, 1e-12)
			assert.InDelta(t, tt.wantDB, db, 1e-12)
		})
	}
}

// TestPowInt matches math.Pow for integer exponents.
func TestPowInt(t *testing.T) {
	for _, x := range []float64{-2.5, -1, 0.5, 1, 3} {
		for n := -6; n <= 6; n++ {
			got := PowInt(x, n)
			want := math.Pow(x, float64(n))
			assert.InDelta(t, want, got, math.Abs(want)*1e-12+1e-15,
				"x=%v n=%d", x, n)
		}
	}
}

// TestKind_String names every operator.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "var", Var.String())
	assert.Equal(t, "pow", Pow.String())
	assert.Equal(t, "tanh", Tanh.String())
	assert.Equal(t, "unknown", Kind(200).String())
}
