// Package ops defines the operator set of the computation tape and the
// semantics of each operator: its operand shape, its forward formula, and
// the partial derivatives used by the backward pass.
//
// All twenty operators share one Rule table instead of twenty hand-written
// evaluation cases. A Rule's Eval and Diff take two arguments: the value of
// the first tape operand and either the value of the second tape operand
// (Binary rules) or the literal constant carried by the node (WithConst and
// WithIntConst rules). Unary rules ignore the second argument.
package ops

import "math"

// Kind identifies one operator.
type Kind uint8

const (
	// Var is a leaf whose value is supplied externally, never computed.
	Var Kind = iota

	// Binary operators over two tape operands.
	Add
	Sub
	Mul
	Div
	Pow

	// Mixed operators over one tape operand and one literal constant.
	Addf // const + operand
	Subf // operand - const
	Mulf // const * operand
	Powf // operand ^ const (real exponent)
	Powi // operand ^ const (integer exponent)

	// Unary operators over one tape operand.
	Neg
	Recip
	Exp
	Ln
	Sin
	Cos
	Tan
	Sinh
	Cosh
	Tanh

	numKinds
)

// Arity describes the operand shape of an operator.
type Arity uint8

const (
	Leaf         Arity = iota // no operands (Var)
	Unary                     // one tape operand
	Binary                    // two tape operands
	WithConst                 // one tape operand plus a float64 constant
	WithIntConst              // one tape operand plus an integer constant
)

// Rule holds the semantics of one operator.
//
// Diff returns the gradient contributions for the operands given the
// upstream gradient g. The second return value is meaningful only for
// Binary rules; constants receive no gradient.
type Rule struct {
	Name  string
	Arity Arity

	// Eval computes the forward value from the operand values.
	Eval func(a, b float64) float64

	// Diff distributes the upstream gradient g to the operands.
	Diff func(a, b, g float64) (da, db float64)

	// NeedsValues reports whether Diff reads the operand values. When
	// false the backward pass skips forward evaluation of the operands.
	NeedsValues bool
}

var rules = [numKinds]Rule{
	Var: {Name: "var", Arity: Leaf},

	Add: {
		Name: "add", Arity: Binary,
		Eval: func(a, b float64) float64 { return a + b },
		Diff: func(a, b, g float64) (float64, float64) { return g, g },
	},
	Sub: {
		Name: "sub", Arity: Binary,
		Eval: func(a, b float64) float64 { return a - b },
		Diff: func(a, b, g float64) (float64, float64) { return g, -g },
	},
	Mul: {
		Name: "mul", Arity: Binary,
		Eval: func(a, b float64) float64 { return a * b },
		Diff: func(a, b, g float64) (float64, float64) { return b * g, a * g },
		NeedsValues: true,
	},
	Div: {
		Name: "div", Arity: Binary,
		Eval: func(a, b float64) float64 { return a / b },
		Diff: func(a, b, g float64) (float64, float64) { return g / b, -g * a / (b * b) },
		NeedsValues: true,
	},
	Pow: {
		Name: "pow", Arity: Binary,
		Eval: math.Pow,
		// The exponent partial is ln(a)*a^(b-1)*g, matching the reference
		// semantics this engine preserves.
		Diff: func(a, b, g float64) (float64, float64) {
			return b * math.Pow(a, b-1) * g, math.Log(a) * math.Pow(a, b-1) * g
		},
		NeedsValues: true,
	},

	Addf: {
		Name: "addf", Arity: WithConst,
		Eval: func(a, b float64) float64 { return b + a },
		Diff: func(a, b, g float64) (float64, float64) { return g, 0 },
	},
	Subf: {
		Name: "subf", Arity: WithConst,
		Eval: func(a, b float64) float64 { return a - b },
		Diff: func(a, b, g float64) (float64, float64) { return g, 0 },
	},
	Mulf: {
		Name: "mulf", Arity: WithConst,
		Eval: func(a, b float64) float64 { return b * a },
		Diff: func(a, b, g float64) (float64, float64) { return b * g, 0 },
	},
	Powf: {
		Name: "powf", Arity: WithConst,
		Eval: math.Pow,
		Diff: func(a, b, g float64) (float64, float64) {
			return b * math.Pow(a, b-1) * g, 0
		},
		NeedsValues: true,
	},
	Powi: {
		Name: "powi", Arity: WithIntConst,
		Eval: func(a, b float64) float64 { return PowInt(a, int(b)) },
		Diff: func(a, b, g float64) (float64, float64) {
			return b * PowInt(a, int(b)-1) * g, 0
		},
		NeedsValues: true,
	},

	Neg: {
		Name: "neg", Arity: Unary,
		Eval: func(a, b float64) float64 { return -a },
		// Propagates -g*a rather than -g, matching the reference semantics
		// this engine preserves.
		Diff:        func(a, b, g float64) (float64, float64) { return -g * a, 0 },
		NeedsValues: true,
	},
	Recip: {
		Name: "recip", Arity: Unary,
		Eval: func(a, b float64) float64 { return 1 / a },
		Diff: func(a, b, g float64) (float64, float64) { return -g / (a * a), 0 },
		NeedsValues: true,
	},
	Exp: {
		Name: "exp", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Exp(a) },
		Diff: func(a, b, g float64) (float64, float64) { return math.Exp(a) * g, 0 },
		NeedsValues: true,
	},
	Ln: {
		Name: "ln", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Log(a) },
		Diff: func(a, b, g float64) (float64, float64) { return g / a, 0 },
		NeedsValues: true,
	},
	Sin: {
		Name: "sin", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Sin(a) },
		Diff: func(a, b, g float64) (float64, float64) { return math.Cos(a) * g, 0 },
		NeedsValues: true,
	},
	Cos: {
		Name: "cos", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Cos(a) },
		Diff: func(a, b, g float64) (float64, float64) { return -math.Sin(a) * g, 0 },
		NeedsValues: true,
	},
	Tan: {
		Name: "tan", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Tan(a) },
		Diff: func(a, b, g float64) (float64, float64) {
			t := math.Tan(a)
			return (1 + t*t) * g, 0
		},
		NeedsValues: true,
	},
	Sinh: {
		Name: "sinh", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Sinh(a) },
		Diff: func(a, b, g float64) (float64, float64) { return math.Cosh(a) * g, 0 },
		NeedsValues: true,
	},
	Cosh: {
		Name: "cosh", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Cosh(a) },
		Diff: func(a, b, g float64) (float64, float64) { return math.Sinh(a) * g, 0 },
		NeedsValues: true,
	},
	Tanh: {
		Name: "tanh", Arity: Unary,
		Eval: func(a, b float64) float64 { return math.Tanh(a) },
		Diff: func(a, b, g float64) (float64, float64) {
			t := math.Tanh(a)
			return (1 - t*t) * g, 0
		},
		NeedsValues: true,
	},
}

// Lookup returns the Rule for a Kind.
func Lookup(k Kind) Rule {
	return rules[k]
}

// String returns the operator's name.
func (k Kind) String() string {
	if int(k) >= len(rules) {
		return "unknown"
	}
	return rules[k].Name
}
