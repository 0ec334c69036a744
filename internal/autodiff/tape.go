// Package autodiff implements reverse-mode automatic differentiation over a
// computation tape of scalar operations.
//
// A Tape owns an append-only sequence of operation nodes with parallel
// cached-value and accumulated-gradient buffers. A function is described as
// an immutable Expr tree over symbolic variable references, compiled onto
// the tape in dependency order, then evaluated: Forward memoizes the scalar
// result, Backward seeds gradient 1.0 at the compiled root and accumulates
// contributions into every variable slot.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Var(3.0)
//	sym := autodiff.Symbol(x)
//	tape.Compile(sym.Mul(sym).AddConst(2.0)) // f(x) = x*x + 2
//	y := tape.Forward()                      // 11.0
//	tape.Backward()
//	dx := tape.Gradient(x)                   // 6.0
//
// The Reset → BindAll → Forward → Backward → Gradients cycle reuses one
// compiled tape across many input bindings with zero allocation, which is
// the intended hot path for iterative optimization (see GradientCached).
package autodiff

import (
	"fmt"

	"github.com/revgrad-ml/revgrad/internal/autodiff/ops"
)

// Tape is the computation graph: nodes plus parallel value and gradient
// buffers indexed by the same tape index.
//
// A Tape is exclusively owned by one caller at a time; Forward and Backward
// mutate the cached buffers in place, so concurrent use requires a private
// Tape per goroutine.
type Tape struct {
	nodes  []Node
	values []float64
	known  []bool
	grads  []float64
	vars   []int // tape indices of declared variables, in declaration order
	root   int   // compiled root, -1 until Compile
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes:  make([]Node, 0, 64),
		values: make([]float64, 0, 64),
		known:  make([]bool, 0, 64),
		grads:  make([]float64, 0, 64),
		root:   -1,
	}
}

// push appends one node with an unknown value slot and a zero gradient
// slot, returning its tape index.
func (t *Tape) push(n Node) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, n)
	t.values = append(t.values, 0)
	t.known = append(t.known, false)
	t.grads = append(t.grads, 0)
	return index
}

// checkIndex panics when an operand index has not been produced by an
// earlier constructor call on this tape. Referencing a nonexistent index is
// a programming error, not a recoverable condition.
func (t *Tape) checkIndex(index int) {
	if index < 0 || index >= len(t.nodes) {
		panic(fmt.Sprintf("autodiff: operand index %d out of range [0, %d)", index, len(t.nodes)))
	}
}

// Var appends a bound leaf and registers it as a declared variable.
// The returned index is stable for the lifetime of the tape.
func (t *Tape) Var(value float64) int {
	index := t.push(Node{Kind: ops.Var, X: len(t.nodes)})
	t.values[index] = value
	t.known[index] = true
	t.vars = append(t.vars, index)
	return index
}

// DeclareVars appends n unbound leaves whose values are supplied later via
// Bind or BindAll.
func (t *Tape) DeclareVars(n int) {
	for i := 0; i < n; i++ {
		index := t.push(Node{Kind: ops.Var, X: len(t.nodes)})
		t.vars = append(t.vars, index)
	}
}

// VarIndex translates declaration order to tape index.
func (t *Tape) VarIndex(order int) int {
	return t.vars[order]
}

// VarIndices returns the tape indices of all declared variables in
// declaration order.
func (t *Tape) VarIndices() []int {
	out := make([]int, len(t.vars))
	copy(out, t.vars)
	return out
}

// NumVars returns the number of declared variables.
func (t *Tape) NumVars() int {
	return len(t.vars)
}

// Len returns the number of nodes on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Bind writes a concrete value into a variable slot.
func (t *Tape) Bind(index int, value float64) {
	t.checkIndex(index)
	if t.nodes[index].Kind != ops.Var {
		panic(fmt.Sprintf("autodiff: index %d is not a variable", index))
	}
	t.values[index] = value
	t.known[index] = true
}

// BindAll writes values into the declared variable slots in declaration
// order. Supplying more values than declared variables is a contract
// violation.
func (t *Tape) BindAll(values []float64) {
	if len(values) > len(t.vars) {
		panic(fmt.Sprintf("autodiff: %d values bound to %d declared variables", len(values), len(t.vars)))
	}
	for i, v := range values {
		index := t.vars[i]
		t.values[index] = v
		t.known[index] = true
	}
}

// Symbol returns a symbolic reference to the variable with the given
// declaration order, for use in Expr trees.
func (t *Tape) Symbol(order int) *Expr {
	return Symbol(t.VarIndex(order))
}

// Symbols returns symbolic references to all declared variables in
// declaration order.
func (t *Tape) Symbols() []*Expr {
	out := make([]*Expr, len(t.vars))
	for i, index := range t.vars {
		out[i] = Symbol(index)
	}
	return out
}

// binary appends a node over two existing tape operands.
func (t *Tape) binary(kind ops.Kind, left, right int) int {
	t.checkIndex(left)
	t.checkIndex(right)
	return t.push(Node{Kind: kind, X: left, Y: right})
}

// unary appends a node over one existing tape operand.
func (t *Tape) unary(kind ops.Kind, x int) int {
	t.checkIndex(x)
	return t.push(Node{Kind: kind, X: x})
}

// withConst appends a node over one existing tape operand and a literal
// constant.
func (t *Tape) withConst(kind ops.Kind, x int, c float64) int {
	t.checkIndex(x)
	return t.push(Node{Kind: kind, X: x, C: c})
}

// Add appends left + right.
func (t *Tape) Add(left, right int) int { return t.binary(ops.Add, left, right) }

// Sub appends left - right.
func (t *Tape) Sub(left, right int) int { return t.binary(ops.Sub, left, right) }

// Mul appends left * right.
func (t *Tape) Mul(left, right int) int { return t.binary(ops.Mul, left, right) }

// Div appends left / right.
func (t *Tape) Div(left, right int) int { return t.binary(ops.Div, left, right) }

// Pow appends left ^ right.
func (t *Tape) Pow(left, right int) int { return t.binary(ops.Pow, left, right) }

// AddConst appends c + right.
func (t *Tape) AddConst(c float64, right int) int { return t.withConst(ops.Addf, right, c) }

// SubConst appends left - c.
func (t *Tape) SubConst(left int, c float64) int { return t.withConst(ops.Subf, left, c) }

// MulConst appends c * right.
func (t *Tape) MulConst(c float64, right int) int { return t.withConst(ops.Mulf, right, c) }

// PowConst appends x ^ c for a real exponent.
func (t *Tape) PowConst(x int, c float64) int { return t.withConst(ops.Powf, x, c) }

// PowInt appends x ^ n for an integer exponent.
func (t *Tape) PowInt(x, n int) int {
	t.checkIndex(x)
	return t.push(Node{Kind: ops.Powi, X: x, N: n})
}

// Neg appends -x.
func (t *Tape) Neg(x int) int { return t.unary(ops.Neg, x) }

// Recip appends 1 / x.
func (t *Tape) Recip(x int) int { return t.unary(ops.Recip, x) }

// Exp appends e ^ x.
func (t *Tape) Exp(x int) int { return t.unary(ops.Exp, x) }

// Ln appends the natural logarithm of x.
func (t *Tape) Ln(x int) int { return t.unary(ops.Ln, x) }

// Sin appends sin(x).
func (t *Tape) Sin(x int) int { return t.unary(ops.Sin, x) }

// Cos appends cos(x).
func (t *Tape) Cos(x int) int { return t.unary(ops.Cos, x) }

// Tan appends tan(x).
func (t *Tape) Tan(x int) int { return t.unary(ops.Tan, x) }

// Sinh appends sinh(x).
func (t *Tape) Sinh(x int) int { return t.unary(ops.Sinh, x) }

// Cosh appends cosh(x).
func (t *Tape) Cosh(x int) int { return t.unary(ops.Cosh, x) }

// Tanh appends tanh(x).
func (t *Tape) Tanh(x int) int { return t.unary(ops.Tanh, x) }

// Compile lowers an Expr tree onto the tape and records the resulting
// index as the active root. A second call replaces the previous root; the
// tape never shrinks.
func (t *Tape) Compile(e *Expr) int {
	t.root = lower(e, t)
	return t.root
}

// Compiled returns the active root index, if any.
func (t *Tape) Compiled() (int, bool) {
	return t.root, t.root >= 0
}

// Forward evaluates the compiled root and returns its value. Panics when
// no expression has been compiled.
func (t *Tape) Forward() float64 {
	if t.root < 0 {
		panic("autodiff: no compiled expression")
	}
	return t.ForwardAt(t.root)
}

// Backward runs reverse accumulation from the compiled root with seed
// gradient 1.0. Panics when no expression has been compiled.
func (t *Tape) Backward() {
	if t.root < 0 {
		panic("autodiff: no compiled expression")
	}
	t.BackwardFrom(t.root, 1.0)
}

// Reset clears every derived value slot and every gradient slot without
// touching tape structure or bound variable values, making the tape
// reusable against new input bindings.
func (t *Tape) Reset() {
	for i := range t.nodes {
		t.grads[i] = 0
		if t.nodes[i].Kind != ops.Var {
			t.known[i] = false
		}
	}
}

// Gradient returns the accumulated gradient at a tape index.
func (t *Tape) Gradient(index int) float64 {
	t.checkIndex(index)
	return t.grads[index]
}

// Gradients returns the gradients of all declared variables in declaration
// order.
func (t *Tape) Gradients() []float64 {
	out := make([]float64, len(t.vars))
	for i, index := range t.vars {
		out[i] = t.grads[index]
	}
	return out
}
