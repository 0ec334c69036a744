package autodiff

import "github.com/revgrad-ml/revgrad/internal/autodiff/ops"

// Expr is an immutable symbolic expression tree. It mirrors the tape's
// operator set, but operands are sub-trees rather than tape indices and
// leaves name the tape index of an intended variable. An Expr owns no
// buffers and performs no computation; it only lets a function be written
// with ordinary arithmetic composition before Compile lowers it onto a
// Tape.
//
// Go has no operator overloading, so composition is a fixed table of named
// methods and functions covering all three operand shapes:
//
//	Expr ∘ Expr     e.Add(rhs)      e.Sub(rhs)      e.Mul(rhs)      e.Div(rhs)      e.Pow(rhs)
//	Expr ∘ scalar   e.AddConst(c)   e.SubConst(c)   e.MulConst(c)   e.DivConst(c)   e.Powf(c), e.Powi(n)
//	scalar ∘ Expr   ConstAdd(c, e)  ConstSub(c, e)  ConstMul(c, e)  ConstDiv(c, e)
//
// plus the unary methods Neg, Recip, Exp, Ln, Sin, Cos, Tan, Sinh, Cosh
// and Tanh.
type Expr struct {
	kind ops.Kind
	x, y *Expr
	c    float64
	n    int
	sym  int
}

// Symbol returns a leaf referencing the variable at the given tape index.
func Symbol(index int) *Expr {
	return &Expr{kind: ops.Var, sym: index}
}

func binaryExpr(kind ops.Kind, x, y *Expr) *Expr {
	return &Expr{kind: kind, x: x, y: y}
}

func unaryExpr(kind ops.Kind, x *Expr) *Expr {
	return &Expr{kind: kind, x: x}
}

func constExpr(kind ops.Kind, x *Expr, c float64) *Expr {
	return &Expr{kind: kind, x: x, c: c}
}

// Add returns e + rhs.
func (e *Expr) Add(rhs *Expr) *Expr { return binaryExpr(ops.Add, e, rhs) }

// Sub returns e - rhs.
func (e *Expr) Sub(rhs *Expr) *Expr { return binaryExpr(ops.Sub, e, rhs) }

// Mul returns e * rhs.
func (e *Expr) Mul(rhs *Expr) *Expr { return binaryExpr(ops.Mul, e, rhs) }

// Div returns e / rhs.
func (e *Expr) Div(rhs *Expr) *Expr { return binaryExpr(ops.Div, e, rhs) }

// Pow returns e ^ rhs.
func (e *Expr) Pow(rhs *Expr) *Expr { return binaryExpr(ops.Pow, e, rhs) }

// AddConst returns e + c.
func (e *Expr) AddConst(c float64) *Expr { return constExpr(ops.Addf, e, c) }

// SubConst returns e - c.
func (e *Expr) SubConst(c float64) *Expr { return constExpr(ops.Subf, e, c) }

// MulConst returns c * e.
func (e *Expr) MulConst(c float64) *Expr { return constExpr(ops.Mulf, e, c) }

// DivConst returns e / c, lowered as (1/c) * e.
func (e *Expr) DivConst(c float64) *Expr { return e.MulConst(1 / c) }

// Powf returns e ^ c for a real exponent.
func (e *Expr) Powf(c float64) *Expr { return constExpr(ops.Powf, e, c) }

// Powi returns e ^ n for an integer exponent.
func (e *Expr) Powi(n int) *Expr { return &Expr{kind: ops.Powi, x: e, n: n} }

// ConstAdd returns c + e.
func ConstAdd(c float64, e *Expr) *Expr { return constExpr(ops.Addf, e, c) }

// ConstSub returns c - e, built as -(e - c).
func ConstSub(c float64, e *Expr) *Expr { return constExpr(ops.Subf, e, c).Neg() }

// ConstMul returns c * e.
func ConstMul(c float64, e *Expr) *Expr { return constExpr(ops.Mulf, e, c) }

// ConstDiv returns the reciprocal of e. The numerator constant is not
// folded in; this mirrors the reference composition table (see DESIGN.md).
func ConstDiv(c float64, e *Expr) *Expr { return e.Recip() }

// Neg returns -e.
func (e *Expr) Neg() *Expr { return unaryExpr(ops.Neg, e) }

// Recip returns 1 / e.
func (e *Expr) Recip() *Expr { return unaryExpr(ops.Recip, e) }

// Exp returns exp(e).
func (e *Expr) Exp() *Expr { return unaryExpr(ops.Exp, e) }

// Ln returns the natural logarithm of e.
func (e *Expr) Ln() *Expr { return unaryExpr(ops.Ln, e) }

// Sin returns sin(e).
func (e *Expr) Sin() *Expr { return unaryExpr(ops.Sin, e) }

// Cos returns cos(e).
func (e *Expr) Cos() *Expr { return unaryExpr(ops.Cos, e) }

// Tan returns tan(e).
func (e *Expr) Tan() *Expr { return unaryExpr(ops.Tan, e) }

// Sinh returns sinh(e).
func (e *Expr) Sinh() *Expr { return unaryExpr(ops.Sinh, e) }

// Cosh returns cosh(e).
func (e *Expr) Cosh() *Expr { return unaryExpr(ops.Cosh, e) }

// Tanh returns tanh(e).
func (e *Expr) Tanh() *Expr { return unaryExpr(ops.Tanh, e) }
