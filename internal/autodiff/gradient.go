package autodiff

// Gradient evaluates the gradient of f at x in one shot: it builds a fresh
// tape, declares one variable per input value, compiles the expression f
// returns over the matching symbols, runs forward then backward, and
// returns the partial derivatives in input order.
//
// f must be a pure function of its symbolic inputs.
//
// Example:
//
//	grad := autodiff.Gradient(func(s []*autodiff.Expr) *autodiff.Expr {
//	    return s[0].Sin().Mul(s[1]) // f(x, y) = sin(x) * y
//	}, []float64{0, 5})
//	// grad = [5, 0]
func Gradient(f func([]*Expr) *Expr, x []float64) []float64 {
	t := NewTape()
	indices := make([]int, len(x))
	symbols := make([]*Expr, len(x))
	for i, v := range x {
		indices[i] = t.Var(v)
		symbols[i] = Symbol(indices[i])
	}

	t.Compile(f(symbols))
	t.Forward()
	t.Backward()

	out := make([]float64, len(x))
	for i, index := range indices {
		out[i] = t.Gradient(index)
	}
	return out
}

// GradientCached evaluates an already compiled tape at x and returns the
// scalar result together with the gradient vector in declaration order.
// The tape is reset and rebound in place, so repeated calls against one
// tape never rebuild it. The tape must have a compiled root and at least
// as many declared variables as supplied values.
func GradientCached(t *Tape, x []float64) (float64, []float64) {
	t.Reset()
	t.BindAll(x)
	result := t.Forward()
	t.Backward()
	return result, t.Gradients()
}
