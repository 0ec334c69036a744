package autodiff

import "github.com/revgrad-ml/revgrad/internal/autodiff/ops"

// contribution is one pending gradient delivery during the backward walk.
type contribution struct {
	index int
	grad  float64
}

// BackwardFrom propagates an upstream gradient from the node at index down
// to every reachable variable, accumulating into the gradient buffer.
//
// Variable slots are accumulated, not overwritten: when one tape index has
// multiple parents, each parent's contribution is added, which is what
// makes d/dx of Mul(x, x) come out as 2x.
//
// Operand values are read through the memoized forward evaluator, so
// backward transparently triggers forward computation for any slot the
// forward pass has not populated yet. The walk uses an explicit stack, so
// expression depth is not bounded by the call stack.
func (t *Tape) BackwardFrom(index int, upstream float64) {
	t.checkIndex(index)

	stack := make([]contribution, 0, 64)
	stack = append(stack, contribution{index, upstream})
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[c.index]
		if n.Kind == ops.Var {
			t.grads[n.X] += c.grad
			continue
		}

		rule := ops.Lookup(n.Kind)
		if rule.Arity == ops.Binary {
			var a, b float64
			if rule.NeedsValues {
				a = t.ForwardAt(n.X)
				b = t.ForwardAt(n.Y)
			}
			da, db := rule.Diff(a, b, c.grad)
			stack = append(stack, contribution{n.X, da}, contribution{n.Y, db})
		} else {
			var a float64
			if rule.NeedsValues {
				a = t.ForwardAt(n.X)
			}
			da, _ := rule.Diff(a, n.constArg(), c.grad)
			stack = append(stack, contribution{n.X, da})
		}
	}
}
