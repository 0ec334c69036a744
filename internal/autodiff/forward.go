package autodiff

import (
	"fmt"

	"github.com/revgrad-ml/revgrad/internal/autodiff/ops"
)

// ForwardAt evaluates the node at index and returns its value, memoizing
// every intermediate result. Each tape index is computed at most once per
// Reset cycle, so cost is linear in the entries reachable from index no
// matter how many parents reference them.
//
// The traversal is an explicit post-order walk over a work stack rather
// than native recursion, so expression depth is not bounded by the call
// stack.
//
// Evaluating an unbound variable is a contract violation and panics.
func (t *Tape) ForwardAt(index int) float64 {
	t.checkIndex(index)
	if t.known[index] {
		return t.values[index]
	}

	stack := make([]int, 0, 64)
	stack = append(stack, index)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		if t.known[i] {
			stack = stack[:len(stack)-1]
			continue
		}

		n := t.nodes[i]
		if n.Kind == ops.Var {
			panic(fmt.Sprintf("autodiff: variable at index %d evaluated before binding", i))
		}

		rule := ops.Lookup(n.Kind)
		if rule.Arity == ops.Binary {
			ready := true
			if !t.known[n.X] {
				stack = append(stack, n.X)
				ready = false
			}
			if !t.known[n.Y] {
				stack = append(stack, n.Y)
				ready = false
			}
			if !ready {
				continue
			}
			t.values[i] = rule.Eval(t.values[n.X], t.values[n.Y])
		} else {
			if !t.known[n.X] {
				stack = append(stack, n.X)
				continue
			}
			t.values[i] = rule.Eval(t.values[n.X], n.constArg())
		}
		t.known[i] = true
		stack = stack[:len(stack)-1]
	}

	return t.values[index]
}
