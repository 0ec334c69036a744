package autodiff

import "github.com/revgrad-ml/revgrad/internal/autodiff/ops"

// Node is one operation record on the tape. Operand fields reference tape
// positions created earlier, so the tape is always a DAG in topological
// order and traversal never needs cycle detection.
//
// Field usage by arity:
//   - Leaf (Var): X holds the node's own slot index.
//   - Unary: X is the operand.
//   - Binary: X and Y are the left and right operands.
//   - WithConst: X is the operand, C the literal constant.
//   - WithIntConst: X is the operand, N the integer exponent.
type Node struct {
	Kind ops.Kind
	X    int
	Y    int
	C    float64
	N    int
}

// constArg returns the second evaluation argument for non-binary nodes: the
// literal constant, or zero for unary operators.
func (n Node) constArg() float64 {
	if n.Kind == ops.Powi {
		return float64(n.N)
	}
	return n.C
}
