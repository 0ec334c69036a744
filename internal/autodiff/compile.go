package autodiff

import "github.com/revgrad-ml/revgrad/internal/autodiff/ops"

// lower walks an Expr tree in post-order, appending one tape node per tree
// node, and returns the tape index of the root. A Symbol leaf resolves to
// the tape index it names without creating a node.
//
// No sharing or deduplication is performed: every occurrence of a repeated
// sub-tree is lowered into its own fresh tape entries. Gradient
// accumulation across parents happens only when two operands resolve to
// the same pre-existing tape index, such as a Symbol used twice.
func lower(e *Expr, t *Tape) int {
	switch ops.Lookup(e.kind).Arity {
	case ops.Leaf:
		return e.sym
	case ops.Binary:
		left := lower(e.x, t)
		right := lower(e.y, t)
		return t.binary(e.kind, left, right)
	case ops.WithConst:
		return t.withConst(e.kind, lower(e.x, t), e.c)
	case ops.WithIntConst:
		return t.PowInt(lower(e.x, t), e.n)
	default:
		return t.unary(e.kind, lower(e.x, t))
	}
}
