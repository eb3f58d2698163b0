package oxidius

// Apply builds a fresh tree from tree by replacing every Symbol leaf
// bound in sub with a clone of its bound expression, and copying
// everything else.
func Apply(scope *Scope, sub Substitution, tree *ExprNode) *ExprNode {
	if tree.IsLeaf {
		if tree.Atom.IsSymbol() {
			if bound, ok := sub[tree.Atom.Symbol]; ok {
				n := Clone(scope, bound.Root)
				n.Next = nil
				return n
			}
		}
		n := Clone(scope, tree)
		n.Next = nil
		return n
	}

	var head, tail *ExprNode
	for c := tree.Down; c != nil; c = c.Next {
		nc := Apply(scope, sub, c)
		if head == nil {
			head = nc
		} else {
			tail.Next = nc
		}
		tail = nc
	}
	return scope.AllocInner(tree.Op, head)
}

// ApplyExpr applies sub to expr's tree and computes a default signature
// for the result: any symbol not otherwise constrained is typed Real.
func ApplyExpr(scope *Scope, sub Substitution, expr Expression) Expression {
	root := Apply(scope, sub, expr.Root)
	return NewExpression(root)
}
