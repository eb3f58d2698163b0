package oxidius

// Equal decides structural equivalence: two leaves are equal iff their
// atoms compare equal (Atom.Equal); two inner nodes are equal iff their
// Op fields match and their operand lists are pointwise equal and of the
// same length.
func Equal(a, b *ExprNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf != b.IsLeaf {
		return false
	}
	if a.IsLeaf {
		return a.Atom.Equal(b.Atom)
	}
	if a.Op != b.Op {
		return false
	}
	ca, cb := a.Down, b.Down
	for ca != nil && cb != nil {
		if !Equal(ca, cb) {
			return false
		}
		ca = ca.Next
		cb = cb.Next
	}
	return ca == nil && cb == nil
}

// EqualExpr compares two Expressions by their roots.
func EqualExpr(a, b Expression) bool {
	return Equal(a.Root, b.Root)
}

// Clone deep-copies node into scope, recursively cloning Down and the
// sibling chain rooted at Down. The returned node's Next is always nil;
// the caller is responsible for splicing it into an operand list.
func Clone(scope *Scope, node *ExprNode) *ExprNode {
	if node.IsLeaf {
		return scope.AllocLeaf(node.Atom)
	}

	var head, tail *ExprNode
	for c := node.Down; c != nil; c = c.Next {
		nc := Clone(scope, c)
		if head == nil {
			head = nc
		} else {
			tail.Next = nc
		}
		tail = nc
	}
	return scope.AllocInner(node.Op, head)
}

// CloneExpression deep-copies an Expression's tree, keeping its
// signature (signatures are value-like and safe to share).
func CloneExpression(scope *Scope, e Expression) Expression {
	return Expression{Root: Clone(scope, e.Root), Signature: e.Signature.Clone()}
}

// CloneSoft copies only the root node: for an inner node, Down and Next
// alias the source's children; for a leaf, the atom is copied by value
// (atoms have no further structure to alias). Used by the transform
// engine to build a new inner node around already-cloned children
// without re-cloning them.
func CloneSoft(scope *Scope, node *ExprNode) *ExprNode {
	if node.IsLeaf {
		return scope.AllocLeaf(node.Atom)
	}
	n := scope.AllocInner(node.Op, node.Down)
	n.Next = node.Next
	return n
}
