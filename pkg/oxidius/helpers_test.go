package oxidius

// Shared tree-building helpers for tests: build an Add(a, b, c...) node
// or a Symbol/Integer leaf without repeating the chain-linking
// boilerplate in every test.

func leaf(scope *Scope, a Atom) *ExprNode {
	return scope.AllocLeaf(a)
}

func symLeaf(scope *Scope, name string) *ExprNode {
	return leaf(scope, NewSymbolAtom(name))
}

func intLeaf(scope *Scope, v int64) *ExprNode {
	return leaf(scope, NewIntegerAtom(v))
}

func inner(scope *Scope, op Operation, operands ...*ExprNode) *ExprNode {
	for i := 0; i < len(operands)-1; i++ {
		operands[i].Next = operands[i+1]
	}
	return scope.AllocInner(op, operands[0])
}
