package oxidius

// Scope is the scoped tree-store allocator: every ExprNode is allocated
// into exactly one Scope, and a node is reclaimed exactly once, either
// explicitly via Drop or implicitly when the Scope ends via End.
//
// A Scope is not re-entrant across goroutines: the drop queue is an
// ordinary slice, not guarded by a mutex, because the engine is
// single-threaded and synchronous by design.
type Scope struct {
	// Strict controls double-free behavior. true (the default via
	// NewScope) panics on double-enqueue, mirroring an unconditional
	// C abort(). false downgrades to a returned *DoubleFreeError, for
	// embedding in a process that must not crash on a single scope's
	// bookkeeping bug.
	Strict bool

	pending []*ExprNode
	ended   bool
}

// NewScope creates an empty scope with strict (fatal) double-free
// detection enabled.
func NewScope() *Scope {
	return &Scope{Strict: true}
}

// AllocLeaf allocates a new leaf node owned by this scope.
func (s *Scope) AllocLeaf(atom Atom) *ExprNode {
	return &ExprNode{IsLeaf: true, Atom: atom, scope: s}
}

// AllocInner allocates a new inner node owned by this scope. down must
// already be a valid node (possibly with siblings chained via Next).
func (s *Scope) AllocInner(op Operation, down *ExprNode) *ExprNode {
	return &ExprNode{IsLeaf: false, Op: op, Down: down, scope: s}
}

// Drop recursively enqueues node and every descendant (walked via Down
// then Next) for deletion, then enqueues node itself. It panics with a
// *DoubleFreeError if node is already enqueued (when Strict, the
// default); otherwise it returns the error.
func (s *Scope) Drop(node *ExprNode) error {
	if node == nil {
		return nil
	}
	for _, q := range s.pending {
		if q == node {
			err := &DoubleFreeError{Node: node}
			if s.Strict {
				panic(err)
			}
			return err
		}
	}

	if !node.IsLeaf {
		for c := node.Down; c != nil; c = c.Next {
			if err := s.Drop(c); err != nil {
				return err
			}
		}
	}

	s.pending = append(s.pending, node)
	return nil
}

// DropExpression drops an Expression's root.
func (s *Scope) DropExpression(e Expression) error {
	return s.Drop(e.Root)
}

// DropStatement drops both sides of a Statement.
func (s *Scope) DropStatement(st Statement) error {
	if err := s.Drop(st.LHS.Root); err != nil {
		return err
	}
	return s.Drop(st.RHS.Root)
}

// DropSubstitution drops every captured subtree of a Substitution.
func (s *Scope) DropSubstitution(sub Substitution) error {
	for _, expr := range sub {
		if err := s.Drop(expr.Root); err != nil {
			return err
		}
	}
	return nil
}

// TransferTo moves every pending drop from s to other in O(k), leaving s
// empty. Node ownership now belongs to other; this does not walk or
// re-tag individual nodes.
func (s *Scope) TransferTo(other *Scope) {
	other.pending = append(other.pending, s.pending...)
	s.pending = nil
}

// Reroot returns a view of n suitable for use as an Expression root:
// n itself if n.Next is already nil, otherwise a new node allocated in
// s with the same shape (aliasing Down for an inner node) but Next
// forced nil. This lets the transform engine treat an operand — which
// carries a live sibling pointer from its parent's operand list — as an
// independent Expression root without mutating the parent's tree.
func (s *Scope) Reroot(n *ExprNode) *ExprNode {
	if n.Next == nil {
		return n
	}
	if n.IsLeaf {
		return s.AllocLeaf(n.Atom)
	}
	return s.AllocInner(n.Op, n.Down)
}

// Pending returns the number of nodes currently enqueued for deletion,
// for diagnostics and tests.
func (s *Scope) Pending() int { return len(s.pending) }

// End tears down the scope, releasing every enqueued node exactly once
// in enqueue (FIFO) order. End is idempotent: calling it again is a
// no-op.
func (s *Scope) End() {
	if s.ended {
		return
	}
	s.ended = true
	tracef("scope end: reclaiming %d node(s)", len(s.pending))
	for _, node := range s.pending {
		node.scope = nil
	}
	s.pending = nil
}
