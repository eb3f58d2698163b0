package oxidius

// Match attempts one-sided unification of pattern against subject: every
// Symbol atom in pattern is a pattern variable, every other atom in
// pattern is a literal, and every atom in subject (including Symbol
// atoms) is a literal. It returns a substitution σ such that
// apply(σ, pattern) is structurally equal to subject, or ok=false if no
// such σ exists.
//
// The returned substitution's captured subtrees are cloned into scope,
// disjoint from both pattern and subject. On failure,
// any substitutions accumulated by partial recursive matches are
// dropped back into scope before returning.
func Match(scope *Scope, pattern, subject *ExprNode) (Substitution, bool) {
	if pattern.IsLeaf {
		if pattern.Atom.IsSymbol() {
			captured := Clone(scope, subject)
			captured.Next = nil
			return Substitution{pattern.Atom.Symbol: NewExpression(captured)}, true
		}
		if subject.IsLeaf && pattern.Atom.Equal(subject.Atom) {
			return Substitution{}, true
		}
		return nil, false
	}

	if subject.IsLeaf || pattern.Op != subject.Op {
		return nil, false
	}

	sub := Substitution{}
	pc, sc := pattern.Down, subject.Down
	for pc != nil && sc != nil {
		childSub, ok := Match(scope, pc, sc)
		if !ok {
			scope.DropSubstitution(sub)
			scope.DropSubstitution(childSub)
			return nil, false
		}

		joined, ok := Join(sub, childSub)
		if !ok {
			scope.DropSubstitution(sub)
			scope.DropSubstitution(childSub)
			return nil, false
		}
		sub = joined

		pc = pc.Next
		sc = sc.Next
	}

	if pc != nil || sc != nil {
		// Operand lists differ in length: no unifier exists.
		scope.DropSubstitution(sub)
		return nil, false
	}

	return sub, true
}

// MatchExpr matches two Expressions by their roots.
func MatchExpr(scope *Scope, pattern, subject Expression) (Substitution, bool) {
	return Match(scope, pattern.Root, subject.Root)
}
