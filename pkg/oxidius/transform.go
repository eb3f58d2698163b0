package oxidius

// TransformOptions controls the exhaustive transform search.
type TransformOptions struct {
	// Exhaustive re-runs transform on every novel expression produced
	// until fixpoint. Defaults to true.
	Exhaustive bool

	// Depth bounds recursion into sub-expressions. -1 means unbounded.
	// Defaults to -1.
	Depth int
}

// DefaultTransformOptions returns {Exhaustive: true, Depth: -1}.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{Exhaustive: true, Depth: -1}
}

func nextDepth(depth int) int {
	if depth < 0 {
		return -1
	}
	return depth - 1
}

// Transform enumerates all expressions reachable from e by repeatedly
// rewriting subtrees of e with stmt.LHS -> stmt.RHS or stmt.RHS ->
// stmt.LHS, deduplicated by structural hash. stmt's comparator must be
// Equality; Transform does not interpret any other comparator as a
// rewrite rule and returns e unchanged.
//
// Transform owns a private working Scope and dedup Table for the
// duration of the call; both are torn down before returning, so the
// returned Expressions are independent of any further calls (their trees
// remain valid Go values — End only updates bookkeeping, never frees
// memory a caller might still hold — but callers should not rely on
// further Transform-internal state being live).
func Transform(e Expression, stmt Statement, opts TransformOptions) []Expression {
	recorder.IncTransformCalls()
	if stmt.Cmp != Equality {
		return []Expression{e}
	}

	work := NewScope()
	table := NewDefaultTable(work)
	defer table.End()

	var pm []int
	transformInto(work, table, stmt, e, opts, opts.Depth, &pm)

	seen := make(map[int]bool, len(pm))
	results := make([]Expression, 0, len(pm))
	for _, idx := range pm {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		results = append(results, table.FlatAt(idx))
	}
	recorder.AddTransformNovel(len(results))
	return results
}

// transformInto recursively rewrites e and its operands against stmt,
// pushing every distinct result into table. pm accumulates every table
// index reachable from this call — including indices that resolve to an
// expression some other, independently-explored subtree already pushed
// — so that two structurally identical siblings each report the full
// set of alternatives for their position, not just whichever one got
// there first. A separate, purely local toExplore list drives the
// fixpoint in step 7 and only ever grows on a genuinely new insertion;
// that asymmetry is what lets the search terminate even when rewrites
// keep reproducing already-known expressions (e.g. a symmetric target
// like x + x under commutativity).
func transformInto(scope *Scope, table *Table, stmt Statement, e Expression, opts TransformOptions, depth int, pm *[]int) {
	// Step 1.
	if depth == 0 {
		return
	}

	// Step 2: record e itself, regardless of whether it was already
	// present in the table.
	selfIdx, _, err := table.Push(e)
	if err != nil {
		return // bucket overflow: candidate silently dropped, diagnostic only
	}
	*pm = append(*pm, selfIdx)

	// Step 3.
	if e.Root.IsLeaf {
		return
	}

	var toExplore []int
	record := func(candidate Expression) {
		idx, isNew, err := table.Push(candidate)
		if err != nil {
			return
		}
		*pm = append(*pm, idx)
		if isNew {
			toExplore = append(toExplore, idx)
		}
	}

	// Step 4: rewrite at the root, both directions.
	if sigma, ok := MatchExpr(scope, stmt.LHS, e); ok {
		record(ApplyExpr(scope, sigma, stmt.RHS))
	}
	if tau, ok := MatchExpr(scope, stmt.RHS, e); ok {
		record(ApplyExpr(scope, tau, stmt.LHS))
	}

	// Step 5: recurse into each operand independently.
	children := e.Root.Operands()
	markers := make([][]int, len(children))
	for i, child := range children {
		// Reroot so the child's Expression satisfies "root.Next is
		// empty" without mutating the parent's operand list.
		childExpr := Expression{Root: scope.Reroot(child), Signature: e.Signature}
		transformInto(scope, table, stmt, childExpr, opts, nextDepth(depth), &markers[i])
	}

	// Step 6: reassemble modified children via the n-ary Cartesian
	// product of the per-child marker lists, so an operator of any
	// arity gets every combination of rewritten operands, not just
	// pairs.
	for _, combo := range cartesianProduct(markers) {
		var head, tail *ExprNode
		for _, idx := range combo {
			nc := Clone(scope, table.FlatAt(idx).Root)
			nc.Next = nil
			if head == nil {
				head = nc
			} else {
				tail.Next = nc
			}
			tail = nc
		}
		newRoot := CloneSoft(scope, e.Root)
		newRoot.Down = head
		record(NewExpression(newRoot))
	}

	// Step 7: fixpoint over every genuinely new expression this call
	// discovered. Each reentrant call fully resolves everything
	// reachable from the stored expression (including its own nested
	// fixpoint) before returning, so its result only needs folding into
	// pm once — its own self-record (the first entry) is dropped since
	// that index is already accounted for.
	if opts.Exhaustive {
		for i := 0; i < len(toExplore); i++ {
			stored := table.FlatAt(toExplore[i])
			var discovered []int
			transformInto(scope, table, stmt, stored, opts, depth, &discovered)
			if len(discovered) > 1 {
				*pm = append(*pm, discovered[1:]...)
			}
		}
		tracef("fixpoint over root %s explored %d new expression(s)", e.Root, len(toExplore))
	}

	// Step 8: the per-child markers were scaffolding for step 6 only.
	for _, m := range markers {
		table.Clear(m)
	}
}

// cartesianProduct returns the row-major Cartesian product of lists. An
// empty input, or any empty element list, yields an empty product.
func cartesianProduct(lists [][]int) [][]int {
	if len(lists) == 0 {
		return nil
	}
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
	}

	combos := [][]int{{}}
	for _, list := range lists {
		next := make([][]int, 0, len(combos)*len(list))
		for _, combo := range combos {
			for _, v := range list {
				extended := make([]int, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, v)
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
