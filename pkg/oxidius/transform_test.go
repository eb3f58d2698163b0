package oxidius

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func commutativityAxiom(t *testing.T, scope *Scope) Statement {
	t.Helper()
	lhs := NewExpression(inner(scope, OpAdd, symLeaf(scope, "a"), symLeaf(scope, "b")))
	rhs := NewExpression(inner(scope, OpAdd, symLeaf(scope, "b"), symLeaf(scope, "a")))
	stmt, err := NewStatement(lhs, rhs, Equality)
	require.NoError(t, err)
	return stmt
}

func exprStrings(t *testing.T, results []Expression) []string {
	t.Helper()
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Root.String()
	}
	return out
}

func TestTransformS1MatchAndRewrite(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "y")))

	results := Transform(target, axiom, DefaultTransformOptions())
	require.ElementsMatch(t, []string{"(x + y)", "(y + x)"}, exprStrings(t, results))
}

func TestTransformS2NestedExhaustive(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(inner(scope, OpAdd,
		inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "y")),
		symLeaf(scope, "z"),
	))

	results := Transform(target, axiom, DefaultTransformOptions())
	require.ElementsMatch(t,
		[]string{"((x + y) + z)", "((y + x) + z)", "(z + (x + y))", "(z + (y + x))"},
		exprStrings(t, results))
}

func TestTransformNonEqualityComparatorIsANoOp(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	lhs := NewExpression(inner(scope, OpAdd, symLeaf(scope, "a"), symLeaf(scope, "b")))
	rhs := NewExpression(inner(scope, OpAdd, symLeaf(scope, "b"), symLeaf(scope, "a")))
	stmt, err := NewStatement(lhs, rhs, LessThan)
	require.NoError(t, err)

	target := NewExpression(inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "y")))
	results := Transform(target, stmt, DefaultTransformOptions())
	require.Len(t, results, 1)
	require.Equal(t, target.Root.String(), results[0].Root.String())
}

func TestTransformLeafHasNoRewrites(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(symLeaf(scope, "x"))

	results := Transform(target, axiom, DefaultTransformOptions())
	require.Len(t, results, 1)
	require.Equal(t, "x", results[0].Root.String())
}

func TestTransformNonExhaustiveStopsAtOneLevel(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(inner(scope, OpAdd,
		inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "y")),
		symLeaf(scope, "z"),
	))

	opts := DefaultTransformOptions()
	opts.Exhaustive = false
	results := Transform(target, axiom, opts)

	for _, s := range exprStrings(t, results) {
		require.NotEqual(t, "(z + (y + x))", s, "reaching this rearrangement requires iterating the fixpoint")
	}
}

func TestTransformZeroDepthFindsNothing(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "y")))

	opts := DefaultTransformOptions()
	opts.Depth = 0
	results := Transform(target, axiom, opts)
	require.Empty(t, results)
}

func TestTransformResultsAreDeduplicated(t *testing.T) {
	// x + x under commutativity only ever reaches itself: every rewrite
	// and reassembly reproduces the same expression, and the final
	// output collapses all those repeated hits down to one entry.
	scope := NewScope()
	defer scope.End()

	axiom := commutativityAxiom(t, scope)
	target := NewExpression(inner(scope, OpAdd, symLeaf(scope, "x"), symLeaf(scope, "x")))

	results := Transform(target, axiom, DefaultTransformOptions())
	require.Len(t, results, 1)
	require.Equal(t, "(x + x)", results[0].Root.String())
}

func TestCartesianProduct(t *testing.T) {
	t.Run("no lists yields no combinations", func(t *testing.T) {
		require.Nil(t, cartesianProduct(nil))
	})

	t.Run("any empty list yields no combinations", func(t *testing.T) {
		require.Nil(t, cartesianProduct([][]int{{1, 2}, {}}))
	})

	t.Run("singletons combine pointwise", func(t *testing.T) {
		got := cartesianProduct([][]int{{1}, {2}, {3}})
		require.Equal(t, [][]int{{1, 2, 3}}, got)
	})

	t.Run("row-major ordering over two binary lists", func(t *testing.T) {
		got := cartesianProduct([][]int{{1, 2}, {10, 20}})
		require.Equal(t, [][]int{{1, 10}, {1, 20}, {2, 10}, {2, 20}}, got)
	})
}
