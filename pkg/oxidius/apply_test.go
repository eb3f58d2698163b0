package oxidius

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySubstitutesBoundSymbols(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	sub := Substitution{"a": NewExpression(intLeaf(scope, 7))}
	tree := inner(scope, OpAdd, symLeaf(scope, "a"), symLeaf(scope, "b"))

	result := Apply(scope, sub, tree)
	require.Equal(t, "(7 + b)", result.String())
}

func TestApplyLeavesUnboundSymbolsAlone(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	result := Apply(scope, Substitution{}, symLeaf(scope, "z"))
	require.Equal(t, "z", result.String())
}

func TestApplyResultIsIndependentOfSubstitutionTree(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	bound := intLeaf(scope, 1)
	sub := Substitution{"a": NewExpression(bound)}
	tree := symLeaf(scope, "a")

	result := Apply(scope, sub, tree)
	require.NotSame(t, bound, result)
	require.True(t, Equal(bound, result))
}

func TestApplyExprComputesDefaultSignature(t *testing.T) {
	scope := NewScope()
	defer scope.End()

	sub := Substitution{"a": NewExpression(symLeaf(scope, "k"))}
	expr := NewExpression(inner(scope, OpAdd, symLeaf(scope, "a"), symLeaf(scope, "b")))

	result := ApplyExpr(scope, sub, expr)
	require.Equal(t, "(k + b)", result.Root.String())
	require.Equal(t, DomainReal, result.Signature["k"])
	require.Equal(t, DomainReal, result.Signature["b"])
}
