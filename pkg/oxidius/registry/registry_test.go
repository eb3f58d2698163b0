package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxidius-lang/oxidius/pkg/oxidius"
	"github.com/oxidius-lang/oxidius/pkg/oxidius/lang"
)

func commutativityStatement(t *testing.T, scope *oxidius.Scope) oxidius.Statement {
	t.Helper()
	a := scope.AllocLeaf(oxidius.NewSymbolAtom("a"))
	b := scope.AllocLeaf(oxidius.NewSymbolAtom("b"))
	b2 := scope.AllocLeaf(oxidius.NewSymbolAtom("b"))
	a2 := scope.AllocLeaf(oxidius.NewSymbolAtom("a"))
	a.Next = b
	b2.Next = a2
	lhs := oxidius.NewExpression(scope.AllocInner(oxidius.OpAdd, a))
	rhs := oxidius.NewExpression(scope.AllocInner(oxidius.OpAdd, b2))
	stmt, err := oxidius.NewStatement(lhs, rhs, oxidius.Equality)
	require.NoError(t, err)
	return stmt
}

func TestNewDefaultRegistryRegistersTransform(t *testing.T) {
	reg := NewDefaultRegistry()
	_, ok := reg.Lookup("transform")
	require.True(t, ok)
	require.Contains(t, reg.Names(), "transform")
}

func TestLookupMissingBuiltinReturnsFalse(t *testing.T) {
	reg := NewDefaultRegistry()
	_, ok := reg.Lookup("does-not-exist")
	require.False(t, ok)
}

func TestTransformBuiltinRejectsWrongArity(t *testing.T) {
	reg := NewDefaultRegistry()
	fn, ok := reg.Lookup("transform")
	require.True(t, ok)

	_, err := fn(nil, nil)
	require.Error(t, err)
	var arity *oxidius.ArityMismatchError
	require.ErrorAs(t, err, &arity)
}

func TestTransformBuiltinRejectsWrongArgumentKind(t *testing.T) {
	reg := NewDefaultRegistry()
	fn, ok := reg.Lookup("transform")
	require.True(t, ok)

	_, err := fn([]lang.Value{lang.NewIntegerValue(1), lang.NewIntegerValue(2)}, nil)
	require.Error(t, err)
}

func TestTransformBuiltinRunsTransform(t *testing.T) {
	scope := oxidius.NewScope()
	defer scope.End()

	stmt := commutativityStatement(t, scope)
	x := scope.AllocLeaf(oxidius.NewSymbolAtom("x"))
	y := scope.AllocLeaf(oxidius.NewSymbolAtom("y"))
	x.Next = y
	target := oxidius.NewExpression(scope.AllocInner(oxidius.OpAdd, x))

	reg := NewDefaultRegistry()
	fn, ok := reg.Lookup("transform")
	require.True(t, ok)

	result, err := fn([]lang.Value{
		lang.NewExpressionValue(target),
		lang.NewStatementValue(stmt),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, lang.ResultValue, result.Kind)
	require.Equal(t, lang.ValueTuple, result.Value.Kind)
	require.Len(t, result.Value.Tuple, 2)
}

func TestTransformBuiltinRejectsMistypedOption(t *testing.T) {
	scope := oxidius.NewScope()
	defer scope.End()

	stmt := commutativityStatement(t, scope)
	x := scope.AllocLeaf(oxidius.NewSymbolAtom("x"))
	y := scope.AllocLeaf(oxidius.NewSymbolAtom("y"))
	x.Next = y
	target := oxidius.NewExpression(scope.AllocInner(oxidius.OpAdd, x))

	reg := NewDefaultRegistry()
	fn, ok := reg.Lookup("transform")
	require.True(t, ok)

	_, err := fn([]lang.Value{
		lang.NewExpressionValue(target),
		lang.NewStatementValue(stmt),
	}, map[string]lang.Value{"exhaustive": lang.NewIntegerValue(1)})
	require.Error(t, err)
}
