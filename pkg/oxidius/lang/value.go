package lang

import (
	"fmt"

	"github.com/oxidius-lang/oxidius/pkg/oxidius"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueTruth ValueKind = iota
	ValueInteger
	ValueReal
	ValueSymbol
	ValueExpression
	ValueStatement
	ValueTuple
	ValueArgument
	ValueLiteralString
)

func (k ValueKind) String() string {
	switch k {
	case ValueTruth:
		return "Truth"
	case ValueInteger:
		return "Integer"
	case ValueReal:
		return "Real"
	case ValueSymbol:
		return "Symbol"
	case ValueExpression:
		return "Expression"
	case ValueStatement:
		return "Statement"
	case ValueTuple:
		return "Tuple"
	case ValueArgument:
		return "Argument"
	case ValueLiteralString:
		return "LiteralString"
	default:
		return "ValueKind(?)"
	}
}

// Value is the resolved value vocabulary a driver or builtin exchanges:
// a closed sum of nine variants, carried as a Kind tag plus one
// populated field, the same tag-plus-accessor shape pkg/oxidius uses for
// Atom and ExprNode rather than an interface or unchecked any.
type Value struct {
	Kind ValueKind

	Truth         bool
	Integer       int64
	Real          float64
	Symbol        string
	Expression    oxidius.Expression
	Statement     oxidius.Statement
	Tuple         Tuple
	Argument      Argument
	LiteralString string
}

func NewTruthValue(b bool) Value             { return Value{Kind: ValueTruth, Truth: b} }
func NewIntegerValue(i int64) Value          { return Value{Kind: ValueInteger, Integer: i} }
func NewRealValue(r float64) Value           { return Value{Kind: ValueReal, Real: r} }
func NewSymbolValue(s string) Value          { return Value{Kind: ValueSymbol, Symbol: s} }
func NewLiteralStringValue(s string) Value   { return Value{Kind: ValueLiteralString, LiteralString: s} }
func NewExpressionValue(e oxidius.Expression) Value {
	return Value{Kind: ValueExpression, Expression: e}
}
func NewStatementValue(s oxidius.Statement) Value { return Value{Kind: ValueStatement, Statement: s} }
func NewTupleValue(t Tuple) Value                 { return Value{Kind: ValueTuple, Tuple: t} }
func NewArgumentValue(a Argument) Value            { return Value{Kind: ValueArgument, Argument: a} }

func (v Value) String() string {
	switch v.Kind {
	case ValueTruth:
		return fmt.Sprintf("%t", v.Truth)
	case ValueInteger:
		return fmt.Sprintf("%d", v.Integer)
	case ValueReal:
		return fmt.Sprintf("%g", v.Real)
	case ValueSymbol:
		return v.Symbol
	case ValueExpression:
		return v.Expression.Root.String()
	case ValueStatement:
		return fmt.Sprintf("%s %s %s", v.Statement.LHS.Root, v.Statement.Cmp, v.Statement.RHS.Root)
	case ValueTuple:
		return fmt.Sprintf("%v", []Value(v.Tuple))
	case ValueArgument:
		return fmt.Sprintf("%d predicate(s) -> %s", len(v.Argument.Predicates), v.Argument.Result.LHS.Root)
	case ValueLiteralString:
		return fmt.Sprintf("%q", v.LiteralString)
	default:
		return "<invalid Value>"
	}
}

// Tuple is an ordered, heterogeneous sequence of Values.
type Tuple []Value

// Argument pairs a list of predicate statements with the statement they
// conclude, the resolved counterpart of a rule body. The unresolved
// shape a parser would produce first (symbols not yet looked up) is out
// of scope for this package.
type Argument struct {
	Predicates []oxidius.Statement
	Result     oxidius.Statement
}
