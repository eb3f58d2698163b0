package oxidius

// Comparator names the relation a Statement asserts between its two
// sides. Transform only acts on Comparators equal to Equality; other
// comparators are carried but not rewritten by the engine.
type Comparator int

const (
	Equality Comparator = iota
	Inequality
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (c Comparator) String() string {
	switch c {
	case Equality:
		return "="
	case Inequality:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return "?"
	}
}

// Expression is a tree plus the signature of every symbol reachable from
// its root. Invariant: every Symbol atom reachable from Root is a key of
// Signature, and Root.Next is always nil.
type Expression struct {
	Root      *ExprNode
	Signature Signature
}

// Statement pairs two expressions under a comparator. Its signature is
// the conflict-checked merge of both sides' signatures.
type Statement struct {
	LHS, RHS  Expression
	Cmp       Comparator
	Signature Signature
}

// NewStatement merges lhs and rhs signatures and returns a
// *SignatureConflictError if they disagree on any shared symbol.
func NewStatement(lhs, rhs Expression, cmp Comparator) (Statement, error) {
	merged, err := MergeSignatures(lhs.Signature, rhs.Signature)
	if err != nil {
		return Statement{}, err
	}
	return Statement{LHS: lhs, RHS: rhs, Cmp: cmp, Signature: merged}, nil
}

// defaultSignature computes a signature for tree assigning every
// distinct Symbol atom reachable from root the Real domain — the
// fallback used whenever a fresh tree (from apply or clone) is not
// otherwise constrained.
func defaultSignature(root *ExprNode) Signature {
	sig := Signature{}
	var walk func(n *ExprNode)
	walk = func(n *ExprNode) {
		if n == nil {
			return
		}
		if n.IsLeaf {
			if n.Atom.IsSymbol() {
				if _, ok := sig[n.Atom.Symbol]; !ok {
					sig[n.Atom.Symbol] = DomainReal
				}
			}
			return
		}
		for c := n.Down; c != nil; c = c.Next {
			walk(c)
		}
	}
	walk(root)
	return sig
}

// NewExpression wraps root with a freshly computed default signature.
// Root.Next must be nil.
func NewExpression(root *ExprNode) Expression {
	return Expression{Root: root, Signature: defaultSignature(root)}
}
