package oxidius

import (
	"errors"
	"fmt"
)

// SignatureConflictError reports that MergeSignatures found a symbol
// bound to two different domains. A caller that receives it should
// report it and abort the current action.
type SignatureConflictError struct {
	Symbol      string
	Left, Right Domain
}

func (e *SignatureConflictError) Error() string {
	return fmt.Sprintf("signature conflict on %q: %s vs %s", e.Symbol, e.Left, e.Right)
}

// ArityMismatchError reports that a builtin received the wrong number of
// arguments. It carries only the expected and received counts; an
// argument of the wrong kind is not reported with this type.
type ArityMismatchError struct {
	Builtin  string
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Builtin, e.Expected, e.Got)
}

// UnknownSymbolError reports a reference to a symbol before its definition.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}

// UnknownFunctionError reports a call to an undefined builtin.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// ErrDoubleFree is returned by Scope.Drop instead of panicking when the
// scope is constructed with Strict=false. In the default (Strict=true)
// configuration a double-free aborts the process, mirroring an
// unconditional C abort() on double-free.
var ErrDoubleFree = errors.New("double free detected")

// DoubleFreeError names the offending node in both the strict panic and
// the non-strict returned error, so callers can log the aliased address.
type DoubleFreeError struct {
	Node *ExprNode
}

func (e *DoubleFreeError) Error() string {
	return fmt.Sprintf("double free detected on node %p", e.Node)
}

func (e *DoubleFreeError) Unwrap() error { return ErrDoubleFree }

// BucketOverflowError reports that a dedup table row was full when push
// was attempted. This is a diagnostic, not a correctness error: the
// candidate expression is silently dropped and the caller may choose to
// log this value for tuning M/N.
type BucketOverflowError struct {
	Bucket int
}

func (e *BucketOverflowError) Error() string {
	return fmt.Sprintf("dedup table bucket %d overflowed (row full)", e.Bucket)
}
