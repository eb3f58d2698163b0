package lang

import "github.com/oxidius-lang/oxidius/pkg/oxidius"

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionDefineSymbol ActionKind = iota
	ActionDefineAxiom
	ActionCall
	ActionPushOption
)

func (k ActionKind) String() string {
	switch k {
	case ActionDefineSymbol:
		return "DefineSymbol"
	case ActionDefineAxiom:
		return "DefineAxiom"
	case ActionCall:
		return "Call"
	case ActionPushOption:
		return "PushOption"
	default:
		return "ActionKind(?)"
	}
}

// DefineSymbol binds identifier to value in the current environment.
type DefineSymbol struct {
	Identifier string
	Value      Value
}

// DefineAxiom introduces a rewrite rule. Value carries the resolved
// Statement the axiom asserts; a parser's intermediate "symbolic scope"
// representation is out of scope here.
type DefineAxiom struct {
	Value oxidius.Statement
}

// Call invokes a registered builtin by name with a positional argument
// list.
type Call struct {
	Function string
	Args     []Value
}

// PushOption attaches a named option to the action currently being
// built, e.g. a transform call's exhaustive/depth knobs.
type PushOption struct {
	Name string
	Arg  Value
}

// Action is the closed sum of things a driver can do: define a symbol,
// define an axiom, call a builtin, or push an option onto the action
// under construction.
type Action struct {
	Kind ActionKind

	DefineSymbol DefineSymbol
	DefineAxiom  DefineAxiom
	Call         Call
	PushOption   PushOption
}

func NewDefineSymbolAction(identifier string, value Value) Action {
	return Action{Kind: ActionDefineSymbol, DefineSymbol: DefineSymbol{Identifier: identifier, Value: value}}
}

func NewDefineAxiomAction(stmt oxidius.Statement) Action {
	return Action{Kind: ActionDefineAxiom, DefineAxiom: DefineAxiom{Value: stmt}}
}

func NewCallAction(function string, args []Value) Action {
	return Action{Kind: ActionCall, Call: Call{Function: function, Args: args}}
}

func NewPushOptionAction(name string, arg Value) Action {
	return Action{Kind: ActionPushOption, PushOption: PushOption{Name: name, Arg: arg}}
}
