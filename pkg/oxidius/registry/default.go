package registry

import (
	"fmt"

	"github.com/oxidius-lang/oxidius/pkg/oxidius"
	"github.com/oxidius-lang/oxidius/pkg/oxidius/lang"
)

// NewDefaultRegistry builds the registry every driver should start
// from. It pre-registers "transform", the only builtin this module's
// type vocabulary specifies a contract for; nothing else (a "relation"
// builtin, etc.) is invented, since no source this module is grounded
// on defines its semantics.
func NewDefaultRegistry() *Registry {
	b := &builder{builtins: make(map[string]Builtin)}
	b.register("transform", transformBuiltin)
	return b.build()
}

// transformBuiltin expects args = [Expression, Statement] and honors
// two options: "exhaustive" (Truth) and "depth" (Integer). Unrecognized
// options are ignored rather than rejected, since PushOption is meant
// to be extensible.
func transformBuiltin(args []lang.Value, opts map[string]lang.Value) (lang.Result, error) {
	if len(args) != 2 {
		return lang.Result{}, &oxidius.ArityMismatchError{Builtin: "transform", Expected: 2, Got: len(args)}
	}
	if args[0].Kind != lang.ValueExpression {
		return lang.Result{}, fmt.Errorf("transform: argument 1 must be an Expression, got %s", args[0].Kind)
	}
	if args[1].Kind != lang.ValueStatement {
		return lang.Result{}, fmt.Errorf("transform: argument 2 must be a Statement, got %s", args[1].Kind)
	}

	transformOpts := oxidius.DefaultTransformOptions()
	if v, ok := opts["exhaustive"]; ok {
		if v.Kind != lang.ValueTruth {
			return lang.Result{}, fmt.Errorf("transform: option %q must be Truth, got %s", "exhaustive", v.Kind)
		}
		transformOpts.Exhaustive = v.Truth
	}
	if v, ok := opts["depth"]; ok {
		if v.Kind != lang.ValueInteger {
			return lang.Result{}, fmt.Errorf("transform: option %q must be Integer, got %s", "depth", v.Kind)
		}
		transformOpts.Depth = int(v.Integer)
	}

	results := oxidius.Transform(args[0].Expression, args[1].Statement, transformOpts)

	values := make(lang.Tuple, len(results))
	for i, r := range results {
		values[i] = lang.NewExpressionValue(r)
	}
	return lang.NewValueResult(lang.NewTupleValue(values)), nil
}
