// Package registry holds the process-lifetime map from a builtin's name
// to its Go implementation. A Registry is built once, during startup,
// and never mutated afterward — there is no Register method exposed
// once construction finishes, so concurrent lookups need no locking.
package registry

import (
	"github.com/oxidius-lang/oxidius/pkg/oxidius/lang"
)

// Builtin is a callable function reachable from the language's Call
// action. opts carries whatever PushOption actions preceded the call,
// keyed by option name.
type Builtin func(args []lang.Value, opts map[string]lang.Value) (lang.Result, error)

// Registry is an immutable Symbol -> Builtin table.
type Registry struct {
	builtins map[string]Builtin
}

// Lookup returns the builtin registered under name, or ok=false if none
// exists.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	b, ok := r.builtins[name]
	return b, ok
}

// Names returns every registered builtin name, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builtins))
	for name := range r.builtins {
		names = append(names, name)
	}
	return names
}

// builder accumulates builtins before NewDefaultRegistry freezes them
// into a Registry. It is not exported: callers get a finished Registry,
// never a mutable one.
type builder struct {
	builtins map[string]Builtin
}

func (b *builder) register(name string, fn Builtin) {
	b.builtins[name] = fn
}

func (b *builder) build() *Registry {
	return &Registry{builtins: b.builtins}
}
