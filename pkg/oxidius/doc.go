// Package oxidius implements the symbolic rewrite engine for the Oxidius
// expression language: a scoped tree store, structural equality and
// cloning, one-sided unification (the matcher), substitution application,
// and the exhaustive transform search.
//
// The engine is single-threaded and synchronous by design (see the
// Scope type): no operation in this package blocks, spawns goroutines,
// or suspends. Callers needing concurrent evaluation of independent
// expressions should run separate Scopes on separate goroutines rather
// than share one.
package oxidius
