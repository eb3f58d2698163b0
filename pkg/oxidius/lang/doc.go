// Package lang holds the external data contracts a lexer, parser, or
// driver built on top of pkg/oxidius would exchange: the resolved value
// vocabulary (Value, Tuple, Argument), the action vocabulary a driver
// dispatches (Action), and the result a builtin returns (Result).
//
// This package defines types only. It does not lex, parse, or drive
// anything: no token stream, no grammar, no evaluation loop.
package lang
