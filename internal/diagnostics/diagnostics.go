// Package diagnostics defines the structured errors the resolver
// reports: a stable error code, the source token the error anchors to,
// and a human-readable message built from that error's own kind.
package diagnostics

import "github.com/f/onyx-lang/internal/token"

// Code identifies a diagnostic's kind, independent of its message
// text, so callers (tests, the daemon, the CLI) can branch on kind
// without string-matching messages.
type Code string

const (
	CodeUndefinedMethod  Code = "undefined_method"
	CodeWrongArity       Code = "wrong_arity"
	CodeNoOverloadMatch  Code = "no_overload_matches"
	CodeAmbiguous        Code = "ambiguous_call"
	CodeNotATuple        Code = "not_a_tuple"
	CodeSplatUnion       Code = "splat_union"
	CodeNamedArgUnknown  Code = "named_arg_unknown"
	CodeNamedArgDup      Code = "named_arg_duplicate"
	CodeNamedArgSplat    Code = "named_arg_covers_splat"
	CodeMissingArg       Code = "missing_argument"
)

// Error is a single diagnostic: a code, the token it is anchored to,
// and the rendered message. It implements the error interface so it
// composes with ordinary Go error handling.
type Error struct {
	Code    Code
	Token   token.Token
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds a diagnostic of the given code anchored at tok with
// message already rendered by the caller (the resolver owns the exact
// wording for each code, since several codes are reproduced verbatim
// in tests).
func New(code Code, tok token.Token, message string) *Error {
	return &Error{Code: code, Token: tok, Message: message}
}
