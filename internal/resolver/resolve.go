package resolver

import (
	"fmt"
	"strings"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/diagnostics"
	"github.com/f/onyx-lang/internal/symbols"
)

// Resolve orchestrates preprocessing, per-overload matching, and
// ranking for call, which is being resolved in the context of
// receiverType (the static type of call.Receiver, or the enclosing
// def's owner for an implicit-self call). On success it sets
// call.TargetDefs to the single matching def and call.ResolvedType to
// that def's return type name, also returns the def directly, and
// records the concrete types that def's own formals were bound to
// (see Binding) so a super call forwarding them sees the same types.
//
// An implicit super call (IsSuperCall with no explicit Args or
// NamedArgs) has its argument list reconstructed first, from
// call.EnclosingDef's own formal parameters, before lookup proceeds in
// receiverType's ancestor chain via table.LookupAbove.
func Resolve(env *Env, table *symbols.Table, receiverType string, call *ast.Call) (*ast.Def, error) {
	if call.IsSuperCall && len(call.Args) == 0 && len(call.NamedArgs) == 0 && call.EnclosingDef != nil {
		call.Args = ForwardSuperArgs(env, call.EnclosingDef)
	}

	positional, err := Preprocess(env, call)
	if err != nil {
		return nil, err
	}

	var defs []*ast.Def
	if call.IsSuperCall {
		defs = table.LookupAbove(receiverType, call.Name)
	} else {
		defs = table.Lookup(receiverType, call.Name)
	}
	if len(defs) == 0 {
		return nil, diagnostics.New(diagnostics.CodeUndefinedMethod, call.GetToken(),
			fmt.Sprintf("undefined method '%s' for %s", call.Name, receiverType))
	}

	var matches []*Candidate
	var lastErr error
	for _, def := range defs {
		cand, matchErr := Match(env, call, def, positional)
		if matchErr != nil {
			lastErr = matchErr
			continue
		}
		if cand != nil {
			matches = append(matches, cand)
		}
	}

	if len(matches) == 0 {
		if len(defs) == 1 && lastErr != nil {
			return nil, lastErr
		}
		return nil, diagnostics.New(diagnostics.CodeNoOverloadMatch, call.GetToken(),
			fmt.Sprintf("no overload matches '%s' with types %s", call.Name, argTypesList(positional)))
	}

	winner, err := Rank(call, matches)
	if err != nil {
		return nil, err
	}

	if part, perr := PartitionArgs(call.Name, call, winner.Def, positional); perr == nil {
		recordBinding(env, call, winner.Def, part)
	}

	call.TargetDefs = []*ast.Def{winner.Def}
	if winner.Def.ReturnType != nil {
		call.ResolvedType = winner.Def.ReturnType.String()
	}
	return winner.Def, nil
}

func argTypesList(args []PositionalArg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if a.Type == nil {
			parts[i] = "?"
			continue
		}
		parts[i] = a.Type.String()
	}
	return strings.Join(parts, ", ")
}
