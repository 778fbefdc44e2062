package resolver

import (
	"fmt"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/config"
	"github.com/f/onyx-lang/internal/diagnostics"
	"github.com/f/onyx-lang/internal/typesystem"
)

// Candidate is one def that matched a call, along with the
// specificity score the ranker uses to pick among several matches.
type Candidate struct {
	Def   *ast.Def
	Score int
}

// Match checks whether def accepts call given its already-flattened
// positional arguments. A nil, nil result means the def simply doesn't
// match (a restriction or block mismatch, folded into "no overload
// matches" by Resolve). A non-nil error is a malformed-call
// diagnostic: a wrong number of positional arguments (from
// PartitionArgs), an unknown or duplicate named argument, a named
// argument that targets the splat parameter or a parameter already
// bound positionally, or a still-missing required argument after
// binding. Resolve reports such an error only when def is the call's
// only candidate overload; otherwise it too ends in "no overload
// matches" if no other overload matches.
func Match(env *Env, call *ast.Call, def *ast.Def, positional []PositionalArg) (*Candidate, error) {
	part, err := PartitionArgs(call.Name, call, def, positional)
	if err != nil {
		return nil, err
	}

	bound := make(map[int]PositionalArg, len(def.Args))
	for i, a := range part.Before {
		bound[i] = a
	}
	for i, a := range part.After {
		bound[len(def.Args)-len(part.After)+i] = a
	}

	if def.IsVariadic() && len(part.Splat) > 0 {
		splatArg := def.Args[def.SplatIndex]
		restriction := resolveRestriction(env, splatArg.Restriction)
		for _, el := range part.Splat {
			if !env.Registry.CompatibleWith(el.Type, restriction) {
				return nil, nil
			}
		}
	}

	seenNamed := map[string]bool{}
	for _, na := range call.NamedArgs {
		if seenNamed[na.Name] {
			return nil, diagnostics.New(diagnostics.CodeNamedArgDup, na.GetToken(),
				fmt.Sprintf("duplicate named argument: %s", na.Name))
		}
		seenNamed[na.Name] = true

		idx := -1
		for i, a := range def.Args {
			if a.Name == na.Name {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, diagnostics.New(diagnostics.CodeNamedArgUnknown, na.GetToken(),
				fmt.Sprintf("no argument named '%s'", na.Name))
		}
		if idx == def.SplatIndex {
			return nil, diagnostics.New(diagnostics.CodeNamedArgSplat, na.GetToken(),
				fmt.Sprintf("no argument named '%s'", na.Name))
		}
		if _, already := bound[idx]; already {
			return nil, diagnostics.New(diagnostics.CodeNamedArgDup, na.GetToken(),
				fmt.Sprintf("duplicate named argument: %s", na.Name))
		}
		bound[idx] = PositionalArg{Expr: na.Value, Type: env.TypeOf(na.Value)}
	}

	score := 0
	for i, a := range def.Args {
		if i == def.SplatIndex {
			continue
		}
		arg, ok := bound[i]
		if !ok {
			if a.HasDefault() {
				continue
			}
			return nil, diagnostics.New(diagnostics.CodeMissingArg, call.GetToken(),
				fmt.Sprintf("missing argument: %s", a.Name))
		}
		restriction := resolveRestriction(env, a.Restriction)
		if !env.Registry.CompatibleWith(arg.Type, restriction) {
			return nil, nil
		}
		score += specificity(arg.Type, restriction)
	}

	if call.HasBlock && def.BlockArg == "" {
		return nil, nil
	}

	// Absence of a splat outranks its presence, and among variadic defs
	// fewer splat-absorbed actuals outranks more, matching the ranker's
	// specificity ordering in preference to arity shape alone.
	if !def.IsVariadic() {
		score += 100
	} else {
		score -= len(part.Splat)
	}

	return &Candidate{Def: def, Score: score}, nil
}

// resolveRestriction turns a syntactic type restriction into the
// typesystem.Type the registry understands, building a Union for an
// "A|B" restriction. A nil restriction (unrestricted parameter)
// resolves to nil, which CompatibleWith treats as accept-anything.
func resolveRestriction(env *Env, t ast.TypeExpr) typesystem.Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case *ast.NamedTypeExpr:
		c, ok := env.Registry.Lookup(v.Name)
		if !ok {
			return env.Registry.Declare(v.Name, config.ObjectTypeName)
		}
		return c
	case *ast.UnionTypeExpr:
		members := make([]typesystem.Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = resolveRestriction(env, m)
		}
		return typesystem.NewUnion(members...)
	default:
		return nil
	}
}

// specificity scores how precisely argType satisfies restriction: an
// unrestricted parameter contributes nothing, an exact class match
// scores highest, and any other accepted match (a superclass
// restriction, or a union member match) scores lower but still above
// zero so that restricted parameters always outrank unrestricted ones.
func specificity(argType, restriction typesystem.Type) int {
	if restriction == nil {
		return 0
	}
	if argType == nil {
		return 1
	}
	if argType.String() == restriction.String() {
		return 4
	}
	return 1
}
