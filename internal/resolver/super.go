package resolver

import (
	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/typesystem"
)

// Binding records the concrete types one invocation of a def bound its
// own formal parameters to: a non-splat formal's actual argument type,
// and the splat formal's captured element types in order. Resolve
// records one of these for every def it successfully resolves a call
// to, keyed by that def, so that a super call written inside that def
// sees what this particular invocation actually bound rather than just
// the formals' static restrictions. Matching the single-threaded,
// one-resolution-at-a-time core this engine implements, only the most
// recent invocation of a given def is remembered.
type Binding struct {
	Args       map[string]typesystem.Type
	SplatElems map[string][]typesystem.Type
}

// recordBinding stores def's binding for this invocation, derived from
// part (the Partition the matcher used) and call's named arguments.
func recordBinding(env *Env, call *ast.Call, def *ast.Def, part *Partition) {
	if env.Bindings == nil {
		env.Bindings = map[*ast.Def]*Binding{}
	}
	b := &Binding{Args: map[string]typesystem.Type{}, SplatElems: map[string][]typesystem.Type{}}

	i := 0
	for _, pa := range part.Before {
		b.Args[def.Args[i].Name] = pa.Type
		i++
	}
	if def.IsVariadic() {
		elems := make([]typesystem.Type, len(part.Splat))
		for j, pa := range part.Splat {
			elems[j] = pa.Type
		}
		b.SplatElems[def.Args[def.SplatIndex].Name] = elems
		i++
		for _, pa := range part.After {
			b.Args[def.Args[i].Name] = pa.Type
			i++
		}
	}
	for _, na := range call.NamedArgs {
		b.Args[na.Name] = env.TypeOf(na.Value)
	}
	env.Bindings[def] = b
}

// ForwardSuperArgs reconstructs an implicit super call's argument list
// from def's own formal parameters: each non-splat formal forwards as
// a positional reference, and the splat formal forwards as a Splat
// wrapper over its own tuple variable, per the super-call forwarding
// rule. It prefers the concrete types def's own invocation actually
// bound (see Binding); if none were recorded (def was never itself
// resolved through this Env), it falls back to each formal's static
// restriction, which is the best a purely static approximation can do.
func ForwardSuperArgs(env *Env, def *ast.Def) []ast.Expression {
	binding := env.Bindings[def]
	args := make([]ast.Expression, 0, len(def.Args))
	for i, a := range def.Args {
		id := &ast.Identifier{Value: a.Name}
		if i == def.SplatIndex {
			env.ExprType[id] = &typesystem.Tuple{Elements: splatElemTypes(env, binding, a)}
			args = append(args, &ast.Splat{Value: id})
			continue
		}
		env.ExprType[id] = boundType(env, binding, a)
		args = append(args, id)
	}
	return args
}

func boundType(env *Env, binding *Binding, a *ast.Arg) typesystem.Type {
	if binding != nil {
		if t, ok := binding.Args[a.Name]; ok {
			return t
		}
	}
	return resolveRestriction(env, a.Restriction)
}

func splatElemTypes(env *Env, binding *Binding, a *ast.Arg) []typesystem.Type {
	if binding != nil {
		if elems, ok := binding.SplatElems[a.Name]; ok {
			return elems
		}
	}
	t := resolveRestriction(env, a.Restriction)
	if t == nil {
		return nil
	}
	return []typesystem.Type{t}
}
