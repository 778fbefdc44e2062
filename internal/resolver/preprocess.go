package resolver

import (
	"fmt"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/diagnostics"
	"github.com/f/onyx-lang/internal/typesystem"
)

// PositionalArg is one argument in a call's flattened positional
// stream, after call-site splats have been expanded into the tuple
// elements they stand for.
type PositionalArg struct {
	Expr      ast.Expression // nil for an argument synthesized from a splat
	Type      typesystem.Type
	FromSplat bool
}

// Preprocess expands every *ast.Splat in call.Args into the positional
// arguments its tuple value stands for, and otherwise passes positional
// arguments through unchanged. It is the only place that raises
// NotATuple and SplatUnion: both are properties of the splatted
// expression's type alone, independent of which overload of the call
// ends up matching.
func Preprocess(env *Env, call *ast.Call) ([]PositionalArg, error) {
	out := make([]PositionalArg, 0, len(call.Args))
	for _, arg := range call.Args {
		splat, ok := arg.(*ast.Splat)
		if !ok {
			out = append(out, PositionalArg{Expr: arg, Type: env.TypeOf(arg)})
			continue
		}
		t := env.TypeOf(splat.Value)
		if typesystem.IsUnion(t) {
			return nil, diagnostics.New(diagnostics.CodeSplatUnion, splat.GetToken(),
				fmt.Sprintf("splatting a union (%s) is not yet supported", t.String()))
		}
		elems, ok := typesystem.TupleElements(t)
		if !ok {
			typeName := "?"
			if t != nil {
				typeName = t.String()
			}
			return nil, diagnostics.New(diagnostics.CodeNotATuple, splat.GetToken(),
				fmt.Sprintf("argument to splat must be a tuple, not %s", typeName))
		}
		for _, el := range elems {
			out = append(out, PositionalArg{Type: el, FromSplat: true})
		}
	}
	return out, nil
}
