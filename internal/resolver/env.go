// Package resolver implements call resolution: preprocessing call-site
// splats, partitioning variadic parameter bindings, matching a call
// against each overload of a method, and ranking the matches down to
// the one the call actually targets.
package resolver

import (
	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/config"
	"github.com/f/onyx-lang/internal/typesystem"
)

// Env is the minimal context the resolver needs: the class registry,
// and the already-known static type of every argument expression that
// isn't a literal the resolver can type itself. Full type inference is
// a separate concern; the resolver only consults types, it never infers
// them for expressions it doesn't recognize.
type Env struct {
	Registry *typesystem.Registry
	ExprType map[ast.Expression]typesystem.Type

	// Bindings remembers, for the most recent invocation of each def
	// resolved through this Env, the concrete types its own formal
	// parameters were bound to. Resolve populates it; ForwardSuperArgs
	// consults it to reconstruct an implicit super call's arguments.
	Bindings map[*ast.Def]*Binding
}

// NewEnv returns an Env backed by reg with an empty expression-type map.
func NewEnv(reg *typesystem.Registry) *Env {
	return &Env{Registry: reg, ExprType: map[ast.Expression]typesystem.Type{}}
}

// TypeOf returns the static type of expr: literals are typed directly
// against well-known registry classes, tuple literals recurse
// element-wise, and anything else is looked up in ExprType (nil if
// absent, meaning "unknown to this resolver run").
func (e *Env) TypeOf(expr ast.Expression) typesystem.Type {
	switch v := expr.(type) {
	case *ast.IntegerLiteral:
		return e.classType(config.Int32TypeName)
	case *ast.FloatLiteral:
		return e.classType(config.Float64TypeName)
	case *ast.StringLiteral:
		return e.classType(config.StringTypeName)
	case *ast.CharLiteral:
		return e.classType(config.CharTypeName)
	case *ast.BooleanLiteral:
		return e.classType(config.BoolTypeName)
	case *ast.NilLiteral:
		return e.classType(config.NilTypeName)
	case *ast.TupleLiteral:
		elems := make([]typesystem.Type, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = e.TypeOf(el)
		}
		return &typesystem.Tuple{Elements: elems}
	default:
		return e.ExprType[expr]
	}
}

func (e *Env) classType(name string) typesystem.Type {
	if c, ok := e.Registry.Lookup(name); ok {
		return c
	}
	return e.Registry.Declare(name, config.ObjectTypeName)
}
