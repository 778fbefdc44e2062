package resolver_test

import (
	"testing"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/declare"
	"github.com/f/onyx-lang/internal/resolver"
	"github.com/f/onyx-lang/internal/typesystem"
)

// Super-call forwarding: an implicit `super` inside Dog#speak
// reconstructs its argument list from speak's own formal parameters —
// here a single splat — and looks it up starting at Dog's ancestor,
// Animal. Per the tuple-forwarding invariant, the forwarded splat
// carries the concrete element types the enclosing invocation actually
// captured, not a generic placeholder.
func TestSuperCallForwardsOwnSplatWithConcreteTypes(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Animal"}},
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Dog"}, Superclass: &ast.Identifier{Value: "Animal"}},
	}}
	animalSpeak := &ast.Def{Name: "speak", Owner: "Animal", SplatIndex: 0, Args: []*ast.Arg{{Name: "args"}}}
	dogSpeak := &ast.Def{Name: "speak", Owner: "Dog", SplatIndex: 0, Args: []*ast.Arg{{Name: "args"}}}
	prog.Statements = append(prog.Statements, animalSpeak, dogSpeak)

	res, err := declare.Run(prog)
	if err != nil {
		t.Fatalf("declare.Run: %v", err)
	}
	primitives(res.Registry)
	env := resolver.NewEnv(res.Registry)

	outer := &ast.Call{Name: "speak", Args: []ast.Expression{intLit(1), intLit(2)}}
	got, err := resolver.Resolve(env, res.Table, "Dog", outer)
	if err != nil {
		t.Fatalf("Resolve outer call: %v", err)
	}
	if got != dogSpeak {
		t.Fatalf("outer call resolved to %v, want Dog#speak", got)
	}

	sup := &ast.Call{Name: "speak", IsSuperCall: true, EnclosingDef: dogSpeak}
	superGot, err := resolver.Resolve(env, res.Table, "Dog", sup)
	if err != nil {
		t.Fatalf("Resolve super call: %v", err)
	}
	if superGot != animalSpeak {
		t.Errorf("super call resolved to %v, want Animal#speak", superGot)
	}

	if len(sup.Args) != 1 {
		t.Fatalf("expected the reconstructed super call to hold a single Splat arg, got %d", len(sup.Args))
	}
	splat, ok := sup.Args[0].(*ast.Splat)
	if !ok {
		t.Fatalf("reconstructed arg = %T, want *ast.Splat", sup.Args[0])
	}
	tupleType := env.TypeOf(splat.Value)
	tup, ok := tupleType.(*typesystem.Tuple)
	if !ok {
		t.Fatalf("forwarded splat value's type = %T, want *typesystem.Tuple", tupleType)
	}
	if len(tup.Elements) != 2 || tup.Elements[0].String() != "Int32" || tup.Elements[1].String() != "Int32" {
		t.Errorf("forwarded tuple = %v, want (Int32, Int32)", tup.Elements)
	}
}

// When a def's formal parameters are not splat, super forwards each as
// a plain positional reference carrying the type this invocation bound.
func TestSuperCallForwardsFixedArityParameters(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Animal"}},
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Dog"}, Superclass: &ast.Identifier{Value: "Animal"}},
	}}
	animalGreet := &ast.Def{Name: "greet", Owner: "Animal", SplatIndex: -1,
		Args: []*ast.Arg{{Name: "name", Restriction: restriction("String")}}}
	dogGreet := &ast.Def{Name: "greet", Owner: "Dog", SplatIndex: -1,
		Args: []*ast.Arg{{Name: "name", Restriction: restriction("String")}}}
	prog.Statements = append(prog.Statements, animalGreet, dogGreet)

	res, err := declare.Run(prog)
	if err != nil {
		t.Fatalf("declare.Run: %v", err)
	}
	primitives(res.Registry)
	env := resolver.NewEnv(res.Registry)

	outer := &ast.Call{Name: "greet", Args: []ast.Expression{strLit("Rex")}}
	if _, err := resolver.Resolve(env, res.Table, "Dog", outer); err != nil {
		t.Fatalf("Resolve outer call: %v", err)
	}

	sup := &ast.Call{Name: "greet", IsSuperCall: true, EnclosingDef: dogGreet}
	got, err := resolver.Resolve(env, res.Table, "Dog", sup)
	if err != nil {
		t.Fatalf("Resolve super call: %v", err)
	}
	if got != animalGreet {
		t.Errorf("super call resolved to %v, want Animal#greet", got)
	}
	if len(sup.Args) != 1 {
		t.Fatalf("expected one forwarded positional arg, got %d", len(sup.Args))
	}
	if _, ok := sup.Args[0].(*ast.Identifier); !ok {
		t.Fatalf("forwarded arg = %T, want *ast.Identifier", sup.Args[0])
	}
}
