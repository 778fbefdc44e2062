package declare_test

import (
	"testing"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/declare"
)

func TestRunBuildsAncestorChain(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Animal"}},
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Dog"}, Superclass: &ast.Identifier{Value: "Animal"}},
		&ast.Def{Name: "speak", Owner: "Animal", SplatIndex: -1},
	}}

	res, err := declare.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	defs := res.Table.Lookup("Dog", "speak")
	if len(defs) != 1 {
		t.Fatalf("Dog should inherit Animal#speak, got %d defs", len(defs))
	}

	dog, ok := res.Registry.Lookup("Dog")
	if !ok {
		t.Fatal("Dog not registered")
	}
	animal, ok := res.Registry.Lookup("Animal")
	if !ok {
		t.Fatal("Animal not registered")
	}
	if !dog.IsSubclassOf(animal) {
		t.Error("Dog should be a subclass of Animal")
	}
}

func TestRunKeepsBothRedefinitionsWithIdenticalSignature(t *testing.T) {
	makeDef := func() *ast.Def {
		return &ast.Def{Name: "speak", Owner: "Animal", SplatIndex: -1, Args: []*ast.Arg{{Name: "loudly"}}}
	}
	first, second := makeDef(), makeDef()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Animal"}},
		first,
		second,
	}}

	res, err := declare.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Redefining a name with an identical signature is not a
	// declaration-time error: both defs reach the method table so the
	// ranker, not the declaration pass, decides that the later one
	// wins and the earlier one never participates.
	defs := res.Table.OwnDefs("Animal", "speak")
	if len(defs) != 2 {
		t.Fatalf("expected both redefinitions to reach the method table, got %d", len(defs))
	}
	if defs[0] != first || defs[1] != second {
		t.Fatal("expected redefinitions to be kept in declaration order")
	}
}

func TestRunAllowsOverloadsWithDistinctSignatures(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.TypeDeclaration{Name: &ast.Identifier{Value: "Animal"}},
		&ast.Def{Name: "speak", Owner: "Animal", SplatIndex: -1, Args: []*ast.Arg{{Name: "a", Restriction: &ast.NamedTypeExpr{Name: "Int32"}}}},
		&ast.Def{Name: "speak", Owner: "Animal", SplatIndex: -1, Args: []*ast.Arg{{Name: "a", Restriction: &ast.NamedTypeExpr{Name: "String"}}}},
	}}

	res, err := declare.Run(prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(res.Table.OwnDefs("Animal", "speak")); got != 2 {
		t.Fatalf("expected 2 overloads of speak, got %d", got)
	}
}
