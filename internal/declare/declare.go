// Package declare runs the declaration pass: it walks an already-parsed
// program and populates a type registry and a method table, the
// prerequisite state the resolver consults for every call. Building
// that program from source text is out of scope here, mirroring the
// teacher's own split between its declaration pass and its lexer/parser
// front end; callers hand declare a *ast.Program built however they
// see fit (directly, or via the scenario package's YAML loader).
package declare

import (
	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/symbols"
	"github.com/f/onyx-lang/internal/typesystem"
)

// Result holds the registry and method table a program declares, ready
// for the resolver to consult.
type Result struct {
	Registry *typesystem.Registry
	Table    *symbols.Table
}

// Run performs two passes over program: first every TypeDeclaration is
// registered (so forward references between types resolve), then every
// Def is registered against its already-declared owner. Redefining a
// name with an identical owner/parameter signature is not an error
// here: per the redefinition-idempotence invariant, both defs reach the
// method table and the ranker, which lets the later declaration win and
// the earlier one never participate, rather than rejecting the program
// outright.
func Run(program *ast.Program) (*Result, error) {
	res := &Result{Registry: typesystem.NewRegistry(), Table: symbols.NewTable()}

	for _, stmt := range program.Statements {
		td, ok := stmt.(*ast.TypeDeclaration)
		if !ok {
			continue
		}
		super := ""
		if td.Superclass != nil {
			super = td.Superclass.Value
		}
		res.Registry.Declare(td.Name.Value, super)
		res.Table.DeclareType(td.Name.Value, super)
	}

	for _, stmt := range program.Statements {
		def, ok := stmt.(*ast.Def)
		if !ok {
			continue
		}
		res.Table.AddDef(def)
	}

	return res, nil
}
