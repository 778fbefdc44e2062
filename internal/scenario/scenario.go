// Package scenario loads a resolution request from YAML: the set of
// types and method overloads in play, and the calls to resolve against
// them. It stands in for the parser a full compiler front end would
// normally hand the resolver an AST from; since lexing and parsing
// source text is out of scope, scenario files are how the CLI and the
// daemon exercise the resolver without one, in the same spirit as the
// teacher's own yaml-tagged internal/ext config structs.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/config"
	"github.com/f/onyx-lang/internal/resolver"
	"github.com/f/onyx-lang/internal/symbols"
	"github.com/f/onyx-lang/internal/token"
	"github.com/f/onyx-lang/internal/typesystem"
)

// File is the top-level shape of a scenario document.
type File struct {
	Types []TypeDecl `yaml:"types"`
	Defs  []DefDecl  `yaml:"defs"`
	Calls []CallDecl `yaml:"calls"`
}

// TypeDecl declares one class and its superclass.
type TypeDecl struct {
	Name       string `yaml:"name"`
	Superclass string `yaml:"superclass,omitempty"`
}

// ArgDecl declares one formal parameter.
type ArgDecl struct {
	Name        string `yaml:"name"`
	Restriction string `yaml:"restriction,omitempty"`
	Default     string `yaml:"default,omitempty"`
	Splat       bool   `yaml:"splat,omitempty"`
}

// DefDecl declares one method overload.
type DefDecl struct {
	Owner      string    `yaml:"owner"`
	Name       string    `yaml:"name"`
	Args       []ArgDecl `yaml:"args,omitempty"`
	Block      string    `yaml:"block,omitempty"`
	ReturnType string    `yaml:"return_type,omitempty"`
}

// ArgExpr is one call-site argument literal. Exactly one of the typed
// fields should be set; Splat wraps a tuple-producing sub-expression.
type ArgExpr struct {
	Int   *int64    `yaml:"int,omitempty"`
	Float *float64  `yaml:"float,omitempty"`
	Str   *string   `yaml:"str,omitempty"`
	Char  *string   `yaml:"char,omitempty"`
	Bool  *bool     `yaml:"bool,omitempty"`
	Nil   bool      `yaml:"nil,omitempty"`
	Tuple []ArgExpr `yaml:"tuple,omitempty"`
	Splat *ArgExpr  `yaml:"splat,omitempty"`

	// Typed is a bare type name standing in for an already-typed
	// expression the resolver should treat as having that static type,
	// for exercising restrictions without spelling out a literal.
	Typed string `yaml:"typed,omitempty"`
}

// NamedArgExpr is a "name: value" call-site argument.
type NamedArgExpr struct {
	Name  string  `yaml:"name"`
	Value ArgExpr `yaml:"value"`
}

// CallDecl declares one call to resolve. A super call (Super: true)
// with no Args and no NamedArgs is an *implicit* super: its argument
// list is reconstructed from the enclosing def's own formal parameters
// rather than spelled out here, the way a bare "super" forwards
// wherever it appears in a real method body. EnclosingOwner/
// EnclosingName/EnclosingIndex identify that enclosing def (its
// declared owner, name, and, since overloads share a name, which of
// its own-type overloads — 0 if there is only one).
type CallDecl struct {
	Receiver  string         `yaml:"receiver"`
	Name      string         `yaml:"name"`
	Args      []ArgExpr      `yaml:"args,omitempty"`
	NamedArgs []NamedArgExpr `yaml:"named_args,omitempty"`
	HasBlock  bool           `yaml:"has_block,omitempty"`
	Super     bool           `yaml:"super,omitempty"`

	EnclosingOwner string `yaml:"enclosing_owner,omitempty"`
	EnclosingName  string `yaml:"enclosing_name,omitempty"`
	EnclosingIndex int    `yaml:"enclosing_index,omitempty"`
}

// Parse decodes a YAML scenario document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &f, nil
}

// ToProgram converts the declared types and defs into an *ast.Program
// suitable for the declaration pass.
func (f *File) ToProgram() *ast.Program {
	prog := &ast.Program{}
	for _, t := range f.Types {
		var super *ast.Identifier
		if t.Superclass != "" {
			super = &ast.Identifier{Value: t.Superclass}
		}
		prog.Statements = append(prog.Statements, &ast.TypeDeclaration{
			Token:      token.Token{Type: token.TYPE, Lexeme: "type"},
			Name:       &ast.Identifier{Value: t.Name},
			Superclass: super,
		})
	}
	for _, d := range f.Defs {
		prog.Statements = append(prog.Statements, d.toDef())
	}
	return prog
}

func (d *DefDecl) toDef() *ast.Def {
	def := &ast.Def{
		Token:      token.Token{Type: token.DEF, Lexeme: "def"},
		Name:       d.Name,
		Owner:      d.Owner,
		BlockArg:   d.Block,
		SplatIndex: -1,
	}
	if d.ReturnType != "" {
		def.ReturnType = &ast.NamedTypeExpr{Name: d.ReturnType}
	}
	for i, a := range d.Args {
		arg := &ast.Arg{Name: a.Name}
		if a.Restriction != "" {
			arg.Restriction = &ast.NamedTypeExpr{Name: a.Restriction}
		}
		if a.Default != "" {
			arg.DefaultValue = &ast.StringLiteral{Value: a.Default}
		}
		if a.Splat {
			def.SplatIndex = i
		}
		def.Args = append(def.Args, arg)
	}
	return def
}

// ToCall converts a single call declaration into an *ast.Call. Any
// "typed" placeholder argument (standing in for an expression whose
// static type is already known rather than a literal) is registered
// into env so the resolver can look its type up by expression pointer.
// table resolves EnclosingOwner/EnclosingName/EnclosingIndex into the
// actual *ast.Def an implicit super call forwards from.
func (c *CallDecl) ToCall(env *resolver.Env, table *symbols.Table) *ast.Call {
	call := &ast.Call{
		Token:       token.Token{Type: token.IDENT, Lexeme: c.Name},
		Name:        c.Name,
		HasBlock:    c.HasBlock,
		IsSuperCall: c.Super,
	}
	if c.Super && c.EnclosingOwner != "" && c.EnclosingName != "" {
		if defs := table.OwnDefs(c.EnclosingOwner, c.EnclosingName); c.EnclosingIndex >= 0 && c.EnclosingIndex < len(defs) {
			call.EnclosingDef = defs[c.EnclosingIndex]
		}
	}
	for _, a := range c.Args {
		call.Args = append(call.Args, a.toExpr(env))
	}
	for _, na := range c.NamedArgs {
		call.NamedArgs = append(call.NamedArgs, &ast.NamedArgument{
			Name:  na.Name,
			Value: na.Value.toExpr(env),
		})
	}
	return call
}

func (a *ArgExpr) toExpr(env *resolver.Env) ast.Expression {
	switch {
	case a.Int != nil:
		return &ast.IntegerLiteral{Value: *a.Int}
	case a.Float != nil:
		return &ast.FloatLiteral{Value: *a.Float}
	case a.Str != nil:
		return &ast.StringLiteral{Value: *a.Str}
	case a.Char != nil:
		r := []rune(*a.Char)
		v := rune(0)
		if len(r) > 0 {
			v = r[0]
		}
		return &ast.CharLiteral{Value: v}
	case a.Bool != nil:
		return &ast.BooleanLiteral{Value: *a.Bool}
	case a.Nil:
		return &ast.NilLiteral{}
	case len(a.Tuple) > 0:
		tl := &ast.TupleLiteral{}
		for _, el := range a.Tuple {
			tl.Elements = append(tl.Elements, el.toExpr(env))
		}
		return tl
	case a.Splat != nil:
		return &ast.Splat{Value: a.Splat.toExpr(env)}
	default:
		id := &ast.Identifier{Value: a.Typed}
		if class, ok := env.Registry.Lookup(a.Typed); ok {
			env.ExprType[id] = class
		} else {
			env.ExprType[id] = typesystem.Type(env.Registry.Declare(a.Typed, config.ObjectTypeName))
		}
		return id
	}
}
