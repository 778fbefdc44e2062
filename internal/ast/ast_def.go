package ast

import "github.com/f/onyx-lang/internal/token"

// Arg is a single formal parameter of a Def: a name, an optional type
// restriction, and an optional default value.
type Arg struct {
	Token        token.Token
	Name         string
	Restriction  TypeExpr   // nil if unrestricted
	DefaultValue Expression // nil if required
}

func (a *Arg) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Arg) GetToken() token.Token { return a.Token }
func (a *Arg) Accept(v Visitor)      {}

// HasDefault reports whether omitting this argument at a call site is
// legal because a default value fills it in.
func (a *Arg) HasDefault() bool { return a.DefaultValue != nil }

// Def is a method definition. SplatIndex is the position of the single
// splat parameter within Args, or -1 if there is none. BlockArg is the
// trailing block parameter's name, or "" if the def takes no block.
// Owner is the name of the type the def is declared on; whoever builds
// the Def sets it, and the declaration pass files the def under it.
type Def struct {
	Token      token.Token // the 'def' token
	Name       string
	Args       []*Arg
	SplatIndex int // -1 means "no splat parameter"
	BlockArg   string
	ReturnType TypeExpr // nil if unannotated
	Owner      string
	Body       []Statement
}

func (d *Def) Accept(v Visitor)      { v.VisitDef(d) }
func (d *Def) statementNode()        {}
func (d *Def) TokenLiteral() string  { return d.Token.Lexeme }
func (d *Def) GetToken() token.Token { return d.Token }

// IsVariadic reports whether this def has a splat parameter.
func (d *Def) IsVariadic() bool { return d.SplatIndex >= 0 }

// RequiredArity is the minimum number of positional arguments a call
// must supply: every Arg up to the splat (exclusive) or to the end,
// minus those with defaults. The splat parameter itself contributes
// zero to the minimum since it may absorb nothing.
func (d *Def) RequiredArity() int {
	n := 0
	for i, a := range d.Args {
		if i == d.SplatIndex {
			continue
		}
		if !a.HasDefault() {
			n++
		}
	}
	return n
}

// MaxFixedArity is the number of non-splat, non-block parameters. A
// variadic def has no upper bound on accepted positional arguments.
func (d *Def) MaxFixedArity() int {
	n := 0
	for i := range d.Args {
		if i == d.SplatIndex {
			continue
		}
		n++
	}
	return n
}

// Splat wraps an expression appearing at a call site as "*expr": the
// expression's value, which must be a tuple, is unpacked into however
// many positional arguments its element count requires.
type Splat struct {
	Token token.Token // the '*' token
	Value Expression
}

func (s *Splat) Accept(v Visitor)      { v.VisitSplat(s) }
func (s *Splat) expressionNode()       {}
func (s *Splat) TokenLiteral() string  { return s.Token.Lexeme }
func (s *Splat) GetToken() token.Token { return s.Token }

// NamedArgument is a "name: value" argument at a call site.
type NamedArgument struct {
	Token token.Token
	Name  string
	Value Expression
}

func (na *NamedArgument) TokenLiteral() string  { return na.Token.Lexeme }
func (na *NamedArgument) GetToken() token.Token { return na.Token }

// Call is a method invocation. Args holds positional arguments in
// source order and may contain *Splat entries. TargetDefs and
// ResolvedType are filled in by the resolver, not the parser.
//
// EnclosingDef is the method this call is written inside of. The
// resolver reads it only for an implicit `super` (IsSuperCall with no
// explicit Args or NamedArgs), to reconstruct the argument list its
// own formal parameters forward; an ordinary call's static receiver
// type is passed to the resolver separately.
type Call struct {
	Token       token.Token // the call's name token, or '(' if anonymous
	Receiver    Expression  // nil for an implicit-self call
	Name        string
	Args        []Expression
	NamedArgs   []*NamedArgument
	HasBlock    bool
	IsSuperCall bool

	EnclosingDef *Def

	// Populated by the resolver.
	TargetDefs   []*Def
	ResolvedType string
}

func (c *Call) Accept(v Visitor)      { v.VisitCall(c) }
func (c *Call) expressionNode()       {}
func (c *Call) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Call) GetToken() token.Token { return c.Token }
