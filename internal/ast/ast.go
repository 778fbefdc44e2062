// Package ast defines the tagged-variant AST the resolver consumes.
//
// The language modeled here is a small, statically typed, class-based
// dialect in the Ruby/Crystal family: type declarations with single
// inheritance, method definitions with splat parameters and defaults,
// and call sites that may use positional arguments, named arguments,
// and call-site splats of tuple-typed expressions.
package ast

import "github.com/f/onyx-lang/internal/token"

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that appears at program or body top level.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// TypeExpr is a syntactic type restriction, e.g. "Int32" or "String|Nil".
type TypeExpr interface {
	Node
	typeNode()
	GetToken() token.Token
	String() string
}

// Visitor dispatches on concrete node kind. The matcher never needs
// one (it pattern-matches on *Call directly, per the resolver's design
// notes), and the declaration pass type-switches on statements
// directly as well.
type Visitor interface {
	VisitProgram(*Program)
	VisitTypeDeclaration(*TypeDeclaration)
	VisitDef(*Def)
	VisitExpressionStatement(*ExpressionStatement)
	VisitIdentifier(*Identifier)
	VisitIntegerLiteral(*IntegerLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitCharLiteral(*CharLiteral)
	VisitBooleanLiteral(*BooleanLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitTupleLiteral(*TupleLiteral)
	VisitSplat(*Splat)
	VisitCall(*Call)
}

// Program is the root node of a parsed source file.
type Program struct {
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
