package ast

import "github.com/f/onyx-lang/internal/token"

// NamedTypeExpr is a single type name used as a restriction, e.g. "Int32".
type NamedTypeExpr struct {
	Token token.Token
	Name  string
}

func (t *NamedTypeExpr) typeNode()            {}
func (t *NamedTypeExpr) TokenLiteral() string { return t.Token.Lexeme }
func (t *NamedTypeExpr) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}
func (t *NamedTypeExpr) Accept(v Visitor) {}
func (t *NamedTypeExpr) String() string   { return t.Name }

// UnionTypeExpr is a restriction written as "A|B|C".
type UnionTypeExpr struct {
	Token   token.Token
	Members []TypeExpr
}

func (t *UnionTypeExpr) typeNode()            {}
func (t *UnionTypeExpr) TokenLiteral() string { return t.Token.Lexeme }
func (t *UnionTypeExpr) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}
func (t *UnionTypeExpr) Accept(v Visitor) {}
func (t *UnionTypeExpr) String() string {
	s := ""
	for i, m := range t.Members {
		if i > 0 {
			s += "|"
		}
		s += m.String()
	}
	return s
}

// TypeDeclaration declares a class and, optionally, its superclass.
// type Dog < Animal
type TypeDeclaration struct {
	Token      token.Token // the 'type' token
	Name       *Identifier
	Superclass *Identifier // nil for a root class
}

func (td *TypeDeclaration) Accept(v Visitor)      { v.VisitTypeDeclaration(td) }
func (td *TypeDeclaration) statementNode()        {}
func (td *TypeDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypeDeclaration) GetToken() token.Token { return td.Token }
