package ast

import (
	"github.com/rillshell/rill/internal/span"
	"github.com/rillshell/rill/internal/typesystem"
)

// Expression is one parsed syntactic unit: a shape, the source span it came
// from, the type the checker inferred for it, and an optional custom
// completion the declaration attached to it. The Expr payload is owned
// exclusively; blocks referenced by id are not (they belong to the working
// set).
type Expression struct {
	Expr             Expr
	Span             span.Span
	Ty               typesystem.Type
	CustomCompletion *DeclId
}

// Garbage builds the placeholder expression error recovery leaves behind, so
// a tree stays well-formed after a syntax error.
func Garbage(sp span.Span) Expression {
	return Expression{
		Expr: &GarbageExpr{},
		Span: sp,
		Ty:   typesystem.Any,
	}
}

// Precedence returns the binding strength of an operator expression; higher
// binds tighter. Non-operator expressions have precedence 0.
func (e *Expression) Precedence() int {
	op, ok := e.Expr.(*OperatorExpr)
	if !ok {
		return 0
	}
	switch op.Op {
	case Pow:
		return 100
	case Multiply, Divide, Modulo, FloorDivision:
		return 95
	case Plus, Minus:
		return 90
	case ShiftLeft, ShiftRight:
		return 85
	case RegexMatch, NotRegexMatch, StartsWith, EndsWith,
		LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual,
		Equal, NotEqual, In, NotIn:
		return 80
	case BitAnd:
		return 75
	// case BitXor:
	// 	return 70
	case BitOr:
		return 60
	case And:
		return 50
	case Or:
		return 40
	}
	return 0
}

// AsBlock returns the referenced block id if this is a block expression.
func (e *Expression) AsBlock() (BlockId, bool) {
	if block, ok := e.Expr.(*BlockRef); ok {
		return block.ID, true
	}
	return 0, false
}

// AsRowConditionBlock returns the referenced block id if this is a row
// condition.
func (e *Expression) AsRowConditionBlock() (BlockId, bool) {
	if cond, ok := e.Expr.(*RowCondition); ok {
		return cond.ID, true
	}
	return 0, false
}

// AsSubexpression returns the referenced block id if this is a
// parenthesized subexpression.
func (e *Expression) AsSubexpression() (BlockId, bool) {
	if sub, ok := e.Expr.(*Subexpression); ok {
		return sub.ID, true
	}
	return 0, false
}

// AsSignature returns an independent copy of the signature literal.
func (e *Expression) AsSignature() (*Signature, bool) {
	if sig, ok := e.Expr.(*Signature); ok {
		return sig.Clone(), true
	}
	return nil, false
}

// AsList returns an independent copy of the list items.
func (e *Expression) AsList() ([]Expression, bool) {
	if list, ok := e.Expr.(*ListLiteral); ok {
		return cloneExpressions(list.Items), true
	}
	return nil, false
}

// AsKeyword returns the expression following the keyword, by reference.
func (e *Expression) AsKeyword() (*Expression, bool) {
	if kw, ok := e.Expr.(*KeywordExpr); ok {
		return &kw.Expr, true
	}
	return nil, false
}

// AsVar returns the variable id of a variable use or declaration.
func (e *Expression) AsVar() (VarId, bool) {
	switch expr := e.Expr.(type) {
	case *VarRef:
		return expr.ID, true
	case *VarDecl:
		return expr.ID, true
	}
	return 0, false
}

// AsString returns the value of a plain string literal.
func (e *Expression) AsString() (string, bool) {
	if str, ok := e.Expr.(*StringLiteral); ok {
		return str.Value, true
	}
	return "", false
}

// AsImportPattern returns an independent copy of the import pattern.
func (e *Expression) AsImportPattern() (*ImportPattern, bool) {
	if pattern, ok := e.Expr.(*ImportPattern); ok {
		return pattern.Clone(), true
	}
	return nil, false
}
