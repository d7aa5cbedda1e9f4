package ast_test

import (
	"github.com/rillshell/rill/internal/ast"
	"github.com/rillshell/rill/internal/engine"
	"github.com/rillshell/rill/internal/span"
	"github.com/rillshell/rill/internal/typesystem"
)

func intLit(value int64) ast.Expression {
	return ast.Expression{Expr: &ast.IntegerLiteral{Value: value}, Ty: typesystem.Int}
}

func varRef(id ast.VarId) ast.Expression {
	return ast.Expression{Expr: &ast.VarRef{ID: id}, Ty: typesystem.Any}
}

func binaryOp(left ast.Expression, op ast.Operator, right ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.BinaryOp{
		Left:  left,
		Op:    ast.Expression{Expr: &ast.OperatorExpr{Op: op}},
		Right: right,
	}}
}

// addBlock registers a block with one single-expression pipeline per
// statement, mirroring how the parser registers closure bodies.
func addBlock(ws *engine.StateWorkingSet, captures []ast.VarId, statements ...ast.Expression) ast.BlockId {
	block := ast.Block{Captures: captures}
	for _, statement := range statements {
		block.Pipelines = append(block.Pipelines, ast.Pipeline{
			Expressions: []ast.Expression{statement},
		})
	}
	return ws.AddBlock(block)
}

func blockExpr(id ast.BlockId) ast.Expression {
	return ast.Expression{Expr: &ast.BlockRef{ID: id}, Ty: typesystem.Closure}
}

func spanned(e ast.Expression, sp span.Span) ast.Expression {
	e.Span = sp
	return e
}
