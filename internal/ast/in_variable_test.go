package ast_test

import (
	"testing"

	"github.com/rillshell/rill/internal/ast"
	"github.com/rillshell/rill/internal/engine"
	"github.com/rillshell/rill/internal/span"
)

func TestHasInVariableLeaves(t *testing.T) {
	ws := engine.NewStateWorkingSet()

	testCases := []struct {
		name     string
		expr     ast.Expr
		expected bool
	}{
		{"int", &ast.IntegerLiteral{Value: 1}, false},
		{"string", &ast.StringLiteral{Value: "$in"}, false},
		{"operator", &ast.OperatorExpr{Op: ast.Plus}, false},
		{"garbage", &ast.GarbageExpr{}, false},
		{"nothing", &ast.NothingLiteral{}, false},
		{"cell_path", &ast.CellPath{}, false},
		{"signature", &ast.Signature{Name: "each"}, false},
		{"import_pattern", &ast.ImportPattern{}, false},
		{"var_reserved", &ast.VarRef{ID: ast.InVariableID}, true},
		{"var_other", &ast.VarRef{ID: 42}, false},
		// A declaration site is never a read, even of the reserved id.
		{"var_decl_reserved", &ast.VarDecl{ID: ast.InVariableID}, false},
		{"var_decl_other", &ast.VarDecl{ID: 42}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := ast.Expression{Expr: tc.expr}
			if got := e.HasInVariable(ws); got != tc.expected {
				t.Errorf("HasInVariable() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestHasInVariableComposites(t *testing.T) {
	ws := engine.NewStateWorkingSet()
	in := varRef(ast.InVariableID)

	testCases := []struct {
		name     string
		expr     ast.Expression
		expected bool
	}{
		{"binary_op_left", binaryOp(in, ast.Plus, intLit(1)), true},
		{"binary_op_right", binaryOp(intLit(1), ast.Plus, in), true},
		{"binary_op_neither", binaryOp(intLit(1), ast.Plus, intLit(2)), false},
		{"unary_not", ast.Expression{Expr: &ast.UnaryNot{Expr: in}}, true},
		{"keyword", ast.Expression{Expr: &ast.KeywordExpr{Keyword: "until", Expr: in}}, true},
		{"list", ast.Expression{Expr: &ast.ListLiteral{Items: []ast.Expression{intLit(1), in}}}, true},
		{"list_without", ast.Expression{Expr: &ast.ListLiteral{Items: []ast.Expression{intLit(1)}}}, false},
		{"record_name", ast.Expression{Expr: &ast.RecordLiteral{Fields: []ast.RecordField{{Name: in, Value: intLit(1)}}}}, true},
		{"record_value", ast.Expression{Expr: &ast.RecordLiteral{Fields: []ast.RecordField{{Name: intLit(1), Value: in}}}}, true},
		{"table_header", ast.Expression{Expr: &ast.TableLiteral{Headers: []ast.Expression{in}}}, true},
		{"table_cell", ast.Expression{Expr: &ast.TableLiteral{
			Headers: []ast.Expression{intLit(1)},
			Rows:    [][]ast.Expression{{intLit(2)}, {in}},
		}}, true},
		{"interpolation", ast.Expression{Expr: &ast.InterpolatedString{Parts: []ast.Expression{intLit(1), in}}}, true},
		{"range_from", ast.Expression{Expr: &ast.RangeExpr{From: &in}}, true},
		{"range_next", ast.Expression{Expr: &ast.RangeExpr{Next: &in}}, true},
		{"range_to", ast.Expression{Expr: &ast.RangeExpr{To: &in}}, true},
		{"range_empty", ast.Expression{Expr: &ast.RangeExpr{}}, false},
		{"value_with_unit", ast.Expression{Expr: &ast.ValueWithUnit{Expr: in, Unit: ast.Second}}, true},
		{"external_call_head", ast.Expression{Expr: &ast.ExternalCall{Head: in}}, true},
		{"external_call_arg", ast.Expression{Expr: &ast.ExternalCall{Head: intLit(1), Args: []ast.Expression{in}}}, true},
		{"full_cell_path_head", ast.Expression{Expr: &ast.FullCellPath{Head: in}}, true},
		{"call_positional", ast.Expression{Expr: &ast.Call{Positional: []ast.Expression{in}}}, true},
		{"call_named", ast.Expression{Expr: &ast.Call{Named: []ast.NamedArg{{Name: "depth", Value: &in}}}}, true},
		// A switch with no value contributes nothing.
		{"call_bare_switch", ast.Expression{Expr: &ast.Call{Named: []ast.NamedArg{{Name: "force"}}}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.expr.HasInVariable(ws); got != tc.expected {
				t.Errorf("HasInVariable() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestHasInVariableBlocks(t *testing.T) {
	t.Run("captures_alone_decide", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := ws.AddBlock(ast.Block{Captures: []ast.VarId{ast.InVariableID}})
		e := blockExpr(id)
		if !e.HasInVariable(ws) {
			t.Errorf("block with $in capture and no pipelines should read $in")
		}
	})

	t.Run("first_statement_literal", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := addBlock(ws, nil, intLit(1))
		e := blockExpr(id)
		if e.HasInVariable(ws) {
			t.Errorf("block whose first statement is a literal should not read $in")
		}
	})

	t.Run("first_statement_reads_in", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := addBlock(ws, nil, varRef(ast.InVariableID))
		e := blockExpr(id)
		if !e.HasInVariable(ws) {
			t.Errorf("block whose first statement reads $in should read $in")
		}
	})

	t.Run("second_statement_does_not_count", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := addBlock(ws, nil, intLit(1), varRef(ast.InVariableID))
		e := blockExpr(id)
		if e.HasInVariable(ws) {
			t.Errorf("only the first statement receives the implicit input")
		}
	})

	t.Run("empty_block", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := ws.AddBlock(ast.Block{})
		e := blockExpr(id)
		if e.HasInVariable(ws) {
			t.Errorf("empty block should not read $in")
		}
	})

	t.Run("empty_first_pipeline", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := ws.AddBlock(ast.Block{Pipelines: []ast.Pipeline{{}}})
		e := blockExpr(id)
		if e.HasInVariable(ws) {
			t.Errorf("block with an empty first pipeline should not read $in")
		}
	})

	t.Run("row_condition_captures", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := ws.AddBlock(ast.Block{Captures: []ast.VarId{ast.InVariableID}})
		cond := ast.Expression{Expr: &ast.RowCondition{ID: id}}
		if !cond.HasInVariable(ws) {
			t.Errorf("row condition with $in capture should read $in")
		}
	})

	t.Run("subexpression_first_statement", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		id := addBlock(ws, nil, varRef(ast.InVariableID))
		sub := ast.Expression{Expr: &ast.Subexpression{ID: id}}
		if !sub.HasInVariable(ws) {
			t.Errorf("subexpression whose first statement reads $in should read $in")
		}
	})

	t.Run("nested_blocks", func(t *testing.T) {
		ws := engine.NewStateWorkingSet()
		innerID := addBlock(ws, nil, varRef(ast.InVariableID))
		outerID := addBlock(ws, nil, blockExpr(innerID))
		e := blockExpr(outerID)
		if !e.HasInVariable(ws) {
			t.Errorf("$in read through a nested block should be found")
		}
	})
}

func TestReplaceInVariableVar(t *testing.T) {
	ws := engine.NewStateWorkingSet()

	e := varRef(ast.InVariableID)
	e.ReplaceInVariable(ws, 42)
	if id, _ := e.AsVar(); id != 42 {
		t.Fatalf("var id after rewrite = %d, want 42", id)
	}

	// A second rewrite finds no reserved id: the first rewrite sticks.
	e.ReplaceInVariable(ws, 99)
	if id, _ := e.AsVar(); id != 42 {
		t.Errorf("var id after second rewrite = %d, want 42", id)
	}

	decl := ast.Expression{Expr: &ast.VarDecl{ID: ast.InVariableID}}
	decl.ReplaceInVariable(ws, 42)
	if id, _ := decl.AsVar(); id != ast.InVariableID {
		t.Errorf("declaration site was rewritten to %d", id)
	}
}

func TestReplaceInVariableComposites(t *testing.T) {
	ws := engine.NewStateWorkingSet()

	in := varRef(ast.InVariableID)
	e := ast.Expression{Expr: &ast.RecordLiteral{Fields: []ast.RecordField{
		{Name: intLit(1), Value: binaryOp(in, ast.Plus, varRef(7))},
	}}}
	e.ReplaceInVariable(ws, 42)

	if e.HasInVariable(ws) {
		t.Errorf("expression still reads $in after rewrite")
	}
	value := e.Expr.(*ast.RecordLiteral).Fields[0].Value.Expr.(*ast.BinaryOp)
	if id, _ := value.Left.AsVar(); id != 42 {
		t.Errorf("left operand = %d, want 42", id)
	}
	if id, _ := value.Right.AsVar(); id != 7 {
		t.Errorf("unrelated variable rewritten to %d", id)
	}
}

func TestReplaceInVariableBlock(t *testing.T) {
	ws := engine.NewStateWorkingSet()
	id := addBlock(ws, []ast.VarId{3, ast.InVariableID},
		binaryOp(varRef(ast.InVariableID), ast.Plus, intLit(1)),
		varRef(ast.InVariableID),
	)

	e := blockExpr(id)
	e.ReplaceInVariable(ws, 42)

	block := ws.GetBlock(id)
	if got := []ast.VarId{block.Captures[0], block.Captures[1]}; got[0] != 3 || got[1] != 42 {
		t.Errorf("captures after rewrite = %v, want [3 42]", got)
	}

	first := block.Pipelines[0].Expressions[0].Expr.(*ast.BinaryOp)
	if varID, _ := first.Left.AsVar(); varID != 42 {
		t.Errorf("first statement still reads $in (var %d)", varID)
	}

	// Later statements never receive the implicit input, so they are left
	// alone on purpose.
	if varID, _ := block.Pipelines[1].Expressions[0].AsVar(); varID != ast.InVariableID {
		t.Errorf("second statement rewritten to var %d", varID)
	}

	if e.HasInVariable(ws) {
		t.Errorf("block expression still reads $in after rewrite")
	}
}

func TestReplaceInVariableBlockKeepsID(t *testing.T) {
	ws := engine.NewStateWorkingSet()
	id := addBlock(ws, []ast.VarId{ast.InVariableID}, varRef(ast.InVariableID))

	e := blockExpr(id)
	e.ReplaceInVariable(ws, 42)

	// The rewrite mutates the shared block in place, unlike ReplaceSpan.
	if got, _ := e.AsBlock(); got != id {
		t.Errorf("block id changed from %d to %d", id, got)
	}
	if ws.NumBlocks() != 1 {
		t.Errorf("rewrite allocated %d extra blocks", ws.NumBlocks()-1)
	}
}

func TestReplaceInVariableNestedBlocks(t *testing.T) {
	ws := engine.NewStateWorkingSet()
	innerID := addBlock(ws, nil, varRef(ast.InVariableID))
	outerID := addBlock(ws, nil, blockExpr(innerID))

	e := blockExpr(outerID)
	e.ReplaceInVariable(ws, 42)

	inner := ws.GetBlock(innerID)
	if varID, _ := inner.Pipelines[0].Expressions[0].AsVar(); varID != 42 {
		t.Errorf("nested block's first statement still reads $in (var %d)", varID)
	}
	if e.HasInVariable(ws) {
		t.Errorf("nested $in read survived the rewrite")
	}
}

func TestReplaceInVariableSpanUntouched(t *testing.T) {
	ws := engine.NewStateWorkingSet()
	sp := span.New(10, 13)
	e := spanned(varRef(ast.InVariableID), sp)
	e.ReplaceInVariable(ws, 42)
	if e.Span != sp {
		t.Errorf("rewrite moved the span to %v", e.Span)
	}
}
