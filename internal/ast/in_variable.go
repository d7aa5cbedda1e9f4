package ast

import "fmt"

// HasInVariable reports whether evaluating the expression would read the
// implicit pipeline input. It is read-only and total: every variant is
// handled, children are examined left to right in source order, and any
// child reading $in makes the whole expression true.
//
// For a block reference the answer comes from two places: the block's
// declared capture set, and the first expression of its first pipeline.
// Later statements never see the implicit input (they operate on what the
// first statement produced), so they are not consulted.
func (e *Expression) HasInVariable(ws WorkingSet) bool {
	switch expr := e.Expr.(type) {
	case *BinaryOp:
		return expr.Left.HasInVariable(ws) || expr.Right.HasInVariable(ws)
	case *UnaryNot:
		return expr.Expr.HasInVariable(ws)
	case *BlockRef:
		return blockHasInVariable(ws, expr.ID)
	case *RowCondition:
		return blockHasInVariable(ws, expr.ID)
	case *Subexpression:
		return blockHasInVariable(ws, expr.ID)
	case *Call:
		for i := range expr.Positional {
			if expr.Positional[i].HasInVariable(ws) {
				return true
			}
		}
		for i := range expr.Named {
			if value := expr.Named[i].Value; value != nil && value.HasInVariable(ws) {
				return true
			}
		}
		return false
	case *ExternalCall:
		if expr.Head.HasInVariable(ws) {
			return true
		}
		for i := range expr.Args {
			if expr.Args[i].HasInVariable(ws) {
				return true
			}
		}
		return false
	case *FullCellPath:
		// Path members are opaque and cannot reference variables.
		return expr.Head.HasInVariable(ws)
	case *KeywordExpr:
		return expr.Expr.HasInVariable(ws)
	case *ListLiteral:
		for i := range expr.Items {
			if expr.Items[i].HasInVariable(ws) {
				return true
			}
		}
		return false
	case *RecordLiteral:
		for i := range expr.Fields {
			if expr.Fields[i].Name.HasInVariable(ws) {
				return true
			}
			if expr.Fields[i].Value.HasInVariable(ws) {
				return true
			}
		}
		return false
	case *TableLiteral:
		for i := range expr.Headers {
			if expr.Headers[i].HasInVariable(ws) {
				return true
			}
		}
		for _, row := range expr.Rows {
			for i := range row {
				if row[i].HasInVariable(ws) {
					return true
				}
			}
		}
		return false
	case *InterpolatedString:
		for i := range expr.Parts {
			if expr.Parts[i].HasInVariable(ws) {
				return true
			}
		}
		return false
	case *RangeExpr:
		if expr.From != nil && expr.From.HasInVariable(ws) {
			return true
		}
		if expr.Next != nil && expr.Next.HasInVariable(ws) {
			return true
		}
		if expr.To != nil && expr.To.HasInVariable(ws) {
			return true
		}
		return false
	case *ValueWithUnit:
		return expr.Expr.HasInVariable(ws)
	case *VarRef:
		return expr.ID == InVariableID
	case *VarDecl:
		// Declaring a name is not reading one.
		return false
	case *IntegerLiteral, *FloatLiteral, *BooleanLiteral, *StringLiteral,
		*BinaryLiteral, *DateTimeLiteral, *FilepathLiteral, *DirectoryLiteral,
		*GlobLiteral, *NothingLiteral, *GarbageExpr, *OperatorExpr,
		*CellPath, *Signature, *ImportPattern:
		return false
	}
	panic(fmt.Sprintf("ast: HasInVariable: unhandled expression variant %T", e.Expr))
}

func blockHasInVariable(ws WorkingSet, id BlockId) bool {
	block := ws.GetBlock(id)
	for _, capture := range block.Captures {
		if capture == InVariableID {
			return true
		}
	}
	if len(block.Pipelines) == 0 || len(block.Pipelines[0].Expressions) == 0 {
		return false
	}
	return block.Pipelines[0].Expressions[0].HasInVariable(ws)
}

// ReplaceInVariable rewrites every reachable read of the implicit pipeline
// input to newVarID, in place. Traversal order matches HasInVariable;
// declaration sites and opaque leaves are untouched.
func (e *Expression) ReplaceInVariable(ws WorkingSet, newVarID VarId) {
	switch expr := e.Expr.(type) {
	case *BinaryOp:
		expr.Left.ReplaceInVariable(ws, newVarID)
		expr.Right.ReplaceInVariable(ws, newVarID)
	case *UnaryNot:
		expr.Expr.ReplaceInVariable(ws, newVarID)
	case *BlockRef:
		replaceInVariableBlock(ws, expr.ID, newVarID)
	case *RowCondition:
		replaceInVariableBlock(ws, expr.ID, newVarID)
	case *Subexpression:
		replaceInVariableBlock(ws, expr.ID, newVarID)
	case *Call:
		for i := range expr.Positional {
			expr.Positional[i].ReplaceInVariable(ws, newVarID)
		}
		for i := range expr.Named {
			if value := expr.Named[i].Value; value != nil {
				value.ReplaceInVariable(ws, newVarID)
			}
		}
	case *ExternalCall:
		expr.Head.ReplaceInVariable(ws, newVarID)
		for i := range expr.Args {
			expr.Args[i].ReplaceInVariable(ws, newVarID)
		}
	case *FullCellPath:
		expr.Head.ReplaceInVariable(ws, newVarID)
	case *KeywordExpr:
		expr.Expr.ReplaceInVariable(ws, newVarID)
	case *ListLiteral:
		for i := range expr.Items {
			expr.Items[i].ReplaceInVariable(ws, newVarID)
		}
	case *RecordLiteral:
		for i := range expr.Fields {
			expr.Fields[i].Name.ReplaceInVariable(ws, newVarID)
			expr.Fields[i].Value.ReplaceInVariable(ws, newVarID)
		}
	case *TableLiteral:
		for i := range expr.Headers {
			expr.Headers[i].ReplaceInVariable(ws, newVarID)
		}
		for _, row := range expr.Rows {
			for i := range row {
				row[i].ReplaceInVariable(ws, newVarID)
			}
		}
	case *InterpolatedString:
		for i := range expr.Parts {
			expr.Parts[i].ReplaceInVariable(ws, newVarID)
		}
	case *RangeExpr:
		if expr.From != nil {
			expr.From.ReplaceInVariable(ws, newVarID)
		}
		if expr.Next != nil {
			expr.Next.ReplaceInVariable(ws, newVarID)
		}
		if expr.To != nil {
			expr.To.ReplaceInVariable(ws, newVarID)
		}
	case *ValueWithUnit:
		expr.Expr.ReplaceInVariable(ws, newVarID)
	case *VarRef:
		if expr.ID == InVariableID {
			expr.ID = newVarID
		}
	case *VarDecl:
	case *IntegerLiteral, *FloatLiteral, *BooleanLiteral, *StringLiteral,
		*BinaryLiteral, *DateTimeLiteral, *FilepathLiteral, *DirectoryLiteral,
		*GlobLiteral, *NothingLiteral, *GarbageExpr, *OperatorExpr,
		*CellPath, *Signature, *ImportPattern:
	default:
		panic(fmt.Sprintf("ast: ReplaceInVariable: unhandled expression variant %T", e.Expr))
	}
}

// replaceInVariableBlock rewrites $in inside an arena-held block. The same
// logical binding lives in two places, the first statement's body and the
// capture set, and both must end up consistent.
//
// The first statement is rewritten on an independent copy while only a read
// view is live; the mutable view is acquired afterwards, once the recursive
// rewrite (and any nested block lookups it performed) is finished. Holding
// the mutable view across the recursion would alias nested lookups.
func replaceInVariableBlock(ws WorkingSet, id BlockId, newVarID VarId) {
	block := ws.GetBlock(id)

	var rewritten *Expression
	if len(block.Pipelines) > 0 && len(block.Pipelines[0].Expressions) > 0 {
		first := block.Pipelines[0].Expressions[0].Clone()
		first.ReplaceInVariable(ws, newVarID)
		rewritten = &first
	}

	block = ws.GetBlockMut(id)
	if rewritten != nil {
		block.Pipelines[0].Expressions[0] = *rewritten
	}
	for i, capture := range block.Captures {
		if capture == InVariableID {
			block.Captures[i] = newVarID
		}
	}
}
