package ast

import "fmt"

// Clone returns a deep copy of the expression. Owned payloads are copied
// fully; block ids are copied as plain handles, so a clone still shares the
// referenced block with the original (sharing is the working set's job, see
// ReplaceSpan for the copy-on-write side of that bargain).
func (e Expression) Clone() Expression {
	out := e
	if e.CustomCompletion != nil {
		completion := *e.CustomCompletion
		out.CustomCompletion = &completion
	}
	out.Expr = cloneExpr(e.Expr)
	return out
}

func cloneExpr(expr Expr) Expr {
	switch expr := expr.(type) {
	case *IntegerLiteral:
		out := *expr
		return &out
	case *FloatLiteral:
		out := *expr
		return &out
	case *BooleanLiteral:
		out := *expr
		return &out
	case *StringLiteral:
		out := *expr
		return &out
	case *BinaryLiteral:
		out := &BinaryLiteral{}
		if expr.Value != nil {
			out.Value = make([]byte, len(expr.Value))
			copy(out.Value, expr.Value)
		}
		return out
	case *DateTimeLiteral:
		out := *expr
		return &out
	case *FilepathLiteral:
		out := *expr
		return &out
	case *DirectoryLiteral:
		out := *expr
		return &out
	case *GlobLiteral:
		out := *expr
		return &out
	case *NothingLiteral:
		return &NothingLiteral{}
	case *GarbageExpr:
		return &GarbageExpr{}
	case *OperatorExpr:
		out := *expr
		return &out
	case *VarRef:
		out := *expr
		return &out
	case *VarDecl:
		out := *expr
		return &out
	case *BinaryOp:
		return &BinaryOp{
			Left:  expr.Left.Clone(),
			Op:    expr.Op.Clone(),
			Right: expr.Right.Clone(),
		}
	case *UnaryNot:
		return &UnaryNot{Expr: expr.Expr.Clone()}
	case *RangeExpr:
		return &RangeExpr{
			From:     cloneOptional(expr.From),
			Next:     cloneOptional(expr.Next),
			To:       cloneOptional(expr.To),
			Operator: expr.Operator,
		}
	case *KeywordExpr:
		return &KeywordExpr{
			Keyword:     expr.Keyword,
			KeywordSpan: expr.KeywordSpan,
			Expr:        expr.Expr.Clone(),
		}
	case *ListLiteral:
		return &ListLiteral{Items: cloneExpressions(expr.Items)}
	case *RecordLiteral:
		out := &RecordLiteral{}
		if expr.Fields != nil {
			out.Fields = make([]RecordField, len(expr.Fields))
			for i, field := range expr.Fields {
				out.Fields[i] = RecordField{Name: field.Name.Clone(), Value: field.Value.Clone()}
			}
		}
		return out
	case *TableLiteral:
		out := &TableLiteral{Headers: cloneExpressions(expr.Headers)}
		if expr.Rows != nil {
			out.Rows = make([][]Expression, len(expr.Rows))
			for i, row := range expr.Rows {
				out.Rows[i] = cloneExpressions(row)
			}
		}
		return out
	case *InterpolatedString:
		return &InterpolatedString{Parts: cloneExpressions(expr.Parts)}
	case *ValueWithUnit:
		return &ValueWithUnit{
			Expr:     expr.Expr.Clone(),
			Unit:     expr.Unit,
			UnitSpan: expr.UnitSpan,
		}
	case *ExternalCall:
		return &ExternalCall{
			Head: expr.Head.Clone(),
			Args: cloneExpressions(expr.Args),
		}
	case *BlockRef:
		out := *expr
		return &out
	case *RowCondition:
		out := *expr
		return &out
	case *Subexpression:
		out := *expr
		return &out
	case *Call:
		return expr.Clone()
	case *CellPath:
		return expr.Clone()
	case *FullCellPath:
		return expr.Clone()
	case *Signature:
		return expr.Clone()
	case *ImportPattern:
		return expr.Clone()
	}
	panic(fmt.Sprintf("ast: cannot clone expression variant %T", expr))
}

func cloneExpressions(exprs []Expression) []Expression {
	if exprs == nil {
		return nil
	}
	out := make([]Expression, len(exprs))
	for i := range exprs {
		out[i] = exprs[i].Clone()
	}
	return out
}

func cloneOptional(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	out := e.Clone()
	return &out
}
