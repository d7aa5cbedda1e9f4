package ast

import (
	"fmt"

	"github.com/rillshell/rill/internal/span"
)

// ReplaceSpan rewrites, in place, the span of every node that lies entirely
// inside replaced to newSpan. The containment test is independent per node:
// a parent falling outside replaced does not stop a descendant inside it
// from being rewritten, so every node is visited regardless of its
// ancestors' outcome.
//
// Blocks referenced by id are never mutated on behalf of one referrer: the
// block is deep-copied, rewritten, inserted as a brand-new working-set
// entry, and this node is repointed to the fresh id. Other referrers keep
// the original, untouched block.
func (e *Expression) ReplaceSpan(ws WorkingSet, replaced, newSpan span.Span) {
	if replaced.Contains(e.Span) {
		e.Span = newSpan
	}
	switch expr := e.Expr.(type) {
	case *BinaryOp:
		expr.Left.ReplaceSpan(ws, replaced, newSpan)
		expr.Right.ReplaceSpan(ws, replaced, newSpan)
	case *UnaryNot:
		expr.Expr.ReplaceSpan(ws, replaced, newSpan)
	case *BlockRef:
		expr.ID = replaceSpanBlock(ws, expr.ID, replaced, newSpan)
	case *RowCondition:
		expr.ID = replaceSpanBlock(ws, expr.ID, replaced, newSpan)
	case *Subexpression:
		expr.ID = replaceSpanBlock(ws, expr.ID, replaced, newSpan)
	case *Call:
		if replaced.Contains(expr.Head) {
			expr.Head = newSpan
		}
		for i := range expr.Positional {
			expr.Positional[i].ReplaceSpan(ws, replaced, newSpan)
		}
		for i := range expr.Named {
			if value := expr.Named[i].Value; value != nil {
				value.ReplaceSpan(ws, replaced, newSpan)
			}
		}
	case *ExternalCall:
		expr.Head.ReplaceSpan(ws, replaced, newSpan)
		for i := range expr.Args {
			expr.Args[i].ReplaceSpan(ws, replaced, newSpan)
		}
	case *FullCellPath:
		expr.Head.ReplaceSpan(ws, replaced, newSpan)
	case *KeywordExpr:
		expr.Expr.ReplaceSpan(ws, replaced, newSpan)
	case *ListLiteral:
		for i := range expr.Items {
			expr.Items[i].ReplaceSpan(ws, replaced, newSpan)
		}
	case *RecordLiteral:
		for i := range expr.Fields {
			expr.Fields[i].Name.ReplaceSpan(ws, replaced, newSpan)
			expr.Fields[i].Value.ReplaceSpan(ws, replaced, newSpan)
		}
	case *TableLiteral:
		for i := range expr.Headers {
			expr.Headers[i].ReplaceSpan(ws, replaced, newSpan)
		}
		for _, row := range expr.Rows {
			for i := range row {
				row[i].ReplaceSpan(ws, replaced, newSpan)
			}
		}
	case *InterpolatedString:
		for i := range expr.Parts {
			expr.Parts[i].ReplaceSpan(ws, replaced, newSpan)
		}
	case *RangeExpr:
		if expr.From != nil {
			expr.From.ReplaceSpan(ws, replaced, newSpan)
		}
		if expr.Next != nil {
			expr.Next.ReplaceSpan(ws, replaced, newSpan)
		}
		if expr.To != nil {
			expr.To.ReplaceSpan(ws, replaced, newSpan)
		}
	case *ValueWithUnit:
		expr.Expr.ReplaceSpan(ws, replaced, newSpan)
	case *IntegerLiteral, *FloatLiteral, *BooleanLiteral, *StringLiteral,
		*BinaryLiteral, *DateTimeLiteral, *FilepathLiteral, *DirectoryLiteral,
		*GlobLiteral, *NothingLiteral, *GarbageExpr, *OperatorExpr,
		*VarRef, *VarDecl, *CellPath, *Signature, *ImportPattern:
	default:
		panic(fmt.Sprintf("ast: ReplaceSpan: unhandled expression variant %T", e.Expr))
	}
}

// replaceSpanBlock is the copy-on-write arm of ReplaceSpan. Any expression
// in any pipeline of the block might fall inside replaced, so the whole
// block is copied and rewritten. A fresh entry is always inserted, even
// when nothing inside actually changed; the caller repoints to the new id
// unconditionally.
func replaceSpanBlock(ws WorkingSet, id BlockId, replaced, newSpan span.Span) BlockId {
	block := ws.GetBlock(id).Clone()
	for i := range block.Pipelines {
		for j := range block.Pipelines[i].Expressions {
			block.Pipelines[i].Expressions[j].ReplaceSpan(ws, replaced, newSpan)
		}
	}
	return ws.AddBlock(*block)
}
