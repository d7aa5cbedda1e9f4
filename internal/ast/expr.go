package ast

import (
	"time"

	"github.com/rillshell/rill/internal/span"
)

// Expr is the closed set of expression shapes. Exactly one variant is active
// per Expression, and the variant alone determines which fields are
// meaningful. The set is sealed by the unexported marker method; every pass
// that walks expressions (capture analysis, the two rewrites, cloning,
// serialization) must handle all of it, and panics on anything else.
//
// numExprKinds must track the number of variants below. The coverage test
// feeds one sample of each through every pass, so growing the set without
// teaching the passes about the new shape fails the build's tests rather
// than silently falling into a default arm.
type Expr interface {
	exprNode()
}

const numExprKinds = 32

// IntegerLiteral is an integer literal, e.g. 42.
type IntegerLiteral struct {
	Value int64 `yaml:"value"`
}

// FloatLiteral is a floating point literal, e.g. 3.14.
type FloatLiteral struct {
	Value float64 `yaml:"value"`
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Value bool `yaml:"value"`
}

// StringLiteral is a plain (non-interpolated) string literal.
type StringLiteral struct {
	Value string `yaml:"value"`
}

// BinaryLiteral is a raw binary literal, e.g. 0x[1f 2e].
type BinaryLiteral struct {
	Value []byte `yaml:"value"`
}

// DateTimeLiteral is a date-time literal, already parsed by the producer.
type DateTimeLiteral struct {
	Value time.Time `yaml:"value"`
}

// FilepathLiteral is a file path argument, kept verbatim until expansion.
type FilepathLiteral struct {
	Value string `yaml:"value"`
}

// DirectoryLiteral is a directory path argument.
type DirectoryLiteral struct {
	Value string `yaml:"value"`
}

// GlobLiteral is a glob pattern argument, e.g. *.txt.
type GlobLiteral struct {
	Value string `yaml:"value"`
}

// NothingLiteral is the literal absence of a value.
type NothingLiteral struct{}

// GarbageExpr marks source the parser could not make sense of. It keeps a
// malformed tree well-formed and walkable; every pass treats it as an inert
// leaf.
type GarbageExpr struct{}

// OperatorExpr is a bare operator token, e.g. the + inside a binary op.
type OperatorExpr struct {
	Op Operator `yaml:"op"`
}

// VarRef reads a variable.
type VarRef struct {
	ID VarId `yaml:"id"`
}

// VarDecl introduces a variable. Declaring a name is not reading one: the
// capture pass never treats a declaration site as a use, even of $in.
type VarDecl struct {
	ID VarId `yaml:"id"`
}

// BinaryOp is a binary operation. Op is itself an expression (an
// OperatorExpr leaf) so it carries its own span and can answer Precedence.
type BinaryOp struct {
	Left  Expression `yaml:"left"`
	Op    Expression `yaml:"op"`
	Right Expression `yaml:"right"`
}

// UnaryNot is logical negation, e.g. not $flag.
type UnaryNot struct {
	Expr Expression `yaml:"expr"`
}

// RangeExpr is a numeric range, e.g. 1..10 or 0..2..100. Each bound is
// independently optional.
type RangeExpr struct {
	From     *Expression   `yaml:"from,omitempty"`
	Next     *Expression   `yaml:"next,omitempty"`
	To       *Expression   `yaml:"to,omitempty"`
	Operator RangeOperator `yaml:"operator"`
}

// RangeOperator describes the range's dots: whether the right bound is
// included, and where the token sits.
type RangeOperator struct {
	Inclusive bool      `yaml:"inclusive"`
	Span      span.Span `yaml:"span"`
}

// KeywordExpr wraps the expression that follows a parser keyword, e.g. the
// upper bound after "until".
type KeywordExpr struct {
	Keyword     string     `yaml:"keyword"`
	KeywordSpan span.Span  `yaml:"keyword_span"`
	Expr        Expression `yaml:"expr"`
}

// ListLiteral is an ordered list, e.g. [1 2 3].
type ListLiteral struct {
	Items []Expression `yaml:"items"`
}

// RecordField is one name/value pair of a record literal. The name is a
// full expression: record keys can be computed.
type RecordField struct {
	Name  Expression `yaml:"name"`
	Value Expression `yaml:"value"`
}

// RecordLiteral is a record, e.g. {name: "rill", version: 1}.
type RecordLiteral struct {
	Fields []RecordField `yaml:"fields"`
}

// TableLiteral is a table: a header row plus zero or more data rows, e.g.
// [[a b]; [1 2] [3 4]].
type TableLiteral struct {
	Headers []Expression   `yaml:"headers"`
	Rows    [][]Expression `yaml:"rows"`
}

// InterpolatedString is a string built from literal and expression parts,
// e.g. $"hello ($name)".
type InterpolatedString struct {
	Parts []Expression `yaml:"parts"`
}

// ValueWithUnit is a literal scaled by a unit, e.g. 2kb or 15sec.
type ValueWithUnit struct {
	Expr     Expression `yaml:"expr"`
	Unit     Unit       `yaml:"unit"`
	UnitSpan span.Span  `yaml:"unit_span"`
}

// ExternalCall runs an external command, e.g. ^ls -l.
type ExternalCall struct {
	Head Expression   `yaml:"head"`
	Args []Expression `yaml:"args"`
}

// BlockRef references a block by id, e.g. the body of an if or a closure.
// The block itself lives in the working set and may be shared by several
// referrers.
type BlockRef struct {
	ID BlockId `yaml:"block_id"`
}

// RowCondition references a block holding a row condition, e.g. the
// predicate of a where.
type RowCondition struct {
	ID BlockId `yaml:"block_id"`
}

// Subexpression references a block holding a parenthesized subexpression.
type Subexpression struct {
	ID BlockId `yaml:"block_id"`
}

func (*IntegerLiteral) exprNode()     {}
func (*FloatLiteral) exprNode()       {}
func (*BooleanLiteral) exprNode()     {}
func (*StringLiteral) exprNode()      {}
func (*BinaryLiteral) exprNode()      {}
func (*DateTimeLiteral) exprNode()    {}
func (*FilepathLiteral) exprNode()    {}
func (*DirectoryLiteral) exprNode()   {}
func (*GlobLiteral) exprNode()        {}
func (*NothingLiteral) exprNode()     {}
func (*GarbageExpr) exprNode()        {}
func (*OperatorExpr) exprNode()       {}
func (*VarRef) exprNode()             {}
func (*VarDecl) exprNode()            {}
func (*BinaryOp) exprNode()           {}
func (*UnaryNot) exprNode()           {}
func (*RangeExpr) exprNode()          {}
func (*KeywordExpr) exprNode()        {}
func (*ListLiteral) exprNode()        {}
func (*RecordLiteral) exprNode()      {}
func (*TableLiteral) exprNode()       {}
func (*InterpolatedString) exprNode() {}
func (*ValueWithUnit) exprNode()      {}
func (*ExternalCall) exprNode()       {}
func (*BlockRef) exprNode()           {}
func (*RowCondition) exprNode()       {}
func (*Subexpression) exprNode()      {}
func (*Call) exprNode()               {}
func (*CellPath) exprNode()           {}
func (*FullCellPath) exprNode()       {}
func (*Signature) exprNode()          {}
func (*ImportPattern) exprNode()      {}
