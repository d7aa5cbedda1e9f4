package ast

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rillshell/rill/internal/span"
	"github.com/rillshell/rill/internal/typesystem"
)

// Expressions round-trip through YAML as a kind-tagged envelope:
//
//	kind: binary_op
//	span: {start: 0, end: 9}
//	ty: bool
//	expr:
//	  left: {...}
//	  op: {...}
//	  right: {...}
//
// Block ids serialize as plain integers; a dump is only meaningful next to
// the working set it was built against.

type exprEnvelope struct {
	Kind             string          `yaml:"kind"`
	Span             span.Span       `yaml:"span"`
	Ty               typesystem.Type `yaml:"ty"`
	CustomCompletion *DeclId         `yaml:"custom_completion,omitempty"`
	Expr             Expr            `yaml:"expr,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (e Expression) MarshalYAML() (interface{}, error) {
	kind, err := exprKindName(e.Expr)
	if err != nil {
		return nil, err
	}
	return exprEnvelope{
		Kind:             kind,
		Span:             e.Span,
		Ty:               e.Ty,
		CustomCompletion: e.CustomCompletion,
		Expr:             e.Expr,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expression) UnmarshalYAML(node *yaml.Node) error {
	var env struct {
		Kind             string          `yaml:"kind"`
		Span             span.Span       `yaml:"span"`
		Ty               typesystem.Type `yaml:"ty"`
		CustomCompletion *DeclId         `yaml:"custom_completion"`
		Expr             yaml.Node       `yaml:"expr"`
	}
	if err := node.Decode(&env); err != nil {
		return err
	}
	factory, ok := exprFactories[env.Kind]
	if !ok {
		return fmt.Errorf("ast: unknown expression kind %q", env.Kind)
	}
	expr := factory()
	if env.Expr.Kind != 0 {
		if err := env.Expr.Decode(expr); err != nil {
			return fmt.Errorf("ast: decoding %s payload: %w", env.Kind, err)
		}
	}
	e.Expr = expr
	e.Span = env.Span
	e.Ty = env.Ty
	e.CustomCompletion = env.CustomCompletion
	return nil
}

// exprFactories allocates an empty variant for each serialized kind tag.
// The coverage test pins its length to numExprKinds.
var exprFactories = map[string]func() Expr{
	"int":                  func() Expr { return &IntegerLiteral{} },
	"float":                func() Expr { return &FloatLiteral{} },
	"bool":                 func() Expr { return &BooleanLiteral{} },
	"string":               func() Expr { return &StringLiteral{} },
	"binary":               func() Expr { return &BinaryLiteral{} },
	"date_time":            func() Expr { return &DateTimeLiteral{} },
	"filepath":             func() Expr { return &FilepathLiteral{} },
	"directory":            func() Expr { return &DirectoryLiteral{} },
	"glob_pattern":         func() Expr { return &GlobLiteral{} },
	"nothing":              func() Expr { return &NothingLiteral{} },
	"garbage":              func() Expr { return &GarbageExpr{} },
	"operator":             func() Expr { return &OperatorExpr{} },
	"var":                  func() Expr { return &VarRef{} },
	"var_decl":             func() Expr { return &VarDecl{} },
	"binary_op":            func() Expr { return &BinaryOp{} },
	"unary_not":            func() Expr { return &UnaryNot{} },
	"range":                func() Expr { return &RangeExpr{} },
	"keyword":              func() Expr { return &KeywordExpr{} },
	"list":                 func() Expr { return &ListLiteral{} },
	"record":               func() Expr { return &RecordLiteral{} },
	"table":                func() Expr { return &TableLiteral{} },
	"string_interpolation": func() Expr { return &InterpolatedString{} },
	"value_with_unit":      func() Expr { return &ValueWithUnit{} },
	"external_call":        func() Expr { return &ExternalCall{} },
	"block":                func() Expr { return &BlockRef{} },
	"row_condition":        func() Expr { return &RowCondition{} },
	"subexpression":        func() Expr { return &Subexpression{} },
	"call":                 func() Expr { return &Call{} },
	"cell_path":            func() Expr { return &CellPath{} },
	"full_cell_path":       func() Expr { return &FullCellPath{} },
	"signature":            func() Expr { return &Signature{} },
	"import_pattern":       func() Expr { return &ImportPattern{} },
}

func exprKindName(expr Expr) (string, error) {
	switch expr.(type) {
	case *IntegerLiteral:
		return "int", nil
	case *FloatLiteral:
		return "float", nil
	case *BooleanLiteral:
		return "bool", nil
	case *StringLiteral:
		return "string", nil
	case *BinaryLiteral:
		return "binary", nil
	case *DateTimeLiteral:
		return "date_time", nil
	case *FilepathLiteral:
		return "filepath", nil
	case *DirectoryLiteral:
		return "directory", nil
	case *GlobLiteral:
		return "glob_pattern", nil
	case *NothingLiteral:
		return "nothing", nil
	case *GarbageExpr:
		return "garbage", nil
	case *OperatorExpr:
		return "operator", nil
	case *VarRef:
		return "var", nil
	case *VarDecl:
		return "var_decl", nil
	case *BinaryOp:
		return "binary_op", nil
	case *UnaryNot:
		return "unary_not", nil
	case *RangeExpr:
		return "range", nil
	case *KeywordExpr:
		return "keyword", nil
	case *ListLiteral:
		return "list", nil
	case *RecordLiteral:
		return "record", nil
	case *TableLiteral:
		return "table", nil
	case *InterpolatedString:
		return "string_interpolation", nil
	case *ValueWithUnit:
		return "value_with_unit", nil
	case *ExternalCall:
		return "external_call", nil
	case *BlockRef:
		return "block", nil
	case *RowCondition:
		return "row_condition", nil
	case *Subexpression:
		return "subexpression", nil
	case *Call:
		return "call", nil
	case *CellPath:
		return "cell_path", nil
	case *FullCellPath:
		return "full_cell_path", nil
	case *Signature:
		return "signature", nil
	case *ImportPattern:
		return "import_pattern", nil
	}
	return "", fmt.Errorf("ast: cannot serialize expression variant %T", expr)
}
