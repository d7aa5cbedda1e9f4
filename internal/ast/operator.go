package ast

import "fmt"

// Operator is the kind of a binary or comparison operator token.
type Operator int

const (
	RegexMatch Operator = iota
	NotRegexMatch
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	StartsWith
	EndsWith
	In
	NotIn
	Plus
	Minus
	Multiply
	Divide
	Modulo
	FloorDivision
	Pow
	ShiftLeft
	ShiftRight
	BitAnd
	BitOr
	And
	Or
)

var operatorNames = map[Operator]string{
	RegexMatch:         "=~",
	NotRegexMatch:      "!~",
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	GreaterThan:        ">",
	LessThanOrEqual:    "<=",
	GreaterThanOrEqual: ">=",
	StartsWith:         "starts-with",
	EndsWith:           "ends-with",
	In:                 "in",
	NotIn:              "not-in",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Divide:             "/",
	Modulo:             "mod",
	FloorDivision:      "//",
	Pow:                "**",
	ShiftLeft:          "bit-shl",
	ShiftRight:         "bit-shr",
	BitAnd:             "bit-and",
	BitOr:              "bit-or",
	And:                "&&",
	Or:                 "||",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("unknown operator (%d)", int(o))
}

// MarshalYAML encodes the operator by its source spelling.
func (o Operator) MarshalYAML() (interface{}, error) {
	name, ok := operatorNames[o]
	if !ok {
		return nil, fmt.Errorf("ast: cannot marshal unknown operator (%d)", int(o))
	}
	return name, nil
}

func (o *Operator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for op, n := range operatorNames {
		if n == name {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("ast: unknown operator %q", name)
}
