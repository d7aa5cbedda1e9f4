package typesystem

import "fmt"

// Type is the inferred type recorded on every expression by the checker.
// The rewrite core carries it around untouched; only the checker assigns
// anything other than Any.
type Type int

const (
	Any Type = iota
	Nothing
	Int
	Float
	Number
	Bool
	String
	Binary
	Date
	Duration
	Filesize
	Range
	List
	Record
	Table
	Closure
	Signature
	CellPath
	ImportPattern
	Error
)

var typeNames = map[Type]string{
	Any:           "any",
	Nothing:       "nothing",
	Int:           "int",
	Float:         "float",
	Number:        "number",
	Bool:          "bool",
	String:        "string",
	Binary:        "binary",
	Date:          "date",
	Duration:      "duration",
	Filesize:      "filesize",
	Range:         "range",
	List:          "list",
	Record:        "record",
	Table:         "table",
	Closure:       "closure",
	Signature:     "signature",
	CellPath:      "cell-path",
	ImportPattern: "import-pattern",
	Error:         "error",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown type (%d)", int(t))
}

// MarshalYAML encodes the type by name so serialized trees stay readable
// and stable across reorderings of the constant block.
func (t Type) MarshalYAML() (interface{}, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("typesystem: cannot marshal unknown type (%d)", int(t))
	}
	return name, nil
}

func (t *Type) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for ty, n := range typeNames {
		if n == name {
			*t = ty
			return nil
		}
	}
	return fmt.Errorf("typesystem: unknown type name %q", name)
}
