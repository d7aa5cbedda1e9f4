package ast

import "fmt"

// Unit is the scale tag of a ValueWithUnit literal. The rewrite core never
// interprets it; evaluation does.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Nanosecond
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

var unitNames = map[Unit]string{
	Byte:        "b",
	Kilobyte:    "kb",
	Megabyte:    "mb",
	Gigabyte:    "gb",
	Terabyte:    "tb",
	Nanosecond:  "ns",
	Microsecond: "us",
	Millisecond: "ms",
	Second:      "sec",
	Minute:      "min",
	Hour:        "hr",
	Day:         "day",
	Week:        "wk",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unknown unit (%d)", int(u))
}

func (u Unit) MarshalYAML() (interface{}, error) {
	name, ok := unitNames[u]
	if !ok {
		return nil, fmt.Errorf("ast: cannot marshal unknown unit (%d)", int(u))
	}
	return name, nil
}

func (u *Unit) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for unit, n := range unitNames {
		if n == name {
			*u = unit
			return nil
		}
	}
	return fmt.Errorf("ast: unknown unit %q", name)
}
