package ast

import "github.com/rillshell/rill/internal/span"

// NamedArg is a flag argument of a call, e.g. --depth 3. Value is nil for
// switches that take no argument.
type NamedArg struct {
	Name  string      `yaml:"name"`
	Span  span.Span   `yaml:"span"`
	Value *Expression `yaml:"value,omitempty"`
}

// Call invokes a declared command. Head is the span of the command name
// itself; the name is resolved to Decl by the producer.
type Call struct {
	Head       span.Span    `yaml:"head"`
	Decl       DeclId       `yaml:"decl"`
	Positional []Expression `yaml:"positional"`
	Named      []NamedArg   `yaml:"named"`
}

// Clone returns a deep copy of the call.
func (c *Call) Clone() *Call {
	out := &Call{
		Head:       c.Head,
		Decl:       c.Decl,
		Positional: cloneExpressions(c.Positional),
	}
	if c.Named != nil {
		out.Named = make([]NamedArg, len(c.Named))
		for i, named := range c.Named {
			out.Named[i] = NamedArg{Name: named.Name, Span: named.Span, Value: cloneOptional(named.Value)}
		}
	}
	return out
}
