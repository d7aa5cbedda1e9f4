package ast

import "github.com/rillshell/rill/internal/typesystem"

// PositionalArg describes one positional parameter of a custom command.
type PositionalArg struct {
	Name  string          `yaml:"name"`
	Desc  string          `yaml:"desc,omitempty"`
	Shape typesystem.Type `yaml:"shape"`
	Var   *VarId          `yaml:"var,omitempty"`
}

// Flag describes one named parameter. Arg is nil for plain switches.
type Flag struct {
	Long     string           `yaml:"long"`
	Short    string           `yaml:"short,omitempty"`
	Arg      *typesystem.Type `yaml:"arg,omitempty"`
	Required bool             `yaml:"required,omitempty"`
	Desc     string           `yaml:"desc,omitempty"`
	Var      *VarId           `yaml:"var,omitempty"`
}

// Signature is the declared interface of a custom command: the literal form
// a [ ... ] parameter list takes before the declaration is registered.
type Signature struct {
	Name               string          `yaml:"name"`
	Usage              string          `yaml:"usage,omitempty"`
	RequiredPositional []PositionalArg `yaml:"required_positional"`
	OptionalPositional []PositionalArg `yaml:"optional_positional"`
	RestPositional     *PositionalArg  `yaml:"rest_positional,omitempty"`
	Named              []Flag          `yaml:"named"`
}

// Clone returns a deep copy of the signature.
func (s *Signature) Clone() *Signature {
	out := &Signature{
		Name:               s.Name,
		Usage:              s.Usage,
		RequiredPositional: clonePositional(s.RequiredPositional),
		OptionalPositional: clonePositional(s.OptionalPositional),
	}
	if s.RestPositional != nil {
		rest := clonePositionalArg(*s.RestPositional)
		out.RestPositional = &rest
	}
	if s.Named != nil {
		out.Named = make([]Flag, len(s.Named))
		for i, flag := range s.Named {
			out.Named[i] = flag
			if flag.Arg != nil {
				arg := *flag.Arg
				out.Named[i].Arg = &arg
			}
			if flag.Var != nil {
				v := *flag.Var
				out.Named[i].Var = &v
			}
		}
	}
	return out
}

func clonePositional(args []PositionalArg) []PositionalArg {
	if args == nil {
		return nil
	}
	out := make([]PositionalArg, len(args))
	for i, arg := range args {
		out[i] = clonePositionalArg(arg)
	}
	return out
}

func clonePositionalArg(arg PositionalArg) PositionalArg {
	if arg.Var != nil {
		v := *arg.Var
		arg.Var = &v
	}
	return arg
}
