package ast

import "github.com/rillshell/rill/internal/span"

// ImportPatternHead is the module a use statement draws from.
type ImportPatternHead struct {
	Name string    `yaml:"name"`
	Span span.Span `yaml:"span"`
}

// ImportPatternMember selects what to import from the head module: a single
// name, or everything when Glob is set.
type ImportPatternMember struct {
	Name string    `yaml:"name,omitempty"`
	Span span.Span `yaml:"span"`
	Glob bool      `yaml:"glob,omitempty"`
}

// ImportPattern is the argument of a use statement, e.g. use math [pi tau].
// The tree passes carry it around without looking inside.
type ImportPattern struct {
	Head    ImportPatternHead     `yaml:"head"`
	Members []ImportPatternMember `yaml:"members"`
}

// Clone returns a deep copy of the pattern.
func (p *ImportPattern) Clone() *ImportPattern {
	out := &ImportPattern{Head: p.Head}
	if p.Members != nil {
		out.Members = make([]ImportPatternMember, len(p.Members))
		copy(out.Members, p.Members)
	}
	return out
}
