package ast

import "github.com/rillshell/rill/internal/span"

// PathMemberKind distinguishes column-by-name from row-by-index members.
type PathMemberKind int

const (
	PathString PathMemberKind = iota
	PathInt
)

// PathMember is one step of a cell path: a column name or a row index.
// Members cannot reference variables, so the tree passes treat them as
// opaque.
type PathMember struct {
	Kind  PathMemberKind `yaml:"kind"`
	Name  string         `yaml:"name,omitempty"`
	Index int            `yaml:"index,omitempty"`
	Span  span.Span      `yaml:"span"`
}

// CellPath is a bare path literal, e.g. $.name.0, used as a value.
type CellPath struct {
	Members []PathMember `yaml:"members"`
}

// Clone returns a deep copy of the path.
func (p *CellPath) Clone() *CellPath {
	return &CellPath{Members: clonePathMembers(p.Members)}
}

// FullCellPath applies a member path to a head expression, e.g.
// (open data.json).versions.0.
type FullCellPath struct {
	Head Expression   `yaml:"head"`
	Tail []PathMember `yaml:"tail"`
}

// Clone returns a deep copy of the path and its head.
func (p *FullCellPath) Clone() *FullCellPath {
	return &FullCellPath{Head: p.Head.Clone(), Tail: clonePathMembers(p.Tail)}
}

func clonePathMembers(members []PathMember) []PathMember {
	if members == nil {
		return nil
	}
	out := make([]PathMember, len(members))
	copy(out, members)
	return out
}
