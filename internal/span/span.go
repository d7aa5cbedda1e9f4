package span

// Span is a half-open byte interval [Start, End) into the original source.
// Offsets are counted in bytes from the start of the UTF-8 source; End is
// exclusive. Spans are plain values and are copied freely; nothing owns them.
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// New builds a span from a start and end offset. Start must not exceed End.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Unknown is the span used for synthesized nodes that have no source text.
func Unknown() Span {
	return Span{}
}

// Contains reports whether other lies entirely inside s:
// s.Start <= other.Start and other.End <= s.End.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}
