package ast

// Pipeline is one statement of a block: an ordered chain of expressions
// whose output flows left to right.
type Pipeline struct {
	Expressions []Expression `yaml:"expressions"`
}

// Block is a sequence of pipelines plus the set of variables the block
// captures from its enclosing scope. Blocks live in the working set and are
// referenced by BlockId; several expressions may share one block.
//
// Only the first pipeline's first expression receives the implicit pipeline
// input. The capture and rewrite passes rely on that: later statements
// operate on whatever the first one produced.
type Block struct {
	Pipelines []Pipeline `yaml:"pipelines"`
	Captures  []VarId    `yaml:"captures"`
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	out := &Block{}
	if b.Pipelines != nil {
		out.Pipelines = make([]Pipeline, len(b.Pipelines))
		for i, pipeline := range b.Pipelines {
			out.Pipelines[i] = Pipeline{Expressions: cloneExpressions(pipeline.Expressions)}
		}
	}
	if b.Captures != nil {
		out.Captures = make([]VarId, len(b.Captures))
		copy(out.Captures, b.Captures)
	}
	return out
}

// WorkingSet is the block store the tree passes run against. It is owned by
// the engine, not by this package.
//
// A dangling id is an internal invariant violation, not a user-facing
// error; implementations are expected to fail loudly. AddBlock returns a
// fresh, previously unused id and never invalidates existing ones.
//
// GetBlock views are read-only by convention. Callers must finish with one
// view before acquiring the next: the rewrite passes never hold a GetBlock
// result across a GetBlockMut or AddBlock call on the same traversal step.
type WorkingSet interface {
	GetBlock(id BlockId) *Block
	GetBlockMut(id BlockId) *Block
	AddBlock(block Block) BlockId
}
