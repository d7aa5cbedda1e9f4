package engine

import (
	"fmt"

	"github.com/rillshell/rill/internal/ast"
)

// StateWorkingSet owns every block the producer has registered while
// building trees. Ids are dense indexes into an append-only store: AddBlock
// never moves or invalidates an existing entry, which is what lets
// ReplaceSpan insert copies mid-traversal.
//
// A working set belongs to one parse/rewrite at a time; nothing here is
// safe for concurrent use.
type StateWorkingSet struct {
	blocks []*ast.Block
}

var _ ast.WorkingSet = (*StateWorkingSet)(nil)

func NewStateWorkingSet() *StateWorkingSet {
	return &StateWorkingSet{}
}

// GetBlock returns a read view of the block. A dangling id means a producer
// bug upstream, so it fails loudly instead of returning an error.
func (ws *StateWorkingSet) GetBlock(id ast.BlockId) *ast.Block {
	return ws.block(id)
}

// GetBlockMut returns a mutable view of the block. The caller must be done
// with any previously acquired view first.
func (ws *StateWorkingSet) GetBlockMut(id ast.BlockId) *ast.Block {
	return ws.block(id)
}

// AddBlock stores a new block and returns its fresh id.
func (ws *StateWorkingSet) AddBlock(block ast.Block) ast.BlockId {
	ws.blocks = append(ws.blocks, &block)
	return ast.BlockId(len(ws.blocks) - 1)
}

// NumBlocks returns how many blocks the working set holds.
func (ws *StateWorkingSet) NumBlocks() int {
	return len(ws.blocks)
}

func (ws *StateWorkingSet) block(id ast.BlockId) *ast.Block {
	if id < 0 || int(id) >= len(ws.blocks) {
		panic(fmt.Sprintf("engine: unknown block id %d (have %d blocks)", id, len(ws.blocks)))
	}
	return ws.blocks[id]
}
