package ast

// VarId identifies a variable in the engine's variable store.
type VarId int

// DeclId identifies a declaration (a command or custom completion) in the
// engine's declaration store.
type DeclId int

// BlockId identifies a block in the working set. Blocks are referenced by id
// rather than owned inline so that several expressions can share one block
// and so Expr stays a fixed-size value.
type BlockId int

// InVariableID is the well-known variable holding the implicit pipeline
// input ($in). It is the only variable the capture and rewrite passes treat
// specially.
const InVariableID VarId = 1
