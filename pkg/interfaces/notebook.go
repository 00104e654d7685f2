package interfaces

import "context"

// DocumentID identifies the text document backing a notebook cell, typically
// the document URI the editor hands to paste/drop providers.
type DocumentID string

// Cell is the logical notebook cell owning a text document. Metadata carries
// the cell's persisted metadata map, including any custom.attachments
// container; the module treats it as a snapshot and never mutates it.
type Cell struct {
	Document DocumentID
	Index    int
	Metadata map[string]any
}

// CellResolver locates the cell owning a document. Implementations return
// (nil, nil) when no open notebook contains the document; errors are reserved
// for host failures.
type CellResolver interface {
	ResolveCell(ctx context.Context, doc DocumentID) (*Cell, error)
}

// CellResolverFunc adapts a function to the CellResolver interface.
type CellResolverFunc func(ctx context.Context, doc DocumentID) (*Cell, error)

// ResolveCell satisfies CellResolver.
func (f CellResolverFunc) ResolveCell(ctx context.Context, doc DocumentID) (*Cell, error) {
	return f(ctx, doc)
}
