package interfaces

import "context"

// ImagePayload carries the resolved bytes handed over by a paste or drop
// interaction together with the filename suggested by the source. It is
// consumed once per operation and never persisted.
type ImagePayload struct {
	Bytes    []byte
	Filename string
}

// DataTransfer exposes the MIME-keyed payload of a paste or drag-and-drop
// interaction. Get returns (nil, nil) when the transfer holds no payload for
// the requested MIME type. Byte retrieval may suspend on the host side, hence
// the context.
type DataTransfer interface {
	Get(ctx context.Context, mimeType string) (*ImagePayload, error)
}

// DataTransferFunc adapts a function to the DataTransfer interface.
type DataTransferFunc func(ctx context.Context, mimeType string) (*ImagePayload, error)

// Get satisfies DataTransfer.
func (f DataTransferFunc) Get(ctx context.Context, mimeType string) (*ImagePayload, error) {
	return f(ctx, mimeType)
}
