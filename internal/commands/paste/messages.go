// Package pastecmd exposes the embed and prune operations as go-command
// messages so hosts can route them through a dispatcher instead of calling the
// services directly.
package pastecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

const (
	embedImageMessageType       = "cellpaste.image.embed"
	pruneAttachmentsMessageType = "cellpaste.attachments.prune"
)

// EmbedSource names the interaction that produced the transfer payload.
type EmbedSource string

const (
	SourcePaste EmbedSource = "paste"
	SourceDrop  EmbedSource = "drop"
)

// EmbedImageCommand embeds the image payload of a paste or drop interaction
// into the owning cell's attachment metadata.
type EmbedImageCommand struct {
	// OperationID correlates log entries across the command lifecycle. A nil
	// ID is replaced with a fresh one at execution time.
	OperationID uuid.UUID `json:"operation_id,omitempty"`
	// Document identifies the text document that received the event.
	Document interfaces.DocumentID `json:"document"`
	// Source distinguishes paste from drop so the matching feature gate applies.
	Source EmbedSource `json:"source"`
	// Transfer yields the MIME-keyed payload captured by the host.
	Transfer interfaces.DataTransfer `json:"-"`
}

// Type implements command.Message.
func (EmbedImageCommand) Type() string { return embedImageMessageType }

// Validate ensures the command carries a document, a payload source and a
// recognised interaction kind.
func (m EmbedImageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(string(m.Document)) == "" {
		errs["document"] = validation.NewError("cellpaste.image.embed.document_required", "document is required")
	}
	if m.Transfer == nil {
		errs["transfer"] = validation.NewError("cellpaste.image.embed.transfer_required", "transfer payload accessor is required")
	}
	switch m.Source {
	case SourcePaste, SourceDrop:
	default:
		errs["source"] = validation.NewError("cellpaste.image.embed.source_invalid", "source must be paste or drop")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PruneAttachmentsCommand removes attachments no longer referenced by the
// cell's markdown source, typically dispatched on save.
type PruneAttachmentsCommand struct {
	// OperationID correlates log entries across the command lifecycle.
	OperationID uuid.UUID `json:"operation_id,omitempty"`
	// Document identifies the text document backing the cell to prune.
	Document interfaces.DocumentID `json:"document"`
	// CellSource is the current markdown source of the cell.
	CellSource []byte `json:"cell_source"`
	// DryRun reports what would be removed without producing a metadata patch.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (PruneAttachmentsCommand) Type() string { return pruneAttachmentsMessageType }

// Validate ensures the prune target is identified.
func (m PruneAttachmentsCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(string(m.Document)) == "" {
		errs["document"] = validation.NewError("cellpaste.attachments.prune.document_required", "document is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
