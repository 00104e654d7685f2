package pastecmd

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/goliatone/go-cellpaste/internal/attachments"
	"github.com/goliatone/go-cellpaste/internal/commands"
	"github.com/goliatone/go-cellpaste/internal/logging"
	"github.com/goliatone/go-cellpaste/internal/markdown"
	"github.com/goliatone/go-cellpaste/internal/paste"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

// ErrFeatureDisabled signals that the relevant gate rejected the operation.
var ErrFeatureDisabled = errors.New("cellpaste: command feature disabled")

// EditSink applies computed edits back to the notebook document. Hosts supply
// an implementation that patches cell metadata and inserts inline snippets as
// a single workspace edit.
type EditSink interface {
	// ApplyEdit applies a complete embed outcome: metadata patch plus snippet.
	ApplyEdit(ctx context.Context, edit *paste.EmbedResult) error
	// ApplyMetadata applies a metadata-only patch to the resolved cell.
	ApplyMetadata(ctx context.Context, cell *interfaces.Cell, metadata map[string]any) error
}

// EmbedImageHandler runs embed commands through the shared handler foundation.
type EmbedImageHandler struct {
	inner *commands.Handler[EmbedImageCommand]
}

// NewEmbedImageHandler constructs a handler wired to the embed service. A
// declined operation (flag off, missing payload, unresolved cell) completes
// without error and without touching the sink so the host falls back to its
// default paste/drop behaviour.
func NewEmbedImageHandler(service paste.Service, sink EditSink, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[EmbedImageCommand]) *EmbedImageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg EmbedImageCommand) error {
		opLogger := logging.WithFields(baseLogger, map[string]any{
			"operation_id": operationID(msg.OperationID),
			"source":       string(msg.Source),
		})

		enabled := gates.pasteEnabled()
		if msg.Source == SourceDrop {
			enabled = gates.dropEnabled()
		}
		if !enabled {
			return ErrFeatureDisabled
		}

		req := paste.EmbedRequest{Document: msg.Document, Transfer: msg.Transfer}
		var (
			result *paste.EmbedResult
			err    error
		)
		if msg.Source == SourceDrop {
			result, err = service.DropImage(ctx, req)
		} else {
			result, err = service.PasteImage(ctx, req)
		}
		if err != nil {
			if paste.Declined(err) {
				opLogger.Debug("cellpaste.command.embed.declined", "reason", err)
				return nil
			}
			return err
		}

		if sink == nil {
			return errors.New("cellpaste: edit sink not configured")
		}
		if err := sink.ApplyEdit(ctx, result); err != nil {
			return err
		}
		opLogger.Info("cellpaste.command.embed.applied", "attachment", result.Name)
		return nil
	}

	handlerOpts := []commands.HandlerOption[EmbedImageCommand]{
		commands.WithLogger[EmbedImageCommand](baseLogger),
		commands.WithOperation[EmbedImageCommand]("cellpaste.image.embed"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &EmbedImageHandler{
		inner: commands.NewHandler[EmbedImageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[EmbedImageCommand].
func (h *EmbedImageHandler) Execute(ctx context.Context, msg EmbedImageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PruneAttachmentsHandler removes attachments the cell source no longer
// references.
type PruneAttachmentsHandler struct {
	inner *commands.Handler[PruneAttachmentsCommand]
}

// NewPruneAttachmentsHandler constructs a prune handler wired to the host's
// cell resolver and edit sink. Attachment references are matched under the
// given URI scheme (the default scheme when empty).
func NewPruneAttachmentsHandler(resolver interfaces.CellResolver, sink EditSink, logger interfaces.Logger, gates FeatureGates, scheme string, opts ...commands.HandlerOption[PruneAttachmentsCommand]) *PruneAttachmentsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PruneAttachmentsCommand) error {
		if !gates.pruneEnabled() {
			return ErrFeatureDisabled
		}

		opLogger := logging.WithFields(baseLogger, map[string]any{
			"operation_id": operationID(msg.OperationID),
			"document":     string(msg.Document),
		})

		if resolver == nil {
			return errors.New("cellpaste: cell resolver not configured")
		}
		cell, err := resolver.ResolveCell(ctx, msg.Document)
		if err != nil {
			return err
		}
		if cell == nil {
			opLogger.Debug("cellpaste.command.prune.no_cell")
			return nil
		}

		store := attachments.FromMetadata(cell.Metadata)
		kept, removed := markdown.Prune(store, msg.CellSource, scheme)
		if len(removed) == 0 {
			opLogger.Debug("cellpaste.command.prune.nothing_to_remove")
			return nil
		}

		if msg.DryRun {
			opLogger.Info("cellpaste.command.prune.dry_run", "removed", removed)
			return nil
		}

		if sink == nil {
			return errors.New("cellpaste: edit sink not configured")
		}
		metadata := attachments.Apply(cell.Metadata, kept)
		if err := sink.ApplyMetadata(ctx, cell, metadata); err != nil {
			return err
		}
		opLogger.Info("cellpaste.command.prune.applied", "removed", removed)
		return nil
	}

	handlerOpts := []commands.HandlerOption[PruneAttachmentsCommand]{
		commands.WithLogger[PruneAttachmentsCommand](baseLogger),
		commands.WithOperation[PruneAttachmentsCommand]("cellpaste.attachments.prune"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PruneAttachmentsHandler{
		inner: commands.NewHandler[PruneAttachmentsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PruneAttachmentsCommand].
func (h *PruneAttachmentsHandler) Execute(ctx context.Context, msg PruneAttachmentsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func operationID(id uuid.UUID) string {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return id.String()
}
