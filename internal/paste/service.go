package paste

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cellpaste/internal/attachments"
	"github.com/goliatone/go-cellpaste/internal/b64"
	"github.com/goliatone/go-cellpaste/internal/logging"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

// Service turns paste/drop transfer payloads into attachment metadata patches
// and markdown snippets.
type Service interface {
	PasteImage(ctx context.Context, req EmbedRequest) (*EmbedResult, error)
	DropImage(ctx context.Context, req EmbedRequest) (*EmbedResult, error)
}

// ServiceOption customises the embed service.
type ServiceOption func(*service)

// WithLogger injects the logger used for operation telemetry.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSettings wires the host's per-document settings source. Without one the
// feature defaults passed to NewService decide whether operations run.
func WithSettings(settings interfaces.Settings) ServiceOption {
	return func(s *service) {
		s.settings = settings
	}
}

// WithMimeType overrides the transfer payload type handled by the service.
func WithMimeType(mime string) ServiceOption {
	return func(s *service) {
		if mime != "" {
			s.mimeType = mime
		}
	}
}

// WithScheme overrides the URI scheme used in generated markdown references.
func WithScheme(scheme string) ServiceOption {
	return func(s *service) {
		if scheme != "" {
			s.scheme = scheme
		}
	}
}

// WithDefaults sets the fallback enablement for paste and drop, used when no
// settings source is wired or as the settings lookup fallback.
func WithDefaults(paste, drop bool) ServiceOption {
	return func(s *service) {
		s.pasteDefault = paste
		s.dropDefault = drop
	}
}

type service struct {
	resolver     interfaces.CellResolver
	settings     interfaces.Settings
	logger       interfaces.Logger
	mimeType     string
	scheme       string
	pasteDefault bool
	dropDefault  bool
}

// NewService constructs the embed service around the host's cell resolver.
func NewService(resolver interfaces.CellResolver, opts ...ServiceOption) Service {
	svc := &service{
		resolver: resolver,
		logger:   logging.NoOp(),
		mimeType: DefaultMimeType,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// PasteImage handles a clipboard paste event.
func (s *service) PasteImage(ctx context.Context, req EmbedRequest) (*EmbedResult, error) {
	if !s.enabled(req.Document, SettingPasteImages, s.pasteDefault) {
		return nil, ErrPasteDisabled
	}
	return s.embed(ctx, req, "paste")
}

// DropImage handles a drag-and-drop event.
func (s *service) DropImage(ctx context.Context, req EmbedRequest) (*EmbedResult, error) {
	if !s.enabled(req.Document, SettingDropImages, s.dropDefault) {
		return nil, ErrDropDisabled
	}
	return s.embed(ctx, req, "drop")
}

func (s *service) enabled(doc interfaces.DocumentID, key string, fallback bool) bool {
	if s.settings == nil {
		return fallback
	}
	return s.settings.Bool(doc, key, fallback)
}

func (s *service) embed(ctx context.Context, req EmbedRequest, source string) (*EmbedResult, error) {
	if req.Transfer == nil {
		return nil, ErrNoImagePayload
	}

	payload, err := req.Transfer.Get(ctx, s.mimeType)
	if err != nil {
		return nil, fmt.Errorf("cellpaste: transfer payload: %w", err)
	}
	if payload == nil {
		return nil, ErrNoImagePayload
	}
	if len(payload.Bytes) == 0 {
		return nil, ErrNoImageBytes
	}

	base, ext, ok := SplitFilename(payload.Filename)
	if !ok {
		return nil, ErrFilenameExtension
	}

	if s.resolver == nil {
		return nil, ErrCellNotFound
	}
	cell, err := s.resolver.ResolveCell(ctx, req.Document)
	if err != nil {
		return nil, fmt.Errorf("cellpaste: resolve cell: %w", err)
	}
	if cell == nil {
		return nil, ErrCellNotFound
	}

	encoded := b64.Encode(payload.Bytes)
	store := attachments.FromMetadata(cell.Metadata)
	name, store := attachments.Choose(store, encoded, base, ext, s.mimeType)
	metadata := attachments.Apply(cell.Metadata, store)

	logging.WithFields(s.logger, map[string]any{
		"operation":  "cellpaste.embed",
		"source":     source,
		"document":   string(req.Document),
		"attachment": name,
		"bytes":      len(payload.Bytes),
	}).Info("cellpaste.embed.completed")

	return &EmbedResult{
		Cell:     cell,
		Name:     name,
		Metadata: metadata,
		Snippet:  BuildSnippet(payload.Filename, name, s.scheme),
	}, nil
}
