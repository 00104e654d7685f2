package pastecmd

import (
	"errors"

	"github.com/goliatone/go-cellpaste/internal/commands"
	"github.com/goliatone/go-cellpaste/internal/logging"
	"github.com/goliatone/go-cellpaste/internal/paste"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers into a go-command dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterPasteCommands so callers
// can wire additional integrations.
type HandlerSet struct {
	Embed *EmbedImageHandler
	Prune *PruneAttachmentsHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	embedHandlerOpts []commands.HandlerOption[EmbedImageCommand]
	pruneHandlerOpts []commands.HandlerOption[PruneAttachmentsCommand]
	attachmentScheme string
}

// WithAttachmentScheme sets the URI scheme used when matching attachment
// references during pruning.
func WithAttachmentScheme(scheme string) Option {
	return func(cfg *options) {
		cfg.attachmentScheme = scheme
	}
}

// WithEmbedHandlerOptions forwards options to the EmbedImageHandler constructor.
func WithEmbedHandlerOptions(opts ...commands.HandlerOption[EmbedImageCommand]) Option {
	return func(cfg *options) {
		cfg.embedHandlerOpts = append(cfg.embedHandlerOpts, opts...)
	}
}

// WithPruneHandlerOptions forwards options to the PruneAttachmentsHandler constructor.
func WithPruneHandlerOptions(opts ...commands.HandlerOption[PruneAttachmentsCommand]) Option {
	return func(cfg *options) {
		cfg.pruneHandlerOpts = append(cfg.pruneHandlerOpts, opts...)
	}
}

// RegisterPasteCommands builds the command handlers and registers them with
// the provided registry. The constructed HandlerSet is returned so callers can
// dispatch directly as well.
func RegisterPasteCommands(reg CommandRegistry, service paste.Service, resolver interfaces.CellResolver, sink EditSink, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("paste command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	embedLogger := commands.CommandLogger(provider, "paste")
	pruneLogger := logging.WithFields(logging.MarkdownLogger(provider), map[string]any{
		"component": "command",
	})

	embedHandler := NewEmbedImageHandler(service, sink, embedLogger, gates, cfg.embedHandlerOpts...)
	pruneHandler := NewPruneAttachmentsHandler(resolver, sink, pruneLogger, gates, cfg.attachmentScheme, cfg.pruneHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(embedHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(pruneHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Embed: embedHandler, Prune: pruneHandler}, nil
}
