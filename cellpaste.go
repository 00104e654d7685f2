// Package cellpaste embeds pasted or dropped images into notebook markdown
// cells. The image bytes are base64-encoded into the cell's
// custom.attachments metadata and a markdown reference using the attachment:
// scheme is produced for insertion at the edit location. The host editor
// supplies the collaborators (cell resolver, transfer payload accessor,
// per-document settings) through pkg/interfaces and applies the returned
// metadata patch and snippet as a single edit.
package cellpaste

import (
	"github.com/goliatone/go-cellpaste/internal/attachments"
	"github.com/goliatone/go-cellpaste/internal/b64"
	pastecmd "github.com/goliatone/go-cellpaste/internal/commands/paste"
	"github.com/goliatone/go-cellpaste/internal/logging"
	"github.com/goliatone/go-cellpaste/internal/logging/gologger"
	"github.com/goliatone/go-cellpaste/internal/markdown"
	"github.com/goliatone/go-cellpaste/internal/paste"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

// Re-exported errors from the internal paste package.
var (
	ErrPasteDisabled     = paste.ErrPasteDisabled
	ErrDropDisabled      = paste.ErrDropDisabled
	ErrNoImagePayload    = paste.ErrNoImagePayload
	ErrNoImageBytes      = paste.ErrNoImageBytes
	ErrFilenameExtension = paste.ErrFilenameExtension
	ErrCellNotFound      = paste.ErrCellNotFound
)

// Re-exported types from the internal packages.
type (
	Service       = paste.Service
	ServiceOption = paste.ServiceOption
	EmbedRequest  = paste.EmbedRequest
	EmbedResult   = paste.EmbedResult

	Record = attachments.Record
	Store  = attachments.Store

	EditSink     = pastecmd.EditSink
	FeatureGates = pastecmd.FeatureGates
	HandlerSet   = pastecmd.HandlerSet

	EncodeOption = b64.Option
)

// Declined reports whether an embed error means "decline to handle the
// event"; hosts fall back to their default paste/drop behaviour.
func Declined(err error) bool {
	return paste.Declined(err)
}

// EncodeBase64 encodes data with the module's base64 encoder.
func EncodeBase64(data []byte, opts ...EncodeOption) string {
	return b64.Encode(data, opts...)
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(encoded string, opts ...EncodeOption) ([]byte, error) {
	return b64.Decode(encoded, opts...)
}

// WithoutPadding suppresses '=' padding on encode.
func WithoutPadding() EncodeOption {
	return b64.WithoutPadding()
}

// URLSafe selects the URL-safe base64 alphabet.
func URLSafe() EncodeOption {
	return b64.URLSafe()
}

// ChooseAttachment settles the filename for a new payload against the
// existing store: identical content reuses the occupant name, collisions get
// a numeric suffix starting at 2. The returned store is an updated copy.
func ChooseAttachment(store Store, payload, baseFilename, extension, mimeType string) (string, Store) {
	return attachments.Choose(store, payload, baseFilename, extension, mimeType)
}

// StoreFromMetadata extracts the attachment store embedded in cell metadata.
func StoreFromMetadata(meta map[string]any) Store {
	return attachments.FromMetadata(meta)
}

// ApplyStore writes the store back into a copy of the cell metadata,
// creating the custom.attachments nesting as needed.
func ApplyStore(meta map[string]any, store Store) map[string]any {
	return attachments.Apply(meta, store)
}

// References collects attachment names referenced by image links in a cell's
// markdown source. An empty scheme falls back to the default attachment
// scheme.
func References(source []byte, scheme string) []string {
	return markdown.References(source, scheme)
}

// PruneStore drops attachments the source no longer references under the
// given scheme, returning the surviving store and the removed names.
func PruneStore(store Store, source []byte, scheme string) (Store, []string) {
	return markdown.Prune(store, source, scheme)
}

// ModuleOption customises module construction.
type ModuleOption func(*Module)

// WithSettings wires the host's per-document settings source. Settings
// override the Features defaults per document.
func WithSettings(settings interfaces.Settings) ModuleOption {
	return func(m *Module) {
		m.settings = settings
	}
}

// WithLoggerProvider supplies a host logger provider instead of the one built
// from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) ModuleOption {
	return func(m *Module) {
		m.provider = provider
	}
}

// Module is the top level runtime façade wiring configuration, logging and
// the embed service together.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	settings interfaces.Settings
	resolver interfaces.CellResolver
	service  paste.Service
}

// New validates the configuration and constructs the module around the
// host's cell resolver.
func New(cfg Config, resolver interfaces.CellResolver, opts ...ModuleOption) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		config:   cfg,
		resolver: resolver,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil && cfg.Features.Logger {
		if cfg.Logging.Provider == "gologger" {
			provider, err := gologger.NewProvider(gologger.Config{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				AddSource: cfg.Logging.AddSource,
				Focus:     cfg.Logging.Focus,
			})
			if err != nil {
				return nil, err
			}
			m.provider = provider
		}
	}

	serviceOpts := []paste.ServiceOption{
		paste.WithLogger(logging.PasteLogger(m.provider)),
		paste.WithDefaults(cfg.Features.PasteImages, cfg.Features.DropImages),
	}
	if m.settings != nil {
		serviceOpts = append(serviceOpts, paste.WithSettings(m.settings))
	}
	if cfg.Paste.MimeType != "" {
		serviceOpts = append(serviceOpts, paste.WithMimeType(cfg.Paste.MimeType))
	}
	if cfg.Markdown.AttachmentScheme != "" {
		serviceOpts = append(serviceOpts, paste.WithScheme(cfg.Markdown.AttachmentScheme))
	}
	m.service = paste.NewService(resolver, serviceOpts...)

	return m, nil
}

// Service exposes the embed service contract.
func (m *Module) Service() Service {
	return m.service
}

// Commands builds the go-command handlers with feature gates and the
// configured attachment scheme bound to the module configuration, and
// registers them when reg is non-nil.
func (m *Module) Commands(reg pastecmd.CommandRegistry, sink EditSink, opts ...pastecmd.Option) (*HandlerSet, error) {
	gates := FeatureGates{
		PasteEnabled: func() bool { return m.config.Enabled },
		DropEnabled:  func() bool { return m.config.Enabled },
		PruneEnabled: func() bool {
			return m.config.Enabled && m.config.Features.Markdown && m.config.Features.PruneOnSave
		},
	}
	opts = append([]pastecmd.Option{
		pastecmd.WithAttachmentScheme(m.config.Markdown.AttachmentScheme),
	}, opts...)
	return pastecmd.RegisterPasteCommands(reg, m.service, m.resolver, sink, m.provider, gates, opts...)
}
