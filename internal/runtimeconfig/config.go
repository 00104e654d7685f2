// Package runtimeconfig holds the module configuration surface re-exported by
// the root package. Fields use simple types so host applications can populate
// them from whatever settings system they run.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMimeTypeInvalid = errors.New("cellpaste config: paste mime type must be an image type")
var ErrSchemeRequired = errors.New("cellpaste config: markdown attachment scheme is required")
var ErrPruneRequiresMarkdown = errors.New("cellpaste config: prune on save requires the markdown feature")
var ErrLoggingProviderRequired = errors.New("cellpaste config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("cellpaste config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("cellpaste config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("cellpaste config: logging format is invalid")

// Config aggregates feature flags and behaviour toggles for the module.
type Config struct {
	Enabled  bool
	Paste    PasteConfig
	Markdown MarkdownConfig
	Features Features
	Logging  LoggingConfig
}

// PasteConfig captures behaviour of the embed operations.
type PasteConfig struct {
	// MimeType selects the transfer payload type handled per event.
	MimeType string
}

// MarkdownConfig captures how attachment references are rendered and scanned.
type MarkdownConfig struct {
	// AttachmentScheme is the URI scheme used in markdown image links.
	AttachmentScheme string
}

// Features toggles module functionality. Paste and drop ship disabled and are
// opted into per host, mirroring the editor-side experimental settings.
type Features struct {
	PasteImages bool
	DropImages  bool
	Markdown    bool
	PruneOnSave bool
	Logger      bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults the module ships with: enabled core,
// embed operations gated off, image/png transfers, attachment scheme links.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Paste: PasteConfig{
			MimeType: "image/png",
		},
		Markdown: MarkdownConfig{
			AttachmentScheme: "attachment",
		},
		Features: Features{
			Markdown: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if mime := strings.TrimSpace(cfg.Paste.MimeType); mime != "" && !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("%w: %s", ErrMimeTypeInvalid, mime)
	}
	if strings.TrimSpace(cfg.Markdown.AttachmentScheme) == "" {
		return ErrSchemeRequired
	}
	if cfg.Features.PruneOnSave && !cfg.Features.Markdown {
		return ErrPruneRequiresMarkdown
	}
	if cfg.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
