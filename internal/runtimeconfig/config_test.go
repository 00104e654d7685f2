package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Features.PasteImages || cfg.Features.DropImages {
		t.Fatalf("embed operations must ship disabled")
	}
	if cfg.Paste.MimeType != "image/png" {
		t.Fatalf("unexpected default mime type %q", cfg.Paste.MimeType)
	}
}

func TestValidateRejectsNonImageMimeType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paste.MimeType = "application/pdf"
	if err := cfg.Validate(); !errors.Is(err, ErrMimeTypeInvalid) {
		t.Fatalf("expected ErrMimeTypeInvalid got %v", err)
	}
}

func TestValidateRequiresAttachmentScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.AttachmentScheme = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrSchemeRequired) {
		t.Fatalf("expected ErrSchemeRequired got %v", err)
	}
}

func TestValidatePruneRequiresMarkdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.PruneOnSave = true
	cfg.Features.Markdown = false
	if err := cfg.Validate(); !errors.Is(err, ErrPruneRequiresMarkdown) {
		t.Fatalf("expected ErrPruneRequiresMarkdown got %v", err)
	}
}

func TestValidateLoggingRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true

	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid got %v", err)
	}

	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}
