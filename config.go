package cellpaste

import "github.com/goliatone/go-cellpaste/internal/runtimeconfig"

var (
	ErrMimeTypeInvalid         = runtimeconfig.ErrMimeTypeInvalid
	ErrSchemeRequired          = runtimeconfig.ErrSchemeRequired
	ErrPruneRequiresMarkdown   = runtimeconfig.ErrPruneRequiresMarkdown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	PasteConfig    = runtimeconfig.PasteConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
