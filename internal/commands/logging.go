package commands

import (
	"strings"

	"github.com/goliatone/go-cellpaste/internal/logging"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

const commandModuleRoot = "cellpaste.commands"

// CommandLogger returns a module-scoped logger for command handlers so every
// execution carries consistent structured fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
