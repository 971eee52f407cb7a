package commands

import (
	"strings"

	"github.com/goliatone/go-modeldoc/internal/logging"
	"github.com/goliatone/go-modeldoc/pkg/interfaces"
)

const commandModuleRoot = "modeldoc.commands"

// CommandLogger returns the logger for a command module, named
// modeldoc.commands.<module>.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "convert"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
