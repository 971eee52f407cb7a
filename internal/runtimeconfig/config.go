package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-modeldoc/internal/logging/gologger"
	"github.com/goliatone/go-modeldoc/internal/markdown"
)

var ErrPreviewFeatureRequired = errors.New("modeldoc config: preview feature must be enabled to configure html preview")
var ErrDiscoveryPatternInvalid = errors.New("modeldoc config: discovery pattern is not a valid glob")
var ErrLoggingProviderRequired = errors.New("modeldoc config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("modeldoc config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("modeldoc config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("modeldoc config: logging format is invalid")
var ErrCommandTimeoutInvalid = errors.New("modeldoc config: command timeout must be zero or positive")

// Config is the runtime configuration for a modeldoc module.
type Config struct {
	Features  Features
	Render    RenderConfig
	Discovery DiscoveryConfig
	Preview   PreviewConfig
	Commands  CommandsConfig
	Logging   LoggingConfig
}

// Features toggles optional subsystems.
type Features struct {
	Preview bool
	Logger  bool
}

// RenderConfig holds the document-level sections applied to every conversion
// unless a call overrides them.
type RenderConfig struct {
	Title           string
	TableOfContents bool
	FrontMatter     bool
}

// DiscoveryConfig controls how model files are found on disk.
type DiscoveryConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// PreviewConfig mirrors interfaces.ParseOptions for the HTML preview.
type PreviewConfig struct {
	Enabled    bool
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures command handler behaviour.
type CommandsConfig struct {
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		Discovery: DiscoveryConfig{
			BasePath:  ".",
			Pattern:   markdown.DefaultModelPattern,
			Recursive: true,
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if cfg.Preview.Enabled && !cfg.Features.Preview {
		return ErrPreviewFeatureRequired
	}
	if !markdown.ValidPattern(cfg.Discovery.Pattern) {
		return fmt.Errorf("%w: %s", ErrDiscoveryPatternInvalid, cfg.Discovery.Pattern)
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := NormalizeProvider(cfg.Logging.Provider)
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
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !gologger.SupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
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
