package modeldoc

import "github.com/goliatone/go-modeldoc/internal/runtimeconfig"

var (
	ErrPreviewFeatureRequired  = runtimeconfig.ErrPreviewFeatureRequired
	ErrDiscoveryPatternInvalid = runtimeconfig.ErrDiscoveryPatternInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
)

type (
	Config          = runtimeconfig.Config
	Features        = runtimeconfig.Features
	RenderConfig    = runtimeconfig.RenderConfig
	DiscoveryConfig = runtimeconfig.DiscoveryConfig
	PreviewConfig   = runtimeconfig.PreviewConfig
	CommandsConfig  = runtimeconfig.CommandsConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the defaults used by the modeldoc CLI.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
