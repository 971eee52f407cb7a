package convertcmd

// FeatureGates exposes runtime toggles consulted by the convert handlers.
// Callers supply closures reading runtimeconfig.Config.Features so handlers
// stay decoupled from configuration.
type FeatureGates struct {
	PreviewEnabled func() bool
}

func (g FeatureGates) previewEnabled() bool {
	if g.PreviewEnabled == nil {
		return false
	}
	return g.PreviewEnabled()
}
