package pastecmd

// FeatureGates exposes the runtime toggles required by the command handlers.
// Callers inject closures reading from the module Config so handlers stay free
// of concrete configuration dependencies.
type FeatureGates struct {
	// PasteEnabled returns true when paste embedding is active.
	PasteEnabled func() bool
	// DropEnabled returns true when drop embedding is active.
	DropEnabled func() bool
	// PruneEnabled returns true when attachment pruning is active.
	PruneEnabled func() bool
}

func (g FeatureGates) pasteEnabled() bool {
	if g.PasteEnabled == nil {
		return true
	}
	return g.PasteEnabled()
}

func (g FeatureGates) dropEnabled() bool {
	if g.DropEnabled == nil {
		return true
	}
	return g.DropEnabled()
}

func (g FeatureGates) pruneEnabled() bool {
	if g.PruneEnabled == nil {
		return true
	}
	return g.PruneEnabled()
}
