package interfaces

// Settings reads namespaced configuration values scoped to a document, the
// way editor hosts expose per-resource settings. Lookups that miss resolve to
// the provided fallback.
type Settings interface {
	Bool(doc DocumentID, key string, fallback bool) bool
}

// SettingsFunc adapts a function to the Settings interface.
type SettingsFunc func(doc DocumentID, key string, fallback bool) bool

// Bool satisfies Settings.
func (f SettingsFunc) Bool(doc DocumentID, key string, fallback bool) bool {
	return f(doc, key, fallback)
}
