// Package flags provides the feature-flag collaborator backed by static
// configuration. Flag storage proper lives outside this service; this
// implementation only mirrors whatever the config file declared at startup.
package flags

// Static answers flag lookups from a fixed map. Unknown flags are disabled.
type Static struct {
	enabled map[string]bool
}

func NewStatic(enabled map[string]bool) *Static {
	if enabled == nil {
		enabled = make(map[string]bool)
	}
	return &Static{enabled: enabled}
}

func (s *Static) IsEnabled(flag string) bool {
	return s.enabled[flag]
}
