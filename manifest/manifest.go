package manifest

import (
	"sort"
)

type ModuleType string

const (
	TypeCommonJS ModuleType = "commonjs"
	TypeModule   ModuleType = "module"
)

// Manifest is the declared package metadata, parsed from package.json.
// It is treated as immutable input: nothing in the planner writes to it.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`

	Main    string `json:"main"`
	Module  string `json:"module"`
	Types   string `json:"types"`
	Typings string `json:"typings"`

	Exports *ExportsNode `json:"exports,omitempty"`

	Dependencies         map[string]string `json:"dependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	PeerDependenciesMeta map[string]any    `json:"peerDependenciesMeta"`
}

func (m *Manifest) ModuleType() ModuleType {
	if m.Type == string(TypeModule) {
		return TypeModule
	}
	return TypeCommonJS
}

// TypesField returns the declared declaration entry, preferring the
// "types" field over the older "typings" spelling.
func (m *Manifest) TypesField() string {
	if m.Types != "" {
		return m.Types
	}
	return m.Typings
}

// ExternalIDs lists dependency and peer-dependency names, the module
// specifiers a bundler should leave external for every job.
func (m *Manifest) ExternalIDs() []string {
	ids := make([]string, 0, len(m.Dependencies)+len(m.PeerDependencies))
	for name := range m.Dependencies {
		ids = append(ids, name)
	}
	for name := range m.PeerDependencies {
		if _, ok := m.Dependencies[name]; !ok {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids
}
