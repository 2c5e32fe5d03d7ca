package exports

import (
	"github.com/packplan/packplan/manifest"
)

// BuildExportPaths merges the manifest's exports tree with the legacy
// main/module/types fields into one canonical export map. Explicit
// exports["."] keys win over legacy fields; legacy fields fill in keys the
// explicit export left out. A manifest declaring nothing yields an empty
// map, never an error.
func BuildExportPaths(m *manifest.Manifest) *Paths {
	moduleType := m.ModuleType()

	paths := NewPaths()
	if m.Exports != nil {
		paths = Normalize(m.Exports, moduleType)
	}

	legacy := NewCondition()
	if m.Main != "" {
		legacy.Set(PrimaryKey(moduleType), m.Main)
	}
	if m.Module != "" {
		legacy.Set("module", m.Module)
	}
	if t := m.TypesField(); t != "" {
		legacy.Set("types", t)
	}

	dot := legacy.Clone()
	if explicit, ok := paths.Get("."); ok {
		for _, key := range explicit.Keys() {
			v, _ := explicit.Get(key)
			dot.Set(key, v)
		}
	}

	if dot.Len() > 0 {
		paths.Set(".", dot)
	}
	return paths
}
