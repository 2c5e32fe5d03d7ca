package plan

import (
	"path/filepath"
	"strings"

	"github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/manifest"
)

// Target is one output artifact of a build job.
type Target struct {
	Format exports.Format
	File   string
}

// DefaultOutputFile is the artifact emitted when a condition declares no
// output at all, so every job produces at least one file.
const DefaultOutputFile = "dist/index.mjs"

// ResolveTargets computes the (format, file) pairs for one condition,
// relative paths resolved against dir. Keys are visited in declaration
// order, "types" is handled separately and skipped here, and duplicate
// files are collapsed to the first key that claimed them.
func ResolveTargets(cond *exports.Condition, dir string) []Target {
	targets := []Target{}
	seen := map[string]bool{}
	for _, key := range cond.Keys() {
		if key == "types" {
			continue
		}
		file, _ := cond.Get(key)
		abs := absIn(dir, file)
		if seen[abs] {
			continue
		}
		seen[abs] = true
		targets = append(targets, Target{
			Format: exports.ClassifyFormat(key, file),
			File:   abs,
		})
	}
	if len(targets) == 0 {
		targets = append(targets, Target{
			Format: exports.FormatESM,
			File:   absIn(dir, DefaultOutputFile),
		})
	}
	return targets
}

// HasOutputKeys reports whether a condition declares any non-types output,
// so callers can surface the fallback-target warning.
func HasOutputKeys(cond *exports.Condition) bool {
	for _, key := range cond.Keys() {
		if key != "types" {
			return true
		}
	}
	return false
}

// ResolveDeclarationPath derives where a job's type-declaration file lands.
// An explicit entry override pins it next to the working directory under
// the source's base name; otherwise a declared "types" key is honored
// verbatim; otherwise it is derived from the legacy types field's directory
// (default dist) and the subpath name.
func ResolveDeclarationPath(m *manifest.Manifest, cond *exports.Condition, subpath, entryOverride, dir string) string {
	if entryOverride != "" {
		return filepath.Join(dir, declarationBase(filepath.Base(entryOverride)))
	}
	if t, ok := cond.Get("types"); ok {
		return absIn(dir, t)
	}
	declDir := absIn(dir, "dist")
	if t := m.TypesField(); t != "" {
		declDir = filepath.Dir(absIn(dir, t))
	}
	return filepath.Join(declDir, SubpathName(subpath)+".d.ts")
}

func declarationBase(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	switch ext {
	case ".mts":
		return stem + ".d.mts"
	case ".cts":
		return stem + ".d.cts"
	default:
		return stem + ".d.ts"
	}
}

func absIn(dir, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(dir, file)
}
