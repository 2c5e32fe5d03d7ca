package config

import (
	"path/filepath"

	"github.com/packplan/packplan/plan"
)

// OverrideLocator serves configured subpath -> source pins before falling
// back to another locator. Variant lookups always go to the fallback; pins
// apply to default jobs only.
type OverrideLocator struct {
	Dir       string
	Overrides map[string]string
	Next      plan.SourceLocator
}

func (l OverrideLocator) Locate(subpath, variant string) (string, bool) {
	if variant == "" {
		if src, ok := l.Overrides[subpath]; ok {
			if filepath.IsAbs(src) {
				return filepath.Clean(src), true
			}
			return filepath.Join(l.Dir, src), true
		}
	}
	if l.Next == nil {
		return "", false
	}
	return l.Next.Locate(subpath, variant)
}
