// Package plan expands a resolved export map into concrete build jobs and
// their output targets.
package plan

import (
	"github.com/packplan/packplan/exports"
)

// RuntimeVariants are the condition keys that fork an export into an extra
// environment-specific job, in the order the jobs are emitted.
var RuntimeVariants = []string{"edge-light", "react-server", "react-native"}

// Entry is one resolved build target: the source file to bundle, the
// subpath it serves, and the condition subset driving this job. Immutable
// once created.
type Entry struct {
	Source  string
	Name    string
	Export  *exports.Condition
	Variant string
}

type Options struct {
	// Entry overrides source lookup for default jobs (single-entry mode).
	Entry string
	// TypesOnly restricts expansion to declaration jobs: default jobs for
	// subpaths declaring a "types" key, no runtime variants.
	TypesOnly bool
	Locator   SourceLocator
}

// Expand turns every subpath of the export map into zero or more build
// jobs: the default job first, then one job per declared runtime variant in
// fixed order. Jobs whose source cannot be located are dropped silently;
// an empty result means nothing to build, not a failure.
func Expand(paths *exports.Paths, opts Options) []Entry {
	entries := []Entry{}
	for _, subpath := range paths.Subpaths() {
		cond, _ := paths.Get(subpath)

		if opts.TypesOnly && !cond.Has("types") {
			continue
		}

		defaultCond := cond.Clone()
		for _, variant := range RuntimeVariants {
			defaultCond.Delete(variant)
		}

		source, ok := resolveSource(subpath, "", opts)
		if ok {
			entries = append(entries, Entry{
				Source: source,
				Name:   subpath,
				Export: defaultCond,
			})
		}

		if opts.TypesOnly {
			continue
		}

		for _, variant := range RuntimeVariants {
			file, declared := cond.Get(variant)
			if !declared {
				continue
			}
			variantSource, ok := resolveSource(subpath, variant, opts)
			if !ok {
				continue
			}
			variantCond := exports.NewCondition()
			variantCond.Set(subpath, file)
			entries = append(entries, Entry{
				Source:  variantSource,
				Name:    subpath,
				Export:  variantCond,
				Variant: variant,
			})
		}
	}
	return entries
}

func resolveSource(subpath, variant string, opts Options) (string, bool) {
	if variant == "" && opts.Entry != "" {
		return opts.Entry, true
	}
	if opts.Locator == nil {
		return "", false
	}
	return opts.Locator.Locate(subpath, variant)
}
