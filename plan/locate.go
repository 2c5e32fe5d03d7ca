package plan

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceLocator finds the source file backing an export subpath. A miss is
// not an error; the expander drops the job.
type SourceLocator interface {
	Locate(subpath, variant string) (string, bool)
}

var sourceExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs"}

// DirLocator resolves sources under <Dir>/src using the usual layout:
// src/<name>.<ext>, src/<name>/index.<ext>, and for runtime variants
// src/<name>.<variant>.<ext> with fallback to the default source.
type DirLocator struct {
	Dir string
}

func (l DirLocator) Locate(subpath, variant string) (string, bool) {
	name := SubpathName(subpath)
	srcDir := filepath.Join(l.Dir, "src")

	if variant != "" {
		for _, ext := range sourceExtensions {
			p := filepath.Join(srcDir, name+"."+variant+ext)
			if exists(p) {
				return p, true
			}
		}
	}
	for _, ext := range sourceExtensions {
		p := filepath.Join(srcDir, name+ext)
		if exists(p) {
			return p, true
		}
	}
	for _, ext := range sourceExtensions {
		p := filepath.Join(srcDir, name, "index"+ext)
		if exists(p) {
			return p, true
		}
	}
	return "", false
}

func exists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SubpathName maps a canonical subpath to its bare name: "." becomes
// "index", "./foo" becomes "foo".
func SubpathName(subpath string) string {
	if subpath == "." {
		return "index"
	}
	return strings.TrimPrefix(subpath, "./")
}
