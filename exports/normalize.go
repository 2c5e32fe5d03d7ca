package exports

import (
	"path"
	"strings"

	"github.com/packplan/packplan/manifest"
)

// Normalize flattens a raw export-condition tree into a subpath -> condition
// map. The walk is depth first; a node is a condition leaf or a subpath
// group according to ExportsNode.IsLeaf, never by where it sits in the tree.
func Normalize(tree *manifest.ExportsNode, moduleType manifest.ModuleType) *Paths {
	out := NewPaths()
	if tree == nil {
		return out
	}
	walk(tree, ".", moduleType, out)
	return out
}

func walk(node *manifest.ExportsNode, subpath string, moduleType manifest.ModuleType, out *Paths) {
	if node.IsStr || node.IsLeaf() {
		out.Set(subpath, toCondition(node, moduleType))
		return
	}
	for _, key := range node.Keys {
		child, _ := node.Get(key)
		walk(child, joinSubpath(subpath, key), moduleType, out)
	}
}

// toCondition converts a leaf node. A bare string becomes the single
// module-type-appropriate key; object leaves keep every non-empty string
// value verbatim in declaration order.
func toCondition(node *manifest.ExportsNode, moduleType manifest.ModuleType) *Condition {
	cond := NewCondition()
	if node.IsStr {
		cond.Set(PrimaryKey(moduleType), node.Str)
		return cond
	}
	for _, key := range node.Keys {
		child, _ := node.Get(key)
		cond.Set(key, child.Str)
	}
	return cond
}

// PrimaryKey is the condition key a bare file path maps to: "require" for
// commonjs packages, "import" for module packages.
func PrimaryKey(moduleType manifest.ModuleType) string {
	if moduleType == manifest.TypeModule {
		return "import"
	}
	return "require"
}

// joinSubpath joins an accumulated subpath with a child key, POSIX style,
// keeping the canonical "./name" form: path.Join strips a leading "./", so
// it is put back whenever the result is not "." itself.
func joinSubpath(subpath, key string) string {
	joined := path.Join(subpath, key)
	if joined != "." && !strings.HasPrefix(joined, "./") {
		joined = "./" + joined
	}
	return joined
}
