package exports

import (
	"encoding/json"
	"testing"

	"github.com/packplan/packplan/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, raw string) *manifest.ExportsNode {
	t.Helper()
	node := &manifest.ExportsNode{}
	require.NoError(t, json.Unmarshal([]byte(raw), node))
	return node
}

func condMap(c *Condition) map[string]string {
	out := map[string]string{}
	for _, k := range c.Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

func pathsMap(p *Paths) map[string]map[string]string {
	out := map[string]map[string]string{}
	for _, sp := range p.Subpaths() {
		c, _ := p.Get(sp)
		out[sp] = condMap(c)
	}
	return out
}

func TestNormalizeStringRoot(t *testing.T) {
	tree := manifest.StringExports("./index.js")

	cjs := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, map[string]map[string]string{
		".": {"require": "./index.js"},
	}, pathsMap(cjs))

	esm := Normalize(tree, manifest.TypeModule)
	assert.Equal(t, map[string]map[string]string{
		".": {"import": "./index.js"},
	}, pathsMap(esm))
}

func TestNormalizeLeafRoot(t *testing.T) {
	// a condition object with no subpath keys is the "." entry itself
	tree := parseTree(t, `{"import": "./a.mjs", "require": "./a.cjs"}`)
	got := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, map[string]map[string]string{
		".": {"import": "./a.mjs", "require": "./a.cjs"},
	}, pathsMap(got))
}

func TestNormalizeSubpaths(t *testing.T) {
	tree := parseTree(t, `{
		".": {"import": "./a.js", "require": "./a.cjs"},
		"./sub": "./sub.js"
	}`)
	got := Normalize(tree, manifest.TypeModule)
	assert.Equal(t, map[string]map[string]string{
		".":     {"import": "./a.js", "require": "./a.cjs"},
		"./sub": {"import": "./sub.js"},
	}, pathsMap(got))
	assert.Equal(t, []string{".", "./sub"}, got.Subpaths())
}

func TestNormalizeNested(t *testing.T) {
	tree := parseTree(t, `{
		"./lib": {
			"./deep": {"require": "./lib/deep.cjs"},
			"util": "./lib/util.js"
		}
	}`)
	got := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, map[string]map[string]string{
		"./lib/deep": {"require": "./lib/deep.cjs"},
		"./lib/util": {"require": "./lib/util.js"},
	}, pathsMap(got))
}

func TestNormalizeBareKeyGetsPrefix(t *testing.T) {
	tree := parseTree(t, `{"foo": {"./x": "./foo/x.js"}}`)
	got := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, []string{"./foo/x"}, got.Subpaths())
}

func TestNormalizeDropsFalsyLeafValues(t *testing.T) {
	tree := parseTree(t, `{".": {"import": "./a.mjs", "require": null}}`)
	got := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, map[string]map[string]string{
		".": {"import": "./a.mjs"},
	}, pathsMap(got))
}

func TestNormalizeIdempotent(t *testing.T) {
	tree := parseTree(t, `{
		".": {"import": "./a.js", "require": "./a.cjs", "types": "./a.d.ts"},
		"./sub": "./sub.js",
		"./nested": {"node": {"require": "./n.cjs"}}
	}`)
	first := Normalize(tree, manifest.TypeCommonJS)
	second := Normalize(tree, manifest.TypeCommonJS)
	assert.Equal(t, pathsMap(first), pathsMap(second))
	assert.Equal(t, first.Subpaths(), second.Subpaths())
}
