package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportsNodeOrder(t *testing.T) {
	raw := `{"require": "./a.cjs", "import": "./a.mjs", "types": "./a.d.ts"}`
	node := &ExportsNode{}
	require.NoError(t, json.Unmarshal([]byte(raw), node))

	assert.Equal(t, []string{"require", "import", "types"}, node.Keys)
	c, ok := node.Get("import")
	require.True(t, ok)
	assert.True(t, c.IsStr)
	assert.Equal(t, "./a.mjs", c.Str)
}

func TestExportsNodeString(t *testing.T) {
	node := &ExportsNode{}
	require.NoError(t, json.Unmarshal([]byte(`"./index.js"`), node))
	assert.True(t, node.IsStr)
	assert.Equal(t, "./index.js", node.Str)
	assert.False(t, node.IsLeaf())
}

func TestExportsNodeLeafPredicate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		leaf bool
	}{
		{
			name: "all string values, no subpath keys",
			raw:  `{"import": "./a.mjs", "require": "./a.cjs"}`,
			leaf: true,
		},
		{
			name: "subpath key present",
			raw:  `{"./sub": "./sub.js"}`,
			leaf: false,
		},
		{
			name: "nested object value",
			raw:  `{"import": {"types": "./a.d.ts", "default": "./a.mjs"}}`,
			leaf: false,
		},
		{
			name: "mixed string and subpath",
			raw:  `{"import": "./a.mjs", ".": "./a.js"}`,
			leaf: false,
		},
		{
			name: "empty object",
			raw:  `{}`,
			leaf: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &ExportsNode{}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), node))
			assert.Equal(t, tt.leaf, node.IsLeaf())
		})
	}
}

func TestExportsNodeFalsyValues(t *testing.T) {
	node := &ExportsNode{}
	require.NoError(t, json.Unmarshal([]byte(`{"import": null, "require": "./a.cjs"}`), node))
	c, ok := node.Get("import")
	require.True(t, ok)
	assert.True(t, c.IsStr)
	assert.Equal(t, "", c.Str)
	// null still counts as a string-shaped value for the leaf test
	assert.True(t, node.IsLeaf())
}

func TestExportsNodeRoundTrip(t *testing.T) {
	raw := `{".":{"import":"./a.mjs","require":"./a.cjs"},"./sub":"./sub.js"}`
	node := &ExportsNode{}
	require.NoError(t, json.Unmarshal([]byte(raw), node))
	out, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestManifestParse(t *testing.T) {
	raw := `{
		"name": "demo",
		"type": "module",
		"main": "./dist/index.cjs",
		"typings": "./dist/index.d.ts",
		"exports": {".": "./dist/index.mjs"},
		"dependencies": {"react": "^18.0.0"},
		"peerDependencies": {"react-dom": "^18.0.0"}
	}`
	m := &Manifest{}
	require.NoError(t, json.Unmarshal([]byte(raw), m))

	assert.Equal(t, TypeModule, m.ModuleType())
	assert.Equal(t, "./dist/index.d.ts", m.TypesField())
	assert.Equal(t, []string{"react", "react-dom"}, m.ExternalIDs())
	require.NotNil(t, m.Exports)
	assert.False(t, m.Exports.IsLeaf())
}

func TestManifestDefaultsCommonJS(t *testing.T) {
	m := &Manifest{}
	assert.Equal(t, TypeCommonJS, m.ModuleType())
	assert.Equal(t, "", m.TypesField())
}
