package builder

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/packplan/packplan/exports"
	"github.com/packplan/packplan/manifest"
	"github.com/packplan/packplan/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pkgDir = "/pkg"

func testManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m := &manifest.Manifest{}
	raw := `{
		"name": "demo",
		"type": "module",
		"dependencies": {"react": "^18.0.0"}
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), m))
	return m
}

func entry(subpath, variant, source string, cond map[string]string, order []string) plan.Entry {
	c := exports.NewCondition()
	for _, k := range order {
		c.Set(k, cond[k])
	}
	return plan.Entry{Source: source, Name: subpath, Export: c, Variant: variant}
}

func TestAssemble(t *testing.T) {
	m := testManifest(t)
	entries := []plan.Entry{
		entry(".", "", "/pkg/src/index.ts",
			map[string]string{"import": "./dist/index.mjs", "types": "./dist/index.d.ts"},
			[]string{"import", "types"}),
		entry(".", "edge-light", "/pkg/src/index.edge-light.ts",
			map[string]string{".": "./dist/index.edge.mjs"},
			[]string{"."}),
	}

	jobs := Assemble(m, entries, pkgDir, "", "--minify")
	require.Len(t, jobs, 2)

	assert.Equal(t, "index", jobs[0].Name)
	assert.Equal(t, "index_edge_light", jobs[1].Name)
	assert.Equal(t, []string{"react"}, jobs[0].Externals)
	assert.Equal(t, "--minify", jobs[0].ArgLine)

	// default job carries the declaration output, the variant job does not
	assert.NotEmpty(t, jobs[0].Declaration)
	assert.Empty(t, jobs[1].Declaration)

	require.Len(t, jobs[0].Targets, 1)
	assert.Equal(t, exports.FormatESM, jobs[0].Targets[0].Format)
}

func TestAssembleUniqueNames(t *testing.T) {
	m := testManifest(t)
	cond := map[string]string{"import": "./dist/a.mjs"}
	entries := []plan.Entry{
		entry("./a-b", "", "/pkg/src/a-b.ts", cond, []string{"import"}),
		entry("./a/b", "", "/pkg/src/a/b.ts", cond, []string{"import"}),
	}
	jobs := Assemble(m, entries, pkgDir, "", "")
	assert.Equal(t, "a_b", jobs[0].Name)
	assert.Equal(t, "a_b_1", jobs[1].Name)
}

func TestRenderPlanfile(t *testing.T) {
	m := testManifest(t)
	entries := []plan.Entry{
		entry(".", "", "/pkg/src/index.ts",
			map[string]string{"import": "./dist/index.mjs", "require": "./dist/index.cjs"},
			[]string{"import", "require"}),
	}
	jobs := Assemble(m, entries, pkgDir, "", "")

	var buf bytes.Buffer
	require.NoError(t, RenderPlanfile(&buf, m.Name, jobs, pkgDir))
	out := buf.String()

	assert.Contains(t, out, "# build plan: demo")
	assert.Contains(t, out, "job index:")
	assert.Contains(t, out, `"src/index.ts"`)
	assert.Contains(t, out, `esm "dist/index.mjs"`)
	assert.Contains(t, out, `cjs "dist/index.cjs"`)
	assert.Contains(t, out, `"react"`)
}

func TestSplitArgs(t *testing.T) {
	got, err := SplitArgs(`--minify --define 'process.env.NODE_ENV="production"'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--minify", "--define", `process.env.NODE_ENV="production"`}, got)

	got, err = SplitArgs("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUniqueName(t *testing.T) {
	used := []string{}
	for _, want := range []string{"index", "index_1", "index_2"} {
		got := uniqueName("index", used)
		assert.Equal(t, want, got)
		used = append(used, got)
	}
	assert.False(t, strings.Contains(uniqueName("edge-light", nil), "-"))
}
