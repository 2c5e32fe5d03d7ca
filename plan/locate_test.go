package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0o644))
}

func TestDirLocator(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "index.ts"))
	writeFile(t, filepath.Join(dir, "src", "index.edge-light.ts"))
	writeFile(t, filepath.Join(dir, "src", "cli.ts"))
	writeFile(t, filepath.Join(dir, "src", "router", "index.js"))

	loc := DirLocator{Dir: dir}

	got, ok := loc.Locate(".", "")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "src", "index.ts"), got)

	got, ok = loc.Locate(".", "edge-light")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "src", "index.edge-light.ts"), got)

	// variant without a dedicated source falls back to the default file
	got, ok = loc.Locate("./cli", "react-server")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "src", "cli.ts"), got)

	// directory entry resolves through its index file
	got, ok = loc.Locate("./router", "")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "src", "router", "index.js"), got)

	_, ok = loc.Locate("./missing", "")
	assert.False(t, ok)
}
