package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file name looked up inside a package directory.
const FileName = "package.json"

// ParseFile parses a package.json file into the given Manifest instance.
func ParseFile(relpath string, m *Manifest) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest at path %s: \n%v", path, err)
	}

	if err := json.Unmarshal(source, m); err != nil {
		return fmt.Errorf("failed to parse manifest at path %s: \n%v", path, err)
	}

	return nil
}

// Load reads <dir>/package.json.
func Load(dir string) (*Manifest, error) {
	m := &Manifest{}
	if err := ParseFile(filepath.Join(dir, FileName), m); err != nil {
		return nil, err
	}
	return m, nil
}
