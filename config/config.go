// Package config loads packplan's own tool configuration: an optional
// packplan.yaml plus an optional packplan.config.js, the script winning on
// overlap.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

const (
	YAMLName   = "packplan.yaml"
	ScriptName = "packplan.config.js"
)

type Config struct {
	// Entry pins every default job to one source file (single-entry mode).
	Entry string `json:"entry"`
	// TypesOnly restricts the plan to declaration jobs.
	TypesOnly bool `json:"typesOnly"`
	// Exclude lists subpaths dropped from the plan.
	Exclude []string `json:"exclude"`
	// BundlerArgs is an extra flag string embedded per job.
	BundlerArgs string `json:"bundlerArgs"`
	// Planfile overrides the rendered plan file name.
	Planfile string `json:"planfile"`

	// Overrides maps subpaths to source files, set from the config script.
	Overrides map[string]string `json:"-"`

	path string
}

// Parse parses a YAML doc into the given Config instance.
func parse(raw []byte, conf *Config) error {
	return yaml.UnmarshalStrict(raw, conf)
}

// ParseFile parses a packplan.yaml file, which is formatted in YAML,
// and fills the given Config.
func ParseFile(relpath string, conf *Config) error {
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
		return fmt.Errorf("failed to read config at path %s: \n%v", path, err)
	}

	err = parse(source, conf)
	if err != nil {
		return fmt.Errorf("failed to parse config at path %s: \n%v", path, err)
	}

	conf.path = path

	return nil
}

// LoadDir loads configuration from a package directory. Missing files are
// fine; the zero config is valid.
func LoadDir(dir string) (*Config, error) {
	conf := &Config{}

	yamlPath := filepath.Join(dir, YAMLName)
	if _, err := os.Stat(yamlPath); err == nil {
		if err := ParseFile(yamlPath, conf); err != nil {
			return nil, err
		}
	}

	scriptPath := filepath.Join(dir, ScriptName)
	if _, err := os.Stat(scriptPath); err == nil {
		if err := RunConfigScript(scriptPath, conf); err != nil {
			return nil, err
		}
	}

	return conf, nil
}

func (c *Config) Excluded(subpath string) bool {
	for _, e := range c.Exclude {
		if e == subpath {
			return true
		}
	}
	return false
}
