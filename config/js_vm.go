package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dop251/goja"
)

// RunConfigScript evaluates a packplan.config.js file and applies its calls
// onto conf. The script sees a `packplan` object; values it sets win over
// the YAML config.
func RunConfigScript(path string, conf *Config) error {

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(path)
	if abserr != nil {
		return abserr
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config at path %s: \n%v", path, err)
	}

	vm := goja.New()

	packplanObj := map[string]any{
		"entry":    conf.jsEntry,
		"exclude":  conf.jsExclude,
		"args":     conf.jsArgs,
		"planfile": conf.jsPlanfile,
	}

	vm.Set("print", jsPrint)
	vm.Set("println", jsPrintln)
	vm.Set("packplan", packplanObj)

	_, err = vm.RunScript("config", string(source))
	if err != nil {
		return fmt.Errorf("error parsing: %s = %s", path, err)
	}
	return nil
}

// entry(".", "./src/main.ts") pins one subpath to a source file; entry with
// a single argument sets the global entry override.
func (c *Config) jsEntry(args ...string) {
	if len(args) == 1 {
		c.Entry = args[0]
		return
	}
	if len(args) >= 2 {
		if c.Overrides == nil {
			c.Overrides = map[string]string{}
		}
		c.Overrides[args[0]] = args[1]
	}
}

func (c *Config) jsExclude(subpath string) {
	c.Exclude = append(c.Exclude, subpath)
}

func (c *Config) jsArgs(line string) {
	c.BundlerArgs = line
}

func (c *Config) jsPlanfile(name string) {
	c.Planfile = name
}

func jsPrint(args ...any) {
	fmt.Print(args...)
}

func jsPrintln(args ...any) {
	fmt.Println(args...)
}
