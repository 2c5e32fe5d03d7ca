// Package lint checks a package manifest for structural well-formedness
// before the planner consumes it: field types, subpath key shape, and
// string leaf values in the exports tree.
package lint

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var manifestSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "packplan://manifest.schema.json",
	"type": "object",
	"properties": {
		"name": { "type": "string" },
		"version": { "type": "string" },
		"type": { "enum": ["module", "commonjs"] },
		"main": { "type": "string" },
		"module": { "type": "string" },
		"types": { "type": "string" },
		"typings": { "type": "string" },
		"exports": { "$ref": "#/$defs/exportsNode" },
		"dependencies": { "$ref": "#/$defs/depMap" },
		"peerDependencies": { "$ref": "#/$defs/depMap" },
		"peerDependenciesMeta": { "type": "object" }
	},
	"$defs": {
		"depMap": {
			"type": "object",
			"additionalProperties": { "type": "string" }
		},
		"exportsNode": {
			"oneOf": [
				{ "type": "string" },
				{
					"type": "object",
					"additionalProperties": { "$ref": "#/$defs/exportsNode" }
				}
			]
		}
	}
}`

func compile() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.ExtractAnnotations = true
	if err := compiler.AddResource("packplan://manifest.schema.json",
		strings.NewReader(manifestSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("packplan://manifest.schema.json")
}

// CheckFile validates one package.json against the manifest schema.
func CheckFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest at path %s: \n%v", path, err)
	}

	var doc any
	if err := json.Unmarshal(source, &doc); err != nil {
		return fmt.Errorf("failed to parse manifest at path %s: \n%v", path, err)
	}

	sch, err := compile()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("manifest %s invalid: %v", path, err)
	}
	return nil
}
