// Package exports resolves a package manifest's declared entry points into
// a canonical subpath -> condition map.
package exports

import "strings"

// Format is the module format of one output artifact.
type Format string

const (
	FormatESM Format = "esm"
	FormatCJS Format = "cjs"
)

var esmKeys = map[string]bool{
	"import": true,
	"module": true,
}

var cjsKeys = map[string]bool{
	"require": true,
	"main":    true,
	"node":    true,
	"default": true,
}

// IsESMCondition reports whether a condition key or its output file names an
// ESM artifact. The extension check is independent of the key name.
func IsESMCondition(key, file string) bool {
	if esmKeys[key] {
		return true
	}
	return strings.HasSuffix(file, ".mjs") || strings.HasSuffix(file, ".esm.js")
}

func IsCJSCondition(key, file string) bool {
	if cjsKeys[key] {
		return true
	}
	return strings.HasSuffix(file, ".cjs")
}

// ClassifyFormat picks the module format for one condition key. The ESM
// check runs first, so a pair matching both predicates is ESM. Keys that
// match neither fall back to ESM, the default format.
func ClassifyFormat(key, file string) Format {
	if IsESMCondition(key, file) {
		return FormatESM
	}
	if IsCJSCondition(key, file) {
		return FormatCJS
	}
	return FormatESM
}

// Condition is a resolved leaf of the export tree: condition name -> output
// file path, in declaration order. Setting an existing key updates the value
// in place, matching JS object-spread merge semantics.
type Condition struct {
	keys   []string
	values map[string]string
}

func NewCondition() *Condition {
	return &Condition{values: map[string]string{}}
}

// Set records a condition entry. Empty values are dropped.
func (c *Condition) Set(key, file string) {
	if file == "" {
		return
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = file
}

func (c *Condition) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Condition) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns condition names in declaration order.
func (c *Condition) Keys() []string {
	return c.keys
}

func (c *Condition) Len() int {
	return len(c.keys)
}

func (c *Condition) Delete(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

func (c *Condition) Clone() *Condition {
	out := NewCondition()
	for _, k := range c.keys {
		out.Set(k, c.values[k])
	}
	return out
}

// Paths is the canonical export surface: subpath ("." or "./name") ->
// condition, in declaration order.
type Paths struct {
	order []string
	conds map[string]*Condition
}

func NewPaths() *Paths {
	return &Paths{conds: map[string]*Condition{}}
}

func (p *Paths) Set(subpath string, cond *Condition) {
	if _, ok := p.conds[subpath]; !ok {
		p.order = append(p.order, subpath)
	}
	p.conds[subpath] = cond
}

func (p *Paths) Get(subpath string) (*Condition, bool) {
	c, ok := p.conds[subpath]
	return c, ok
}

// Subpaths returns subpaths in declaration order.
func (p *Paths) Subpaths() []string {
	return p.order
}

func (p *Paths) Len() int {
	return len(p.order)
}
