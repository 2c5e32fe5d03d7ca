package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ExportsNode is one node of the raw "exports" field: either a bare file
// path string or an object whose values are further nodes. Decoding through
// a plain map would lose object key order, and the compiled plan follows
// declaration order, so the node records its own key list.
type ExportsNode struct {
	Str      string
	IsStr    bool
	Keys     []string
	Children map[string]*ExportsNode
}

// StringExports wraps a bare string exports value as a node.
func StringExports(s string) *ExportsNode {
	return &ExportsNode{Str: s, IsStr: true}
}

func (n *ExportsNode) Get(key string) (*ExportsNode, bool) {
	c, ok := n.Children[key]
	return c, ok
}

// IsLeaf reports whether the node is a resolved condition set: every value
// is a plain string and no key names a subpath. This single predicate is
// the only way nodes are told apart; position in the tree never matters.
func (n *ExportsNode) IsLeaf() bool {
	if n.IsStr {
		return false
	}
	for _, k := range n.Keys {
		if strings.HasPrefix(k, ".") {
			return false
		}
		if c := n.Children[k]; c == nil || !c.IsStr {
			return false
		}
	}
	return true
}

func (n *ExportsNode) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	node, err := decodeNode(dec)
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func decodeNode(dec *json.Decoder) (*ExportsNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case string:
		return &ExportsNode{Str: t, IsStr: true}, nil
	case json.Delim:
		if t != '{' {
			return nil, fmt.Errorf("unexpected %q in exports field", t.String())
		}
		node := &ExportsNode{Children: map[string]*ExportsNode{}}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key in exports field: %v", keyTok)
			}
			child, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			if _, seen := node.Children[key]; !seen {
				node.Keys = append(node.Keys, key)
			}
			node.Children[key] = child
		}
		// closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil
	case nil, bool, json.Number, float64:
		// Falsy or nonsense leaf values are kept as empty strings and
		// dropped later when conditions are built.
		return &ExportsNode{IsStr: true}, nil
	default:
		return nil, fmt.Errorf("unexpected token in exports field: %v", tok)
	}
}

func (n *ExportsNode) MarshalJSON() ([]byte, error) {
	if n.IsStr {
		return json.Marshal(n.Str)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range n.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(n.Children[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
