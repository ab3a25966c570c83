package swagger

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// Paths maps URL templates to path items and remembers insertion order.
// The zero value is not usable; use NewPaths.
type Paths struct {
	keys  []string
	items map[string]PathItem
}

// NewPaths returns an empty ordered path map.
func NewPaths() *Paths {
	return &Paths{items: make(map[string]PathItem)}
}

// Set stores item under url. A new url is appended to the key order.
func (p *Paths) Set(url string, item PathItem) {
	if _, ok := p.items[url]; !ok {
		p.keys = append(p.keys, url)
	}
	p.items[url] = item
}

// Get returns the path item for url.
func (p *Paths) Get(url string) (PathItem, bool) {
	item, ok := p.items[url]
	return item, ok
}

// Keys returns the URLs in insertion order.
func (p *Paths) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of paths.
func (p *Paths) Len() int {
	return len(p.keys)
}

// MarshalJSON writes the paths object with keys in insertion order.
func (p *Paths) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, p.items[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with keys in insertion order.
func (p *Paths) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(p.keys)*2),
	}
	for _, key := range p.keys {
		valNode, err := toNode(p.items[key])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, scalarNode("!!str", key), valNode)
	}
	return node, nil
}

// writeJSON encodes v without HTML escaping and without the trailing newline.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// toNode converts v to a yaml.Node through a marshal round trip.
func toNode(v any) (*yaml.Node, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0], nil
	}
	return &doc, nil
}
