package registry

import (
	"bytes"
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping which remembers the order keys were first
// set in. It encodes to JSON and YAML objects in that order.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// Names maps entity codes to localized display names.
type Names = Map[string]

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// Set stores v under key. A new key is appended to the key order; an existing
// key keeps its position.
func (m *Map[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Each calls fn for every entry in order.
func (m *Map[V]) Each(fn func(key string, v V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// SortKeys reorders the entries by key, ascending.
func (m *Map[V]) SortKeys() {
	sort.Strings(m.keys)
}

// MarshalJSON implements json.Marshaler.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (m *Map[V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var val yaml.Node
		if err := val.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}
