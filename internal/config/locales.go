package config

import (
	"bytes"
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Locales maps locale keys to their entries. It serializes with the root
// locale first and the remaining keys sorted, which is the order generators
// use for their language switcher.
type Locales map[string]LocaleEntry

// Keys returns the locale keys with the root locale first and the rest sorted.
func (l Locales) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		if k != RootLocale {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := l[RootLocale]; ok {
		keys = append([]string{RootLocale}, keys...)
	}
	return keys
}

// MarshalJSON implements json.Marshaler.
func (l Locales) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range l.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(l[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Locales) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range l.Keys() {
		var value yaml.Node
		if err := value.Encode(l[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value)
	}
	return node, nil
}
