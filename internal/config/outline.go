package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutlineMode enumerates the outline forms understood by the generator.
type OutlineMode string

const (
	// OutlineDeep shows headings h2 through h6.
	OutlineDeep OutlineMode = "deep"
	// OutlineLevels shows the heading range Min..Max.
	OutlineLevels OutlineMode = "levels"
	// OutlineDisabled hides the outline (serialized as false).
	OutlineDisabled OutlineMode = "disabled"
)

// Heading level bounds accepted for outlines.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6

	deepMin = 2
	deepMax = 6
	// generator default when outline is unset
	defaultLevel = 2
)

// Outline controls which heading levels appear in the page table of contents.
// It accepts every shape the generator does: "deep", false, a level, a
// [min, max] pair, or an object with level and label.
type Outline struct {
	Mode  OutlineMode
	Min   int
	Max   int
	Label string
}

// DeepOutline returns the "deep" outline.
func DeepOutline() Outline { return Outline{Mode: OutlineDeep} }

// LevelOutline returns an outline covering lo..hi.
func LevelOutline(lo, hi int) Outline { return Outline{Mode: OutlineLevels, Min: lo, Max: hi} }

// IsZero reports whether the outline was left unset.
func (o Outline) IsZero() bool { return o.Mode == "" && o.Label == "" }

// Levels returns the effective heading range. ok is false when the outline is disabled.
func (o Outline) Levels() (lo, hi int, ok bool) {
	switch o.Mode {
	case OutlineDeep:
		return deepMin, deepMax, true
	case OutlineLevels:
		return o.Min, o.Max, true
	case OutlineDisabled:
		return 0, 0, false
	default:
		return defaultLevel, defaultLevel, true
	}
}

// levelValue is the serialized form of the level part (without label).
func (o Outline) levelValue() any {
	switch o.Mode {
	case OutlineDeep:
		return string(OutlineDeep)
	case OutlineDisabled:
		return false
	case OutlineLevels:
		if o.Min == o.Max {
			return o.Min
		}
		return []int{o.Min, o.Max}
	default:
		return nil
	}
}

func (o Outline) value() any {
	if o.Label == "" {
		return o.levelValue()
	}
	m := map[string]any{"label": o.Label}
	if lv := o.levelValue(); lv != nil {
		m["level"] = lv
	}
	return m
}

// MarshalYAML implements yaml.Marshaler.
func (o Outline) MarshalYAML() (any, error) { return o.value(), nil }

// MarshalJSON implements json.Marshaler.
func (o Outline) MarshalJSON() ([]byte, error) { return json.Marshal(o.value()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Outline) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var out Outline
		seen := map[string]bool{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if seen[key.Value] {
				return fmt.Errorf("line %d: outline key %q already defined", key.Line, key.Value)
			}
			seen[key.Value] = true
			switch key.Value {
			case "level":
				if err := out.decodeLevel(value); err != nil {
					return err
				}
			case "label":
				if err := value.Decode(&out.Label); err != nil {
					return err
				}
			default:
				return fmt.Errorf("line %d: field %s not found in outline", key.Line, key.Value)
			}
		}
		*o = out
		return nil
	default:
		var out Outline
		if err := out.decodeLevel(node); err != nil {
			return err
		}
		*o = out
		return nil
	}
}

func (o *Outline) decodeLevel(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!str":
			if node.Value != string(OutlineDeep) {
				return fmt.Errorf("line %d: unknown outline value %q", node.Line, node.Value)
			}
			o.Mode = OutlineDeep
			return nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			if b {
				return fmt.Errorf("line %d: outline may be false but not true", node.Line)
			}
			o.Mode = OutlineDisabled
			return nil
		case "!!int":
			var n int
			if err := node.Decode(&n); err != nil {
				return err
			}
			o.Mode, o.Min, o.Max = OutlineLevels, n, n
			return nil
		}
		return fmt.Errorf("line %d: unsupported outline value %q", node.Line, node.Value)
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: outline range needs exactly two levels, got %d", node.Line, len(pair))
		}
		o.Mode, o.Min, o.Max = OutlineLevels, pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("line %d: unsupported outline value", node.Line)
	}
}
