package schemafile

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the root of a schema file.
type File struct {
	Version string        `yaml:"version"`
	Unions  []Declaration `yaml:"unions"`
}

// Declaration declares one union.
type Declaration struct {
	Name     string      `yaml:"name"`
	Doc      string      `yaml:"doc,omitempty"`
	Tag      string      `yaml:"tag,omitempty"`
	Value    string      `yaml:"value,omitempty"`
	Variants VariantList `yaml:"variants"`
}

// VariantDecl declares one variant. Exactly one of Fields and Type is expected.
type VariantDecl struct {
	Name   string            `yaml:"name,omitempty"`
	Doc    string            `yaml:"doc,omitempty"`
	Fields map[string]string `yaml:"fields,omitempty"`
	Type   string            `yaml:"type,omitempty"`
}

// IsValue reports whether the variant carries a single value rather than fields.
func (v *VariantDecl) IsValue() bool {
	return v.Type != ""
}

// FieldNames returns the declared field names in sorted order.
func (v *VariantDecl) FieldNames() []string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// VariantList keeps variants in declaration order.
type VariantList []VariantDecl

// Names returns the variant names in declaration order.
func (l VariantList) Names() []string {
	names := make([]string, 0, len(l))
	for i := range l {
		names = append(names, l[i].Name)
	}

	return names
}

// UnmarshalYAML accepts either a sequence of variants or a mapping from
// variant name to variant body:
//   - [{name: circle, fields: {radius: float}}]
//   - {circle: {fields: {radius: float}}}
func (l *VariantList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []VariantDecl

		err := node.Decode(&list)
		if err != nil {
			return err
		}

		*l = list

		return nil

	case yaml.MappingNode:
		list := make(VariantList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var name string

			err := node.Content[i].Decode(&name)
			if err != nil {
				return err
			}

			var v VariantDecl

			err = node.Content[i+1].Decode(&v)
			if err != nil {
				return fmt.Errorf("variant %q: %w", name, err)
			}

			v.Name = name
			list = append(list, v)
		}

		*l = list

		return nil

	default:
		return fmt.Errorf("expected sequence or mapping of variants, got %v", node.Kind)
	}
}
