package schemafile

import (
	"errors"
	"fmt"
	"strings"

	"unionize/internal/suggest"
	"unionize/union"
	"unionize/utils"
)

var (
	ErrUnknownUnion  = errors.New("unknown union")
	ErrUnknownField  = errors.New("unknown field")
	ErrBadArgument   = errors.New("bad payload argument")
	ErrInvalidSchema = errors.New("invalid schema")
)

// Lookup finds the union declared as name.
func (f *File) Lookup(name string) (*Declaration, error) {
	names := make([]string, 0, len(f.Unions))
	for i := range f.Unions {
		if f.Unions[i].Name == name {
			return &f.Unions[i], nil
		}

		names = append(names, f.Unions[i].Name)
	}

	return nil, fmt.Errorf("%w %q%s", ErrUnknownUnion, name, hint(suggest.Closest(name, names, 2)))
}

// Variant finds the variant declared as name.
func (d *Declaration) Variant(name string) (*VariantDecl, error) {
	for i := range d.Variants {
		if d.Variants[i].Name == name {
			return &d.Variants[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w%s", d.Name, &union.UnknownVariantError{Tag: name},
		hint(suggest.Closest(name, d.Variants.Names(), 2)))
}

// Config returns the union layout of d.
func (d *Declaration) Config() union.Config {
	return union.Config{TagField: d.Tag, ValueField: d.Value}
}

// Schema returns the variant shapes of d.
func (d *Declaration) Schema() union.Schema {
	s := make(union.Schema, len(d.Variants))
	for i := range d.Variants {
		shape := union.ShapeRecord
		if d.Variants[i].IsValue() {
			shape = union.ShapeValue
		}

		s[d.Variants[i].Name] = shape
	}

	return s
}

// Build validates d and derives its union.
func (d *Declaration) Build() (*union.Union, error) {
	single := &File{Version: CurrentVersion, Unions: []Declaration{*d}}
	if err := Validate(single).Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return union.Build(d.Schema(), d.Config())
}

// Payload turns textual arguments into a payload for variant.
//
// Record variants take key=value pairs coerced by the declared field kinds;
// fields that are not given are left out. Value variants take exactly one
// argument coerced by the declared type.
func (d *Declaration) Payload(variant string, args []string) (any, error) {
	v, err := d.Variant(variant)
	if err != nil {
		return nil, err
	}

	if v.IsValue() {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s.%s takes exactly one value, got %d", ErrBadArgument, d.Name, v.Name, len(args))
		}

		return coerce(v.Type, args[0])
	}

	fields := union.Record{}

	for _, arg := range args {
		key, raw := utils.Unpack2(strings.SplitN(arg, "=", 2))
		if key == "" || !strings.Contains(arg, "=") {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrBadArgument, arg)
		}

		kind, ok := v.Fields[key]
		if !ok {
			return nil, fmt.Errorf("%w %q in %s.%s%s", ErrUnknownField, key, d.Name, v.Name,
				hint(suggest.Closest(key, v.FieldNames(), 2)))
		}

		val, err := coerce(kind, raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}

		fields[key] = val
	}

	return fields, nil
}

func coerce(spelling, raw string) (any, error) {
	kind, ok := ParseKind(spelling)
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSchema, spelling)
	}

	val, err := kind.Coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}

	return val, nil
}

func hint(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	return fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, " or "))
}
