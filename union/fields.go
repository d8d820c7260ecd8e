package union

import (
	"fmt"
	"reflect"
	"strings"
)

// promoted is a struct field collected for a record, with the embedding depth it was found at.
type promoted struct {
	value     any
	depth     int
	tagged    bool
	ambiguous bool
}

// structRecord flattens the struct rv into a record keyed by json field names.
//
// Fields of embedded structs are promoted the way encoding/json promotes them:
//   - embedded structs are followed whether exported or not, through non-nil pointers
//   - a shallower field hides deeper ones with the same name
//   - at equal depth a tagged field wins over untagged ones, otherwise the name is dropped
//
// Nested struct fields become nested records.
func structRecord(rv reflect.Value) (map[string]any, error) {
	found := map[string]promoted{}
	if err := collectFields(rv, 0, found); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(found)+1)
	for name, p := range found {
		if !p.ambiguous {
			out[name] = p.value
		}
	}

	return out, nil
}

func collectFields(rv reflect.Value, depth int, found map[string]promoted) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		tag := f.Tag.Get(structTag)
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)

		if f.Anonymous && name == "" {
			if inner, ok := embeddedStruct(fv); ok {
				if inner.IsValid() {
					if err := collectFields(inner, depth+1, found); err != nil {
						return err
					}
				}

				continue
			}
		}

		if !f.IsExported() {
			continue
		}

		if hasOption(opts, "omitempty") && isEmptyValue(fv) {
			continue
		}

		value, err := fieldValue(fv)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		tagged := name != ""
		if !tagged {
			name = f.Name
		}

		prev, seen := found[name]
		switch {
		case !seen || depth < prev.depth, depth == prev.depth && tagged && !prev.tagged:
			found[name] = promoted{value: value, depth: depth, tagged: tagged}
		case depth == prev.depth && tagged == prev.tagged:
			prev.ambiguous = true
			found[name] = prev
		}
	}

	return nil
}

// embeddedStruct resolves an embedded field to the struct it promotes fields from.
// It reports false for embedded non-struct types, and an invalid value for a nil pointer.
func embeddedStruct(fv reflect.Value) (reflect.Value, bool) {
	switch {
	case fv.Kind() == reflect.Struct:
		return fv, true
	case fv.Kind() == reflect.Ptr && fv.Type().Elem().Kind() == reflect.Struct:
		if fv.IsNil() {
			return reflect.Value{}, true
		}

		return fv.Elem(), true
	default:
		return reflect.Value{}, false
	}
}

func fieldValue(fv reflect.Value) (any, error) {
	if !fv.CanInterface() {
		return nil, fmt.Errorf("%w: unreadable %v", ErrNotRecord, fv.Type())
	}

	inner := fv
	if inner.Kind() == reflect.Ptr && !inner.IsNil() {
		inner = inner.Elem()
	}

	if inner.Kind() == reflect.Struct {
		return structRecord(inner)
	}

	return fv.Interface(), nil
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var cur string
		cur, opts, _ = strings.Cut(opts, ",")
		if cur == option {
			return true
		}
	}

	return false
}

// isEmptyValue follows the omitempty rule of encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Ptr:
		return v.IsZero()
	default:
		return false
	}
}
