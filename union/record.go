package union

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// structTag is the struct tag consulted when converting between structs and records.
const structTag = "json"

// Record is a plain data record: the physical form of every variant instance.
type Record map[string]any

// Clone returns a shallow copy of r. A nil record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Merge returns a new record with the fields of patch written over a copy of r.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}

	return out
}

// Without returns a copy of r lacking the given field.
func (r Record) Without(field string) Record {
	out := r.Clone()
	delete(out, field)

	return out
}

// IsPlainRecord reports whether v is a map with string keys, such as a Record.
// Only plain records take part in shallow merges on update. Structs are not
// plain records.
func IsPlainRecord(v any) bool {
	switch v.(type) {
	case Record, map[string]any:
		return true
	case nil:
		return false
	}

	t := reflect.TypeOf(v)

	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

// ToRecord converts a record-like value to a Record.
//
// Supports:
//   - Record and map[string]any (returned without copying)
//   - other maps with string keys
//   - structs and pointers to structs, keyed by their json tags with the
//     fields of embedded structs promoted as encoding/json does
//   - nil, as an empty record
func ToRecord(v any) (Record, error) {
	switch r := v.(type) {
	case nil:
		return Record{}, nil
	case Record:
		return r, nil
	case map[string]any:
		return Record(r), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Record{}, nil
		}
		rv = rv.Elem()
	}

	switch {
	case rv.Kind() == reflect.Struct:
		out, err := structRecord(rv)
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %w", ErrNotRecord, v, err)
		}

		return Record(out), nil
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotRecord, v)
	}

	out := map[string]any{}
	if err := decode(rv.Interface(), &out); err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrNotRecord, v, err)
	}

	return Record(out), nil
}

// decode copies src into the value pointed to by dst using json field names.
// Embedded structs are flattened into their parent.
func decode(src, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    structTag,
		Squash:     true,
		DecodeHook: mapstructure.DecodeHookFuncType(integralHook),
		Result:     dst,
	})
	if err != nil {
		return err
	}

	return dec.Decode(src)
}

// integralHook rejects floats bound for integer fields unless they hold a whole
// number within the range of the field.
func integralHook(from, to reflect.Type, data any) (any, error) {
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}

	var lo, hi float64
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		hi = math.Ldexp(1, to.Bits()-1)
		lo = -hi
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		hi = math.Ldexp(1, to.Bits())
	default:
		return data, nil
	}

	// hi is exclusive: it is the first power of two the type cannot hold
	f := reflect.ValueOf(data).Float()
	switch {
	case math.IsInf(f, 0), f != math.Trunc(f):
		return nil, fmt.Errorf("%w: %v into %v", ErrLossyNumber, f, to)
	case f < lo || f >= hi:
		return nil, fmt.Errorf("%w: %v overflows %v", ErrLossyNumber, f, to)
	}

	return data, nil
}

// isRecordType reports whether values of t can be converted by ToRecord.
func isRecordType(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	default:
		return false
	}
}
