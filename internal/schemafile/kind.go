package schemafile

import (
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the declared type of a record field or of a value payload.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as the invalid kind

	KindString // string
	KindInt    // int
	KindFloat  // float
	KindBool   // bool
	KindAny    // any

	// KindTotal is the number of kinds defined, including the invalid zero value
	KindTotal = int(iota)
)

// KindNames lists the spellings accepted by ParseKind.
func KindNames() []string {
	names := make([]string, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		names = append(names, k.String())
	}

	return names
}

// ParseKind resolves a kind spelling. Unknown spellings return the invalid zero Kind.
func ParseKind(s string) (Kind, bool) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// Coerce converts a textual argument to a value of kind k.
// KindAny reads raw as a YAML scalar, so "3" becomes an int and "true" a bool.
func (k Kind) Coerce(raw string) (any, error) {
	switch k {
	case KindString:
		return raw, nil
	case KindInt:
		return cast.ToIntE(raw)
	case KindFloat:
		return cast.ToFloat64E(raw)
	case KindBool:
		return cast.ToBoolE(raw)
	case KindAny:
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("unable to read %q: %w", raw, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("cannot coerce to %v", k)
	}
}
