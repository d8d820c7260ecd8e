package union

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape describes the payload carried by a variant.
type Shape int

const (
	_ Shape = iota // zero value is an invalid shape

	ShapeRecord // flat set of named fields, mergeable next to the tag
	ShapeValue  // opaque value, needs a value field

	// ShapeTotal is the number of shapes defined, including the invalid zero value
	ShapeTotal = int(iota)
)

func (s Shape) IsValid() bool {
	return s > 0 && int(s) < ShapeTotal
}

// Schema maps variant names to payload shapes.
type Schema map[string]Shape

// Records declares every name as a record-shaped variant.
func Records(names ...string) Schema {
	return uniform(ShapeRecord, names)
}

// Values declares every name as a value-shaped variant.
func Values(names ...string) Schema {
	return uniform(ShapeValue, names)
}

func uniform(shape Shape, names []string) Schema {
	s := make(Schema, len(names))
	for _, n := range names {
		s[n] = shape
	}

	return s
}
