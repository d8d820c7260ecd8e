// Package union builds tagged unions over plain data records.
//
// A union is declared once from a Schema (variant names and payload shapes) and a
// Config (tag field name and optional value field name). The resulting *Union is
// immutable and safe for concurrent use. It derives a closed family of operations:
//   - Create: per-variant constructors producing new Records
//   - Is: per-variant predicates over the tag field
//   - As: per-variant casts returning the payload or a *CastMismatchError
//   - MatchOn / MatchValue: dispatch over a case table with an optional default
//   - UpdateOn / UpdateValue: immutable partial updates per current variant
//
// Two instance layouts are supported. Without a value field the payload fields
// are merged next to the tag:
//
//	{"tag": "circle", "radius": 2}
//
// With a value field the payload is held as a single nested value:
//
//	{"tag": "circle", "value": 2}
//
// Variant binds a Go payload type to a declared tag for typed construction,
// casting and matching.
package union
