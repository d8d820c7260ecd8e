package union

import (
	"fmt"
	"reflect"
)

// Variant binds the Go payload type P to one declared variant of a union.
type Variant[P any] struct {
	u   *Union
	tag string
}

// Define binds P to the tag variant of u.
//
// In the merged layout P must be a struct, a pointer to a struct or a map with
// string keys; any other type fails with ErrNotRecord.
func Define[P any](u *Union, tag string) (Variant[P], error) {
	if !u.Has(tag) {
		return Variant[P]{}, &UnknownVariantError{Tag: tag}
	}

	if t := reflect.TypeFor[P](); u.cfg.Merged() && !isRecordType(t) {
		return Variant[P]{}, fmt.Errorf("%w: variant %s cannot carry %v without a value field", ErrNotRecord, tag, t)
	}

	return Variant[P]{u: u, tag: tag}, nil
}

// MustDefine is like Define but panics on error.
func MustDefine[P any](u *Union, tag string) Variant[P] {
	v, err := Define[P](u, tag)
	if err != nil {
		panic(err)
	}

	return v
}

// Tag returns the variant name.
func (v Variant[P]) Tag() string { return v.tag }

// Union returns the union the variant belongs to.
func (v Variant[P]) Union() *Union { return v.u }

// New creates an instance of the variant carrying p.
func (v Variant[P]) New(p P) (Record, error) {
	return v.u.creators[v.tag](p)
}

// Is reports whether r holds this variant.
func (v Variant[P]) Is(r Record) bool {
	return v.u.predicates[v.tag](r)
}

// As casts r to the variant and converts its payload to P.
func (v Variant[P]) As(r Record) (P, error) {
	payload, err := v.u.casts[v.tag](r)
	if err != nil {
		var zero P
		return zero, err
	}

	return convert[P](v.tag, payload)
}

// On adapts a typed handler for use in Cases.
func On[P, R any](v Variant[P], fn func(P) R) Handler[R] {
	return OnErr(v, func(p P) (R, error) { return fn(p), nil })
}

// OnErr adapts a typed, fallible handler for use in Cases.
func OnErr[P, R any](v Variant[P], fn func(P) (R, error)) Handler[R] {
	return func(payload any) (R, error) {
		p, err := convert[P](v.tag, payload)
		if err != nil {
			var zero R
			return zero, err
		}

		return fn(p)
	}
}

// Replace adapts a typed update for use in Updates. For record payloads the
// returned value is still merged field by field over the current payload.
func Replace[P any](v Variant[P], fn func(P) P) UpdateFunc {
	return func(payload any) (any, error) {
		p, err := convert[P](v.tag, payload)
		if err != nil {
			return nil, err
		}

		return fn(p), nil
	}
}

// convert turns a payload into P. Numbers with a fractional part do not
// convert to integer fields.
func convert[P any](tag string, payload any) (P, error) {
	if p, ok := payload.(P); ok {
		return p, nil
	}

	var p P
	if err := decode(payload, &p); err != nil {
		return p, fmt.Errorf("payload of %s as %T: %w", tag, p, err)
	}

	return p, nil
}
