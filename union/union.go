package union

import (
	"fmt"
	"maps"
	"slices"
)

type (
	// Creator constructs a new instance of one variant from its payload.
	Creator func(payload any) (Record, error)
	// Predicate reports whether an instance holds one variant.
	Predicate func(v Record) bool
	// Cast extracts the payload of one variant or fails with *CastMismatchError.
	Cast func(v Record) (any, error)
)

// Union is the descriptor derived from a Schema and a Config.
// It holds no mutable state and may be shared freely.
type Union struct {
	cfg      Config
	schema   Schema
	variants []string

	creators   map[string]Creator
	predicates map[string]Predicate
	casts      map[string]Cast
}

// Build validates schema and cfg and derives the union operations.
func Build(schema Schema, cfg Config) (*Union, error) {
	cfg = cfg.normalize()
	if cfg.TagField == cfg.ValueField {
		return nil, fmt.Errorf("%w: tag field and value field are both %q", ErrInvalidConfig, cfg.TagField)
	}

	if len(schema) == 0 {
		return nil, ErrEmptySchema
	}

	for name, shape := range schema {
		switch {
		case name == "" || name == DefaultCase:
			return nil, fmt.Errorf("%w: %q", ErrReservedVariant, name)
		case !shape.IsValid():
			return nil, fmt.Errorf("%w: variant %q has shape %v", ErrInvalidShape, name, shape)
		case shape == ShapeValue && cfg.Merged():
			return nil, fmt.Errorf("%w: variant %q", ErrValueFieldRequired, name)
		}
	}

	u := &Union{
		cfg:        cfg,
		schema:     maps.Clone(schema),
		variants:   slices.Sorted(maps.Keys(schema)),
		creators:   make(map[string]Creator, len(schema)),
		predicates: make(map[string]Predicate, len(schema)),
		casts:      make(map[string]Cast, len(schema)),
	}

	for _, tag := range u.variants {
		u.creators[tag] = u.creator(tag)
		u.predicates[tag] = u.predicate(tag)
		u.casts[tag] = u.cast(tag)
	}

	return u, nil
}

// MustBuild is like Build but panics on an invalid declaration.
func MustBuild(schema Schema, cfg Config) *Union {
	u, err := Build(schema, cfg)
	if err != nil {
		panic(err)
	}

	return u
}

func (u *Union) creator(tag string) Creator {
	if !u.cfg.Merged() {
		return func(payload any) (Record, error) {
			return Record{u.cfg.TagField: tag, u.cfg.ValueField: payload}, nil
		}
	}

	return func(payload any) (Record, error) {
		fields, err := ToRecord(payload)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", tag, err)
		}

		// tag is written last so it wins over a same-named payload field
		out := fields.Clone()
		out[u.cfg.TagField] = tag

		return out, nil
	}
}

func (u *Union) predicate(tag string) Predicate {
	return func(v Record) bool {
		actual, ok := u.Tag(v)
		return ok && actual == tag
	}
}

func (u *Union) cast(tag string) Cast {
	return func(v Record) (any, error) {
		raw, ok := v[u.cfg.TagField]
		if actual, isStr := raw.(string); !isStr || actual != tag {
			return nil, &CastMismatchError{Actual: tagString(raw, ok), Expected: tag}
		}

		return u.Payload(v), nil
	}
}

// Create returns the constructor of the tag variant.
// It panics with *UnknownVariantError if the union does not declare tag.
func (u *Union) Create(tag string) Creator {
	return lookup(u.creators, tag)
}

// Is returns the predicate of the tag variant.
// It panics with *UnknownVariantError if the union does not declare tag.
func (u *Union) Is(tag string) Predicate {
	return lookup(u.predicates, tag)
}

// As returns the cast of the tag variant.
// It panics with *UnknownVariantError if the union does not declare tag.
func (u *Union) As(tag string) Cast {
	return lookup(u.casts, tag)
}

// Creators returns a fresh table of all constructors keyed by variant name.
func (u *Union) Creators() map[string]Creator { return maps.Clone(u.creators) }

// Predicates returns a fresh table of all predicates keyed by variant name.
func (u *Union) Predicates() map[string]Predicate { return maps.Clone(u.predicates) }

// Casts returns a fresh table of all casts keyed by variant name.
func (u *Union) Casts() map[string]Cast { return maps.Clone(u.casts) }

func lookup[F any](table map[string]F, tag string) F {
	fn, ok := table[tag]
	if !ok {
		panic(&UnknownVariantError{Tag: tag})
	}

	return fn
}

// Config returns the normalized configuration.
func (u *Union) Config() Config { return u.cfg }

// Variants returns the declared variant names in sorted order.
func (u *Union) Variants() []string { return slices.Clone(u.variants) }

// Has reports whether tag is a declared variant.
func (u *Union) Has(tag string) bool {
	_, ok := u.schema[tag]
	return ok
}

// Shape returns the payload shape of tag, or the invalid zero Shape.
func (u *Union) Shape(tag string) Shape { return u.schema[tag] }

// Tag reads the tag of v. It reports false when the tag field is absent or not a string.
func (u *Union) Tag(v Record) (string, bool) {
	tag, ok := v[u.cfg.TagField].(string)
	return tag, ok
}

// Payload extracts the payload of v.
//
// With a value field it is the nested value itself. Without one it is a copy
// of v lacking the tag field.
func (u *Union) Payload(v Record) any {
	if u.cfg.Merged() {
		return v.Without(u.cfg.TagField)
	}

	return v[u.cfg.ValueField]
}
