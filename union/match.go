package union

import (
	"maps"
	"slices"
)

type (
	// Handler handles one case of a match. Variant cases receive the extracted
	// payload; the DefaultCase handler receives the whole instance as a Record.
	Handler[R any] func(payload any) (R, error)

	// Cases maps variant names, and optionally DefaultCase, to handlers.
	Cases[R any] map[string]Handler[R]

	// Matcher dispatches an instance over a prepared case table.
	Matcher[R any] func(v Record) (R, error)
)

// MatchOn prepares a reusable matcher over cases.
//
// Without a DefaultCase handler the table must cover every declared variant,
// otherwise ErrNonExhaustive is returned. Keys naming undeclared variants
// fail with *UnknownVariantError.
func MatchOn[R any](u *Union, cases Cases[R]) (Matcher[R], error) {
	table := make(Cases[R], len(cases))
	for k, h := range cases {
		if h != nil {
			table[k] = h
		}
	}

	fallback, hasDefault := table[DefaultCase]
	delete(table, DefaultCase)

	if err := u.checkKeys(slices.Collect(maps.Keys(table)), !hasDefault); err != nil {
		return nil, err
	}

	return func(v Record) (R, error) {
		if tag, ok := u.Tag(v); ok {
			if h, found := table[tag]; found {
				return h(u.Payload(v))
			}
		}

		if hasDefault {
			return fallback(v)
		}

		raw, ok := v[u.cfg.TagField]
		var zero R
		return zero, &UnhandledVariantError{Tag: tagString(raw, ok)}
	}, nil
}

// MatchValue dispatches v over cases in one call. It behaves exactly like
// applying the matcher returned by MatchOn.
func MatchValue[R any](u *Union, v Record, cases Cases[R]) (R, error) {
	m, err := MatchOn(u, cases)
	if err != nil {
		var zero R
		return zero, err
	}

	return m(v)
}

// checkKeys rejects undeclared variant names and, when exhaustive is set,
// reports the declared variants missing from keys.
func (u *Union) checkKeys(keys []string, exhaustive bool) error {
	slices.Sort(keys)
	for _, k := range keys {
		if !u.Has(k) {
			return &UnknownVariantError{Tag: k}
		}
	}

	if !exhaustive {
		return nil
	}

	var missing []string
	for _, tag := range u.variants {
		if _, found := slices.BinarySearch(keys, tag); !found {
			missing = append(missing, tag)
		}
	}

	if len(missing) > 0 {
		return nonExhaustive(missing)
	}

	return nil
}
