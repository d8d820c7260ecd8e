package union

import (
	"fmt"
	"maps"
	"slices"
)

type (
	// UpdateFunc computes a partial payload from the current payload of one variant.
	// For record payloads, maps with string keys included, the result is merged
	// over the current fields; for other payloads, structs included, it replaces
	// the value. A nil result on a record payload changes nothing.
	//
	// A merged payload is always a Record: a map[string]int payload comes back
	// as a Record holding the same entries, so read it with ToRecord rather than
	// a type assertion on the original map type.
	UpdateFunc func(payload any) (any, error)

	// Updates maps variant names to update functions.
	Updates map[string]UpdateFunc

	// Updater applies a prepared update table to an instance.
	Updater func(v Record) (Record, error)
)

// UpdateOn prepares a reusable updater over updates.
// Keys naming undeclared variants fail with *UnknownVariantError.
func (u *Union) UpdateOn(updates Updates) (Updater, error) {
	table := make(Updates, len(updates))
	for k, fn := range updates {
		if fn != nil {
			table[k] = fn
		}
	}

	if err := u.checkKeys(slices.Collect(maps.Keys(table)), false); err != nil {
		return nil, err
	}

	return func(v Record) (Record, error) {
		tag, ok := u.Tag(v)
		if !ok {
			return v, nil
		}

		fn, found := table[tag]
		if !found {
			// untouched variants keep their identity
			return v, nil
		}

		payload := u.Payload(v)
		partial, err := fn(payload)
		if err != nil {
			return nil, fmt.Errorf("update %s: %w", tag, err)
		}

		next := partial
		if IsPlainRecord(payload) {
			patch, err := ToRecord(partial)
			if err != nil {
				return nil, fmt.Errorf("update %s: %w", tag, err)
			}

			current, err := ToRecord(payload)
			if err != nil {
				return nil, fmt.Errorf("update %s: %w", tag, err)
			}

			next = current.Merge(patch)
		}

		return u.creators[tag](next)
	}, nil
}

// UpdateValue applies updates to v in one call. It behaves exactly like
// applying the updater returned by UpdateOn.
func (u *Union) UpdateValue(v Record, updates Updates) (Record, error) {
	up, err := u.UpdateOn(updates)
	if err != nil {
		return nil, err
	}

	return up(v)
}
