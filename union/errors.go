package union

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySchema        = errors.New("union schema declares no variants")
	ErrReservedVariant    = errors.New("variant name is reserved")
	ErrInvalidConfig      = errors.New("invalid union config")
	ErrInvalidShape       = errors.New("invalid payload shape")
	ErrValueFieldRequired = errors.New("non-record payload requires a value field")
	ErrUnknownVariant     = errors.New("unknown variant")
	ErrNotRecord          = errors.New("payload is not a record")
	ErrCastMismatch       = errors.New("cast mismatch")
	ErrUnhandledVariant   = errors.New("unhandled variant")
	ErrNonExhaustive      = errors.New("case table is not exhaustive")
	ErrLossyNumber        = errors.New("number does not fit an integer field")
)

// CastMismatchError is returned by a Cast when the instance holds another variant.
type CastMismatchError struct {
	Actual   string
	Expected string
}

func (e *CastMismatchError) Error() string {
	return fmt.Sprintf("Attempted to cast %s as %s", e.Actual, e.Expected)
}

func (e *CastMismatchError) Is(target error) bool { return target == ErrCastMismatch }

// UnhandledVariantError is returned by a Matcher when neither a case nor a
// default handler covers the instance's tag.
type UnhandledVariantError struct {
	Tag string
}

func (e *UnhandledVariantError) Error() string {
	return fmt.Sprintf("no case handles variant %s and no default is given", e.Tag)
}

func (e *UnhandledVariantError) Is(target error) bool { return target == ErrUnhandledVariant }

// UnknownVariantError reports a tag that the union does not declare.
type UnknownVariantError struct {
	Tag string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Tag)
}

func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }

func nonExhaustive(missing []string) error {
	return fmt.Errorf("%w: missing %s", ErrNonExhaustive, strings.Join(missing, ", "))
}

// tagString renders a raw tag value the way error messages show it.
func tagString(raw any, ok bool) string {
	if !ok {
		return "<missing>"
	}
	if s, isStr := raw.(string); isStr {
		return s
	}

	return fmt.Sprint(raw)
}
