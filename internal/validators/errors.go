package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidRequest  = errors.New("invalid request")

	ErrJoinDateBeforeDOB = errors.New("joined date is before date of birth")
	ErrJoinDateWeekend   = errors.New("joined date is Saturday or Sunday")
	ErrAdminNullLocation = errors.New("admin must have a location")
)

// FieldErrors holds per-field validation messages keyed by JSON field name.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}

	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Is(target error) bool {
	return target == ErrInvalidRequest
}
