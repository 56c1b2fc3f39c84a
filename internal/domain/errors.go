package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrOptionNotFound  = errors.New("option not found")
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrValidation    = errors.New("validation error")
)

// FieldErrors maps field names to human-readable messages. It is returned
// whole, so callers can surface every failing field rather than the first.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		fmt.Fprintf(&b, " %s: %s;", f, e[f])
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Is makes errors.Is(err, ErrValidation) hold for any FieldErrors value.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
