package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// FieldErrors collects human-readable messages per request field. A non-empty
// FieldErrors is returned as the error of a failed validation and matches
// [ErrValidationFailed] with errors.Is.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge appends every message of other.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

// Only returns the messages of the listed fields. No fields means all of
// them.
func (fe FieldErrors) Only(fields ...string) FieldErrors {
	if len(fields) == 0 {
		return fe
	}
	scoped := FieldErrors{}
	for field, msgs := range fe {
		if inScope(fields, field) {
			scoped[field] = msgs
		}
	}
	return scoped
}

// Err returns fe as an error, or nil when no field failed.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, field := range fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(fe[field], ", "))
	}
	return b.String()
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidationFailed
}
