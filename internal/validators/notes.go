package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var noteMessages = messages{
	FieldTitle + ".required":        "Title is required",
	FieldTitle + ".min":             fmt.Sprintf("Title must be at least %d characters", MinTitleLength),
	FieldContent + "." + tagTrimMin: fmt.Sprintf("If provided, content must have at least %d characters", MinContentLength),
	FieldContent + "." + tagTrimMax: fmt.Sprintf("Content must have at most %d characters", MaxContentLength),

	FieldPage + ".number":  "Page must be a positive integer",
	FieldPage + ".max":     "Page must be a positive integer",
	FieldPage + ".gte":     "Page must be a positive integer",
	FieldLimit + ".number": "Limit must be a positive integer",
	FieldLimit + ".gte":    "Limit must be a positive integer",
	FieldLimit + ".max":    fmt.Sprintf("Limit must be at most %d", models.MaxLimit),
	FieldLimit + ".lte":    fmt.Sprintf("Limit must be at most %d", models.MaxLimit),
}

// noteUpdate carries the string-typed keys of a partial update.
type noteUpdate struct {
	Title   *string `json:"title" validate:"omitnil,min=3"`
	Content *string `json:"content" validate:"omitnil,trimmin=3,trimmax=600"`
}

// NoteValidator validates note bodies, the note id path parameter and the
// pagination query.
type NoteValidator struct {
	engine *validator.Validate
}

// NewNoteValidator constructs a NoteValidator.
func NewNoteValidator() Validator {
	return &NoteValidator{engine: newEngine()}
}

// Validate implements [Validator].
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest, *models.CreateNoteRequest:
		errs, err := checkStruct(v.engine, value, noteMessages)
		if err != nil {
			return err
		}
		return errs.Only(fields...).Err()

	case models.UpdateNoteRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateUpdate(*value, fields...)

	case models.NoteIDParam:
		return v.validateNoteID(value)

	case models.ListNotesQuery:
		return v.validateListQuery(value, fields...)
	case *models.ListNotesQuery:
		return v.validateListQuery(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateUpdate checks the title and content keys of a partial update when
// they are in scope. Other keys are ignored here and dropped later by the
// field filter.
func (v *NoteValidator) validateUpdate(req models.UpdateNoteRequest, fields ...string) error {
	errs := FieldErrors{}
	var update noteUpdate

	for field, dst := range map[string]**string{
		FieldTitle:   &update.Title,
		FieldContent: &update.Content,
	} {
		raw, ok := req[field]
		if !ok || !inScope(fields, field) {
			continue
		}
		s, isString := raw.(string)
		if !isString {
			errs.Add(field, fieldLabel(field)+" must be a string")
			continue
		}
		*dst = &s
	}

	lengthErrs, err := checkStruct(v.engine, update, noteMessages)
	if err != nil {
		return err
	}
	errs.Merge(lengthErrs)

	return errs.Err()
}

func (v *NoteValidator) validateNoteID(id models.NoteIDParam) error {
	if v.engine.Var(string(id), "required,uuid") != nil {
		return FieldErrors{FieldID: {"Invalid note ID"}}
	}
	return nil
}

// validateListQuery checks the raw page and limit strings first and then the
// range of the parsed values. A field reports at most one message.
func (v *NoteValidator) validateListQuery(q models.ListNotesQuery, fields ...string) error {
	errs, err := checkStruct(v.engine, q, noteMessages)
	if err != nil {
		return err
	}

	rangeErrs, err := checkStruct(v.engine, q.Pagination(), noteMessages)
	if err != nil {
		return err
	}
	for field, msgs := range rangeErrs {
		if _, failed := errs[field]; !failed {
			errs[field] = msgs
		}
	}

	return errs.Only(fields...).Err()
}

func fieldLabel(field string) string {
	switch field {
	case FieldTitle:
		return "Title"
	case FieldContent:
		return "Content"
	}
	return field
}
