package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Custom tags for lengths measured after trimming surrounding whitespace.
const (
	tagTrimMin = "trimmin"
	tagTrimMax = "trimmax"
)

// messages phrases a failed rule, keyed by "<json field>.<tag>".
type messages map[string]string

// newEngine returns a validator that names fields by their JSON key.
func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	// registration fails only for an empty tag or a nil func
	_ = v.RegisterValidation(tagTrimMin, trimmedLength(func(n, limit int) bool { return n >= limit }))
	_ = v.RegisterValidation(tagTrimMax, trimmedLength(func(n, limit int) bool { return n <= limit }))

	return v
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func trimmedLength(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return ok(utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())), limit)
	}
}

// checkStruct runs the struct tags of obj and converts the failures into
// FieldErrors phrased by msgs. A non-validation error (e.g. a nil pointer)
// is returned as is.
func checkStruct(engine *validator.Validate, obj any, msgs messages) (FieldErrors, error) {
	errs := FieldErrors{}

	err := engine.Struct(obj)
	if err == nil {
		return errs, nil
	}

	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return nil, err
	}

	for _, fe := range failed {
		errs.Add(fe.Field(), msgs.phrase(fe))
	}
	return errs, nil
}

func (m messages) phrase(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
