package validators

import "slices"

// Field names as they appear in JSON bodies, headers, path and query.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldUsername      = "username"
	FieldAuthorization = "authorization"

	FieldTitle   = "title"
	FieldContent = "content"
	FieldID      = "id"
	FieldPage    = "page"
	FieldLimit   = "limit"
)

// Length limits, counted in characters.
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MinTitleLength    = 3
	MinContentLength  = 3
	MaxContentLength  = 600
)

// inScope reports whether field must be validated given the caller's field
// list. An empty list means every field.
func inScope(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}
