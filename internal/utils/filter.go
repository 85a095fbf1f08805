package utils

// FilterFields returns a new map holding only the keys of input listed in
// allowed. Values are copied unchanged; input is not modified. The result is
// never nil.
func FilterFields(input map[string]any, allowed ...string) map[string]any {
	filtered := make(map[string]any, len(allowed))
	for _, key := range allowed {
		if v, ok := input[key]; ok {
			filtered[key] = v
		}
	}
	return filtered
}
